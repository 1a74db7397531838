// Package syntax answers the language questions the editing primitives ask:
// whether an offset lies inside a comment or string literal, and how
// indentation-sensitive languages indent the next line.
//
// Token classification uses chroma lexers. Token spans are cached per
// buffer revision, so repeated queries during one multi-cursor pass tokenise
// the document once.
package syntax
