package syntax

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

// indentSensitive lists lexer names whose block structure is indentation.
var indentSensitive = map[string]bool{
	"python":   true,
	"python 2": true,
	"cython":   true,
}

// lineComments maps lexer names to their line comment prefix. Languages not
// listed use "#".
var lineComments = map[string]string{
	"go":         "//",
	"c":          "//",
	"c++":        "//",
	"java":       "//",
	"javascript": "//",
	"typescript": "//",
	"rust":       "//",
	"lua":        "--",
	"sql":        "--",
	"haskell":    "--",
}

// span is a token's rune range in the document.
type span struct {
	start, end buffer.Offset
	typ        chroma.TokenType
}

// Analyzer classifies document positions for one language.
type Analyzer struct {
	lexer chroma.Lexer
	name  string

	mu       sync.Mutex
	revision buffer.RevisionID
	cached   bool
	spans    []span
}

// NewAnalyzer creates an analyzer for a language name or alias, such as
// "python" or "go". Unknown languages fall back to plain text.
func NewAnalyzer(language string) *Analyzer {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return newAnalyzer(lexer)
}

// KnownLanguage reports whether language names a registered lexer.
func KnownLanguage(language string) bool {
	return lexers.Get(language) != nil
}

// ForFile creates an analyzer for the language of filename.
func ForFile(filename string) *Analyzer {
	lexer := lexers.Match(filename)
	if lexer == nil {
		if ext := filepath.Ext(filename); ext != "" {
			lexer = lexers.Get(strings.TrimPrefix(ext, "."))
		}
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return newAnalyzer(lexer)
}

func newAnalyzer(lexer chroma.Lexer) *Analyzer {
	return &Analyzer{
		lexer: chroma.Coalesce(lexer),
		name:  strings.ToLower(lexer.Config().Name),
	}
}

// Language returns the lowercase lexer name.
func (a *Analyzer) Language() string {
	return a.name
}

// IndentSensitive reports whether the language is python-like.
func (a *Analyzer) IndentSensitive() bool {
	return indentSensitive[a.name]
}

// LineComment returns the prefix that starts a line comment.
func (a *Analyzer) LineComment() string {
	if prefix, ok := lineComments[a.name]; ok {
		return prefix
	}
	return "#"
}

// InCommentOrString reports whether the character before offset lies in a
// comment or string literal token. At offset 0 the first character is used.
func (a *Analyzer) InCommentOrString(buf *buffer.Buffer, offset buffer.Offset) bool {
	pos := offset - 1
	if pos < 0 {
		pos = 0
	}
	if pos >= buf.Len() {
		return false
	}

	spans := a.tokens(buf)
	i := sort.Search(len(spans), func(i int) bool { return spans[i].end > pos })
	if i == len(spans) || spans[i].start > pos {
		return false
	}
	typ := spans[i].typ
	return typ.InCategory(chroma.Comment) || typ.InSubCategory(chroma.LiteralString)
}

// tokens returns the token spans of the buffer's current revision.
func (a *Analyzer) tokens(buf *buffer.Buffer) []span {
	a.mu.Lock()
	defer a.mu.Unlock()

	rev := buf.RevisionID()
	if a.cached && a.revision == rev {
		return a.spans
	}

	var spans []span
	iter, err := a.lexer.Tokenise(nil, buf.Text())
	if err == nil {
		var at buffer.Offset
		for _, tok := range iter.Tokens() {
			n := utf8.RuneCountInString(tok.Value)
			if n == 0 {
				continue
			}
			spans = append(spans, span{start: at, end: at + n, typ: tok.Type})
			at += n
		}
	}
	a.spans = spans
	a.revision = rev
	a.cached = true
	return a.spans
}
