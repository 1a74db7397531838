package syntax

import (
	"strings"
	"unicode"
)

// blockKeywords open an indented block and end with a colon.
var blockKeywords = map[string]bool{
	"if": true, "elif": true, "else": true,
	"for": true, "while": true,
	"def": true, "class": true,
	"try": true, "except": true, "finally": true,
	"with": true, "async": true,
	"match": true, "case": true,
}

// dedentKeywords end a block; the next line returns one level.
var dedentKeywords = map[string]bool{
	"return": true, "pass": true, "raise": true,
	"break": true, "continue": true,
}

// LeadingIndent returns the run of spaces and tabs at the start of line.
func LeadingIndent(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// firstWord returns the leading identifier of a trimmed line.
func firstWord(trimmed string) string {
	end := strings.IndexFunc(trimmed, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
	if end < 0 {
		return trimmed
	}
	return trimmed[:end]
}

// stripComment removes a trailing # comment that is not inside a string.
func stripComment(line string) string {
	var quote rune
	escaped := false
	for i, r := range line {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '#':
			return line[:i]
		}
	}
	return line
}

// bracketDepth returns the number of unclosed brackets outside strings.
func bracketDepth(line string) int {
	depth := 0
	var quote rune
	escaped := false
	for _, r := range stripComment(line) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '(' || r == '[' || r == '{':
			depth++
		case r == ')' || r == ']' || r == '}':
			depth--
		}
	}
	return depth
}

// AutoColonApplies reports whether Enter at the end of line should first
// insert a colon: the line opens a block, is complete, and has no colon yet.
// Lines carrying a comment are left alone.
func AutoColonApplies(line string) bool {
	code := strings.TrimSpace(stripComment(line))
	if code == "" || len(code) != len(strings.TrimSpace(line)) {
		return false
	}
	if !blockKeywords[firstWord(code)] {
		return false
	}
	if strings.HasSuffix(code, ":") || strings.HasSuffix(code, "\\") || strings.HasSuffix(code, ",") {
		return false
	}
	return bracketDepth(code) == 0
}

// IndentAfter returns the indentation for a line following prevLine.
// The indent grows by unit after a colon or an unclosed bracket and shrinks
// by unit after a statement that ends a block.
func IndentAfter(prevLine, unit string) string {
	indent := LeadingIndent(prevLine)
	code := strings.TrimRight(stripComment(prevLine), " \t")
	trimmed := strings.TrimSpace(code)

	switch {
	case trimmed == "":
		return indent
	case strings.HasSuffix(code, ":") || bracketDepth(code) > 0:
		return indent + unit
	case dedentKeywords[firstWord(trimmed)]:
		return Dedent(indent, unit)
	}
	return indent
}

// Dedent removes one level of unit from indent.
func Dedent(indent, unit string) string {
	if strings.HasSuffix(indent, unit) {
		return indent[:len(indent)-len(unit)]
	}
	if strings.HasSuffix(indent, "\t") {
		return indent[:len(indent)-1]
	}
	if len(indent) > len(unit) {
		return indent[:len(indent)-len(unit)]
	}
	return ""
}
