package editor

import (
	"strings"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/engine/syntax"
)

// IndentUnit returns one level of indentation.
func (ed *Editor) IndentUnit() string {
	return ed.opts.IndentChars
}

// BlockIndentation returns the leading whitespace of line.
func (ed *Editor) BlockIndentation(line uint32) string {
	return syntax.LeadingIndent(ed.buf.LineText(line))
}

// indentWidth returns the display width of an indentation string.
func (ed *Editor) indentWidth(indent string) int {
	w := 0
	for _, r := range indent {
		if r == '\t' {
			w += ed.opts.TabWidth - w%ed.opts.TabWidth
		} else {
			w++
		}
	}
	return w
}

// setLineIndent replaces the leading whitespace of line with indent.
func (ed *Editor) setLineIndent(c cursor.Cursor, line uint32, indent string) cursor.Cursor {
	current := ed.BlockIndentation(line)
	if current == indent {
		return c
	}
	start := ed.buf.LineStartOffset(line)
	r := buffer.Range{Start: start, End: start + len([]rune(current))}
	return ed.Replace(c, r, indent)
}

// selectedLines returns the lines a selection touches. A selection ending
// at the start of a line does not include that line.
func (ed *Editor) selectedLines(c cursor.Cursor) (first, last uint32) {
	first = ed.buf.LineOf(c.Start())
	last = ed.buf.LineOf(c.End())
	if last > first && c.End() == ed.buf.LineStartOffset(last) {
		last--
	}
	return first, last
}

// prevCodeLine returns the nearest line above line with non-blank text.
func (ed *Editor) prevCodeLine(line uint32) (uint32, bool) {
	for line > 0 {
		line--
		if strings.TrimSpace(ed.buf.LineText(line)) != "" {
			return line, true
		}
	}
	return 0, false
}

// Indent indents the lines a selection touches. Without a selection it
// adds one unit at the start of the line when only whitespace precedes the
// caret (or force is set), and otherwise pads to the next indent stop at
// the caret.
func (ed *Editor) Indent(c cursor.Cursor, force bool) cursor.Cursor {
	unit := ed.IndentUnit()

	if c.HasSelection() {
		first, last := ed.selectedLines(c)
		for line := last; ; line-- {
			start := ed.buf.LineStartOffset(line)
			c = ed.Replace(c, buffer.Range{Start: start, End: start}, unit)
			if line == first {
				break
			}
		}
		return c
	}

	leading := ed.TextBefore(c)
	if force || strings.TrimSpace(leading) == "" {
		line := ed.buf.LineOf(c.Position)
		start := ed.buf.LineStartOffset(line)
		return ed.Replace(c, buffer.Range{Start: start, End: start}, unit)
	}

	if unit == "\t" {
		return ed.InsertText(c, unit)
	}
	n := len(unit) - ed.indentWidth(leading)%len(unit)
	return ed.InsertText(c, strings.Repeat(" ", n))
}

// Unindent removes one level of indentation from the lines a selection
// touches, or from the caret's line. Without force, on an
// indentation-sensitive language the line snaps back to the indentation
// the previous code line calls for when that is shallower.
func (ed *Editor) Unindent(c cursor.Cursor, force bool) cursor.Cursor {
	unit := ed.IndentUnit()

	if c.HasSelection() {
		first, last := ed.selectedLines(c)
		for line := last; ; line-- {
			indent := ed.BlockIndentation(line)
			c = ed.setLineIndent(c, line, syntax.Dedent(indent, unit))
			if line == first {
				break
			}
		}
		return c
	}

	line := ed.buf.LineOf(c.Position)
	indent := ed.BlockIndentation(line)
	if indent == "" {
		return c
	}

	target := syntax.Dedent(indent, unit)
	if !force && ed.IndentSensitive() {
		want := ""
		if prev, ok := ed.prevCodeLine(line); ok {
			want = syntax.IndentAfter(ed.buf.LineText(prev), unit)
		}
		if ed.indentWidth(want) < ed.indentWidth(indent) {
			target = want
		}
	}
	return ed.setLineIndent(c, line, target)
}

// FixIndent sets the indentation of the caret's line from the previous
// code line. When commentOrString is set the line takes curIndent
// instead, so text continuing a comment or string keeps its column.
// Returns the cursor and whether the indentation changed.
func (ed *Editor) FixIndent(c cursor.Cursor, commentOrString bool, curIndent string) (cursor.Cursor, bool) {
	line := ed.buf.LineOf(c.Position)
	if line == 0 {
		return c, false
	}

	var want string
	switch {
	case commentOrString:
		want = curIndent
	default:
		prev, ok := ed.prevCodeLine(line)
		if !ok {
			break
		}
		prevText := ed.buf.LineText(prev)
		if ed.IndentSensitive() {
			want = syntax.IndentAfter(prevText, ed.IndentUnit())
		} else {
			want = syntax.LeadingIndent(prevText)
		}
	}

	if ed.BlockIndentation(line) == want {
		return c, false
	}
	return ed.setLineIndent(c, line, want), true
}

// FixAndStripIndent strips trailing whitespace from the line above the
// caret, then fixes the caret line's indentation.
func (ed *Editor) FixAndStripIndent(c cursor.Cursor, commentOrString bool, curIndent string) cursor.Cursor {
	if line := ed.buf.LineOf(c.Position); line > 0 {
		prev := line - 1
		text := ed.buf.LineText(prev)
		trimmed := strings.TrimRight(text, " \t")
		if len(trimmed) < len(text) {
			end := ed.buf.LineEndOffset(prev)
			start := end - len([]rune(text)) + len([]rune(trimmed))
			c = ed.Replace(c, buffer.Range{Start: start, End: end}, "")
		}
	}
	c, _ = ed.FixIndent(c, commentOrString, curIndent)
	return c
}

// AutoInsertColons reports whether Enter at c should insert a colon first:
// the language is indentation-sensitive, the caret sits at the end of a
// block statement lacking its colon, and not inside a comment or string.
func (ed *Editor) AutoInsertColons(c cursor.Cursor) bool {
	if !ed.opts.AddColons || !ed.IndentSensitive() || c.HasSelection() {
		return false
	}
	line := ed.buf.LineOf(c.Position)
	if c.Position != ed.buf.LineEndOffset(line) {
		return false
	}
	if ed.InCommentOrString(c.Position) {
		return false
	}
	return syntax.AutoColonApplies(ed.buf.LineText(line))
}
