package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/engine/syntax"
)

// shiftCursor moves both ends of c by delta.
func shiftCursor(c cursor.Cursor, delta int) cursor.Cursor {
	c.Anchor += delta
	c.Position += delta
	return c
}

// lineBlock returns the lines c touches and their text without the
// trailing line break.
func (ed *Editor) lineBlock(c cursor.Cursor) (first, last uint32, text string) {
	first, last = ed.selectedLines(c)
	text = ed.buf.TextRange(ed.buf.LineStartOffset(first), ed.buf.LineEndOffset(last))
	return first, last, text
}

// MoveLinesDown swaps the lines c touches with the line below them. The
// cursor moves with its lines.
func (ed *Editor) MoveLinesDown(c cursor.Cursor) cursor.Cursor {
	first, last, block := ed.lineBlock(c)
	if last+1 >= ed.buf.LineCount() {
		return c
	}
	next := last + 1
	below := ed.buf.LineLen(next)
	r := buffer.Range{Start: ed.buf.LineStartOffset(first), End: ed.buf.LineEndOffset(next)}
	ed.Replace(c, r, ed.buf.LineText(next)+"\n"+block)
	return shiftCursor(c, below+1)
}

// MoveLinesUp swaps the lines c touches with the line above them.
func (ed *Editor) MoveLinesUp(c cursor.Cursor) cursor.Cursor {
	first, last, block := ed.lineBlock(c)
	if first == 0 {
		return c
	}
	prev := first - 1
	above := ed.buf.LineLen(prev)
	r := buffer.Range{Start: ed.buf.LineStartOffset(prev), End: ed.buf.LineEndOffset(last)}
	ed.Replace(c, r, block+"\n"+ed.buf.LineText(prev))
	return shiftCursor(c, -(above + 1))
}

// DuplicateLinesDown copies the lines c touches below themselves and moves
// the cursor onto the copy.
func (ed *Editor) DuplicateLinesDown(c cursor.Cursor) cursor.Cursor {
	first, _, block := ed.lineBlock(c)
	start := ed.buf.LineStartOffset(first)
	ed.Replace(c, buffer.Range{Start: start, End: start}, block+"\n")
	return shiftCursor(c, utf8.RuneCountInString(block)+1)
}

// DuplicateLinesUp copies the lines c touches above themselves. The cursor
// stays on the upper copy.
func (ed *Editor) DuplicateLinesUp(c cursor.Cursor) cursor.Cursor {
	_, last, block := ed.lineBlock(c)
	end := ed.buf.LineEndOffset(last)
	ed.Replace(c, buffer.Range{Start: end, End: end}, "\n"+block)
	return c
}

// DeleteLines removes the lines c touches together with one line break and
// leaves a caret at the start of the line that takes their place.
func (ed *Editor) DeleteLines(c cursor.Cursor) cursor.Cursor {
	first, last := ed.selectedLines(c)
	start := ed.buf.LineStartOffset(first)
	end := ed.buf.LineEndOffset(last)
	switch {
	case last+1 < ed.buf.LineCount():
		end++
	case first > 0:
		start--
	}
	c = ed.Replace(c, buffer.Range{Start: start, End: end}, "")
	line := ed.buf.LineOf(c.Position)
	return cursor.NewCursor(ed.buf.LineStartOffset(line))
}

// GoToNewLine opens a line below the caret's line with the same leading
// indentation and moves the caret there. The caret's line is not split.
func (ed *Editor) GoToNewLine(c cursor.Cursor) cursor.Cursor {
	line := ed.buf.LineOf(c.Position)
	end := ed.buf.LineEndOffset(line)
	text := "\n" + ed.BlockIndentation(line)
	ed.Replace(c, buffer.Range{Start: end, End: end}, text)
	return cursor.NewCursor(end + utf8.RuneCountInString(text))
}

// ToggleComment comments out the lines c touches with the language's line
// comment prefix, or uncomments them when every non-blank line already is.
// Prefixes are inserted at the shallowest indentation of the block.
func (ed *Editor) ToggleComment(c cursor.Cursor) cursor.Cursor {
	prefix := ed.syntax.LineComment()
	first, last := ed.selectedLines(c)

	commented := true
	minIndent := -1
	for line := first; line <= last; line++ {
		text := ed.buf.LineText(line)
		if strings.TrimSpace(text) == "" {
			continue
		}
		indent := syntax.LeadingIndent(text)
		if minIndent < 0 || len(indent) < minIndent {
			minIndent = len(indent)
		}
		if !strings.HasPrefix(text[len(indent):], prefix) {
			commented = false
		}
	}
	if minIndent < 0 {
		return c
	}

	for line := last; ; line-- {
		text := ed.buf.LineText(line)
		if strings.TrimSpace(text) != "" {
			start := ed.buf.LineStartOffset(line)
			if commented {
				indent := syntax.LeadingIndent(text)
				n := utf8.RuneCountInString(prefix)
				if strings.HasPrefix(text[len(indent):], prefix+" ") {
					n++
				}
				at := start + utf8.RuneCountInString(indent)
				c = ed.Replace(c, buffer.Range{Start: at, End: at + n}, "")
			} else {
				at := start + minIndent
				c = ed.Replace(c, buffer.Range{Start: at, End: at}, prefix+" ")
			}
		}
		if line == first {
			break
		}
	}
	return c
}

// wordAt returns the word touching offset, or an empty range at offset.
func (ed *Editor) wordAt(offset buffer.Offset) buffer.Range {
	start, end := offset, offset
	for start > 0 {
		r, _ := ed.buf.RuneAt(start - 1)
		if !isWordChar(r) {
			break
		}
		start--
	}
	for end < ed.buf.Len() {
		r, _ := ed.buf.RuneAt(end)
		if !isWordChar(r) {
			break
		}
		end++
	}
	return buffer.Range{Start: start, End: end}
}

// TransformCase upper- or lowercases the selection of c, or the word under
// the caret when nothing is selected. A caret keeps its position.
func (ed *Editor) TransformCase(c cursor.Cursor, upper bool) cursor.Cursor {
	convert := strings.ToLower
	if upper {
		convert = strings.ToUpper
	}

	if c.HasSelection() {
		text := convert(ed.SelectedText(c))
		start := c.Start()
		ed.Replace(c, c.Range(), text)
		end := start + utf8.RuneCountInString(text)
		if c.IsForward() {
			return cursor.NewSelection(start, end)
		}
		return cursor.NewSelection(end, start)
	}

	r := ed.wordAt(c.Position)
	if r.IsEmpty() {
		return c
	}
	text := convert(ed.buf.TextRange(r.Start, r.End))
	ed.Replace(c, r, text)
	return cursor.NewCursor(min(c.Position, r.Start+utf8.RuneCountInString(text)))
}
