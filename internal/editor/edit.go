package editor

import (
	"strings"
	"unicode"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// InsertText replaces the selection of c with text, leaving a caret after
// it. In overwrite mode a caret without selection replaces as many
// characters as it types, never past the end of the line.
func (ed *Editor) InsertText(c cursor.Cursor, text string) cursor.Cursor {
	r := c.Range()
	if ed.overwrite && r.IsEmpty() && !strings.ContainsAny(text, "\r\n") {
		lineEnd := ed.buf.LineEndOffset(ed.buf.LineOf(r.Start))
		r.End = min(r.Start+len([]rune(text)), lineEnd)
	}
	return ed.Replace(c, r, text)
}

// RemoveSelectedText deletes the selection of c.
func (ed *Editor) RemoveSelectedText(c cursor.Cursor) cursor.Cursor {
	if !c.HasSelection() {
		return c
	}
	return ed.Replace(c, c.Range(), "")
}

// DeleteBackward deletes the selection, or the character before the caret.
func (ed *Editor) DeleteBackward(c cursor.Cursor) cursor.Cursor {
	if c.HasSelection() {
		return ed.RemoveSelectedText(c)
	}
	if c.Position == 0 {
		return c
	}
	return ed.Replace(c, buffer.Range{Start: c.Position - 1, End: c.Position}, "")
}

// DeleteForward deletes the selection, or the character after the caret.
func (ed *Editor) DeleteForward(c cursor.Cursor) cursor.Cursor {
	if c.HasSelection() {
		return ed.RemoveSelectedText(c)
	}
	if c.Position >= ed.buf.Len() {
		return c
	}
	return ed.Replace(c, buffer.Range{Start: c.Position, End: c.Position + 1}, "")
}

// DeleteWordBackward deletes the selection, or back to the previous word
// start.
func (ed *Editor) DeleteWordBackward(c cursor.Cursor) cursor.Cursor {
	if c.HasSelection() {
		return ed.RemoveSelectedText(c)
	}
	start := ed.prevWordStart(c.Position)
	return ed.Replace(c, buffer.Range{Start: start, End: c.Position}, "")
}

// DeleteWordForward deletes the selection, or up to the next word start.
func (ed *Editor) DeleteWordForward(c cursor.Cursor) cursor.Cursor {
	if c.HasSelection() {
		return ed.RemoveSelectedText(c)
	}
	end := ed.nextWordStart(c.Position)
	return ed.Replace(c, buffer.Range{Start: c.Position, End: end}, "")
}

// TextBefore returns the text between the start of the caret's line and
// the caret.
func (ed *Editor) TextBefore(c cursor.Cursor) string {
	start := ed.buf.LineStartOffset(ed.buf.LineOf(c.Position))
	return ed.buf.TextRange(start, c.Position)
}

// TextAfter returns the text between the caret and the end of its line.
func (ed *Editor) TextAfter(c cursor.Cursor) string {
	end := ed.buf.LineEndOffset(ed.buf.LineOf(c.Position))
	return ed.buf.TextRange(c.Position, end)
}

// SelectedText returns the text selected by c.
func (ed *Editor) SelectedText(c cursor.Cursor) string {
	return ed.buf.TextRange(c.Start(), c.End())
}

func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// runeClass groups runes for word motion: whitespace, word characters and
// punctuation.
func runeClass(r rune) int {
	switch {
	case unicode.IsSpace(r):
		return 0
	case isWordChar(r):
		return 1
	default:
		return 2
	}
}

// prevWordStart skips blanks backwards, then the run of the class before
// them. A line break counts as one word of its own.
func (ed *Editor) prevWordStart(offset buffer.Offset) buffer.Offset {
	if offset == 0 {
		return 0
	}
	if r, _ := ed.buf.RuneAt(offset - 1); r == '\n' {
		return offset - 1
	}

	pos := offset
	for pos > 0 {
		r, _ := ed.buf.RuneAt(pos - 1)
		if r == '\n' || !unicode.IsSpace(r) {
			break
		}
		pos--
	}
	if pos == 0 {
		return 0
	}

	r, _ := ed.buf.RuneAt(pos - 1)
	if r == '\n' {
		return pos
	}
	class := runeClass(r)
	for pos > 0 {
		r, _ := ed.buf.RuneAt(pos - 1)
		if r == '\n' || runeClass(r) != class {
			break
		}
		pos--
	}
	return pos
}

// nextWordStart skips the run of the class at offset, then whitespace.
func (ed *Editor) nextWordStart(offset buffer.Offset) buffer.Offset {
	n := ed.buf.Len()
	pos := offset
	if pos >= n {
		return n
	}
	r, _ := ed.buf.RuneAt(pos)
	if r == '\n' {
		return pos + 1
	}
	if class := runeClass(r); class != 0 {
		for pos < n {
			r, _ := ed.buf.RuneAt(pos)
			if runeClass(r) != class {
				break
			}
			pos++
		}
	}
	for pos < n {
		r, _ := ed.buf.RuneAt(pos)
		if !unicode.IsSpace(r) || r == '\n' {
			break
		}
		pos++
	}
	return pos
}
