package editor

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
)

// runeWidth returns the display width of r at screen column col.
func (ed *Editor) runeWidth(r rune, col int) int {
	if r == '\t' {
		return ed.opts.TabWidth - col%ed.opts.TabWidth
	}
	return runewidth.RuneWidth(r)
}

// ScreenColumn returns the display column of offset within its line, with
// tabs expanded and wide characters counted twice.
func (ed *Editor) ScreenColumn(offset buffer.Offset) int {
	line := ed.buf.LineOf(offset)
	start := ed.buf.LineStartOffset(line)
	col := 0
	for _, r := range ed.buf.TextRange(start, offset) {
		col += ed.runeWidth(r, col)
	}
	return col
}

// OffsetForColumn returns the offset on line closest to display column x
// without passing it. Columns past the end of the line clamp to its end.
func (ed *Editor) OffsetForColumn(line uint32, x int) buffer.Offset {
	offset := ed.buf.LineStartOffset(line)
	col := 0
	for _, r := range ed.buf.LineText(line) {
		w := ed.runeWidth(r, col)
		if col+w > x {
			break
		}
		col += w
		offset++
	}
	return offset
}

// moveTo returns c moved to offset, extending the selection when shift is
// held.
func moveTo(c cursor.Cursor, offset buffer.Offset, shift bool) cursor.Cursor {
	if shift {
		return c.Extend(offset)
	}
	return c.MoveTo(offset)
}

// Move applies a caret movement key to c. Left and Right move by character
// or, with ctrl, by word; a selection collapses to its near edge when shift
// is not held. Up, Down, PageUp and PageDown keep the remembered column.
func (ed *Editor) Move(c cursor.Cursor, k key.Key, shift, ctrl bool) cursor.Cursor {
	switch k {
	case key.KeyLeft:
		if c.HasSelection() && !shift && !ctrl {
			return c.MoveTo(c.Start())
		}
		target := max(c.Position-1, 0)
		if ctrl {
			target = ed.prevWordStart(c.Position)
		}
		return moveTo(c, target, shift)

	case key.KeyRight:
		if c.HasSelection() && !shift && !ctrl {
			return c.MoveTo(c.End())
		}
		target := min(c.Position+1, ed.buf.Len())
		if ctrl {
			target = ed.nextWordStart(c.Position)
		}
		return moveTo(c, target, shift)

	case key.KeyUp:
		return ed.moveLines(c, -1, shift)
	case key.KeyDown:
		return ed.moveLines(c, 1, shift)
	case key.KeyPageUp:
		return ed.moveLines(c, -ed.opts.PageLines, shift)
	case key.KeyPageDown:
		return ed.moveLines(c, ed.opts.PageLines, shift)
	case key.KeyHome:
		return ed.Home(c, shift, ctrl)
	case key.KeyEnd:
		return ed.End(c, shift, ctrl)
	}
	return c
}

// SeedVerticalX remembers the caret's current screen column when c has no
// remembered column yet.
func (ed *Editor) SeedVerticalX(c cursor.Cursor) cursor.Cursor {
	if c.VerticalX != cursor.NoVerticalX {
		return c
	}
	return c.WithVerticalX(ed.ScreenColumn(c.Position))
}

// moveLines moves c by delta lines toward its remembered column. Moving
// past the first or last line lands on the document bounds.
func (ed *Editor) moveLines(c cursor.Cursor, delta int, shift bool) cursor.Cursor {
	c = ed.SeedVerticalX(c)
	x := c.VerticalX

	line := int(ed.buf.LineOf(c.Position)) + delta
	var target buffer.Offset
	switch {
	case line < 0:
		target = 0
	case line >= int(ed.buf.LineCount()):
		target = ed.buf.Len()
	default:
		target = ed.OffsetForColumn(uint32(line), x)
	}
	return moveTo(c, target, shift).WithVerticalX(x)
}

// Home moves to the first non-blank character of the line, or to the line
// start when already there. With ctrl, or when Home and End address the
// document, it moves to the document start.
func (ed *Editor) Home(c cursor.Cursor, shift, ctrl bool) cursor.Cursor {
	if ctrl || ed.opts.HomeEndDocument {
		return moveTo(c, 0, shift)
	}
	line := ed.buf.LineOf(c.Position)
	start := ed.buf.LineStartOffset(line)
	text := ed.buf.LineText(line)
	smart := start + len([]rune(text)) - len([]rune(strings.TrimLeft(text, " \t")))
	if c.Position == smart {
		return moveTo(c, start, shift)
	}
	return moveTo(c, smart, shift)
}

// End moves to the end of the line. With ctrl, or when Home and End
// address the document, it moves to the document end.
func (ed *Editor) End(c cursor.Cursor, shift, ctrl bool) cursor.Cursor {
	if ctrl || ed.opts.HomeEndDocument {
		return moveTo(c, ed.buf.Len(), shift)
	}
	return moveTo(c, ed.buf.LineEndOffset(ed.buf.LineOf(c.Position)), shift)
}

// DocumentStart moves c to the start of the document.
func (ed *Editor) DocumentStart(c cursor.Cursor) cursor.Cursor {
	return cursor.NewCursor(0)
}

// DocumentEnd moves c to the end of the document.
func (ed *Editor) DocumentEnd(c cursor.Cursor) cursor.Cursor {
	return cursor.NewCursor(ed.buf.Len())
}

// GoToLine moves c to the start of line, counted from 1. Lines past the
// end go to the last line.
func (ed *Editor) GoToLine(c cursor.Cursor, line int) cursor.Cursor {
	n := int(ed.buf.LineCount())
	line = max(1, min(line, n))
	return cursor.NewCursor(ed.buf.LineStartOffset(uint32(line - 1)))
}
