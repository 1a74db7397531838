package multicursor

import (
	"strings"
	"unicode"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
)

// bracketPairs are deleted together by intelligent backspace when the
// caret sits between them.
var bracketPairs = map[string]bool{
	"()": true, "[]": true, "{}": true, "''": true, `""`: true,
}

// apply runs the built-in behaviour for ev at c. It reports whether the
// key calls for merging toward lower offsets.
func (d *Dispatcher) apply(c cursor.Cursor, ev key.Event) (cursor.Cursor, bool) {
	ed := d.ed
	shift, ctrl := ev.Shift(), ev.Ctrl()

	switch {
	case ev.Key == key.KeyTab && !ctrl:
		return ed.Indent(c, ed.Options().TabMode), false

	case ev.Key == key.KeyBacktab && !ctrl:
		return ed.Unindent(c, ed.Options().TabMode), true

	case ev.Key == key.KeyEnter:
		if shift || ctrl {
			return c, false
		}
		return d.enter(c), false

	case ev.Key == key.KeyBackspace && !shift && !ctrl:
		return d.backspace(c), true

	case ev.Key == key.KeyHome:
		return ed.Home(c, shift, ctrl), true

	case ev.Key == key.KeyEnd:
		return ed.End(c, shift, ctrl), false
	}

	decreasing := ev.Key == key.KeyUp || ev.Key == key.KeyLeft
	if ev.Key == key.KeyUp || ev.Key == key.KeyDown {
		c = ed.SeedVerticalX(c)
	}
	return d.defaultKey(c, ev), decreasing
}

// enter inserts a line break at c and fixes the new line's indentation.
// At the end of a block statement on python-like code it adds the missing
// colon first.
func (d *Dispatcher) enter(c cursor.Cursor) cursor.Cursor {
	ed := d.ed
	opts := ed.Options()
	buf := ed.Buffer()

	if ed.AutoInsertColons(c) {
		c = ed.InsertText(c, ":\n")
		if opts.StripTrailingSpacesOnModify {
			return ed.FixAndStripIndent(c, false, "")
		}
		c, _ = ed.FixIndent(c, false, "")
		return c
	}

	curIndent := ed.BlockIndentation(buf.LineOf(c.Position))
	c = ed.InsertText(c, "\n")

	lineStart := buf.LineStartOffset(buf.LineOf(c.Position))
	cmtOrStr := ed.InCommentOrString(c.Position) && ed.InCommentOrString(lineStart)

	if opts.StripTrailingSpacesOnModify {
		return ed.FixAndStripIndent(c, cmtOrStr, curIndent)
	}
	c, _ = ed.FixIndent(c, cmtOrStr, curIndent)
	return c
}

// backspace deletes backward, removing indentation, trailing blanks or an
// empty bracket pair as a unit when intelligent backspace is on.
func (d *Dispatcher) backspace(c cursor.Cursor) cursor.Cursor {
	ed := d.ed
	opts := ed.Options()
	if c.HasSelection() || !opts.IntelligentBackspace {
		return ed.DeleteBackward(c)
	}

	leading := []rune(ed.TextBefore(c))
	trailing := []rune(ed.TextAfter(c))
	trimmed := []rune(strings.TrimRightFunc(string(leading), unicode.IsSpace))
	trailingSpaces := len(leading) - len(trimmed)
	unit := len([]rune(opts.IndentChars))

	switch {
	case len(trimmed) == 0 && len(leading) > unit:
		if len(leading)%unit == 0 {
			return ed.Unindent(c, false)
		}
		return ed.DeleteBackward(c)

	case trailingSpaces > 0 && strings.TrimSpace(string(trailing)) == "":
		r := buffer.Range{Start: c.Position - trailingSpaces, End: c.Position}
		return ed.Replace(c, r, "")

	case len(leading) > 0 && len(trailing) > 0 &&
		bracketPairs[string(leading[len(leading)-1])+string(trailing[0])]:
		r := buffer.Range{Start: c.Position - 1, End: c.Position + 1}
		return ed.Replace(c, r, "")
	}
	return ed.DeleteBackward(c)
}

// defaultKey types text or moves the caret.
func (d *Dispatcher) defaultKey(c cursor.Cursor, ev key.Event) cursor.Cursor {
	ed := d.ed
	if text := ev.Text(); text != "" {
		return ed.InsertText(c, text)
	}

	switch ev.Key {
	case key.KeyBackspace:
		if ev.Ctrl() {
			return ed.DeleteWordBackward(c)
		}
		return ed.DeleteBackward(c)
	case key.KeyDelete:
		if ev.Ctrl() {
			return ed.DeleteWordForward(c)
		}
		return ed.DeleteForward(c)
	case key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown, key.KeyPageUp, key.KeyPageDown:
		return ed.Move(c, ev.Key, ev.Shift(), ev.Ctrl())
	}
	return c
}
