package multicursor

import (
	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Op is a single-cursor operation: it acts at c and returns where c ends up.
type Op func(ed *editor.Editor, c cursor.Cursor) cursor.Cursor

// ForEachCursor returns a command running op at every cursor as one undo
// step, then merging in direction dir.
func ForEachCursor(ed *editor.Editor, name string, op Op, dir cursor.Direction) func() {
	return func() {
		cs := ed.Cursors()
		ed.BeginEditBlock(name)
		for i := 0; i < cs.Len(); i++ {
			cs.SetAt(i, op(ed, cs.At(i)))
		}
		cs.Merge(dir)
		ed.EndEditBlock()
		ed.EmitCursorPositionChanged()
	}
}

// ClearsExtraCursors returns a command that drops the extra cursors, then
// runs fn.
func ClearsExtraCursors(ed *editor.Editor, fn func()) func() {
	return func() {
		ed.Cursors().ClearExtraCursors()
		fn()
	}
}

// RestrictSingleCursor returns a command that runs fn only while there are
// no extra cursors.
func RestrictSingleCursor(ed *editor.Editor, fn func()) func() {
	return func() {
		if ed.Cursors().HasExtras() {
			ed.Logger().Debug("single-cursor command skipped with %d cursors", ed.Cursors().Len())
			return
		}
		fn()
	}
}

// OnPrimary returns a command running op at the primary cursor only.
func OnPrimary(ed *editor.Editor, op Op) func() {
	return func() {
		cs := ed.Cursors()
		cs.SetPrimary(op(ed, cs.Primary()))
		ed.EmitCursorPositionChanged()
	}
}
