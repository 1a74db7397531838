// Package cursor provides the multi-cursor model: cursors, the cursor set
// with its primary cursor, and the merge algorithm.
//
// Selection Model:
//
// A Cursor uses an anchor/position model where:
//   - Anchor: the position where the selection started
//   - Position: the caret, where typing would occur
//
// When Anchor == Position the cursor is a plain caret with no selected text.
// Which endpoint is the anchor records the selection direction and is kept
// by operations that only move the caret end.
//
// Cursor Set:
//
// A CursorSet holds an ordered list of extra cursors plus one primary
// cursor. AllCursors always returns the extras followed by the primary, so
// the primary is the last slot. Slots are addressed by index with At and
// SetAt; edits to the document shift every slot through Transform.
//
//	cs := cursor.NewCursorSet(cursor.NewCursor(0))
//	cs.Enable(true)
//	cs.AddCursor(cursor.NewCursor(6))
//
//	for i := 0; i < cs.Len(); i++ {
//	    cs.SetAt(i, edit(cs.At(i)))
//	}
//	cs.Merge(cursor.Increasing)
//
// Merging:
//
// Merge collapses cursors whose positions coincide exactly. Cursors whose
// selections overlap without sharing a position are left alone. The primary
// cursor always survives a merge.
//
// Thread Safety:
//
// Cursor is an immutable value type. CursorSet is not thread-safe; it is
// owned by the single goroutine driving the editor.
package cursor
