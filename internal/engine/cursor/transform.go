package cursor

import "github.com/dshills/multicursor/internal/engine/buffer"

// Edit is an alias for buffer.Edit for convenience.
type Edit = buffer.Edit

// TransformOffset updates an offset after an edit.
//
// Transformation rules:
//   - Offsets before the edit are unchanged
//   - Offsets at or after the end of the replaced span shift by the edit's
//     delta, so an insertion exactly at an offset pushes it forward
//   - Offsets inside the replaced span move to the end of the new text
func TransformOffset(offset Offset, edit Edit) Offset {
	r := edit.Range
	switch {
	case offset < r.Start:
		return offset
	case offset >= r.End:
		return offset + edit.Delta()
	default:
		return r.Start + edit.NewLen()
	}
}

// TransformCursor updates both ends of a cursor after an edit.
func TransformCursor(c Cursor, edit Edit) Cursor {
	c.Anchor = TransformOffset(c.Anchor, edit)
	c.Position = TransformOffset(c.Position, edit)
	return c
}

// TransformCursors updates every cursor in place after an edit.
func TransformCursors(cursors []Cursor, edit Edit) {
	for i := range cursors {
		cursors[i] = TransformCursor(cursors[i], edit)
	}
}
