package cursor

import (
	"fmt"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// NoVerticalX marks a cursor without a remembered horizontal target column.
const NoVerticalX = -1

// Cursor is an anchor/position pair addressing a caret or a selection.
// VerticalX is the screen column repeated vertical moves aim for.
type Cursor struct {
	Anchor    Offset
	Position  Offset
	VerticalX int
}

// NewCursor creates a caret at the given offset.
func NewCursor(offset Offset) Cursor {
	return Cursor{Anchor: offset, Position: offset, VerticalX: NoVerticalX}
}

// NewSelection creates a cursor selecting from anchor to position.
func NewSelection(anchor, position Offset) Cursor {
	return Cursor{Anchor: anchor, Position: position, VerticalX: NoVerticalX}
}

// HasSelection returns true if the cursor selects any text.
func (c Cursor) HasSelection() bool {
	return c.Anchor != c.Position
}

// Start returns the lower bound of the selection.
func (c Cursor) Start() Offset {
	return min(c.Anchor, c.Position)
}

// End returns the upper bound of the selection.
func (c Cursor) End() Offset {
	return max(c.Anchor, c.Position)
}

// Range returns the selection as a range (always Start <= End).
func (c Cursor) Range() Range {
	return Range{Start: c.Start(), End: c.End()}
}

// IsForward returns true if the selection grew toward higher offsets.
func (c Cursor) IsForward() bool {
	return c.Position >= c.Anchor
}

// MoveTo returns a caret at offset, dropping any selection and remembered column.
func (c Cursor) MoveTo(offset Offset) Cursor {
	return NewCursor(offset)
}

// Extend returns the cursor with only the caret end moved to offset.
func (c Cursor) Extend(offset Offset) Cursor {
	return Cursor{Anchor: c.Anchor, Position: offset, VerticalX: NoVerticalX}
}

// Collapse drops the selection, keeping the caret where it is.
func (c Cursor) Collapse() Cursor {
	return c.MoveTo(c.Position)
}

// WithVerticalX returns the cursor with a remembered target column.
func (c Cursor) WithVerticalX(x int) Cursor {
	c.VerticalX = x
	return c
}

// Clamp returns a cursor clamped to the valid range [0, maxOffset].
func (c Cursor) Clamp(maxOffset Offset) Cursor {
	c.Anchor = max(0, min(c.Anchor, maxOffset))
	c.Position = max(0, min(c.Position, maxOffset))
	return c
}

// SameSpan returns true if both cursors have the same anchor and position.
// The remembered column is not compared.
func (c Cursor) SameSpan(other Cursor) bool {
	return c.Anchor == other.Anchor && c.Position == other.Position
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	if !c.HasSelection() {
		return fmt.Sprintf("Cursor(%d)", c.Position)
	}
	dir := "→"
	if !c.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", c.Anchor, dir, c.Position)
}
