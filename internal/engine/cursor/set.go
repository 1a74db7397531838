package cursor

import (
	"slices"
	"sort"
)

// Direction decides how a merged selection is oriented.
type Direction uint8

const (
	// Increasing puts the anchor at the lowest point so the selection grows
	// toward higher offsets.
	Increasing Direction = iota
	// Decreasing puts the anchor at the highest point.
	Decreasing
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Decreasing {
		return "decreasing"
	}
	return "increasing"
}

// SelectionObserver receives the extra cursors after every merge so their
// selections can be redrawn.
type SelectionObserver interface {
	ExtraSelectionsChanged(extras []Cursor)
}

// Snapshot is a copy of a cursor set's cursors, used to restore them on undo.
type Snapshot struct {
	Extras  []Cursor
	Primary Cursor
}

// Len returns the number of cursors captured.
func (s Snapshot) Len() int {
	return len(s.Extras) + 1
}

// CursorSet manages the primary cursor and the extra cursors.
// The primary cursor is always the last slot.
type CursorSet struct {
	enabled  bool
	extras   []Cursor
	primary  Cursor
	observer SelectionObserver
}

// NewCursorSet creates a cursor set holding only the primary cursor.
// Multi-cursor editing starts disabled.
func NewCursorSet(primary Cursor) *CursorSet {
	return &CursorSet{primary: primary}
}

// SetObserver installs the observer notified after merges and clears.
func (cs *CursorSet) SetObserver(o SelectionObserver) {
	cs.observer = o
}

// Enable turns multi-cursor editing on or off.
// Disabling clears the extra cursors.
func (cs *CursorSet) Enable(enabled bool) {
	cs.enabled = enabled
	if !enabled {
		cs.ClearExtraCursors()
	}
}

// Enabled reports whether extra cursors may be added.
func (cs *CursorSet) Enabled() bool {
	return cs.enabled
}

// AddCursor appends an extra cursor and merges coincident cursors.
// It does nothing while multi-cursor editing is disabled.
func (cs *CursorSet) AddCursor(c Cursor) bool {
	if !cs.enabled {
		return false
	}
	cs.extras = append(cs.extras, c)
	cs.Merge(Increasing)
	return true
}

// ClearExtraCursors removes every extra cursor.
func (cs *CursorSet) ClearExtraCursors() {
	cs.extras = nil
	cs.publish()
}

// AllCursors returns the extra cursors followed by the primary cursor.
func (cs *CursorSet) AllCursors() []Cursor {
	all := make([]Cursor, 0, len(cs.extras)+1)
	all = append(all, cs.extras...)
	return append(all, cs.primary)
}

// Extras returns a copy of the extra cursors.
func (cs *CursorSet) Extras() []Cursor {
	return slices.Clone(cs.extras)
}

// HasExtras reports whether any extra cursor exists.
func (cs *CursorSet) HasExtras() bool {
	return len(cs.extras) > 0
}

// Primary returns the primary cursor.
func (cs *CursorSet) Primary() Cursor {
	return cs.primary
}

// SetPrimary replaces the primary cursor.
func (cs *CursorSet) SetPrimary(c Cursor) {
	cs.primary = c
}

// Len returns the number of cursors, primary included.
func (cs *CursorSet) Len() int {
	return len(cs.extras) + 1
}

// PrimaryIndex returns the slot index of the primary cursor.
func (cs *CursorSet) PrimaryIndex() int {
	return len(cs.extras)
}

// At returns the cursor in slot i, in AllCursors order.
func (cs *CursorSet) At(i int) Cursor {
	if i == len(cs.extras) {
		return cs.primary
	}
	return cs.extras[i]
}

// SetAt replaces the cursor in slot i, in AllCursors order.
func (cs *CursorSet) SetAt(i int, c Cursor) {
	if i == len(cs.extras) {
		cs.primary = c
		return
	}
	cs.extras[i] = c
}

// Reinstall replaces every cursor: all but the last become the extra
// cursors and the last becomes the primary. No merge is performed.
func (cs *CursorSet) Reinstall(all []Cursor) {
	if len(all) == 0 {
		return
	}
	cs.extras = slices.Clone(all[:len(all)-1])
	cs.primary = all[len(all)-1]
}

// SortedIndices returns slot indices ordered by ascending position.
// Cursors sharing a position keep their slot order.
func (cs *CursorSet) SortedIndices() []int {
	idx := make([]int, cs.Len())
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return cs.At(idx[a]).Position < cs.At(idx[b]).Position
	})
	return idx
}

// Transform shifts every cursor after a document edit.
func (cs *CursorSet) Transform(edit Edit) {
	TransformCursors(cs.extras, edit)
	cs.primary = TransformCursor(cs.primary, edit)
}

// Snapshot captures the current cursors.
func (cs *CursorSet) Snapshot() Snapshot {
	return Snapshot{Extras: slices.Clone(cs.extras), Primary: cs.primary}
}

// Restore replaces the cursors with a snapshot and republishes selections.
func (cs *CursorSet) Restore(s Snapshot) {
	cs.extras = slices.Clone(s.Extras)
	cs.primary = s.Primary
	cs.publish()
}

// RemoveAt removes the cursor whose position is offset.
// Removing the primary cursor promotes the most recently added extra; the
// last remaining cursor is never removed. Returns true if a cursor was removed.
func (cs *CursorSet) RemoveAt(offset Offset) bool {
	for i, c := range cs.extras {
		if c.Position == offset {
			cs.extras = slices.Delete(cs.extras, i, i+1)
			cs.publish()
			return true
		}
	}
	n := len(cs.extras)
	if cs.primary.Position != offset || n == 0 {
		return false
	}
	cs.primary = cs.extras[n-1]
	cs.extras = cs.extras[:n-1]
	cs.publish()
	return true
}

// ToggleAt removes the cursor at offset, or moves the primary caret to
// offset and keeps the old primary as an extra cursor.
// Returns true if a cursor was added.
func (cs *CursorSet) ToggleAt(offset Offset) bool {
	if cs.RemoveAt(offset) || cs.primary.Position == offset || !cs.enabled {
		return false
	}
	old := cs.primary
	cs.primary = NewCursor(offset)
	return cs.AddCursor(old)
}

// Merge collapses cursors that share a position.
//
// Each pass sorts a snapshot of all cursors by position and merges the first
// coincident pair found, then starts over. The primary cursor always
// survives. The surviving cursor spans the lowest to the highest of the
// shared position and both anchors, oriented by dir. Overlapping selections
// with distinct positions are not merged.
func (cs *CursorSet) Merge(dir Direction) {
	for cs.mergeOnce(dir) {
	}
	cs.publish()
}

type slot struct {
	index  int
	cursor Cursor
}

func (cs *CursorSet) mergeOnce(dir Direction) bool {
	if len(cs.extras) == 0 {
		return false
	}
	primary := cs.PrimaryIndex()

	slots := make([]slot, 0, cs.Len())
	for i, c := range cs.AllCursors() {
		slots = append(slots, slot{index: i, cursor: c})
	}
	sort.SliceStable(slots, func(a, b int) bool {
		return slots[a].cursor.Position < slots[b].cursor.Position
	})

	for i := 0; i < len(slots)-1; i++ {
		for j := i + 1; j < len(slots); j++ {
			discard, keep := slots[i], slots[j]
			if discard.cursor.Position != keep.cursor.Position {
				break
			}
			if discard.index == primary {
				discard, keep = keep, discard
			}

			cs.SetAt(keep.index, mergeSpans(keep.cursor, discard.cursor, dir))
			cs.extras = slices.Delete(cs.extras, discard.index, discard.index+1)
			return true
		}
	}
	return false
}

// mergeSpans combines two coincident cursors into one selection.
func mergeSpans(keep, discard Cursor, dir Direction) Cursor {
	span := keep.Range().Union(discard.Range())
	if dir == Decreasing {
		return NewSelection(span.End, span.Start)
	}
	return NewSelection(span.Start, span.End)
}

func (cs *CursorSet) publish() {
	if cs.observer != nil {
		cs.observer.ExtraSelectionsChanged(cs.Extras())
	}
}
