package selection

import (
	"testing"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

func newObservedSet(d *Decorations) *cursor.CursorSet {
	cs := cursor.NewCursorSet(cursor.NewCursor(0))
	cs.SetObserver(d)
	cs.Enable(true)
	return cs
}

func TestDecorationsFollowExtraCursors(t *testing.T) {
	d := NewDecorations(DefaultConfig())
	cs := newObservedSet(d)

	cs.AddCursor(cursor.NewSelection(2, 5))
	cs.AddCursor(cursor.NewCursor(8))

	items := d.Items()
	if len(items) != 2 {
		t.Fatalf("got %d decorations, want 2", len(items))
	}
	for _, item := range items {
		if item.Kind != KindExtraCursor || item.DrawOrder != ExtraCursorOrder {
			t.Errorf("decoration = %+v", item)
		}
		if item.Background != DefaultBackground {
			t.Errorf("Background = %q", item.Background)
		}
	}
	if items[0].Range != (buffer.Range{Start: 2, End: 5}) {
		t.Errorf("Range = %v", items[0].Range)
	}

	carets := d.Carets()
	if len(carets) != 2 || carets[0] != 5 || carets[1] != 8 {
		t.Errorf("Carets() = %v, want [5 8]", carets)
	}
}

func TestDecorationsClearedWithExtras(t *testing.T) {
	d := NewDecorations(DefaultConfig())
	cs := newObservedSet(d)
	cs.AddCursor(cursor.NewSelection(2, 5))

	cs.ClearExtraCursors()
	if d.Len() != 0 || len(d.Carets()) != 0 {
		t.Errorf("decorations left after clear: %v", d.Items())
	}
}

func TestDecorationsAt(t *testing.T) {
	d := NewDecorations(DefaultConfig())
	d.ExtraSelectionsChanged([]cursor.Cursor{
		cursor.NewSelection(6, 3),
		cursor.NewCursor(10),
	})

	tests := []struct {
		offset buffer.Offset
		want   bool
	}{
		{2, false},
		{3, true},
		{5, true},
		{6, false},
		{10, false},
	}
	for _, tt := range tests {
		if _, ok := d.At(tt.offset); ok != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.offset, ok, tt.want)
		}
	}
}

func TestDecorationsOnChange(t *testing.T) {
	d := NewDecorations(DefaultConfig())
	calls := 0
	d.OnChange(func() { calls++ })

	cs := newObservedSet(d)
	cs.AddCursor(cursor.NewCursor(3))
	cs.Merge(cursor.Increasing)

	if calls != 2 {
		t.Errorf("OnChange called %d times, want 2", calls)
	}
}
