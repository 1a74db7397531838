package cursor

import (
	"testing"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

// Cursor Tests

func TestNewCursor(t *testing.T) {
	c := NewCursor(10)
	if c.Anchor != 10 || c.Position != 10 {
		t.Errorf("expected caret at 10, got %v", c)
	}
	if c.HasSelection() {
		t.Error("caret should have no selection")
	}
	if c.VerticalX != NoVerticalX {
		t.Errorf("expected no remembered column, got %d", c.VerticalX)
	}
}

func TestCursorSelectionBounds(t *testing.T) {
	backward := NewSelection(20, 10)

	if backward.Start() != 10 || backward.End() != 20 {
		t.Errorf("expected [10,20], got [%d,%d]", backward.Start(), backward.End())
	}
	if backward.IsForward() {
		t.Error("selection with position < anchor should be backward")
	}
	if backward.Range() != (buffer.Range{Start: 10, End: 20}) {
		t.Errorf("unexpected range %v", backward.Range())
	}
}

func TestCursorExtendKeepsAnchor(t *testing.T) {
	c := NewSelection(5, 8).WithVerticalX(3).Extend(2)

	if c.Anchor != 5 || c.Position != 2 {
		t.Errorf("expected Selection(5←2), got %v", c)
	}
	if c.VerticalX != NoVerticalX {
		t.Error("extend should forget the remembered column")
	}
}

func TestCursorCollapse(t *testing.T) {
	c := NewSelection(5, 8).Collapse()
	if c.HasSelection() || c.Position != 8 {
		t.Errorf("expected caret at 8, got %v", c)
	}
}

func TestCursorClamp(t *testing.T) {
	c := NewSelection(-3, 50).Clamp(30)
	if c.Anchor != 0 || c.Position != 30 {
		t.Errorf("expected Selection(0→30), got %v", c)
	}
}

func TestCursorString(t *testing.T) {
	tests := []struct {
		c    Cursor
		want string
	}{
		{NewCursor(4), "Cursor(4)"},
		{NewSelection(1, 4), "Selection(1→4)"},
		{NewSelection(4, 1), "Selection(4←1)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

// Transform Tests

func TestTransformOffset(t *testing.T) {
	tests := []struct {
		name   string
		offset Offset
		edit   Edit
		want   Offset
	}{
		{"before insert", 3, buffer.NewInsert(5, "ab"), 3},
		{"at insert moves", 5, buffer.NewInsert(5, "ab"), 7},
		{"after insert", 9, buffer.NewInsert(5, "ab"), 11},
		{"before delete", 2, buffer.NewDelete(3, 6), 2},
		{"at delete start", 3, buffer.NewDelete(3, 6), 3},
		{"inside delete", 4, buffer.NewDelete(3, 6), 3},
		{"at delete end", 6, buffer.NewDelete(3, 6), 3},
		{"after delete", 10, buffer.NewDelete(3, 6), 7},
		{"inside replace", 4, Edit{Range: buffer.Range{Start: 3, End: 6}, NewText: "xy"}, 5},
		{"multibyte insert", 5, buffer.NewInsert(0, "éé"), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TransformOffset(tt.offset, tt.edit); got != tt.want {
				t.Errorf("TransformOffset(%d) = %d, want %d", tt.offset, got, tt.want)
			}
		})
	}
}

func TestTransformCursorKeepsColumn(t *testing.T) {
	c := NewSelection(2, 8).WithVerticalX(4)
	got := TransformCursor(c, buffer.NewInsert(0, "x"))

	if got.Anchor != 3 || got.Position != 9 || got.VerticalX != 4 {
		t.Errorf("unexpected transform result %+v", got)
	}
}
