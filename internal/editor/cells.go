package editor

import (
	"strings"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// cellMarkers start a code cell when they begin a line.
var cellMarkers = []string{"# %%", "#%%", "# <codecell>", "# In["}

// IsCellMarker reports whether line separates code cells.
func IsCellMarker(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, m := range cellMarkers {
		if strings.HasPrefix(trimmed, m) {
			return true
		}
	}
	return false
}

// cellStarts returns the offset of every cell body: the document start and
// the start of each line following a cell marker.
func (ed *Editor) cellStarts() []buffer.Offset {
	starts := []buffer.Offset{0}
	n := ed.buf.LineCount()
	for line := uint32(0); line < n; line++ {
		if IsCellMarker(ed.buf.LineText(line)) {
			starts = append(starts, ed.buf.LineStartOffset(line+1))
		}
	}
	return starts
}

// NextCell moves the caret to the start of the next cell, or to the end of
// the document after the last one.
func (ed *Editor) NextCell(c cursor.Cursor) cursor.Cursor {
	for _, s := range ed.cellStarts() {
		if s > c.Position {
			return c.MoveTo(s)
		}
	}
	return c.MoveTo(ed.buf.Len())
}

// PreviousCell moves the caret to the nearest cell start before it.
func (ed *Editor) PreviousCell(c cursor.Cursor) cursor.Cursor {
	target := 0
	for _, s := range ed.cellStarts() {
		if s >= c.Position {
			break
		}
		target = s
	}
	return c.MoveTo(target)
}
