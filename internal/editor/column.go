package editor

import (
	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// AddColumnCursors replaces the cursors with one cursor per line from the
// primary cursor's anchor line to target's line. Each selects from the
// anchor's screen column to target's screen column; the cursor on target's
// line becomes primary. Returns false while multi-cursor editing is
// disabled.
func (ed *Editor) AddColumnCursors(target buffer.Offset) bool {
	cs := ed.cursors
	if !cs.Enabled() {
		return false
	}

	p := cs.Primary()
	anchorX := ed.ScreenColumn(p.Anchor)
	targetX := ed.ScreenColumn(target)
	first := int(ed.buf.LineOf(p.Anchor))
	last := int(ed.buf.LineOf(target))
	step := 1
	if last < first {
		step = -1
	}

	var all []cursor.Cursor
	for line := first; ; line += step {
		anchor := ed.OffsetForColumn(uint32(line), anchorX)
		pos := ed.OffsetForColumn(uint32(line), targetX)
		all = append(all, cursor.NewSelection(anchor, pos).WithVerticalX(targetX))
		if line == last {
			break
		}
	}

	cs.Reinstall(all)
	cs.Merge(cursor.Increasing)
	ed.logger.Debug("column cursors: %d lines", len(all))
	ed.EmitCursorPositionChanged()
	return true
}
