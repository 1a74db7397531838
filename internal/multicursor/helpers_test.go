package multicursor

import (
	"testing"

	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/engine/syntax"
)

// newEditor returns an editor on text with multi-cursor editing enabled
// and the given cursors installed, the last one primary.
func newEditor(text, lang string, cursors ...cursor.Cursor) *editor.Editor {
	opts := editor.DefaultOptions()
	opts.HomeEndDocument = false
	ed := editor.New(buffer.NewBufferFromString(text),
		editor.WithOptions(opts),
		editor.WithSyntax(syntax.NewAnalyzer(lang)))
	ed.Cursors().Enable(true)
	if len(cursors) > 0 {
		ed.Cursors().Reinstall(cursors)
	}
	return ed
}

func carets(offsets ...buffer.Offset) []cursor.Cursor {
	cs := make([]cursor.Cursor, len(offsets))
	for i, o := range offsets {
		cs[i] = cursor.NewCursor(o)
	}
	return cs
}

func positions(ed *editor.Editor) []buffer.Offset {
	all := ed.Cursors().AllCursors()
	out := make([]buffer.Offset, len(all))
	for i, c := range all {
		out[i] = c.Position
	}
	return out
}

func assertText(t *testing.T, ed *editor.Editor, want string) {
	t.Helper()
	if got := ed.Buffer().Text(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func assertPositions(t *testing.T, ed *editor.Editor, want ...buffer.Offset) {
	t.Helper()
	got := positions(ed)
	if len(got) != len(want) {
		t.Fatalf("positions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("positions = %v, want %v", got, want)
			return
		}
	}
}
