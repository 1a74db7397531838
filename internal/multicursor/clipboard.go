package multicursor

import (
	"fmt"
	"strings"

	"github.com/dshills/multicursor/internal/clipboard"
	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Clipboard implements copy, cut and paste across every cursor.
type Clipboard struct {
	ed    *editor.Editor
	board clipboard.Clipboard
}

// NewClipboard creates a clipboard adapter over board.
func NewClipboard(ed *editor.Editor, board clipboard.Clipboard) *Clipboard {
	return &Clipboard{ed: ed, board: board}
}

// CopyText returns the selections of all cursors in document order, one
// per line, using the document's line ending. Carets contribute an empty
// line.
func (cb *Clipboard) CopyText() string {
	buf := cb.ed.Buffer()
	cs := cb.ed.Cursors()

	parts := make([]string, 0, cs.Len())
	for _, i := range cs.SortedIndices() {
		c := cs.At(i)
		parts = append(parts, buf.ExternalText(c.Start(), c.End()))
	}
	return strings.Join(parts, buf.LineEnding().Sequence())
}

// Copy publishes CopyText to the clipboard.
func (cb *Clipboard) Copy() error {
	if err := cb.board.WriteText(cb.CopyText()); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	return nil
}

// Cut copies, then removes every selection as one undo step. Nothing is
// removed when the clipboard cannot be written.
func (cb *Clipboard) Cut() error {
	if err := cb.Copy(); err != nil {
		return err
	}

	ed := cb.ed
	cs := ed.Cursors()
	ed.BeginEditBlock("cut")
	for i := 0; i < cs.Len(); i++ {
		cs.SetAt(i, ed.RemoveSelectedText(cs.At(i)))
	}
	cs.Merge(cursor.Increasing)
	ed.EndEditBlock()
	ed.EmitCursorPositionChanged()
	return nil
}

// Paste inserts text as one undo step. Single-line text goes to every
// cursor. Otherwise the cursors, in document order, take one line each;
// cursors beyond the last line are left untouched.
func (cb *Clipboard) Paste(text string) {
	ed := cb.ed
	cs := ed.Cursors()

	ed.BeginEditBlock("paste")
	ed.EmitWillPaste(text)

	lines := splitLines(text)
	for k, i := range cs.SortedIndices() {
		var line string
		switch {
		case len(lines) == 1:
			line = lines[0]
		case k < len(lines):
			line = lines[k]
		default:
			continue
		}
		c := cs.At(i)
		cs.SetAt(i, ed.Replace(c, c.Range(), line))
	}

	ed.EmitCursorPositionChanged()
	cs.Merge(cursor.Increasing)
	ed.EndEditBlock()
	ed.EmitTextInserted()
}

// PasteFromClipboard reads the clipboard and pastes it.
func (cb *Clipboard) PasteFromClipboard() error {
	text, err := cb.board.ReadText()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	cb.Paste(text)
	return nil
}

// splitLines splits text at any line ending. A trailing line ending does
// not start another line.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
