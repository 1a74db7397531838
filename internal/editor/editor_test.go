package editor

import (
	"testing"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/engine/syntax"
	"github.com/dshills/multicursor/internal/input/key"
)

func newTestEditor(text, lang string) *Editor {
	opts := DefaultOptions()
	opts.HomeEndDocument = false
	return New(buffer.NewBufferFromString(text),
		WithOptions(opts),
		WithSyntax(syntax.NewAnalyzer(lang)))
}

func assertText(t *testing.T, ed *Editor, want string) {
	t.Helper()
	if got := ed.Buffer().Text(); got != want {
		t.Errorf("text = %q, want %q", got, want)
	}
}

func assertCursor(t *testing.T, got cursor.Cursor, anchor, pos buffer.Offset) {
	t.Helper()
	if got.Anchor != anchor || got.Position != pos {
		t.Errorf("cursor = %v, want anchor %d position %d", got, anchor, pos)
	}
}

// Editing Tests

func TestInsertText(t *testing.T) {
	ed := newTestEditor("hello", "text")

	c := ed.InsertText(cursor.NewCursor(5), " world")
	assertText(t, ed, "hello world")
	assertCursor(t, c, 11, 11)

	c = ed.InsertText(cursor.NewSelection(0, 5), "bye")
	assertText(t, ed, "bye world")
	assertCursor(t, c, 3, 3)
}

func TestInsertTextOverwrite(t *testing.T) {
	ed := newTestEditor("abcd\nxy", "text")
	ed.ToggleOverwrite()

	c := ed.InsertText(cursor.NewCursor(2), "ZZZ")

	assertText(t, ed, "abZZZ\nxy")
	assertCursor(t, c, 5, 5)
	if !ed.Overwrite() {
		t.Error("overwrite mode should be on")
	}
}

func TestDeleteBackwardForward(t *testing.T) {
	ed := newTestEditor("abc", "text")

	c := ed.DeleteBackward(cursor.NewCursor(0))
	assertCursor(t, c, 0, 0)

	c = ed.DeleteBackward(cursor.NewCursor(2))
	assertText(t, ed, "ac")
	assertCursor(t, c, 1, 1)

	c = ed.DeleteForward(cursor.NewCursor(2))
	assertText(t, ed, "ac")
	assertCursor(t, c, 2, 2)

	c = ed.DeleteForward(cursor.NewSelection(0, 2))
	assertText(t, ed, "")
	assertCursor(t, c, 0, 0)
}

func TestDeleteWord(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		offset   buffer.Offset
		backward bool
		want     string
		caret    buffer.Offset
	}{
		{"back over blanks", "foo bar  ", 9, true, "foo ", 4},
		{"back over newline", "a\nb", 2, true, "ab", 1},
		{"back punctuation", "x.,", 3, true, "x", 1},
		{"forward word and blanks", "foo bar", 0, false, "bar", 0},
		{"forward newline", "a\nb", 1, false, "ab", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(tt.text, "text")
			var c cursor.Cursor
			if tt.backward {
				c = ed.DeleteWordBackward(cursor.NewCursor(tt.offset))
			} else {
				c = ed.DeleteWordForward(cursor.NewCursor(tt.offset))
			}
			assertText(t, ed, tt.want)
			assertCursor(t, c, tt.caret, tt.caret)
		})
	}
}

func TestReplaceShiftsCursorSet(t *testing.T) {
	ed := newTestEditor("ab", "text")
	cs := ed.Cursors()
	cs.Enable(true)
	cs.Reinstall([]cursor.Cursor{cursor.NewCursor(0), cursor.NewCursor(2)})

	ed.InsertText(cursor.NewCursor(0), "xx")

	if cs.At(0).Position != 2 || cs.Primary().Position != 4 {
		t.Errorf("cursors = %v", cs.AllCursors())
	}
}

func TestReplaceClearsTargetColumn(t *testing.T) {
	ed := newTestEditor("ab\ncd", "text")
	cs := ed.Cursors()
	cs.Enable(true)
	cs.Reinstall([]cursor.Cursor{
		cursor.NewCursor(4).WithVerticalX(5),
		cursor.NewCursor(1).WithVerticalX(7),
	})

	got := ed.InsertText(cs.Primary(), "x")

	if got.VerticalX != cursor.NoVerticalX {
		t.Errorf("edited cursor VerticalX = %d, want none", got.VerticalX)
	}
	if extra := cs.At(0); extra.Position != 5 || extra.VerticalX != 5 {
		t.Errorf("shifted cursor = %+v, want position 5 column 5", extra)
	}
}

// Indentation Tests

func TestIndent(t *testing.T) {
	t.Run("blank leading", func(t *testing.T) {
		ed := newTestEditor("x", "text")
		c := ed.Indent(cursor.NewCursor(0), false)
		assertText(t, ed, "    x")
		assertCursor(t, c, 4, 4)
	})

	t.Run("after text pads to stop", func(t *testing.T) {
		ed := newTestEditor("ab", "text")
		c := ed.Indent(cursor.NewCursor(2), false)
		assertText(t, ed, "ab  ")
		assertCursor(t, c, 4, 4)
	})

	t.Run("selection", func(t *testing.T) {
		ed := newTestEditor("a\nb\nc", "text")
		c := ed.Indent(cursor.NewSelection(0, 3), false)
		assertText(t, ed, "    a\n    b\nc")
		assertCursor(t, c, 4, 11)
	})
}

func TestUnindent(t *testing.T) {
	t.Run("force", func(t *testing.T) {
		ed := newTestEditor("        x", "python")
		c := ed.Unindent(cursor.NewCursor(8), true)
		assertText(t, ed, "    x")
		assertCursor(t, c, 4, 4)
	})

	t.Run("python snaps to block indent", func(t *testing.T) {
		ed := newTestEditor("def x():\n            ", "python")
		c := ed.Unindent(cursor.NewCursor(21), false)
		assertText(t, ed, "def x():\n    ")
		assertCursor(t, c, 13, 13)
	})

	t.Run("selection", func(t *testing.T) {
		ed := newTestEditor("    a\n    b", "text")
		ed.Unindent(cursor.NewSelection(0, 11), false)
		assertText(t, ed, "a\nb")
	})

	t.Run("nothing to remove", func(t *testing.T) {
		ed := newTestEditor("a", "text")
		c := ed.Unindent(cursor.NewCursor(1), false)
		assertText(t, ed, "a")
		assertCursor(t, c, 1, 1)
	})
}

func TestFixIndent(t *testing.T) {
	tests := []struct {
		name      string
		lang      string
		text      string
		offset    buffer.Offset
		cmtOrStr  bool
		curIndent string
		want      string
		caret     buffer.Offset
	}{
		{"python block", "python", "def x():\n", 9, false, "", "def x():\n    ", 13},
		{"python dedent", "python", "    return\n", 11, false, "", "    return\n", 11},
		{"comment keeps indent", "python", "    # a\n", 8, true, "    ", "    # a\n    ", 12},
		{"plain copies indent", "text", "  foo\n", 6, false, "", "  foo\n  ", 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(tt.text, tt.lang)
			c, _ := ed.FixIndent(cursor.NewCursor(tt.offset), tt.cmtOrStr, tt.curIndent)
			assertText(t, ed, tt.want)
			assertCursor(t, c, tt.caret, tt.caret)
		})
	}
}

func TestFixAndStripIndent(t *testing.T) {
	ed := newTestEditor("if x:    \n", "python")

	c := ed.FixAndStripIndent(cursor.NewCursor(10), false, "")

	assertText(t, ed, "if x:\n    ")
	assertCursor(t, c, 10, 10)
}

func TestAutoInsertColons(t *testing.T) {
	tests := []struct {
		name   string
		lang   string
		text   string
		offset buffer.Offset
		want   bool
	}{
		{"block at eol", "python", "if x", 4, true},
		{"not at eol", "python", "if x", 2, false},
		{"has colon", "python", "if x:", 5, false},
		{"comment", "python", "# if x", 6, false},
		{"plain text", "text", "if x", 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ed := newTestEditor(tt.text, tt.lang)
			if got := ed.AutoInsertColons(cursor.NewCursor(tt.offset)); got != tt.want {
				t.Errorf("AutoInsertColons() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Motion Tests

func TestVerticalMovementKeepsColumn(t *testing.T) {
	ed := newTestEditor("012345678\n012345678\n\n012345678\n012345678\n", "text")
	c := cursor.NewCursor(4)

	var downs []buffer.Offset
	for i := 0; i < 3; i++ {
		c = ed.Move(c, key.KeyDown, false, false)
		downs = append(downs, c.Position)
	}
	if downs[0] != 14 || downs[1] != 20 || downs[2] != 25 {
		t.Errorf("down positions = %v, want [14 20 25]", downs)
	}

	for i := 0; i < 3; i++ {
		c = ed.Move(c, key.KeyUp, false, false)
	}
	assertCursor(t, c, 4, 4)
	if c.VerticalX != 4 {
		t.Errorf("VerticalX = %d, want 4", c.VerticalX)
	}
}

func TestMoveBounds(t *testing.T) {
	ed := newTestEditor("ab\ncd", "text")

	assertCursor(t, ed.Move(cursor.NewCursor(1), key.KeyUp, false, false), 0, 0)
	assertCursor(t, ed.Move(cursor.NewCursor(4), key.KeyDown, false, false), 5, 5)
	assertCursor(t, ed.Move(cursor.NewCursor(0), key.KeyLeft, false, false), 0, 0)
	assertCursor(t, ed.Move(cursor.NewCursor(5), key.KeyRight, false, false), 5, 5)
}

func TestMoveHorizontal(t *testing.T) {
	ed := newTestEditor("foo bar", "text")

	assertCursor(t, ed.Move(cursor.NewSelection(2, 5), key.KeyLeft, false, false), 2, 2)
	assertCursor(t, ed.Move(cursor.NewSelection(5, 2), key.KeyRight, false, false), 5, 5)
	assertCursor(t, ed.Move(cursor.NewCursor(0), key.KeyRight, false, true), 4, 4)
	assertCursor(t, ed.Move(cursor.NewCursor(7), key.KeyLeft, false, true), 4, 4)
	assertCursor(t, ed.Move(cursor.NewCursor(3), key.KeyRight, true, false), 3, 4)
}

func TestScreenColumn(t *testing.T) {
	ed := newTestEditor("\tab\n日本x", "text")

	tests := []struct {
		offset buffer.Offset
		want   int
	}{
		{1, 4},
		{2, 5},
		{5, 2},
		{6, 4},
	}
	for _, tt := range tests {
		if got := ed.ScreenColumn(tt.offset); got != tt.want {
			t.Errorf("ScreenColumn(%d) = %d, want %d", tt.offset, got, tt.want)
		}
	}

	if got := ed.OffsetForColumn(1, 3); got != 5 {
		t.Errorf("OffsetForColumn(1, 3) = %d, want 5", got)
	}
	if got := ed.OffsetForColumn(0, 99); got != 3 {
		t.Errorf("OffsetForColumn(0, 99) = %d, want 3", got)
	}
}

func TestHomeEnd(t *testing.T) {
	ed := newTestEditor("    abc\nxy", "text")

	c := ed.Home(cursor.NewCursor(7), false, false)
	assertCursor(t, c, 4, 4)
	c = ed.Home(c, false, false)
	assertCursor(t, c, 0, 0)
	c = ed.Home(c, false, false)
	assertCursor(t, c, 4, 4)

	assertCursor(t, ed.Home(cursor.NewCursor(7), true, false), 7, 4)
	assertCursor(t, ed.Home(cursor.NewCursor(9), false, true), 0, 0)
	assertCursor(t, ed.End(cursor.NewCursor(0), false, false), 7, 7)
	assertCursor(t, ed.End(cursor.NewCursor(0), true, true), 0, 10)
}

func TestHomeEndDocument(t *testing.T) {
	ed := newTestEditor("ab\ncd", "text")
	opts := ed.Options()
	opts.HomeEndDocument = true
	ed.SetOptions(opts)

	assertCursor(t, ed.Home(cursor.NewCursor(4), false, false), 0, 0)
	assertCursor(t, ed.End(cursor.NewCursor(1), false, false), 5, 5)
}

func TestDocumentBoundsAndGoToLine(t *testing.T) {
	ed := newTestEditor("a\nb\nc", "text")
	c := cursor.NewCursor(2)

	assertCursor(t, ed.DocumentStart(c), 0, 0)
	assertCursor(t, ed.DocumentEnd(c), 5, 5)
	assertCursor(t, ed.GoToLine(c, 2), 2, 2)
	assertCursor(t, ed.GoToLine(c, 99), 4, 4)
	assertCursor(t, ed.GoToLine(c, 0), 0, 0)
}

// Line Tests

func TestMoveLinesBounds(t *testing.T) {
	ed := newTestEditor("a\nb", "text")

	assertCursor(t, ed.MoveLinesUp(cursor.NewCursor(0)), 0, 0)
	assertCursor(t, ed.MoveLinesDown(cursor.NewCursor(2)), 2, 2)
	assertText(t, ed, "a\nb")
}

func TestMoveLinesSelection(t *testing.T) {
	ed := newTestEditor("a\nb\nc", "text")

	c := ed.MoveLinesDown(cursor.NewSelection(0, 3))
	assertText(t, ed, "c\na\nb")
	assertCursor(t, c, 2, 5)

	c = ed.MoveLinesUp(c)
	assertText(t, ed, "a\nb\nc")
	assertCursor(t, c, 0, 3)
}

func TestDeleteLines(t *testing.T) {
	ed := newTestEditor("a\nb\nc", "text")

	c := ed.DeleteLines(cursor.NewCursor(4))
	assertText(t, ed, "a\nb")
	assertCursor(t, c, 2, 2)

	c = ed.DeleteLines(cursor.NewSelection(0, 3))
	assertText(t, ed, "")
	assertCursor(t, c, 0, 0)
}

func TestGoToNewLineKeepsIndent(t *testing.T) {
	ed := newTestEditor("    x = 1", "python")

	c := ed.GoToNewLine(cursor.NewCursor(2))

	assertText(t, ed, "    x = 1\n    ")
	assertCursor(t, c, 14, 14)
}

func TestToggleComment(t *testing.T) {
	ed := newTestEditor("\tfoo()\n\t\tbar()\n", "go")
	sel := cursor.NewSelection(0, 15)

	c := ed.ToggleComment(sel)
	assertText(t, ed, "\t// foo()\n\t// \tbar()\n")

	ed.ToggleComment(c)
	assertText(t, ed, "\tfoo()\n\t\tbar()\n")
}

func TestToggleCommentSkipsBlankLines(t *testing.T) {
	ed := newTestEditor("a\n\nb", "python")

	ed.ToggleComment(cursor.NewSelection(0, 4))

	assertText(t, ed, "# a\n\n# b")
}

func TestTransformCase(t *testing.T) {
	ed := newTestEditor("abc def", "text")

	c := ed.TransformCase(cursor.NewSelection(5, 0), true)
	assertText(t, ed, "ABC Def")
	assertCursor(t, c, 5, 0)

	ed = newTestEditor("a  b", "text")
	assertCursor(t, ed.TransformCase(cursor.NewCursor(2), true), 2, 2)
	assertText(t, ed, "a  b")
}

// Multi-cursor support Tests

func TestAddColumnCursors(t *testing.T) {
	ed := newTestEditor("abcdef\nabcdef\nabcdef", "text")
	cs := ed.Cursors()
	cs.SetPrimary(cursor.NewCursor(1))

	if ed.AddColumnCursors(17) {
		t.Fatal("column cursors added while disabled")
	}

	cs.Enable(true)
	if !ed.AddColumnCursors(17) {
		t.Fatal("AddColumnCursors returned false")
	}

	all := cs.AllCursors()
	if len(all) != 3 {
		t.Fatalf("expected 3 cursors, got %v", all)
	}
	assertCursor(t, all[0], 1, 3)
	assertCursor(t, all[1], 8, 10)
	assertCursor(t, all[2], 15, 17)
}

func TestCells(t *testing.T) {
	ed := newTestEditor("a\n# %%\nb\n# %%\nc", "python")

	tests := []struct {
		from       buffer.Offset
		next, prev buffer.Offset
	}{
		{0, 7, 0},
		{3, 7, 0},
		{7, 14, 0},
		{14, 15, 7},
		{15, 15, 14},
	}
	for _, tt := range tests {
		if got := ed.NextCell(cursor.NewCursor(tt.from)).Position; got != tt.next {
			t.Errorf("NextCell(%d) = %d, want %d", tt.from, got, tt.next)
		}
		if got := ed.PreviousCell(cursor.NewCursor(tt.from)).Position; got != tt.prev {
			t.Errorf("PreviousCell(%d) = %d, want %d", tt.from, got, tt.prev)
		}
	}
}

// History Tests

func TestEditBlockUndoRedo(t *testing.T) {
	ed := newTestEditor("a\nb", "text")
	cs := ed.Cursors()
	cs.Enable(true)
	cs.Reinstall([]cursor.Cursor{cursor.NewCursor(1), cursor.NewCursor(3)})

	moved := 0
	ed.OnCursorPositionChanged(func() { moved++ })

	ed.BeginEditBlock("type")
	for i := 0; i < cs.Len(); i++ {
		cs.SetAt(i, ed.InsertText(cs.At(i), "!"))
	}
	ed.EndEditBlock()

	assertText(t, ed, "a!\nb!")
	if ed.History().UndoCount() != 1 {
		t.Fatalf("expected one undo step, got %d", ed.History().UndoCount())
	}

	if !ed.Undo() {
		t.Fatal("Undo failed")
	}
	assertText(t, ed, "a\nb")
	if cs.At(0).Position != 1 || cs.Primary().Position != 3 {
		t.Errorf("cursors after undo = %v", cs.AllCursors())
	}

	if !ed.Redo() {
		t.Fatal("Redo failed")
	}
	assertText(t, ed, "a!\nb!")
	if moved != 2 {
		t.Errorf("position listeners fired %d times, want 2", moved)
	}
	if ed.Redo() {
		t.Error("nothing left to redo")
	}
}

func TestPasteSignals(t *testing.T) {
	ed := newTestEditor("", "text")
	var got string
	inserted := false
	ed.OnWillPaste(func(text string) { got = text })
	ed.OnTextInserted(func() { inserted = true })

	ed.EmitWillPaste("clip")
	ed.EmitTextInserted()

	if got != "clip" || !inserted {
		t.Errorf("signals not delivered: %q %v", got, inserted)
	}
}
