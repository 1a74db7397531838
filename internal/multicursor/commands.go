package multicursor

import (
	"sort"
	"sync"

	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Command names registered by NewCommands.
const (
	CmdCopy              = "copy"
	CmdCut               = "cut"
	CmdPaste             = "paste"
	CmdUndo              = "undo"
	CmdRedo              = "redo"
	CmdSelectAll         = "select-all"
	CmdClearCursors      = "clear-extra-cursors"
	CmdNextCell          = "next-cell"
	CmdPreviousCell      = "previous-cell"
	CmdIndent            = "indent"
	CmdUnindent          = "unindent"
	CmdDeleteWord        = "delete-word-backward"
	CmdToggleOverwrite   = "toggle-overwrite"
	CmdToggleMultiCursor = "toggle-multicursor"
	CmdMoveLineUp        = "move-line-up"
	CmdMoveLineDown      = "move-line-down"
	CmdDuplicateLineUp   = "duplicate-line-up"
	CmdDuplicateLineDown = "duplicate-line-down"
	CmdDeleteLine        = "delete-line"
	CmdGoToNewLine       = "go-to-new-line"
	CmdToggleComment     = "toggle-comment"
	CmdUppercase         = "transform-to-uppercase"
	CmdLowercase         = "transform-to-lowercase"
	CmdStartOfDocument   = "start-of-document"
	CmdEndOfDocument     = "end-of-document"
)

// Commands is a registry of named editor commands.
type Commands struct {
	ed   *editor.Editor
	clip *Clipboard

	mu       sync.RWMutex
	commands map[string]func()
}

// NewCommands creates the standard command set for ed.
func NewCommands(ed *editor.Editor, clip *Clipboard) *Commands {
	c := &Commands{
		ed:       ed,
		clip:     clip,
		commands: make(map[string]func()),
	}
	c.registerDefaults()
	return c
}

func (c *Commands) registerDefaults() {
	ed := c.ed
	logErr := func(name string, fn func() error) func() {
		return func() {
			if err := fn(); err != nil {
				ed.Logger().Warn("%s: %v", name, err)
			}
		}
	}

	c.Register(CmdCopy, logErr(CmdCopy, c.clip.Copy))
	c.Register(CmdCut, logErr(CmdCut, c.clip.Cut))
	c.Register(CmdPaste, logErr(CmdPaste, c.clip.PasteFromClipboard))
	c.Register(CmdUndo, func() { ed.Undo() })
	c.Register(CmdRedo, func() { ed.Redo() })
	c.Register(CmdClearCursors, func() {
		ed.Cursors().ClearExtraCursors()
		ed.EmitCursorPositionChanged()
	})
	c.Register(CmdSelectAll, ClearsExtraCursors(ed, OnPrimary(ed,
		func(ed *editor.Editor, _ cursor.Cursor) cursor.Cursor {
			return cursor.NewSelection(0, ed.Buffer().Len())
		})))
	c.Register(CmdNextCell, ClearsExtraCursors(ed, OnPrimary(ed,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.NextCell(cur) })))
	c.Register(CmdPreviousCell, ClearsExtraCursors(ed, OnPrimary(ed,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.PreviousCell(cur) })))
	c.Register(CmdIndent, ForEachCursor(ed, CmdIndent,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.Indent(cur, true) },
		cursor.Increasing))
	c.Register(CmdUnindent, ForEachCursor(ed, CmdUnindent,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.Unindent(cur, true) },
		cursor.Decreasing))
	c.Register(CmdDeleteWord, ForEachCursor(ed, CmdDeleteWord,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.DeleteWordBackward(cur) },
		cursor.Decreasing))
	c.Register(CmdMoveLineUp, ForEachCursor(ed, CmdMoveLineUp,
		(*editor.Editor).MoveLinesUp, cursor.Decreasing))
	c.Register(CmdMoveLineDown, ForEachCursor(ed, CmdMoveLineDown,
		(*editor.Editor).MoveLinesDown, cursor.Increasing))
	c.Register(CmdDuplicateLineUp, ForEachCursor(ed, CmdDuplicateLineUp,
		(*editor.Editor).DuplicateLinesUp, cursor.Decreasing))
	c.Register(CmdDuplicateLineDown, ForEachCursor(ed, CmdDuplicateLineDown,
		(*editor.Editor).DuplicateLinesDown, cursor.Increasing))
	c.Register(CmdDeleteLine, ForEachCursor(ed, CmdDeleteLine,
		(*editor.Editor).DeleteLines, cursor.Increasing))
	c.Register(CmdGoToNewLine, ForEachCursor(ed, CmdGoToNewLine,
		(*editor.Editor).GoToNewLine, cursor.Increasing))
	c.Register(CmdToggleComment, ForEachCursor(ed, CmdToggleComment,
		(*editor.Editor).ToggleComment, cursor.Increasing))
	c.Register(CmdUppercase, ForEachCursor(ed, CmdUppercase,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.TransformCase(cur, true) },
		cursor.Increasing))
	c.Register(CmdLowercase, ForEachCursor(ed, CmdLowercase,
		func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor { return ed.TransformCase(cur, false) },
		cursor.Increasing))
	c.Register(CmdStartOfDocument, ClearsExtraCursors(ed, OnPrimary(ed, (*editor.Editor).DocumentStart)))
	c.Register(CmdEndOfDocument, ClearsExtraCursors(ed, OnPrimary(ed, (*editor.Editor).DocumentEnd)))
	c.Register(CmdToggleOverwrite, RestrictSingleCursor(ed, ed.ToggleOverwrite))
	c.Register(CmdToggleMultiCursor, func() {
		cs := ed.Cursors()
		cs.Enable(!cs.Enabled())
		ed.Logger().Debug("multi-cursor editing enabled: %v", cs.Enabled())
	})
}

// Register adds or replaces the command called name.
func (c *Commands) Register(name string, fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands[name] = fn
}

// Lookup returns the command called name.
func (c *Commands) Lookup(name string) (func(), bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	fn, ok := c.commands[name]
	return fn, ok
}

// Run executes the command called name. It reports whether one exists.
func (c *Commands) Run(name string) bool {
	fn, ok := c.Lookup(name)
	if !ok {
		return false
	}
	fn()
	return true
}

// Names returns the registered command names in sorted order.
func (c *Commands) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GoToLine drops the extra cursors and moves the primary caret to the
// start of line, counted from 1.
func (c *Commands) GoToLine(line int) {
	ClearsExtraCursors(c.ed, OnPrimary(c.ed, func(ed *editor.Editor, cur cursor.Cursor) cursor.Cursor {
		return ed.GoToLine(cur, line)
	}))()
}

// AddCursorAt adds a caret at offset.
func (c *Commands) AddCursorAt(offset buffer.Offset) bool {
	if !c.ed.Cursors().AddCursor(cursor.NewCursor(offset)) {
		return false
	}
	c.ed.EmitCursorPositionChanged()
	return true
}

// ToggleCursorAt removes the cursor at offset, or moves the primary caret
// there and keeps the previous primary as an extra cursor.
// Reports whether the cursor set changed.
func (c *Commands) ToggleCursorAt(offset buffer.Offset) bool {
	cs := c.ed.Cursors()
	before := cs.Len()
	if !cs.ToggleAt(offset) && cs.Len() == before {
		return false
	}
	c.ed.EmitCursorPositionChanged()
	return true
}

// AddColumnCursors replaces the cursors with a column selection from the
// primary anchor to offset.
func (c *Commands) AddColumnCursors(offset buffer.Offset) bool {
	return c.ed.AddColumnCursors(offset)
}
