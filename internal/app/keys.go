package app

import (
	"github.com/dshills/multicursor/internal/input/keymap"
	"github.com/dshills/multicursor/internal/multicursor"
)

// CmdQuit ends the event loop.
const CmdQuit = "quit"

// defaultBindings are the built-in shortcuts. Config [keys] entries are
// applied on top.
var defaultBindings = []keymap.Binding{
	{Keys: "Ctrl+A", Command: multicursor.CmdSelectAll},
	{Keys: "Ctrl+C", Command: multicursor.CmdCopy},
	{Keys: "Ctrl+X", Command: multicursor.CmdCut},
	{Keys: "Ctrl+V", Command: multicursor.CmdPaste},
	{Keys: "Ctrl+Z", Command: multicursor.CmdUndo},
	{Keys: "Ctrl+Y", Command: multicursor.CmdRedo},
	{Keys: "Ctrl+S", Command: CmdSave},
	{Keys: "Ctrl+Q", Command: CmdQuit},
	{Keys: "<Esc>", Command: multicursor.CmdClearCursors},
	{Keys: "Ctrl+PageDown", Command: multicursor.CmdNextCell},
	{Keys: "Ctrl+PageUp", Command: multicursor.CmdPreviousCell},
	{Keys: "F2", Command: multicursor.CmdToggleMultiCursor},
	{Keys: "Alt+Up", Command: multicursor.CmdMoveLineUp},
	{Keys: "Alt+Down", Command: multicursor.CmdMoveLineDown},
	{Keys: "Ctrl+Alt+Up", Command: multicursor.CmdDuplicateLineUp},
	{Keys: "Ctrl+Alt+Down", Command: multicursor.CmdDuplicateLineDown},
	{Keys: "Ctrl+D", Command: multicursor.CmdDeleteLine},
	{Keys: "Alt+Enter", Command: multicursor.CmdGoToNewLine},
	{Keys: "Alt+/", Command: multicursor.CmdToggleComment},
	{Keys: "Alt+U", Command: multicursor.CmdUppercase},
	{Keys: "Alt+L", Command: multicursor.CmdLowercase},
	{Keys: "Ctrl+Home", Command: multicursor.CmdStartOfDocument},
	{Keys: "Ctrl+End", Command: multicursor.CmdEndOfDocument},
}

// buildKeymap returns the default keymap with overrides applied. Invalid
// override specs are reported and skipped.
func buildKeymap(overrides map[string]string) (*keymap.Keymap, error) {
	km := keymap.New("default")
	for _, b := range defaultBindings {
		if err := km.Bind(b.Keys, b.Command); err != nil {
			return nil, err
		}
	}
	return km, km.Apply(overrides)
}
