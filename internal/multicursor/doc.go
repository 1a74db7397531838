// Package multicursor replays input across every cursor of an editor.
//
// The Dispatcher turns one key event into one undo step: each cursor is
// first offered to the registered KeyHooks, then the cursors no hook
// accepted get the built-in behaviour for the key. Afterwards the cursor
// set is merged in the direction the key implies.
//
// Clipboard implements multi-cursor copy, cut and paste, and the
// ForEachCursor, ClearsExtraCursors and RestrictSingleCursor combinators
// lift single-cursor operations into multi-cursor commands.
package multicursor
