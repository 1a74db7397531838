// Package history provides undo/redo functionality for the editing engine.
//
// The history system uses the Command pattern to encapsulate edits,
// enabling them to be executed, undone, and redone.
//
// # Operations
//
// An Operation records a single replacement: the range that was modified
// and the old and new text. Offsets count runes.
//
// # Commands
//
// Commands implement the Command interface with Execute and Undo methods:
//   - ReplaceCommand: replace one range and shift every cursor
//   - CompoundCommand: group commands as one undo unit, restoring the
//     cursor set captured when the group opened and closed
//
// # Groups
//
// Edits made between BeginGroup and EndGroup undo together. Groups nest:
// only the outermost EndGroup closes the unit, so an edit block opened by a
// primitive inside a larger transaction joins that transaction.
//
//	h.BeginGroup("Paste", cursors.Snapshot())
//	// ... edits ...
//	h.EndGroup(cursors.Snapshot())
//
// Each group receives a transaction ID for log correlation.
package history
