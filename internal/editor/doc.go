// Package editor provides the single-cursor editing surface the
// multi-cursor layer replays for every cursor.
//
// An Editor owns a buffer, its cursor set and its undo history. Every
// primitive takes the cursor to act on explicitly and returns the cursor
// after the action:
//
//	c = ed.InsertText(c, "x")
//	c = ed.Home(c, false, false)
//
// There is no ambient current caret. Buffer edits made through Replace
// shift every cursor in the cursor set, so a cursor held in a slot of the
// set stays valid while other cursors edit the document.
//
// Edit blocks group edits into one undo step. Blocks nest: an edit block
// opened inside another joins it.
package editor
