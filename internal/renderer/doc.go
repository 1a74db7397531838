// Package renderer paints an editor onto a terminal backend.
//
// The renderer draws the visible lines with tabs expanded, the primary
// selection, the extra cursor selection decorations and the carets:
//
//	┌─────────────────────────────────────────┐
//	│           Renderer (Facade)             │
//	├─────────────────────────────────────────┤
//	│  selection.Decorations │ cursor.Blinker │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│  Terminal (tcell) │ NullBackend (tests) │
//	└─────────────────────────────────────────┘
//
// The primary caret is the hardware cursor. Extra carets are painted as
// reversed cells and follow the primary's blink phase.
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term, ed, decorations, blinker, renderer.DefaultOptions())
//	r.Render()
package renderer
