package multicursor

import (
	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
)

// Standard hook priorities. Higher values run first.
const (
	PrioritySystem = 1000
	PriorityPlugin = 100
	PriorityUser   = 0
)

// HookResult is the outcome of offering a key event to a hook for one
// cursor.
type HookResult struct {
	// Cursor is the cursor after the hook ran.
	Cursor cursor.Cursor

	// Accepted means the hook handled the key for this cursor and the
	// built-in behaviour must be skipped.
	Accepted bool
}

// Decline returns a result leaving c to the next hook.
func Decline(c cursor.Cursor) HookResult {
	return HookResult{Cursor: c}
}

// Accept returns a result consuming the key for c.
func Accept(c cursor.Cursor) HookResult {
	return HookResult{Cursor: c, Accepted: true}
}

// KeyHook sees every key event once per cursor before built-in handling.
// A hook may edit the document through ed; such edits join the event's
// undo step.
type KeyHook interface {
	// Name returns a unique identifier for this hook.
	Name() string

	// Priority orders hooks, higher first.
	Priority() int

	// HandleKey handles ev for cursor c.
	HandleKey(ed *editor.Editor, c cursor.Cursor, ev key.Event) HookResult
}

// HookFunc wraps a function as a KeyHook.
type HookFunc struct {
	name     string
	priority int
	fn       func(ed *editor.Editor, c cursor.Cursor, ev key.Event) HookResult
}

// NewHookFunc creates a hook from fn.
func NewHookFunc(name string, priority int, fn func(ed *editor.Editor, c cursor.Cursor, ev key.Event) HookResult) *HookFunc {
	return &HookFunc{name: name, priority: priority, fn: fn}
}

// Name implements KeyHook.
func (h *HookFunc) Name() string { return h.name }

// Priority implements KeyHook.
func (h *HookFunc) Priority() int { return h.priority }

// HandleKey implements KeyHook.
func (h *HookFunc) HandleKey(ed *editor.Editor, c cursor.Cursor, ev key.Event) HookResult {
	if h.fn == nil {
		return Decline(c)
	}
	return h.fn(ed, c, ev)
}
