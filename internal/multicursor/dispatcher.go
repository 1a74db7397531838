package multicursor

import (
	"sort"
	"sync"

	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
)

// Dispatcher replays key events across every cursor of an editor.
type Dispatcher struct {
	ed *editor.Editor

	mu    sync.RWMutex
	hooks []KeyHook
}

// NewDispatcher creates a dispatcher for ed.
func NewDispatcher(ed *editor.Editor) *Dispatcher {
	return &Dispatcher{ed: ed}
}

// Editor returns the editor the dispatcher drives.
func (d *Dispatcher) Editor() *editor.Editor { return d.ed }

// AddHook registers h. A hook with the same name is replaced.
// Hooks are sorted by priority (higher runs first).
func (d *Dispatcher) AddHook(h KeyHook) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.hooks {
		if existing.Name() == h.Name() {
			d.hooks[i] = h
			d.sortHooks()
			return
		}
	}
	d.hooks = append(d.hooks, h)
	d.sortHooks()
}

// RemoveHook unregisters the hook called name.
func (d *Dispatcher) RemoveHook(name string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, h := range d.hooks {
		if h.Name() == name {
			d.hooks = append(d.hooks[:i], d.hooks[i+1:]...)
			return true
		}
	}
	return false
}

// HookCount returns the number of registered hooks.
func (d *Dispatcher) HookCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.hooks)
}

func (d *Dispatcher) sortHooks() {
	sort.SliceStable(d.hooks, func(i, j int) bool {
		return d.hooks[i].Priority() > d.hooks[j].Priority()
	})
}

// HandleKey applies ev at every cursor as a single undo step and reports
// whether the event was consumed. The Insert key without modifiers only
// toggles overwrite mode.
func (d *Dispatcher) HandleKey(ev key.Event) bool {
	ed := d.ed
	if ev.Key == key.KeyInsert && ev.Modifiers == key.ModNone {
		ed.ToggleOverwrite()
		return true
	}

	d.mu.RLock()
	hooks := make([]KeyHook, len(d.hooks))
	copy(hooks, d.hooks)
	d.mu.RUnlock()

	cs := ed.Cursors()
	txID := ed.BeginEditBlock("key " + ev.String())

	// Hooks see every cursor before any built-in edit runs. Results are
	// written back to their slots so later edits keep shifting them.
	accepted := make([]bool, cs.Len())
	for i := 0; i < len(accepted) && i < cs.Len(); i++ {
		res := d.signal(hooks, cs.At(i), ev)
		cs.SetAt(i, res.Cursor)
		accepted[i] = res.Accepted
	}

	dir := cursor.Increasing
	handled := 0
	for i := 0; i < len(accepted) && i < cs.Len(); i++ {
		if accepted[i] {
			continue
		}
		c, decreasing := d.apply(cs.At(i), ev)
		cs.SetAt(i, c)
		if decreasing {
			dir = cursor.Decreasing
		}
		handled++
	}

	cursors := cs.Len()
	cs.Merge(dir)
	ed.EmitCursorPositionChanged()
	ed.EndEditBlock()

	ed.Logger().Debug("key %s: cursors=%d accepted=%d merged=%d dir=%s tx=%s",
		ev, cursors, cursors-handled, cursors-cs.Len(), dir, txID)
	return true
}

// signal offers ev to the hooks in priority order until one accepts.
func (d *Dispatcher) signal(hooks []KeyHook, c cursor.Cursor, ev key.Event) HookResult {
	for _, h := range hooks {
		res := h.HandleKey(d.ed, c, ev)
		if res.Accepted {
			return res
		}
		c = res.Cursor
	}
	return Decline(c)
}
