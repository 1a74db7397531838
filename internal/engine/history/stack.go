package history

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrGroupOpen     = errors.New("undo group still open")
)

// undoEntry wraps a command with metadata.
type undoEntry struct {
	command   Command
	txID      uuid.UUID
	timestamp time.Time
}

// History manages undo/redo state for a buffer.
type History struct {
	mu sync.Mutex

	undoStack []*undoEntry
	redoStack []*undoEntry

	// Grouping state. depth counts open BeginGroup calls; the group is
	// closed by the EndGroup that brings it back to zero.
	depth int
	group *CompoundCommand

	maxEntries int
}

// NewHistory creates a new history manager.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// Execute runs a command and records it.
func (h *History) Execute(cmd Command, buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	if err := cmd.Execute(buf, cursors); err != nil {
		return err
	}
	h.Push(cmd)
	return nil
}

// Push records an already executed command.
// Outside a group it becomes its own undo unit and clears the redo stack.
func (h *History) Push(cmd Command) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth > 0 {
		h.group.Add(cmd)
		return
	}
	h.pushLocked(cmd, uuid.New())
}

func (h *History) pushLocked(cmd Command, txID uuid.UUID) {
	h.undoStack = append(h.undoStack, &undoEntry{
		command:   cmd,
		txID:      txID,
		timestamp: time.Now(),
	})
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup opens an undo group, or joins the one already open.
// When cursors is non-nil and this call opens the group, the cursor set is
// captured so undo can restore it. Returns the group's transaction ID.
func (h *History) BeginGroup(name string, cursors *cursor.CursorSet) uuid.UUID {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.depth++
	if h.depth > 1 {
		return h.group.ID
	}

	h.group = NewCompoundCommand(name)
	if cursors != nil {
		snap := cursors.Snapshot()
		h.group.Before = &snap
	}
	return h.group.ID
}

// EndGroup closes one level of grouping. The outermost call records every
// command pushed since the group opened as one undo unit, capturing the
// closing cursor set when cursors is non-nil. Returns true if the group was
// closed and recorded.
func (h *History) EndGroup(cursors *cursor.CursorSet) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.depth == 0 {
		return false
	}
	h.depth--
	if h.depth > 0 {
		return false
	}

	group := h.group
	h.group = nil
	if group.IsEmpty() {
		return false
	}
	if cursors != nil {
		snap := cursors.Snapshot()
		group.After = &snap
	}
	h.pushLocked(group, group.ID)
	return true
}

// CancelGroup abandons the open group at every nesting level.
// Commands already executed still affect the buffer.
func (h *History) CancelGroup() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.depth = 0
	h.group = nil
}

// GroupDepth returns the number of open BeginGroup calls.
func (h *History) GroupDepth() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.depth
}

// IsGrouping returns true if a group is open.
func (h *History) IsGrouping() bool {
	return h.GroupDepth() > 0
}

// CurrentTxID returns the transaction ID of the open group.
func (h *History) CurrentTxID() (uuid.UUID, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.group == nil {
		return uuid.Nil, false
	}
	return h.group.ID, true
}

// Transaction runs fn inside a group. If fn fails the group is cancelled
// and the error returned; edits fn already made stay in the buffer.
func (h *History) Transaction(name string, cursors *cursor.CursorSet, fn func() error) error {
	h.BeginGroup(name, cursors)
	if err := fn(); err != nil {
		h.CancelGroup()
		return err
	}
	h.EndGroup(cursors)
	return nil
}

// Undo undoes the last recorded unit.
// The lock is released while the command runs.
func (h *History) Undo(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	h.mu.Lock()
	if h.depth > 0 {
		h.mu.Unlock()
		return ErrGroupOpen
	}
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.mu.Unlock()

	if err := entry.command.Undo(buf, cursors); err != nil {
		h.mu.Lock()
		h.undoStack = append(h.undoStack, entry)
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	h.redoStack = append(h.redoStack, entry)
	h.mu.Unlock()
	return nil
}

// Redo re-applies the last undone unit.
func (h *History) Redo(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	h.mu.Lock()
	if h.depth > 0 {
		h.mu.Unlock()
		return ErrGroupOpen
	}
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.mu.Unlock()

	if err := entry.command.Execute(buf, cursors); err != nil {
		h.mu.Lock()
		h.redoStack = append(h.redoStack, entry)
		h.mu.Unlock()
		return err
	}

	h.mu.Lock()
	h.undoStack = append(h.undoStack, entry)
	h.mu.Unlock()
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo units available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack)
}

// RedoCount returns the number of redo units available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack)
}

// Clear removes all undo/redo history and any open group.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = nil
	h.redoStack = nil
	h.depth = 0
	h.group = nil
}

// PeekUndo returns info about the next undo unit without removing it.
func (h *History) PeekUndo() (OperationInfo, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.undoStack) == 0 {
		return OperationInfo{}, false
	}
	return h.undoStack[len(h.undoStack)-1].info(), true
}

// UndoInfo returns info about every undo unit, oldest first.
func (h *History) UndoInfo() []OperationInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]OperationInfo, len(h.undoStack))
	for i, entry := range h.undoStack {
		result[i] = entry.info()
	}
	return result
}

func (e *undoEntry) info() OperationInfo {
	return OperationInfo{
		Description: e.command.Description(),
		Timestamp:   e.timestamp,
		TxID:        e.txID.String(),
	}
}

// SetMaxEntries changes the maximum number of undo units.
// If the current stack is larger, oldest entries are removed.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = 1000
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max
	if len(h.undoStack) > max {
		h.undoStack = h.undoStack[len(h.undoStack)-max:]
	}
}

// MaxEntries returns the maximum number of undo units.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
