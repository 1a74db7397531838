package history

import (
	"time"
	"unicode/utf8"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Operation represents a single undoable edit.
type Operation struct {
	Range   Range  // Range that was modified (in the document before the edit)
	OldText string // Text that was replaced
	NewText string // Text that was inserted

	Timestamp time.Time
}

// NewOperation creates a new operation.
func NewOperation(r Range, oldText, newText string) *Operation {
	return &Operation{
		Range:     r,
		OldText:   oldText,
		NewText:   newText,
		Timestamp: time.Now(),
	}
}

// IsInsert returns true if this operation is a pure insertion.
func (op *Operation) IsInsert() bool {
	return op.Range.IsEmpty() && op.NewText != ""
}

// IsDelete returns true if this operation is a pure deletion.
func (op *Operation) IsDelete() bool {
	return !op.Range.IsEmpty() && op.NewText == ""
}

// IsNoop returns true if this operation makes no changes.
func (op *Operation) IsNoop() bool {
	return op.Range.IsEmpty() && op.NewText == ""
}

// Delta returns the change in document length, in runes.
func (op *Operation) Delta() int {
	return utf8.RuneCountInString(op.NewText) - op.Range.Len()
}

// NewRange returns the range of the text after the operation.
func (op *Operation) NewRange() Range {
	return Range{
		Start: op.Range.Start,
		End:   op.Range.Start + utf8.RuneCountInString(op.NewText),
	}
}

// Edit returns the operation as a buffer edit.
func (op *Operation) Edit() buffer.Edit {
	return buffer.Edit{Range: op.Range, NewText: op.NewText}
}

// Invert returns an operation that undoes this one.
func (op *Operation) Invert() *Operation {
	return &Operation{
		Range:     op.NewRange(),
		OldText:   op.NewText,
		NewText:   op.OldText,
		Timestamp: time.Now(),
	}
}

// OperationInfo provides read-only info about a history entry.
type OperationInfo struct {
	Description string
	Timestamp   time.Time
	TxID        string
}
