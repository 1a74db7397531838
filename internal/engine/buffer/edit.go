package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Edit represents a text edit operation.
// It specifies a range to replace and the new text.
type Edit struct {
	Range   Range
	NewText string
}

// NewInsert creates an Edit that inserts text at a position.
func NewInsert(offset Offset, text string) Edit {
	return Edit{Range: Range{Start: offset, End: offset}, NewText: text}
}

// NewDelete creates an Edit that deletes a range of text.
func NewDelete(start, end Offset) Edit {
	return Edit{Range: Range{Start: start, End: end}}
}

// NewLen returns the length of the replacement text in characters.
func (e Edit) NewLen() int {
	return utf8.RuneCountInString(e.NewText)
}

// Delta returns the change in document length caused by the edit.
func (e Edit) Delta() int {
	return e.NewLen() - e.Range.Len()
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	if e.Range.IsEmpty() {
		return fmt.Sprintf("Insert(%d, %q)", e.Range.Start, e.NewText)
	}
	if e.NewText == "" {
		return fmt.Sprintf("Delete%s", e.Range.String())
	}
	return fmt.Sprintf("Replace%s with %q", e.Range.String(), e.NewText)
}

// EditResult describes an applied edit.
type EditResult struct {
	OldRange Range
	NewRange Range
	OldText  string
}

// Edit returns the edit that was applied, with the normalized text.
func (r EditResult) Edit(newText string) Edit {
	return Edit{Range: r.OldRange, NewText: newText}
}
