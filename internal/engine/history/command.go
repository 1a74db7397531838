package history

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Command represents an edit action that can be executed and undone.
type Command interface {
	// Execute performs the command and returns an error if it fails.
	Execute(buf *buffer.Buffer, cursors *cursor.CursorSet) error

	// Undo reverses the command and returns an error if it fails.
	Undo(buf *buffer.Buffer, cursors *cursor.CursorSet) error

	// Description returns a human-readable description of the command.
	Description() string
}

// ReplaceCommand replaces text in a range and shifts every cursor across
// the edit.
type ReplaceCommand struct {
	Range   Range
	NewText string

	op *Operation
}

// NewReplaceCommand creates a new replace command.
func NewReplaceCommand(r Range, newText string) *ReplaceCommand {
	return &ReplaceCommand{Range: r, NewText: newText}
}

// Execute replaces text in the range.
func (c *ReplaceCommand) Execute(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	res, err := buf.ApplyEdit(buffer.Edit{Range: c.Range, NewText: c.NewText})
	if err != nil {
		return fmt.Errorf("replace %s: %w", c.Range, err)
	}

	// The buffer normalizes line endings; record what actually went in.
	newText := buf.TextRange(res.NewRange.Start, res.NewRange.End)
	c.op = NewOperation(res.OldRange, res.OldText, newText)

	if cursors != nil {
		cursors.Transform(c.op.Edit())
	}
	return nil
}

// Undo restores the replaced text.
func (c *ReplaceCommand) Undo(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	if c.op == nil {
		return nil
	}
	inv := c.op.Invert()
	if _, err := buf.ApplyEdit(inv.Edit()); err != nil {
		return fmt.Errorf("undo replace %s: %w", c.Range, err)
	}
	if cursors != nil {
		cursors.Transform(inv.Edit())
	}
	return nil
}

// Operation returns the recorded operation, or nil before Execute.
func (c *ReplaceCommand) Operation() *Operation {
	return c.op
}

// Description returns a human-readable description.
func (c *ReplaceCommand) Description() string {
	return buffer.Edit{Range: c.Range, NewText: c.NewText}.String()
}

// CompoundCommand groups multiple commands as one undo unit.
// Before and After hold the cursor set as it was when the group opened and
// closed; a nil snapshot leaves the cursors as the commands moved them.
type CompoundCommand struct {
	ID       uuid.UUID
	Name     string
	Commands []Command
	Before   *cursor.Snapshot
	After    *cursor.Snapshot
}

// NewCompoundCommand creates a new compound command with a fresh ID.
func NewCompoundCommand(name string, commands ...Command) *CompoundCommand {
	return &CompoundCommand{
		ID:       uuid.New(),
		Name:     name,
		Commands: commands,
	}
}

// Execute runs all commands in order and restores the closing cursors.
func (c *CompoundCommand) Execute(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	for i, cmd := range c.Commands {
		if err := cmd.Execute(buf, cursors); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = c.Commands[j].Undo(buf, cursors)
			}
			return fmt.Errorf("compound command %q step %d: %w", c.Name, i, err)
		}
	}
	if cursors != nil && c.After != nil {
		cursors.Restore(*c.After)
	}
	return nil
}

// Undo reverses all commands in reverse order and restores the opening
// cursors.
func (c *CompoundCommand) Undo(buf *buffer.Buffer, cursors *cursor.CursorSet) error {
	for i := len(c.Commands) - 1; i >= 0; i-- {
		if err := c.Commands[i].Undo(buf, cursors); err != nil {
			return fmt.Errorf("undo compound command %q step %d: %w", c.Name, i, err)
		}
	}
	if cursors != nil && c.Before != nil {
		cursors.Restore(*c.Before)
	}
	return nil
}

// Description returns the compound command's name.
func (c *CompoundCommand) Description() string {
	if c.Name != "" {
		return c.Name
	}
	if len(c.Commands) == 1 {
		return c.Commands[0].Description()
	}
	return fmt.Sprintf("%d operations", len(c.Commands))
}

// Add adds a command to the compound command.
func (c *CompoundCommand) Add(cmd Command) {
	c.Commands = append(c.Commands, cmd)
}

// IsEmpty returns true if the compound command has no commands.
func (c *CompoundCommand) IsEmpty() bool {
	return len(c.Commands) == 0
}
