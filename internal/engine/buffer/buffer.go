package buffer

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the external line ending style.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding converts a configuration name ("lf", "crlf", "cr") to a LineEnding.
func ParseLineEnding(s string) (LineEnding, bool) {
	switch strings.ToLower(s) {
	case "lf", "unix", "\n":
		return LineEndingLF, true
	case "crlf", "windows", "\r\n":
		return LineEndingCRLF, true
	case "cr", "mac", "\r":
		return LineEndingCR, true
	}
	return LineEndingLF, false
}

// Buffer holds the document text as a rune array with a line index.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       []rune
	lineStarts []Offset
	revisionID RevisionID
	lineEnding LineEnding
	tabWidth   int
}

// NewBuffer creates a new empty buffer.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
		tabWidth:   4,
		lineStarts: []Offset{0},
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string, opts ...Option) *Buffer {
	b := NewBuffer(opts...)
	b.text = []rune(normalizeLineEndings(s))
	b.reindex()
	return b
}

// normalizeLineEndings converts CRLF and CR to the internal "\n" separator.
func normalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// reindex rebuilds the line start table. Caller must hold the write lock.
func (b *Buffer) reindex() {
	starts := b.lineStarts[:0]
	starts = append(starts, 0)
	for i, r := range b.text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	b.lineStarts = starts
}

// Read Operations

// Text returns the full buffer content as a string.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return string(b.text)
}

// TextRange returns text in the given range, clamped to the buffer.
func (b *Buffer) TextRange(start, end Offset) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	start, end = b.clampLocked(start), b.clampLocked(end)
	if start >= end {
		return ""
	}
	return string(b.text[start:end])
}

// ExternalText returns text in the given range with the internal paragraph
// separator converted to the buffer's external line ending.
func (b *Buffer) ExternalText(start, end Offset) string {
	text := b.TextRange(start, end)
	if seq := b.LineEnding().Sequence(); seq != "\n" {
		text = strings.ReplaceAll(text, "\n", seq)
	}
	return text
}

// Len returns the total length of the buffer in characters.
func (b *Buffer) Len() Offset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text)
}

// IsEmpty returns true if the buffer is empty.
func (b *Buffer) IsEmpty() bool {
	return b.Len() == 0
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return uint32(len(b.lineStarts))
}

// LineText returns the text of a specific line (without newline).
func (b *Buffer) LineText(line uint32) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return ""
	}
	return string(b.text[b.lineStarts[line]:b.lineEndLocked(line)])
}

// LineLen returns the length of a specific line in characters (without newline).
func (b *Buffer) LineLen(line uint32) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return 0
	}
	return b.lineEndLocked(line) - b.lineStarts[line]
}

// RuneAt returns the character at the given offset.
func (b *Buffer) RuneAt(offset Offset) (rune, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if offset < 0 || offset >= len(b.text) {
		return 0, false
	}
	return b.text[offset], true
}

// Coordinate Conversion

// LineOf returns the line containing offset.
func (b *Buffer) LineOf(offset Offset) uint32 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineOfLocked(b.clampLocked(offset))
}

// OffsetToPoint converts an offset to line/column.
func (b *Buffer) OffsetToPoint(offset Offset) Point {
	b.mu.RLock()
	defer b.mu.RUnlock()
	offset = b.clampLocked(offset)
	line := b.lineOfLocked(offset)
	return Point{Line: line, Column: uint32(offset - b.lineStarts[line])}
}

// PointToOffset converts line/column to an offset.
// Points past the end of a line clamp to the line end.
func (b *Buffer) PointToOffset(point Point) Offset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(point.Line) >= len(b.lineStarts) {
		return len(b.text)
	}
	start := b.lineStarts[point.Line]
	return min(start+int(point.Column), b.lineEndLocked(point.Line))
}

// LineStartOffset returns the offset of the start of a line.
func (b *Buffer) LineStartOffset(line uint32) Offset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineStarts[line]
}

// LineEndOffset returns the offset of the end of a line (before newline).
func (b *Buffer) LineEndOffset(line uint32) Offset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if int(line) >= len(b.lineStarts) {
		return len(b.text)
	}
	return b.lineEndLocked(line)
}

func (b *Buffer) lineEndLocked(line uint32) Offset {
	if int(line)+1 < len(b.lineStarts) {
		return b.lineStarts[line+1] - 1
	}
	return len(b.text)
}

func (b *Buffer) lineOfLocked(offset Offset) uint32 {
	// First line start strictly greater than offset, minus one.
	i := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > offset
	})
	return uint32(i - 1)
}

func (b *Buffer) clampLocked(offset Offset) Offset {
	return max(0, min(offset, len(b.text)))
}

// Write Operations

// Insert inserts text at the given offset.
// Returns the end position of the inserted text.
func (b *Buffer) Insert(offset Offset, text string) (Offset, error) {
	return b.Replace(offset, offset, text)
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end Offset) error {
	_, err := b.Replace(start, end, "")
	return err
}

// Replace replaces text in the given range with new text.
// Returns the end position of the replacement text.
func (b *Buffer) Replace(start, end Offset, text string) (Offset, error) {
	res, err := b.ApplyEdit(Edit{Range: Range{Start: start, End: end}, NewText: text})
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	r := edit.Range
	if r.Start < 0 || r.Start > r.End || r.End > len(b.text) {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := string(b.text[r.Start:r.End])
	ins := []rune(normalizeLineEndings(edit.NewText))

	text := make([]rune, 0, len(b.text)-r.Len()+len(ins))
	text = append(text, b.text[:r.Start]...)
	text = append(text, ins...)
	text = append(text, b.text[r.End:]...)
	b.text = text
	b.reindex()
	b.revisionID = NewRevisionID()

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + len(ins)},
		OldText:  oldText,
	}, nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the buffer's external line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// SetLineEnding sets the buffer's external line ending style.
func (b *Buffer) SetLineEnding(le LineEnding) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineEnding = le
}

// TabWidth returns the buffer's tab width.
func (b *Buffer) TabWidth() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tabWidth
}

// SetTabWidth sets the buffer's tab width.
func (b *Buffer) SetTabWidth(width int) {
	if width <= 0 {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tabWidth = width
}
