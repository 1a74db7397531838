// Package selection keeps the highlight decorations drawn for the
// selections of extra cursors.
package selection

import (
	"sort"
	"sync"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/cursor"
)

// Decoration kinds and draw order of extra cursor selections.
const (
	KindExtraCursor  = "extra_cursor_selection"
	ExtraCursorOrder = 5
)

// Default extra selection colors.
const (
	DefaultForeground = "#ffffff"
	DefaultBackground = "#346792"
)

// Decoration is a highlighted range drawn over the text.
type Decoration struct {
	Kind       string
	DrawOrder  int
	Range      buffer.Range
	Foreground string
	Background string
}

// Contains reports whether offset lies inside the decorated range.
func (d Decoration) Contains(offset buffer.Offset) bool {
	return !d.Range.IsEmpty() && offset >= d.Range.Start && offset < d.Range.End
}

// Config holds extra selection colors.
type Config struct {
	Foreground string
	Background string
}

// DefaultConfig returns the default extra selection colors.
func DefaultConfig() Config {
	return Config{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// Decorations implements cursor.SelectionObserver. Each notification
// replaces every extra cursor decoration.
type Decorations struct {
	mu       sync.RWMutex
	config   Config
	items    []Decoration
	carets   []buffer.Offset
	onChange func()
}

var _ cursor.SelectionObserver = (*Decorations)(nil)

// NewDecorations creates an empty decoration set.
func NewDecorations(config Config) *Decorations {
	return &Decorations{config: config}
}

// OnChange registers a callback run after the decorations are replaced.
func (d *Decorations) OnChange(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.onChange = fn
}

// ExtraSelectionsChanged replaces the extra cursor decorations.
func (d *Decorations) ExtraSelectionsChanged(extras []cursor.Cursor) {
	d.mu.Lock()
	d.items = d.items[:0]
	d.carets = d.carets[:0]
	for _, c := range extras {
		d.items = append(d.items, Decoration{
			Kind:       KindExtraCursor,
			DrawOrder:  ExtraCursorOrder,
			Range:      c.Range(),
			Foreground: d.config.Foreground,
			Background: d.config.Background,
		})
		d.carets = append(d.carets, c.Position)
	}
	sort.Slice(d.carets, func(i, j int) bool { return d.carets[i] < d.carets[j] })
	fn := d.onChange
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Items returns a copy of the decorations.
func (d *Decorations) Items() []Decoration {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Decoration(nil), d.items...)
}

// Carets returns the extra caret offsets in ascending order.
func (d *Decorations) Carets() []buffer.Offset {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]buffer.Offset(nil), d.carets...)
}

// At returns the decoration covering offset, if any.
func (d *Decorations) At(offset buffer.Offset) (Decoration, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, item := range d.items {
		if item.Contains(offset) {
			return item, true
		}
	}
	return Decoration{}, false
}

// Len returns the number of decorations.
func (d *Decorations) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.items)
}
