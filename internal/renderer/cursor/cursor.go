// Package cursor provides caret blinking and caret geometry.
package cursor

import (
	"sync"
	"time"

	"github.com/mattn/go-runewidth"
)

// Style represents the visual appearance of a caret.
type Style uint8

const (
	// StyleBar is a vertical line caret used while inserting.
	StyleBar Style = iota
	// StyleBlock is a filled block caret used in overwrite mode.
	StyleBlock
)

// String returns the style name.
func (s Style) String() string {
	if s == StyleBlock {
		return "block"
	}
	return "bar"
}

// StyleFor returns the caret style for the overwrite state.
func StyleFor(overwrite bool) Style {
	if overwrite {
		return StyleBlock
	}
	return StyleBar
}

// CaretWidth returns the caret width in cells. In overwrite mode the caret
// covers one space; otherwise it is the configured width.
func CaretWidth(overwrite bool, width int) int {
	if overwrite {
		return runewidth.RuneWidth(' ')
	}
	if width < 1 {
		return 1
	}
	return width
}

// Blinker tracks the shared blink phase of every caret. Carets are visible
// while the phase is on; all extra carets blink together with the primary.
type Blinker struct {
	mu sync.Mutex

	interval time.Duration
	active   bool
	visible  bool
	last     time.Time
}

// NewBlinker creates a stopped blinker. A non-positive interval disables
// blinking: carets stay visible while the blinker is active.
func NewBlinker(interval time.Duration) *Blinker {
	return &Blinker{interval: interval}
}

// Interval returns the blink interval.
func (b *Blinker) Interval() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.interval
}

// SetInterval changes the blink interval.
func (b *Blinker) SetInterval(d time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.interval = d
}

// Start begins blinking with the carets visible. Called on focus in.
func (b *Blinker) Start(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = true
	b.visible = true
	b.last = now
}

// Stop hides the carets and stops blinking. Called on focus out.
func (b *Blinker) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.active = false
	b.visible = false
}

// Reset shows the carets and restarts the blink phase. Called after a
// keystroke so carets are visible while typing.
func (b *Blinker) Reset(now time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.active {
		return
	}
	b.visible = true
	b.last = now
}

// Update advances the blink phase to now and reports whether visibility
// changed.
func (b *Blinker) Update(now time.Time) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.active || b.interval <= 0 {
		return false
	}
	elapsed := now.Sub(b.last)
	if elapsed < b.interval {
		return false
	}
	phases := int(elapsed / b.interval)
	b.last = b.last.Add(time.Duration(phases) * b.interval)
	if phases%2 == 0 {
		return false
	}
	b.visible = !b.visible
	return true
}

// Visible reports whether carets should be painted.
func (b *Blinker) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Active reports whether the blinker is running.
func (b *Blinker) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}
