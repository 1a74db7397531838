// Package backend provides the terminal surface the editor paints on.
package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/multicursor/internal/input/key"
)

// CursorStyle defines how the hardware cursor appears.
type CursorStyle int

const (
	CursorBar CursorStyle = iota
	CursorBlock
)

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventMouse
	EventResize
	EventFocus
	EventInterrupt
)

// MouseButton represents mouse button state.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key is set for EventKey.
	Key key.Event

	// Mouse event fields.
	MouseX, MouseY int
	MouseButton    MouseButton
	Mod            key.Modifier

	// Resize event fields.
	Width, Height int

	// Focused is set for EventFocus.
	Focused bool
}

// Backend is a cell grid with a hardware cursor and an event source.
type Backend interface {
	// Init prepares the backend. Must be called before any other method.
	Init() error

	// Shutdown releases the backend and restores terminal state.
	Shutdown()

	// Size returns the current dimensions in cells.
	Size() (width, height int)

	// SetContent sets the cell at x, y. Positions off screen are ignored.
	SetContent(x, y int, r rune, style tcell.Style)

	// Clear clears every cell.
	Clear()

	// Show flushes pending changes to the display.
	Show()

	// ShowCursor positions and displays the hardware cursor.
	ShowCursor(x, y int)

	// HideCursor hides the hardware cursor.
	HideCursor()

	// SetCursorStyle changes the hardware cursor appearance.
	SetCursorStyle(style CursorStyle)

	// PollEvent blocks for the next event. It returns EventNone once the
	// backend is shut down.
	PollEvent() Event

	// PostEvent queues a synthetic event.
	PostEvent(event Event)
}

type nullCell struct {
	r     rune
	style tcell.Style
}

// NullBackend is an in-memory backend for tests.
type NullBackend struct {
	mu sync.Mutex

	width, height int
	cells         []nullCell
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   CursorStyle
	shown         int

	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewNullBackend creates a null backend with the given size.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 64),
		done:   make(chan struct{}),
	}
	b.cells = make([]nullCell, width*height)
	b.Clear()
	return b
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.once.Do(func() { close(b.done) })
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetContent(x, y int, r rune, style tcell.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = nullCell{r: r, style: style}
}

// Content returns the cell at x, y.
func (b *NullBackend) Content(x, y int) (rune, tcell.Style) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return ' ', tcell.StyleDefault
	}
	c := b.cells[y*b.width+x]
	return c.r, c.style
}

// Row returns the runes of row y as a string.
func (b *NullBackend) Row(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if y < 0 || y >= b.height {
		return ""
	}
	out := make([]rune, b.width)
	for x := range out {
		out[x] = b.cells[y*b.width+x].r
	}
	return string(out)
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.cells {
		b.cells[i] = nullCell{r: ' ', style: tcell.StyleDefault}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shown++
}

// ShowCount returns how many times Show was called.
func (b *NullBackend) ShowCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shown
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

// CursorPosition returns the hardware cursor state.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

func (b *NullBackend) SetCursorStyle(style CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

// CursorStyleValue returns the last cursor style set.
func (b *NullBackend) CursorStyleValue() CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.events:
		return ev
	case <-b.done:
		return Event{Type: EventNone}
	}
}

func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.events <- event:
	case <-b.done:
	}
}
