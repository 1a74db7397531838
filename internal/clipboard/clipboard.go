package clipboard

import (
	"errors"
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no system clipboard can be reached.
var ErrUnavailable = errors.New("system clipboard unavailable")

// Clipboard reads and writes plain text.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// System is the operating system clipboard.
type System struct{}

// ReadText returns the clipboard contents.
func (System) ReadText() (string, error) {
	if sysclip.Unsupported {
		return "", ErrUnavailable
	}
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

// WriteText replaces the clipboard contents.
func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return ErrUnavailable
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard. The zero value is empty and ready.
type Memory struct {
	mu   sync.Mutex
	text string
}

// NewMemory returns a memory clipboard holding text.
func NewMemory(text string) *Memory {
	return &Memory{text: text}
}

// ReadText returns the stored text.
func (m *Memory) ReadText() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}

// New returns the system clipboard, or a memory clipboard when the
// platform has none.
func New() Clipboard {
	if sysclip.Unsupported {
		return &Memory{}
	}
	return System{}
}
