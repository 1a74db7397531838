package key

import (
	"fmt"
	"time"
	"unicode"
)

// Event represents a single key press event.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{
		Key:       KeyRune,
		Rune:      r,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{
		Key:       key,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// Shift, Ctrl, Alt and Meta report the modifier flags.
func (e Event) Shift() bool { return e.Modifiers.HasShift() }
func (e Event) Ctrl() bool  { return e.Modifiers.HasCtrl() }
func (e Event) Alt() bool   { return e.Modifiers.HasAlt() }
func (e Event) Meta() bool  { return e.Modifiers.HasMeta() }

// Text returns the text the event types, or "" if it types nothing.
// Shift alone does not stop a character from typing.
func (e Event) Text() string {
	if !e.IsChar() || e.Modifiers.Has(ModCtrl|ModAlt|ModMeta) {
		return ""
	}
	return string(e.Rune)
}

// Name returns the key name used by scripts: the character for rune
// events, otherwise the key's name.
func (e Event) Name() string {
	if e.IsRune() {
		return string(e.Rune)
	}
	return e.Key.String()
}

// String returns a representation like "Ctrl+Shift+Home" or "a".
func (e Event) String() string {
	mods := e.Modifiers.String()
	if mods == "" {
		return e.Name()
	}
	return mods + "+" + e.Name()
}

// Equals returns true if two events represent the same key press.
// Timestamps are not compared.
func (e Event) Equals(other Event) bool {
	return e.Key == other.Key &&
		e.Rune == other.Rune &&
		e.Modifiers == other.Modifiers
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key, e.Rune, e.Modifiers)
}
