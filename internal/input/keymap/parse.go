package keymap

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/dshills/multicursor/internal/input/key"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification into an event.
//
// Supported formats:
//   - Single character or key name: "a", "Escape", "F2"
//   - With modifiers: "Ctrl+S", "Ctrl+Shift+PageDown"
//   - Vim-style: "<C-s>", "<A-F4>", "<Esc>"
func Parse(spec string) (key.Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return key.Event{}, ErrEmptySpec
	}

	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") && len(spec) > 2 {
		parts := strings.Split(spec[1:len(spec)-1], "-")
		return parseParts(parts, vimModifier)
	}
	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseParts(strings.Split(spec, "+"), namedModifier)
	}
	return parseKey(spec, key.ModNone)
}

func parseParts(parts []string, modifier func(string) key.Modifier) (key.Event, error) {
	var mods key.Modifier
	for _, p := range parts[:len(parts)-1] {
		p = strings.ToLower(strings.TrimSpace(p))
		mod := modifier(p)
		if mod == key.ModNone {
			return key.Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}
	return parseKey(parts[len(parts)-1], mods)
}

func vimModifier(p string) key.Modifier {
	switch p {
	case "c":
		return key.ModCtrl
	case "a":
		return key.ModAlt
	case "s":
		return key.ModShift
	case "m", "d":
		return key.ModMeta
	}
	return key.ModNone
}

func namedModifier(p string) key.Modifier {
	switch p {
	case "ctrl", "control":
		return key.ModCtrl
	case "alt", "option":
		return key.ModAlt
	case "shift":
		return key.ModShift
	case "meta", "cmd", "super":
		return key.ModMeta
	}
	return key.ModNone
}

func parseKey(part string, mods key.Modifier) (key.Event, error) {
	part = strings.TrimSpace(part)
	if part == "" {
		return key.Event{}, ErrInvalidSpec
	}

	if strings.EqualFold(part, "space") {
		return key.NewRuneEvent(' ', mods), nil
	}
	runes := []rune(part)
	if len(runes) == 1 {
		r := runes[0]
		if mods.HasCtrl() || mods.HasAlt() || mods.HasMeta() {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods), nil
	}
	if k := key.KeyFromName(part); k != key.KeyNone && k != key.KeyRune {
		return key.NewSpecialEvent(k, mods), nil
	}
	return key.Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, part)
}

// chord is the lookup identity of a key press.
type chord struct {
	key  key.Key
	r    rune
	mods key.Modifier
}

// chordOf normalizes ev. Letters typed with Ctrl or Alt match their
// lowercase binding, and an uppercase letter implies Shift.
func chordOf(ev key.Event) chord {
	c := chord{key: ev.Key, mods: ev.Modifiers}
	if ev.Key != key.KeyRune {
		return c
	}
	c.r = ev.Rune
	if unicode.IsUpper(c.r) {
		c.mods = c.mods.With(key.ModShift)
	}
	if c.mods.HasCtrl() || c.mods.HasAlt() || c.mods.HasMeta() {
		c.r = unicode.ToLower(c.r)
	} else {
		c.mods = c.mods.Without(key.ModShift)
	}
	return c
}
