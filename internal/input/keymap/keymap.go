// Package keymap maps key chords to command names.
package keymap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/dshills/multicursor/internal/input/key"
)

// Binding is a single key-to-command mapping.
type Binding struct {
	// Keys is the key specification, such as "Ctrl+S" or "<Esc>".
	Keys string

	// Command is the command name to run.
	Command string
}

// Keymap holds key bindings. It is safe for concurrent use.
type Keymap struct {
	mu       sync.RWMutex
	name     string
	bindings map[chord]Binding
}

// New creates an empty keymap.
func New(name string) *Keymap {
	return &Keymap{name: name, bindings: make(map[chord]Binding)}
}

// Name returns the keymap name.
func (k *Keymap) Name() string {
	return k.name
}

// Bind maps keys to command, replacing any earlier binding of the same
// chord. An empty command removes the binding.
func (k *Keymap) Bind(keys, command string) error {
	ev, err := Parse(keys)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", keys, err)
	}

	k.mu.Lock()
	defer k.mu.Unlock()
	c := chordOf(ev)
	if command == "" {
		delete(k.bindings, c)
		return nil
	}
	k.bindings[c] = Binding{Keys: keys, Command: command}
	return nil
}

// Apply binds every entry of overrides. All entries are tried; the
// returned error joins the ones that failed to parse.
func (k *Keymap) Apply(overrides map[string]string) error {
	specs := make([]string, 0, len(overrides))
	for spec := range overrides {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	var errs []error
	for _, spec := range specs {
		if err := k.Bind(spec, overrides[spec]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Lookup returns the command bound to ev.
func (k *Keymap) Lookup(ev key.Event) (string, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()
	b, ok := k.bindings[chordOf(ev)]
	return b.Command, ok
}

// Bindings returns every binding sorted by key specification.
func (k *Keymap) Bindings() []Binding {
	k.mu.RLock()
	defer k.mu.RUnlock()
	out := make([]Binding, 0, len(k.bindings))
	for _, b := range k.bindings {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Keys < out[j].Keys })
	return out
}

// Len returns the number of bindings.
func (k *Keymap) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()
	return len(k.bindings)
}

// Clone returns a copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	k.mu.RLock()
	defer k.mu.RUnlock()
	c := New(k.name)
	for ch, b := range k.bindings {
		c.bindings[ch] = b
	}
	return c
}
