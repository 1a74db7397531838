package lua

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
	"github.com/dshills/multicursor/internal/multicursor"
)

// HandlerName is the global function a hook script must define.
const HandlerName = "on_key"

// Logger is the logging interface used by hooks.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Hook is a multi-cursor key hook backed by a Lua script.
type Hook struct {
	state    *State
	name     string
	priority int
	logger   Logger
}

// HookOption configures a Hook.
type HookOption func(*Hook)

// WithName sets the hook name.
func WithName(name string) HookOption {
	return func(h *Hook) { h.name = name }
}

// WithPriority sets the hook priority.
func WithPriority(p int) HookOption {
	return func(h *Hook) { h.priority = p }
}

// WithLogger sets the logger used for script errors.
func WithLogger(l Logger) HookOption {
	return func(h *Hook) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewHook creates a hook calling on_key in state.
func NewHook(state *State, opts ...HookOption) (*Hook, error) {
	if !state.HasFunction(HandlerName) {
		return nil, ErrNoHandler
	}
	h := &Hook{
		state:    state,
		name:     "lua",
		priority: multicursor.PriorityPlugin,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// LoadHook runs the script at path in a fresh state and returns its hook.
func LoadHook(path string, stateOpts []StateOption, opts ...HookOption) (*Hook, error) {
	state := NewState(stateOpts...)
	if err := state.DoFile(path); err != nil {
		state.Close()
		return nil, fmt.Errorf("load hook %s: %w", path, err)
	}
	h, err := NewHook(state, opts...)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("load hook %s: %w", path, err)
	}
	return h, nil
}

// Name implements multicursor.KeyHook.
func (h *Hook) Name() string { return h.name }

// Priority implements multicursor.KeyHook.
func (h *Hook) Priority() int { return h.priority }

// Close releases the script's state.
func (h *Hook) Close() error { return h.state.Close() }

// HandleKey calls on_key with the event. A true result accepts the key, a
// string result accepts it and types the string at c. Script errors
// decline.
func (h *Hook) HandleKey(ed *editor.Editor, c cursor.Cursor, ev key.Event) multicursor.HookResult {
	ret, err := h.state.Call(HandlerName, h.eventTable(ed, c, ev))
	if err != nil {
		h.logger.Warn("lua hook %s: %v", h.name, err)
		return multicursor.Decline(c)
	}

	switch v := ret.(type) {
	case lua.LBool:
		if bool(v) {
			return multicursor.Accept(c)
		}
	case lua.LString:
		h.logger.Debug("lua hook %s: typed %q at %d", h.name, string(v), c.Position)
		return multicursor.Accept(ed.InsertText(c, string(v)))
	}
	return multicursor.Decline(c)
}

func (h *Hook) eventTable(ed *editor.Editor, c cursor.Cursor, ev key.Event) *lua.LTable {
	buf := ed.Buffer()
	line := buf.LineOf(c.Position)
	r := ""
	if ev.IsRune() {
		r = string(ev.Rune)
	}
	return h.state.NewTable(map[string]lua.LValue{
		"key":      lua.LString(ev.Key.String()),
		"rune":     lua.LString(r),
		"ctrl":     lua.LBool(ev.Ctrl()),
		"alt":      lua.LBool(ev.Alt()),
		"shift":    lua.LBool(ev.Shift()),
		"meta":     lua.LBool(ev.Meta()),
		"position": lua.LNumber(c.Position),
		"anchor":   lua.LNumber(c.Anchor),
		"line":     lua.LString(buf.LineText(line)),
		"column":   lua.LNumber(c.Position - buf.LineStartOffset(line)),
	})
}
