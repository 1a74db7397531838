package app

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dshills/multicursor/internal/clipboard"
	"github.com/dshills/multicursor/internal/config"
	"github.com/dshills/multicursor/internal/engine/cursor"
	"github.com/dshills/multicursor/internal/input/key"
	"github.com/dshills/multicursor/internal/renderer/backend"
)

type testApp struct {
	*Application
	back  *backend.NullBackend
	board *clipboard.Memory
	path  string
	log   *bytes.Buffer
}

func newTestApp(t *testing.T, text string, opts Options) *testApp {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	board := clipboard.NewMemory("")
	var log bytes.Buffer
	opts.File = path
	opts.Clipboard = board
	opts.LogOutput = &log
	if opts.LogLevel == "" {
		opts.LogLevel = "debug"
	}

	app, err := New(opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { app.Close() })

	back := backend.NewNullBackend(40, 10)
	if err := app.SetBackend(back); err != nil {
		t.Fatal(err)
	}
	app.attach()
	return &testApp{Application: app, back: back, board: board, path: path, log: &log}
}

func (a *testApp) send(t *testing.T, events ...backend.Event) {
	t.Helper()
	for _, ev := range events {
		if err := a.handleEvent(ev); err != nil {
			t.Fatalf("handleEvent(%+v) = %v", ev, err)
		}
	}
}

func runeKey(r rune, mods key.Modifier) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key.NewRuneEvent(r, mods)}
}

func specialKey(k key.Key, mods key.Modifier) backend.Event {
	return backend.Event{Type: backend.EventKey, Key: key.NewSpecialEvent(k, mods)}
}

func click(x, y int, mods key.Modifier) []backend.Event {
	return []backend.Event{
		{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: backend.MouseLeft, Mod: mods},
		{Type: backend.EventMouse, MouseX: x, MouseY: y, MouseButton: backend.MouseNone, Mod: mods},
	}
}

func (a *testApp) text() string {
	return a.Editor().Buffer().Text()
}

func TestCtrlAltClickTogglesCursor(t *testing.T) {
	a := newTestApp(t, "abc\nabc\n", Options{})

	a.send(t, click(1, 1, key.ModCtrl|key.ModAlt)...)
	cs := a.Editor().Cursors()
	if got := cs.Len(); got != 2 {
		t.Fatalf("cursors = %d, want 2", got)
	}
	if got := cs.Primary().Position; got != 5 {
		t.Errorf("primary = %d, want the clicked offset 5", got)
	}
	if extras := cs.Extras(); extras[0].Position != 0 {
		t.Errorf("extra = %d, want the old primary at 0", extras[0].Position)
	}

	a.send(t, runeKey('x', key.ModNone))
	if got := a.text(); got != "xabc\naxbc\n" {
		t.Errorf("text = %q", got)
	}

	a.send(t, specialKey(key.KeyEscape, key.ModNone))
	if got := cs.Len(); got != 1 {
		t.Errorf("cursors after Escape = %d, want 1", got)
	}
	if got := cs.Primary().Position; got != 7 {
		t.Errorf("primary after Escape = %d, want 7", got)
	}
}

func TestLineShortcuts(t *testing.T) {
	a := newTestApp(t, "1\n2\n3\n4\n5\n6", Options{})
	a.send(t, click(0, 2, key.ModCtrl|key.ModAlt)...)

	a.send(t,
		specialKey(key.KeyDown, key.ModAlt),
		specialKey(key.KeyDown, key.ModAlt),
	)
	if got := a.text(); got != "2\n4\n1\n5\n3\n6" {
		t.Errorf("text after Alt+Down = %q", got)
	}

	a.send(t, runeKey('d', key.ModCtrl))
	if got := a.text(); got != "2\n4\n5\n6" {
		t.Errorf("text after Ctrl+D = %q", got)
	}

	a.send(t, specialKey(key.KeyEnd, key.ModCtrl))
	cs := a.Editor().Cursors()
	if cs.Len() != 1 || cs.Primary().Position != a.Editor().Buffer().Len() {
		t.Errorf("Ctrl+End cursors = %v, want one caret at the end", cs.AllCursors())
	}
}

func TestPlainClickDropsExtras(t *testing.T) {
	a := newTestApp(t, "abc\nabc\n", Options{})
	a.send(t, click(1, 1, key.ModCtrl|key.ModAlt)...)

	a.send(t, click(2, 0, key.ModNone)...)
	cs := a.Editor().Cursors()
	if cs.Len() != 1 || cs.Primary() != cursor.NewCursor(2) {
		t.Errorf("cursors = %v, want single caret at 2", cs.AllCursors())
	}
}

func TestMouseDragIsOnePress(t *testing.T) {
	a := newTestApp(t, "abc\nabc\nabc\n", Options{})
	mods := key.ModCtrl | key.ModAlt
	a.send(t,
		backend.Event{Type: backend.EventMouse, MouseX: 1, MouseY: 1, MouseButton: backend.MouseLeft, Mod: mods},
		backend.Event{Type: backend.EventMouse, MouseX: 1, MouseY: 2, MouseButton: backend.MouseLeft, Mod: mods},
	)
	if got := a.Editor().Cursors().Len(); got != 2 {
		t.Errorf("cursors = %d, want 2", got)
	}
}

func TestColumnClick(t *testing.T) {
	a := newTestApp(t, "abcd\nabcd\nabcd\n", Options{})
	a.send(t, click(1, 0, key.ModNone)...)
	a.send(t, click(3, 2, key.ModCtrl|key.ModAlt|key.ModShift)...)

	if got := a.Editor().Cursors().Len(); got != 3 {
		t.Fatalf("cursors = %d, want 3", got)
	}
	a.send(t, runeKey('-', key.ModNone))
	if got := a.text(); got != "a-d\na-d\na-d\n" {
		t.Errorf("text = %q", got)
	}
}

func TestClipboardShortcuts(t *testing.T) {
	a := newTestApp(t, "hello", Options{})

	a.send(t, runeKey('a', key.ModCtrl), runeKey('c', key.ModCtrl))
	if got, _ := a.board.ReadText(); got != "hello" {
		t.Errorf("clipboard = %q", got)
	}

	a.send(t, runeKey('x', key.ModCtrl))
	if a.text() != "" {
		t.Errorf("text after cut = %q", a.text())
	}

	a.send(t, runeKey('v', key.ModCtrl), runeKey('v', key.ModCtrl))
	if a.text() != "hellohello" {
		t.Errorf("text after paste = %q", a.text())
	}

	a.send(t, runeKey('z', key.ModCtrl))
	if a.text() != "hello" {
		t.Errorf("text after undo = %q", a.text())
	}
	a.send(t, runeKey('y', key.ModCtrl))
	if a.text() != "hellohello" {
		t.Errorf("text after redo = %q", a.text())
	}
}

func TestQuitAndSave(t *testing.T) {
	a := newTestApp(t, "", Options{})
	a.send(t, runeKey('k', key.ModNone), runeKey('s', key.ModCtrl))

	data, err := os.ReadFile(a.path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "k" {
		t.Errorf("saved %q", data)
	}

	if err := a.handleEvent(runeKey('q', key.ModCtrl)); !errors.Is(err, ErrQuit) {
		t.Errorf("Ctrl+Q = %v, want ErrQuit", err)
	}
}

func TestToggleMultiCursorKey(t *testing.T) {
	a := newTestApp(t, "abc\nabc\n", Options{})
	a.send(t, click(1, 1, key.ModCtrl|key.ModAlt)...)

	a.send(t, specialKey(key.KeyF2, key.ModNone))
	cs := a.Editor().Cursors()
	if cs.Enabled() || cs.Len() != 1 {
		t.Errorf("enabled=%v len=%d, want disabled single cursor", cs.Enabled(), cs.Len())
	}

	a.send(t, click(1, 1, key.ModCtrl|key.ModAlt)...)
	if cs.Len() != 1 {
		t.Error("ctrl-alt click should not add cursors while disabled")
	}
}

func TestApplyConfigDisablesMultiCursor(t *testing.T) {
	a := newTestApp(t, "abc\nabc\n", Options{})
	a.send(t, click(1, 1, key.ModCtrl|key.ModAlt)...)

	cfg := config.Default()
	cfg.Multicursor.Enabled = false
	cfg.Editor.TabWidth = 8
	cfg.Cursor.BlinkIntervalMS = 250
	a.applyConfig(cfg)

	if a.Editor().Cursors().Len() != 1 {
		t.Error("disabling multi-cursor editing should clear extras")
	}
	if a.Editor().Options().TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", a.Editor().Options().TabWidth)
	}
	if got := a.blinker.Interval(); got != 250*time.Millisecond {
		t.Errorf("blink interval = %s, want 250ms", got)
	}
}

func TestStartupLogNamesLanguage(t *testing.T) {
	a := newTestApp(t, "abc\n", Options{})

	want := fmt.Sprintf("multicursor: editing doc.txt (%s, 2 lines", a.Editor().Syntax().Language())
	if !strings.Contains(a.log.String(), want) {
		t.Errorf("log = %q, want a line containing %q", a.log.String(), want)
	}
}

func TestFocusControlsBlink(t *testing.T) {
	a := newTestApp(t, "abc", Options{})
	a.send(t, backend.Event{Type: backend.EventFocus, Focused: false})
	if a.blinker.Visible() {
		t.Error("carets should hide on focus out")
	}
	a.send(t, backend.Event{Type: backend.EventFocus, Focused: true})
	if !a.blinker.Visible() {
		t.Error("carets should show on focus in")
	}
}

func TestLuaHookLoaded(t *testing.T) {
	script := filepath.Join(t.TempDir(), "upper.lua")
	code := `
function on_key(ev)
  if ev.rune == "a" then
    return "A"
  end
  return false
end
`
	if err := os.WriteFile(script, []byte(code), 0o644); err != nil {
		t.Fatal(err)
	}

	a := newTestApp(t, "", Options{HookScripts: []string{script, filepath.Join(t.TempDir(), "missing.lua")}})
	if a.Dispatcher().HookCount() != 1 {
		t.Fatalf("HookCount() = %d, want 1", a.Dispatcher().HookCount())
	}
	if !bytes.Contains(a.log.Bytes(), []byte("missing.lua not loaded")) {
		t.Errorf("log = %q", a.log.String())
	}

	a.send(t, runeKey('a', key.ModNone), runeKey('b', key.ModNone))
	if a.text() != "Ab" {
		t.Errorf("text = %q, want Ab", a.text())
	}
}

func TestRunUntilQuit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.txt")
	app, err := New(Options{File: path, Clipboard: clipboard.NewMemory("")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()

	back := backend.NewNullBackend(20, 5)
	if err := app.SetBackend(back); err != nil {
		t.Fatal(err)
	}

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	back.PostEvent(runeKey('h', key.ModNone))
	back.PostEvent(runeKey('i', key.ModNone))
	back.PostEvent(runeKey('q', key.ModCtrl))

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Ctrl+Q")
	}

	if got := app.Editor().Buffer().Text(); got != "hi" {
		t.Errorf("text = %q, want hi", got)
	}
	if got := back.Row(0); got[:2] != "hi" {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestRunWithoutBackend(t *testing.T) {
	app, err := New(Options{Clipboard: clipboard.NewMemory("")})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer app.Close()
	if err := app.Run(); !errors.Is(err, ErrNoBackend) {
		t.Errorf("Run() = %v, want ErrNoBackend", err)
	}
}

func TestNewConfigError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := New(Options{ConfigPath: path})
	var initErr *InitError
	if !errors.As(err, &initErr) || initErr.Component != "config" {
		t.Errorf("New() = %v, want config InitError", err)
	}
}

func TestConfigKeyBindings(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "multicursor.toml")
	data := `
[keys]
"F5" = "select-all"
"Ctrl+A" = ""
"F6" = "no-such-command"
`
	if err := os.WriteFile(cfgPath, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	a := newTestApp(t, "hello", Options{ConfigPath: cfgPath})

	a.send(t, runeKey('a', key.ModCtrl))
	if sel := a.Editor().Cursors().Primary(); sel.HasSelection() {
		t.Error("unbound Ctrl+A should not select")
	}

	a.send(t, specialKey(key.KeyF5, key.ModNone), runeKey('c', key.ModCtrl))
	if got, _ := a.board.ReadText(); got != "hello" {
		t.Errorf("clipboard = %q, want hello", got)
	}

	a.send(t, specialKey(key.KeyF6, key.ModNone))
	if !bytes.Contains(a.log.Bytes(), []byte(`unknown command "no-such-command"`)) {
		t.Errorf("log = %q", a.log.String())
	}
}
