package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multicursor.toml", "[editor]\ntab_width = 4\n")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	reloaded := make(chan *Config, 4)
	w.OnReload(func(cfg *Config) { reloaded <- cfg })

	if err := os.WriteFile(path, []byte("[editor]\ntab_width = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Editor.TabWidth != 2 {
			t.Errorf("TabWidth = %d, want 2", cfg.Editor.TabWidth)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multicursor.toml", "")

	w, err := NewWatcher(path, WithDebounce(10*time.Millisecond))
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	reloaded := make(chan *Config, 1)
	w.OnReload(func(cfg *Config) { reloaded <- cfg })

	writeFile(t, dir, "other.toml", "[editor]\ntab_width = 2\n")

	select {
	case <-reloaded:
		t.Fatal("reloaded for an unrelated file")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWatcherInvalidFileKeepsHandlersQuiet(t *testing.T) {
	path := writeFile(t, t.TempDir(), "multicursor.toml", "")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	called := false
	w.OnReload(func(*Config) { called = true })

	writeFile(t, filepath.Dir(path), "multicursor.toml", "[editor]\ntab_width = -1\n")
	if _, err := w.Reload(); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("Reload() = %v, want validation failure", err)
	}
	if called {
		t.Error("handler called for invalid config")
	}
}

func TestWatcherClose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "multicursor.yaml", "")
	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if _, err := w.Reload(); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Reload after Close = %v", err)
	}
}

func TestNewWatcherRejectsFormat(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "config.ini")); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("NewWatcher(.ini) = %v", err)
	}
}
