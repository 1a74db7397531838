package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/multicursor/internal/engine/buffer"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := Validate(cfg); err != nil {
		t.Fatalf("Validate(Default()) = %v", err)
	}
	if !cfg.Multicursor.Enabled {
		t.Error("multi-cursor should be enabled by default")
	}
	if cfg.LineEnding() != buffer.LineEndingLF {
		t.Errorf("LineEnding() = %v, want LF", cfg.LineEnding())
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multicursor.toml", `
[multicursor]
enabled = false

[editor]
tab_width = 8
indent_chars = "\t"
add_colons = false
home_end_document = true
line_ending = "crlf"
language = "python"

[hooks]
scripts = ["a.lua", "b.lua"]

[keys]
"Ctrl+D" = "delete-word"
"<Esc>" = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Multicursor.Enabled {
		t.Error("enabled should be false")
	}
	if cfg.Editor.TabWidth != 8 || cfg.Editor.IndentChars != "\t" {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if !cfg.Editor.IntelligentBackspace {
		t.Error("absent keys should keep their defaults")
	}
	if cfg.LineEnding() != buffer.LineEndingCRLF {
		t.Errorf("LineEnding() = %v, want CRLF", cfg.LineEnding())
	}
	if len(cfg.Hooks.Scripts) != 2 {
		t.Errorf("Hooks.Scripts = %v", cfg.Hooks.Scripts)
	}
	if cmd, ok := cfg.Keys["<Esc>"]; !ok || cmd != "" || cfg.Keys["Ctrl+D"] != "delete-word" {
		t.Errorf("Keys = %v", cfg.Keys)
	}

	opts := cfg.EditorOptions()
	if opts.TabWidth != 8 || opts.AddColons || !opts.HomeEndDocument {
		t.Errorf("EditorOptions() = %+v", opts)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multicursor.yaml", `
editor:
  tab_width: 2
  indent_chars: "  "
  tab_mode: true
cursor:
  blink_interval_ms: 0
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 2 || cfg.Editor.IndentChars != "  " || !cfg.Editor.TabMode {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Cursor.BlinkIntervalMS != 0 {
		t.Errorf("BlinkIntervalMS = %d, want 0", cfg.Cursor.BlinkIntervalMS)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q", cfg.Logging.Level)
	}
}

func TestLoadEmptyYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "empty.yml", "")
	if _, err := Load(path); err != nil {
		t.Fatalf("Load(empty) = %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		check   func(error) bool
	}{
		{"unsupported", "config.json", "{}", func(err error) bool { return errors.Is(err, ErrUnsupportedFormat) }},
		{"bad toml", "bad.toml", "[editor\ntab_width = 4", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe) && pe.Line > 0
		}},
		{"unknown toml key", "unknown.toml", "[editor]\nbogus = 1\n", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe) && strings.Contains(pe.Message, "unknown keys")
		}},
		{"unknown yaml key", "unknown.yaml", "editor:\n  bogus: 1\n", func(err error) bool {
			var pe *ParseError
			return errors.As(err, &pe)
		}},
		{"invalid value", "invalid.toml", "[editor]\ntab_width = 0\n", func(err error) bool {
			return errors.Is(err, ErrValidationFailed)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, tt.file, tt.content)
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want not exist", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		path   string
		code   ValidationErrorCode
	}{
		{"tab width", func(c *Config) { c.Editor.TabWidth = 40 }, "editor.tab_width", ErrCodeOutOfRange},
		{"indent chars", func(c *Config) { c.Editor.IndentChars = "ab" }, "editor.indent_chars", ErrCodePatternMismatch},
		{"line ending", func(c *Config) { c.Editor.LineEnding = "lfcr" }, "editor.line_ending", ErrCodeInvalidEnum},
		{"language", func(c *Config) { c.Editor.Language = "no-such-language" }, "editor.language", ErrCodeInvalidEnum},
		{"blink", func(c *Config) { c.Cursor.BlinkIntervalMS = -1 }, "cursor.blink_interval_ms", ErrCodeOutOfRange},
		{"cursor width", func(c *Config) { c.Cursor.Width = 0 }, "cursor.width", ErrCodeOutOfRange},
		{"log level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level", ErrCodeInvalidEnum},
		{"hook script", func(c *Config) { c.Hooks.Scripts = []string{" "} }, "hooks.scripts", ErrCodePatternMismatch},
		{"key spec", func(c *Config) { c.Keys = map[string]string{"Hyper+x": "copy", "F5": "paste"} }, "keys", ErrCodePatternMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			err := Validate(cfg)
			var errs ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("Validate() = %v, want ValidationErrors", err)
			}
			if len(errs) != 1 {
				t.Fatalf("got %d errors: %v", len(errs), errs)
			}
			if errs[0].Path != tt.path || errs[0].Code != tt.code {
				t.Errorf("error = %s (%s), want %s (%s)", errs[0].Path, errs[0].Code, tt.path, tt.code)
			}
		})
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 0
	cfg.Cursor.Width = 0
	err := Validate(cfg)
	if err == nil || !strings.HasPrefix(err.Error(), "2 validation errors") {
		t.Errorf("Validate() = %v", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			cfg := Default()
			cfg.Editor.TabWidth = 3
			data, err := Encode(cfg, format)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got := Default()
			if err := Decode(data, format, "mem", got); err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if got.Editor.TabWidth != 3 {
				t.Errorf("TabWidth = %d, want 3", got.Editor.TabWidth)
			}
		})
	}
}

func TestClone(t *testing.T) {
	on := true
	cfg := Default()
	cfg.Editor.HomeEndDocument = &on
	cfg.Hooks.Scripts = []string{"a.lua"}
	cfg.Keys = map[string]string{"F5": "copy"}

	c := cfg.Clone()
	*c.Editor.HomeEndDocument = false
	c.Hooks.Scripts[0] = "b.lua"
	c.Keys["F5"] = "paste"

	if !*cfg.Editor.HomeEndDocument || cfg.Hooks.Scripts[0] != "a.lua" || cfg.Keys["F5"] != "copy" {
		t.Error("Clone shares state with the original")
	}
}
