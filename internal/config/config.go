package config

import (
	"github.com/dshills/multicursor/internal/editor"
	"github.com/dshills/multicursor/internal/engine/buffer"
)

// Config is the complete editor configuration.
type Config struct {
	Multicursor MulticursorConfig `toml:"multicursor" yaml:"multicursor"`
	Editor      EditorConfig      `toml:"editor" yaml:"editor"`
	Cursor      CursorConfig      `toml:"cursor" yaml:"cursor"`
	Logging     LoggingConfig     `toml:"logging" yaml:"logging"`
	Hooks       HooksConfig       `toml:"hooks" yaml:"hooks"`

	// Keys overrides key bindings: key specification to command name. An
	// empty command unbinds the key.
	Keys map[string]string `toml:"keys,omitempty" yaml:"keys,omitempty"`
}

// MulticursorConfig controls multi-cursor editing.
type MulticursorConfig struct {
	// Enabled allows extra cursors to be added.
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// EditorConfig controls editing behaviour.
type EditorConfig struct {
	TabWidth             int    `toml:"tab_width" yaml:"tab_width"`
	IndentChars          string `toml:"indent_chars" yaml:"indent_chars"`
	IntelligentBackspace bool   `toml:"intelligent_backspace" yaml:"intelligent_backspace"`
	AddColons            bool   `toml:"add_colons" yaml:"add_colons"`
	StripTrailingSpaces  bool   `toml:"strip_trailing_spaces_on_modify" yaml:"strip_trailing_spaces_on_modify"`
	TabMode              bool   `toml:"tab_mode" yaml:"tab_mode"`
	LineEnding           string `toml:"line_ending" yaml:"line_ending"`
	Language             string `toml:"language" yaml:"language"`

	// HomeEndDocument makes Home and End address the whole document.
	// Nil selects the platform default.
	HomeEndDocument *bool `toml:"home_end_document,omitempty" yaml:"home_end_document,omitempty"`
}

// CursorConfig controls caret painting.
type CursorConfig struct {
	// BlinkIntervalMS is the length of one blink phase; 0 disables blinking.
	BlinkIntervalMS int `toml:"blink_interval_ms" yaml:"blink_interval_ms"`
	// Width is the caret width in cells outside overwrite mode.
	Width int `toml:"width" yaml:"width"`
}

// LoggingConfig controls the application log.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// HooksConfig lists Lua key hook scripts.
type HooksConfig struct {
	Scripts []string `toml:"scripts" yaml:"scripts"`
}

// Default blink and width values.
const (
	DefaultBlinkIntervalMS = 530
	DefaultCursorWidth     = 1
)

// Default returns the default configuration.
func Default() *Config {
	opts := editor.DefaultOptions()
	return &Config{
		Multicursor: MulticursorConfig{Enabled: true},
		Editor: EditorConfig{
			TabWidth:             opts.TabWidth,
			IndentChars:          opts.IndentChars,
			IntelligentBackspace: opts.IntelligentBackspace,
			AddColons:            opts.AddColons,
			StripTrailingSpaces:  opts.StripTrailingSpacesOnModify,
			TabMode:              opts.TabMode,
			LineEnding:           "lf",
		},
		Cursor: CursorConfig{
			BlinkIntervalMS: DefaultBlinkIntervalMS,
			Width:           DefaultCursorWidth,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// EditorOptions converts the editor section to editor options.
func (c *Config) EditorOptions() editor.Options {
	opts := editor.DefaultOptions()
	opts.TabWidth = c.Editor.TabWidth
	opts.IndentChars = c.Editor.IndentChars
	opts.IntelligentBackspace = c.Editor.IntelligentBackspace
	opts.AddColons = c.Editor.AddColons
	opts.StripTrailingSpacesOnModify = c.Editor.StripTrailingSpaces
	opts.TabMode = c.Editor.TabMode
	if c.Editor.HomeEndDocument != nil {
		opts.HomeEndDocument = *c.Editor.HomeEndDocument
	}
	return opts
}

// LineEnding returns the configured line ending, LF if unrecognised.
func (c *Config) LineEnding() buffer.LineEnding {
	le, _ := buffer.ParseLineEnding(c.Editor.LineEnding)
	return le
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	out := *c
	if c.Editor.HomeEndDocument != nil {
		v := *c.Editor.HomeEndDocument
		out.Editor.HomeEndDocument = &v
	}
	out.Hooks.Scripts = append([]string(nil), c.Hooks.Scripts...)
	if c.Keys != nil {
		out.Keys = make(map[string]string, len(c.Keys))
		for k, v := range c.Keys {
			out.Keys[k] = v
		}
	}
	return &out
}
