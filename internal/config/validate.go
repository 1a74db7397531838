package config

import (
	"sort"
	"strings"

	"github.com/dshills/multicursor/internal/engine/buffer"
	"github.com/dshills/multicursor/internal/engine/syntax"
	"github.com/dshills/multicursor/internal/input/keymap"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks cfg and returns ValidationErrors listing every problem.
func Validate(cfg *Config) error {
	var errs ValidationErrors
	add := func(path, msg string, value any, code ValidationErrorCode) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value, Code: code})
	}

	if cfg.Editor.TabWidth < 1 || cfg.Editor.TabWidth > 16 {
		add("editor.tab_width", "must be between 1 and 16", cfg.Editor.TabWidth, ErrCodeOutOfRange)
	}
	if cfg.Editor.IndentChars == "" || strings.Trim(cfg.Editor.IndentChars, " \t") != "" {
		add("editor.indent_chars", "must be non-empty spaces or tabs", cfg.Editor.IndentChars, ErrCodePatternMismatch)
	}
	if _, ok := buffer.ParseLineEnding(cfg.Editor.LineEnding); !ok {
		add("editor.line_ending", "must be lf, crlf or cr", cfg.Editor.LineEnding, ErrCodeInvalidEnum)
	}
	if cfg.Editor.Language != "" && !syntax.KnownLanguage(cfg.Editor.Language) {
		add("editor.language", "unknown language", cfg.Editor.Language, ErrCodeInvalidEnum)
	}
	if cfg.Cursor.BlinkIntervalMS < 0 {
		add("cursor.blink_interval_ms", "must not be negative", cfg.Cursor.BlinkIntervalMS, ErrCodeOutOfRange)
	}
	if cfg.Cursor.Width < 1 || cfg.Cursor.Width > 4 {
		add("cursor.width", "must be between 1 and 4", cfg.Cursor.Width, ErrCodeOutOfRange)
	}
	if !validLevel(cfg.Logging.Level) {
		add("logging.level", "must be one of "+strings.Join(logLevels, ", "), cfg.Logging.Level, ErrCodeInvalidEnum)
	}
	for i, s := range cfg.Hooks.Scripts {
		if strings.TrimSpace(s) == "" {
			add("hooks.scripts", "script path is empty", i, ErrCodePatternMismatch)
		}
	}

	for _, spec := range sortedKeys(cfg.Keys) {
		if _, err := keymap.Parse(spec); err != nil {
			add("keys", err.Error(), spec, ErrCodePatternMismatch)
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validLevel(level string) bool {
	for _, l := range logLevels {
		if strings.EqualFold(level, l) {
			return true
		}
	}
	return false
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
