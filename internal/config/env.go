package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MULTICURSOR_"

type envSetter func(cfg *Config, value string) error

func boolSetter(field func(*Config) *bool) envSetter {
	return func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*field(cfg) = b
		return nil
	}
}

func intSetter(field func(*Config) *int) envSetter {
	return func(cfg *Config, value string) error {
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*field(cfg) = n
		return nil
	}
}

func stringSetter(field func(*Config) *string) envSetter {
	return func(cfg *Config, value string) error {
		*field(cfg) = value
		return nil
	}
}

// envSetters maps variable names, without EnvPrefix, to settings.
var envSetters = map[string]envSetter{
	"ENABLED":               boolSetter(func(c *Config) *bool { return &c.Multicursor.Enabled }),
	"TAB_WIDTH":             intSetter(func(c *Config) *int { return &c.Editor.TabWidth }),
	"INDENT_CHARS":          stringSetter(func(c *Config) *string { return &c.Editor.IndentChars }),
	"INTELLIGENT_BACKSPACE": boolSetter(func(c *Config) *bool { return &c.Editor.IntelligentBackspace }),
	"ADD_COLONS":            boolSetter(func(c *Config) *bool { return &c.Editor.AddColons }),
	"STRIP_TRAILING_SPACES": boolSetter(func(c *Config) *bool { return &c.Editor.StripTrailingSpaces }),
	"TAB_MODE":              boolSetter(func(c *Config) *bool { return &c.Editor.TabMode }),
	"LINE_ENDING":           stringSetter(func(c *Config) *string { return &c.Editor.LineEnding }),
	"LANGUAGE":              stringSetter(func(c *Config) *string { return &c.Editor.Language }),
	"BLINK_INTERVAL_MS":     intSetter(func(c *Config) *int { return &c.Cursor.BlinkIntervalMS }),
	"CURSOR_WIDTH":          intSetter(func(c *Config) *int { return &c.Cursor.Width }),
	"LOG_LEVEL":             stringSetter(func(c *Config) *string { return &c.Logging.Level }),
	"LOG_FILE":              stringSetter(func(c *Config) *string { return &c.Logging.File }),
	"HOME_END_DOCUMENT": func(cfg *Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		cfg.Editor.HomeEndDocument = &b
		return nil
	},
	"HOOKS": func(cfg *Config, value string) error {
		cfg.Hooks.Scripts = nil
		for _, s := range strings.Split(value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				cfg.Hooks.Scripts = append(cfg.Hooks.Scripts, s)
			}
		}
		return nil
	},
}

// ReadEnv collects MULTICURSOR_* variables from the given .env files and
// the process environment. Process variables win over file values and
// later files win over earlier ones.
func ReadEnv(files ...string) (map[string]string, error) {
	env := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range vals {
			if strings.HasPrefix(k, EnvPrefix) {
				env[k] = v
			}
		}
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(k, EnvPrefix) {
			env[k] = v
		}
	}
	return env, nil
}

// ApplyEnv applies prefixed variables to cfg. Unknown names are ignored;
// malformed values are reported as validation errors.
func ApplyEnv(cfg *Config, env map[string]string) error {
	var errs ValidationErrors
	for k, v := range env {
		setter, ok := envSetters[strings.TrimPrefix(k, EnvPrefix)]
		if !ok {
			continue
		}
		if err := setter(cfg, v); err != nil {
			errs = append(errs, &ValidationError{
				Path:    k,
				Message: err.Error(),
				Value:   v,
				Code:    ErrCodeTypeMismatch,
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
