package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file encoding.
type Format uint8

const (
	// FormatTOML is a TOML document.
	FormatTOML Format = iota
	// FormatYAML is a YAML document.
	FormatYAML
)

// String returns the format name.
func (f Format) String() string {
	if f == FormatYAML {
		return "yaml"
	}
	return "toml"
}

// FormatForPath picks a format by file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load reads the config file at path over the defaults, applies
// environment overrides from envFiles and the process environment, and
// validates the result. An empty path skips the file.
func Load(path string, envFiles ...string) (*Config, error) {
	cfg := Default()
	if path != "" {
		format, err := FormatForPath(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := Decode(data, format, path, cfg); err != nil {
			return nil, err
		}
	}
	env, err := ReadEnv(envFiles...)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(cfg, env); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode decodes data in the given format onto cfg. Keys absent from data
// leave cfg unchanged; unknown keys are errors. path is used in errors.
func Decode(data []byte, format Format, path string, cfg *Config) error {
	switch format {
	case FormatTOML:
		return decodeTOML(data, path, cfg)
	case FormatYAML:
		return decodeYAML(data, path, cfg)
	}
	return fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}

func decodeTOML(data []byte, path string, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		pe := &ParseError{Path: path, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		var se *toml.StrictMissingError
		if errors.As(err, &se) {
			pe.Message = "unknown keys: " + strings.TrimSpace(se.String())
			if len(se.Errors) > 0 {
				pe.Line, pe.Column = se.Errors[0].Position()
			}
		}
		return pe
	}
	return nil
}

func decodeYAML(data []byte, path string, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return nil
}

// Encode renders cfg in the given format.
func Encode(cfg *Config, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		return toml.Marshal(cfg)
	case FormatYAML:
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, format)
}
