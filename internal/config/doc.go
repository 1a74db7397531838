// Package config loads and watches the editor configuration.
//
// Configuration is read from a TOML file (github.com/pelletier/go-toml/v2)
// or a YAML file (gopkg.in/yaml.v3), chosen by extension, then overridden
// by MULTICURSOR_* variables taken from .env files and the process
// environment, then validated:
//
//	cfg, err := config.Load("multicursor.toml", ".env")
//
// Watcher reloads the file when it changes on disk and hands each valid
// configuration to its reload handlers.
package config
