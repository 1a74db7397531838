package config

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, map[string]string{
		"MULTICURSOR_ENABLED":           "false",
		"MULTICURSOR_TAB_WIDTH":         "2",
		"MULTICURSOR_INDENT_CHARS":      "  ",
		"MULTICURSOR_HOME_END_DOCUMENT": "true",
		"MULTICURSOR_HOOKS":             "a.lua, ,b.lua",
		"MULTICURSOR_UNKNOWN":           "ignored",
	})
	if err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Multicursor.Enabled {
		t.Error("ENABLED not applied")
	}
	if cfg.Editor.TabWidth != 2 || cfg.Editor.IndentChars != "  " {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Editor.HomeEndDocument == nil || !*cfg.Editor.HomeEndDocument {
		t.Error("HOME_END_DOCUMENT not applied")
	}
	if len(cfg.Hooks.Scripts) != 2 || cfg.Hooks.Scripts[1] != "b.lua" {
		t.Errorf("Hooks.Scripts = %v", cfg.Hooks.Scripts)
	}
}

func TestApplyEnvMalformed(t *testing.T) {
	cfg := Default()
	err := ApplyEnv(cfg, map[string]string{
		"MULTICURSOR_TAB_WIDTH":  "wide",
		"MULTICURSOR_ADD_COLONS": "maybe",
	})
	var errs ValidationErrors
	if !errors.As(err, &errs) || len(errs) != 2 {
		t.Fatalf("ApplyEnv() = %v, want 2 validation errors", err)
	}
	for _, e := range errs {
		if e.Code != ErrCodeTypeMismatch {
			t.Errorf("code = %s, want type_mismatch", e.Code)
		}
	}
}

func TestReadEnvPrecedence(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "first.env", "MULTICURSOR_TAB_WIDTH=2\nMULTICURSOR_LOG_LEVEL=warn\nOTHER=1\n")
	second := writeFile(t, dir, "second.env", "MULTICURSOR_TAB_WIDTH=3\n")
	t.Setenv("MULTICURSOR_LOG_LEVEL", "debug")

	env, err := ReadEnv(first, second)
	if err != nil {
		t.Fatalf("ReadEnv: %v", err)
	}
	if env["MULTICURSOR_TAB_WIDTH"] != "3" {
		t.Errorf("TAB_WIDTH = %q, want later file to win", env["MULTICURSOR_TAB_WIDTH"])
	}
	if env["MULTICURSOR_LOG_LEVEL"] != "debug" {
		t.Errorf("LOG_LEVEL = %q, want process env to win", env["MULTICURSOR_LOG_LEVEL"])
	}
	if _, ok := env["OTHER"]; ok {
		t.Error("unprefixed variables should be dropped")
	}
}

func TestReadEnvMissingFile(t *testing.T) {
	if _, err := ReadEnv(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("expected error for missing env file")
	}
}

func TestLoadAppliesEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "multicursor.toml", "[editor]\ntab_width = 8\n")
	envFile := writeFile(t, dir, ".env", "MULTICURSOR_TAB_WIDTH=6\n")

	cfg, err := Load(path, envFile)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Editor.TabWidth != 6 {
		t.Errorf("TabWidth = %d, want env override 6", cfg.Editor.TabWidth)
	}
}
