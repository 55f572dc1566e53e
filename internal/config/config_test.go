package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeyMappings.PickUp != " " {
		t.Errorf("PickUp = %q, want space", cfg.KeyMappings.PickUp)
	}
	if cfg.Theme.Selected != DefaultTheme().Selected {
		t.Errorf("Selected = %q, want default", cfg.Theme.Selected)
	}
}

func TestLoadPartialConfigFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	partial := []byte("key_mappings:\n  undo: U\ntheme:\n  selected: \"#ff0000\"\n")
	cfgDir := filepath.Join(dir, "gitbox")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(cfgDir, "config.yaml"), partial, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.KeyMappings.Undo != "U" {
		t.Errorf("Undo = %q, want the configured U", cfg.KeyMappings.Undo)
	}
	if cfg.Theme.Selected != "#ff0000" {
		t.Errorf("Selected = %q, want the configured red", cfg.Theme.Selected)
	}
	// Everything unset falls back to defaults.
	if cfg.KeyMappings.Drop != "enter" {
		t.Errorf("Drop = %q, want default enter", cfg.KeyMappings.Drop)
	}
	if cfg.Theme.Muted != DefaultTheme().Muted {
		t.Errorf("Muted = %q, want default", cfg.Theme.Muted)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := &Config{KeyMappings: DefaultKeyMappings(), Theme: DefaultTheme()}
	cfg.KeyMappings.Quit = "Q"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.KeyMappings.Quit != "Q" {
		t.Errorf("Quit = %q, want Q", loaded.KeyMappings.Quit)
	}
}
