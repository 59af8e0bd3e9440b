package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	// Test a few key bindings
	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.NewEntry != "a" {
		t.Errorf("Default NewEntry key = %s, want a", defaults.NewEntry)
	}
	if defaults.ExportLog != "x" {
		t.Errorf("Default ExportLog key = %s, want x", defaults.ExportLog)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Set to a temp dir that doesn't have a config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	// Should return default config
	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir with config
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "gemba")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	// Write custom config
	configContent := `key_mappings:
  quit: "x"
  new_entry: "n"
  export_log: "w"
`
	configPath := filepath.Join(configDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	// Should load custom values
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.NewEntry != "n" {
		t.Errorf("Loaded NewEntry key = %s, want n", cfg.KeyMappings.NewEntry)
	}
	if cfg.KeyMappings.ExportLog != "w" {
		t.Errorf("Loaded ExportLog key = %s, want w", cfg.KeyMappings.ExportLog)
	}

	// Unspecified values should use defaults
	if cfg.KeyMappings.EditEntry != "e" {
		t.Errorf("Loaded EditEntry key = %s, want e (default)", cfg.KeyMappings.EditEntry)
	}
}

func TestSaveConfig(t *testing.T) {
	// Save original env
	origXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", origXDG)

	// Create temp dir
	tempDir := t.TempDir()
	os.Setenv("XDG_CONFIG_HOME", tempDir)

	cfg := &Config{
		KeyMappings: KeyMappings{
			Quit:      "x",
			NewEntry:  "n",
			ExportLog: "w",
		},
	}

	// Apply defaults to fill missing fields
	cfg.applyDefaults()

	// Save config
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	// Verify file exists
	configPath := filepath.Join(tempDir, "gemba", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	// Load it back
	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	// Verify values match
	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if cfg2.KeyMappings.NewEntry != "n" {
		t.Errorf("Reloaded NewEntry key = %s, want n", cfg2.KeyMappings.NewEntry)
	}
}

func TestColorSchemePreset(t *testing.T) {
	scheme := ColorScheme{Preset: "monochrome"}
	scheme.ApplyDefaults()

	if scheme.Accent != "#FFFFFF" {
		t.Errorf("Monochrome accent = %s, want #FFFFFF", scheme.Accent)
	}

	// Custom values survive the preset fill
	scheme2 := ColorScheme{Preset: "monochrome", Accent: "#123456"}
	scheme2.ApplyDefaults()
	if scheme2.Accent != "#123456" {
		t.Errorf("Custom accent = %s, want #123456", scheme2.Accent)
	}
}
