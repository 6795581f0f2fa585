package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/songs.db",
			expected: filepath.Join(home, "songs.db"),
		},
		{
			name:     "tilde with nested path",
			input:    "~/music/catalog/songbook.db",
			expected: filepath.Join(home, "music", "catalog", "songbook.db"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/lib/songbook/songbook.db",
			expected: "/var/lib/songbook/songbook.db",
		},
		{
			name:     "relative path unchanged",
			input:    "data/songbook.db",
			expected: "data/songbook.db",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) == 0 {
		t.Error("getConfigPaths() returned empty slice")
	}

	// Last path should be local config.toml (highest priority)
	lastPath := paths[len(paths)-1]
	if lastPath != "config.toml" {
		t.Errorf("last config path = %q, want %q", lastPath, "config.toml")
	}
}

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "database_path = \"/tmp/songbook-test/songbook.db\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadFrom([]string{path})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}

	if cfg.DatabasePath != "/tmp/songbook-test/songbook.db" {
		t.Errorf("DatabasePath = %q, want %q", cfg.DatabasePath, "/tmp/songbook-test/songbook.db")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "debug")
	}
}

func TestLoadFromMissingFiles(t *testing.T) {
	cfg, err := loadFrom([]string{filepath.Join(t.TempDir(), "absent.toml")})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}

	// Defaults apply when no config file exists.
	if cfg.DatabasePath != "" {
		t.Errorf("DatabasePath = %q, want empty", cfg.DatabasePath)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoadFromLastWins(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.toml")
	if err := os.WriteFile(first, []byte("log_level = \"warn\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	second := filepath.Join(dir, "second.toml")
	if err := os.WriteFile(second, []byte("log_level = \"trace\"\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := loadFrom([]string{first, second})
	if err != nil {
		t.Fatalf("loadFrom failed: %v", err)
	}
	if cfg.LogLevel != "trace" {
		t.Errorf("LogLevel = %q, want %q (later file wins)", cfg.LogLevel, "trace")
	}
}
