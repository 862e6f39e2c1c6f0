package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvMissingFileIsIgnored(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if err := LoadDotEnv(""); err != nil {
		t.Fatalf("expected no error for empty path, got %v", err)
	}
}

func TestLoadDotEnvDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	body := "WARLIGHT_EMAIL=file@example.com\nWARLIGHT_API_TOKEN=file-token\n"
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envEmail, "env@example.com")
	t.Setenv(envAPIToken, "")
	os.Unsetenv(envAPIToken)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected env file to load, got %v", err)
	}

	cfg := Load()
	if cfg.Warlight.Email != "env@example.com" {
		t.Fatalf("expected existing env to win, got %s", cfg.Warlight.Email)
	}
	if cfg.Warlight.APIToken != "file-token" {
		t.Fatalf("expected token from file, got %s", cfg.Warlight.APIToken)
	}
}
