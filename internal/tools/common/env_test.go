package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnvFileKeepsExistingValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# local overrides\nSITE_NAME=\"Transflower Local\"\nHTTP_PORT=8181\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SITE_NAME", "")
	_ = os.Unsetenv("SITE_NAME")

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := os.Getenv("SITE_NAME"); got != "Transflower Local" {
		t.Fatalf("expected quoted value to be unwrapped, got %q", got)
	}
	if got := os.Getenv("HTTP_PORT"); got != "9000" {
		t.Fatalf("expected existing HTTP_PORT to win, got %q", got)
	}
}

func TestLoadEnvFileMissingIsNoop(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected nil for missing file, got %v", err)
	}
	if err := LoadEnvFile(""); err != nil {
		t.Fatalf("expected nil for empty path, got %v", err)
	}
}
