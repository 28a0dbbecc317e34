package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quell-dev/quell/internal/model"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style() != model.StyleNone {
		t.Errorf("default style = %v", cfg.Style())
	}
	if cfg.ContextLines != 5 {
		t.Errorf("default context lines = %d", cfg.ContextLines)
	}
	if cfg.SessionFile == "" {
		t.Error("expected a default session file name")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	content := `
default_style = "NOLINTNEXTLINE"
context_lines = 8
session_file = "my-session.txt"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Style() != model.StyleNextLinePrefix {
		t.Errorf("style = %v, want NextLinePrefix", cfg.Style())
	}
	if cfg.ContextLines != 8 {
		t.Errorf("context lines = %d, want 8", cfg.ContextLines)
	}
	if cfg.SessionFile != "my-session.txt" {
		t.Errorf("session file = %q", cfg.SessionFile)
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("default_style = [broken"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestLoadClampsContextLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	if err := os.WriteFile(path, []byte("context_lines = -3"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ContextLines != 5 {
		t.Errorf("context lines = %d, want default 5", cfg.ContextLines)
	}
}
