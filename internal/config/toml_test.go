package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileIsNotError(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.Quiz.StudySeconds != nil {
		t.Fatalf("expected zero config for missing file")
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[quiz]\nstudy-seconds = 30\ndistract-seconds = 45\ncustom-words = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quiz.StudySeconds == nil || *cfg.Quiz.StudySeconds != 30 {
		t.Fatalf("study-seconds not parsed: %+v", cfg.Quiz)
	}
	if cfg.Quiz.DistractSeconds == nil || *cfg.Quiz.DistractSeconds != 45 {
		t.Fatalf("distract-seconds not parsed: %+v", cfg.Quiz)
	}
	if cfg.Quiz.CustomWords == nil || !*cfg.Quiz.CustomWords {
		t.Fatalf("custom-words not parsed: %+v", cfg.Quiz)
	}
}
