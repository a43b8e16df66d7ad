package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "default_level: levels/custom.json\nhistory_db: ./scans.db\ncolor: false\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.DefaultLevel != "levels/custom.json" {
		t.Errorf("DefaultLevel = %q, expected %q", cfg.DefaultLevel, "levels/custom.json")
	}
	if cfg.HistoryDB != "./scans.db" {
		t.Errorf("HistoryDB = %q, expected %q", cfg.HistoryDB, "./scans.db")
	}
	if cfg.Color {
		t.Error("Color = true, expected false")
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() succeeded for missing custom config")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("default_level: [unclosed"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() succeeded for invalid YAML")
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// With no custom path and no config files around, Load falls through
	// to the embedded YAML, which must agree with Default().
	tmp := t.TempDir()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmp)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg != Default() {
		t.Errorf("Embedded default %+v differs from Default() %+v", cfg, Default())
	}
}
