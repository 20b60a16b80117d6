package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromPath_Missing(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Output != "" || cfg.TokenSource != "" {
		t.Errorf("expected empty config, got %#v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := &Config{
		Output:      "json",
		Color:       "never",
		TokenSource: "env:NOTION_API_KEY",
		APIURL:      "http://localhost:8080",
		APIVersion:  "2022-06-28",
	}
	if err := cfg.SaveToPath(path); err != nil {
		t.Fatalf("unexpected save error: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch: %#v vs %#v", loaded, cfg)
	}
}

func TestLoadFromPath_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestSetAndGet(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Set("output", "yaml"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := cfg.Get("output")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "yaml" {
		t.Errorf("expected 'yaml', got %q", got)
	}

	if err := cfg.Set("bogus", "x"); err == nil {
		t.Error("expected error for unknown key on Set")
	}
	if _, err := cfg.Get("bogus"); err == nil {
		t.Error("expected error for unknown key on Get")
	}
}

func TestSetConfigPathFunc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "override.yaml")
	restore := SetConfigPathFunc(func() (string, error) { return path, nil })
	defer SetConfigPathFunc(restore)

	got, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Errorf("expected override path, got %q", got)
	}
}
