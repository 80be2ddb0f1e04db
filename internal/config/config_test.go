// Package config - Configuration tests
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output.DefaultFormat != "cli" {
		t.Errorf("default format = %q, want cli", cfg.Output.DefaultFormat)
	}
	if cfg.Parameters.SetupCost != 200 {
		t.Errorf("default setup cost = %g, want 200", cfg.Parameters.SetupCost)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")

	cfg := Default()
	cfg.Parameters.SetupCost = 425
	cfg.Output.NoColor = true
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Parameters.SetupCost != 425 {
		t.Errorf("setup cost = %g, want 425", loaded.Parameters.SetupCost)
	}
	if !loaded.Output.NoColor {
		t.Error("no_color did not round-trip")
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
