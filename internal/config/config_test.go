package config

import (
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Server.Port, DefaultPort)
	}
	if cfg.AI.Model != DefaultModel {
		t.Errorf("model = %q, want %q", cfg.AI.Model, DefaultModel)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := &Config{}
	cfg.Server.Port = 9000
	cfg.AI.Model = "gemini-2.5-pro"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Server.Port != 9000 || loaded.AI.Model != "gemini-2.5-pro" {
		t.Errorf("loaded = %+v", loaded)
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := &Config{}
	cfg.Server.Port = 9000
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.AI.Model != DefaultModel {
		t.Errorf("model = %q, want default", loaded.AI.Model)
	}
}

func TestDefaultDirEnvOverride(t *testing.T) {
	t.Setenv("SMOOVBOARD_DIR", "/tmp/custom-board")
	dir, err := DefaultDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != "/tmp/custom-board" {
		t.Errorf("dir = %q", dir)
	}

	seed, err := SeedPath()
	if err != nil {
		t.Fatal(err)
	}
	if seed != "/tmp/custom-board/directory.yaml" {
		t.Errorf("seed path = %q", seed)
	}
}

func TestAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "secret")
	cfg := &Config{}
	if cfg.APIKey() != "secret" {
		t.Errorf("api key = %q", cfg.APIKey())
	}
}
