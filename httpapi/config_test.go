package httpapi

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	if err := os.WriteFile(file, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 8787 {
		t.Errorf("Port = %d, want 8787", cfg.Port)
	}
	if len(cfg.Extensions) == 0 {
		t.Error("expected default extensions to be set")
	}
	if cfg.ManifestCacheSize != 4096 {
		t.Errorf("ManifestCacheSize = %d, want 4096", cfg.ManifestCacheSize)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	content := `{"port": 9000, "extensions": [".mjs"], "manifestCacheSize": 10, "storage": {"type": "s3", "bucket": "my-bucket"}}`
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(file)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".mjs" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	if cfg.Storage.Type != "s3" || cfg.Storage.Bucket != "my-bucket" {
		t.Errorf("Storage = %+v", cfg.Storage)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.json"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadConfigInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")
	if err := os.WriteFile(file, []byte(`{not valid`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(file); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
