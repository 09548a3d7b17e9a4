package resolvefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOSIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.js")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := OS{}
	if !fs.IsFile(file) {
		t.Error("expected IsFile true for a real file")
	}
	if fs.IsFile(dir) {
		t.Error("expected IsFile false for a directory")
	}
	if fs.IsFile(filepath.Join(dir, "missing.js")) {
		t.Error("expected IsFile false for a missing path")
	}
}

func TestOSReadFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.js")
	if err := os.WriteFile(file, []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := OS{}
	content, err := fs.ReadFile(file)
	if err != nil || content != "hello" {
		t.Fatalf("got %q, %v", content, err)
	}
	if _, err := fs.ReadFile(filepath.Join(dir, "missing.js")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
