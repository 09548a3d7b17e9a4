package resolvefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), S3Config{})
	if err == nil {
		t.Fatal("expected error for missing bucket")
	}
}

func TestS3BackingPath(t *testing.T) {
	p := &S3{cfg: S3Config{BackingDir: "/cache"}}
	got := p.backingPath("pkg/index.js")
	want := filepath.Join("/cache", "pkg/index.js")
	if got != want {
		t.Errorf("backingPath = %q, want %q", got, want)
	}
	p = &S3{cfg: S3Config{}}
	if got := p.backingPath("pkg/index.js"); got != "" {
		t.Errorf("backingPath with no BackingDir = %q, want empty", got)
	}
}

func TestS3IsFileHitsBackingCacheBeforeClient(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.js"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := &S3{cfg: S3Config{BackingDir: dir}}
	if !p.IsFile("index.js") {
		t.Fatal("expected backing cache hit, no client call needed")
	}
}

func TestS3ReadFileHitsBackingCacheBeforeClient(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "index.js"), []byte("content"), 0o644); err != nil {
		t.Fatal(err)
	}
	p := &S3{cfg: S3Config{BackingDir: dir}}
	content, err := p.ReadFile("index.js")
	if err != nil || content != "content" {
		t.Fatalf("got %q, %v", content, err)
	}
}

func TestErrBackendUnwrap(t *testing.T) {
	inner := os.ErrNotExist
	err := &ErrBackend{Op: "GetObject", Err: inner}
	if err.Error() == "" {
		t.Fatal("expected non-empty error message")
	}
	if err.Unwrap() != inner {
		t.Fatalf("Unwrap() = %v, want %v", err.Unwrap(), inner)
	}
}
