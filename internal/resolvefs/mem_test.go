package resolvefs

import "testing"

func TestMemIsFileAndReadFile(t *testing.T) {
	m := NewMem(map[string]string{"/a.js": "hello"})
	if !m.IsFile("/a.js") {
		t.Error("expected IsFile true")
	}
	if m.IsFile("/b.js") {
		t.Error("expected IsFile false for unregistered path")
	}
	content, err := m.ReadFile("/a.js")
	if err != nil || content != "hello" {
		t.Fatalf("got %q, %v", content, err)
	}
}

func TestMemReadFileMissing(t *testing.T) {
	m := NewMem(nil)
	_, err := m.ReadFile("/missing.js")
	if err == nil {
		t.Fatal("expected NotFoundError")
	}
	if _, ok := err.(*NotFoundError); !ok {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
}

func TestMemSetOverwrites(t *testing.T) {
	m := NewMem(nil)
	m.Set("/a.js", "first")
	m.Set("/a.js", "second")
	content, err := m.ReadFile("/a.js")
	if err != nil || content != "second" {
		t.Fatalf("got %q, %v", content, err)
	}
}
