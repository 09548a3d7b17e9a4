package resolve

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already clean", "./foo.js", "./foo.js"},
		{"double slash", "/test//fluent-d", "/test/fluent-d"},
		{"leading double slash with trailing", "//node_modules/react/", "/node_modules/react"},
		{"bare with internal run", "react//test", "react/test"},
		{"root unchanged", "/", "/"},
		{"trailing slash stripped", "/foo/bar/", "/foo/bar"},
		{"leading dotdot preserved", "../foo//bar", "../foo/bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestJoin(t *testing.T) {
	tests := []struct {
		name string
		base string
		rel  string
		want string
	}{
		{"dotdot escapes last segment", "/packages/source-alias", "../source/dist.js", "/packages/source/dist.js"},
		{"simple relative", "/", "./bar", "/bar"},
		{"nested join", "/node_modules/pkg", "lib/index.js", "/node_modules/pkg/lib/index.js"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Join(tt.base, tt.rel); got != tt.want {
				t.Errorf("Join(%q, %q) = %q, want %q", tt.base, tt.rel, got, tt.want)
			}
		})
	}
}

func TestGetParentDirectories(t *testing.T) {
	got := GetParentDirectories("/a/b/c", "")
	want := []string{"/a/b/c", "/a/b", "/a", "/"}
	if len(got) != len(want) {
		t.Fatalf("GetParentDirectories length = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetParentDirectories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetParentDirectoriesStopsAtRoot(t *testing.T) {
	got := GetParentDirectories("/pkg", "/pkg")
	if len(got) != 1 || got[0] != "/pkg" {
		t.Errorf("GetParentDirectories with rootDir = %v, want [/pkg]", got)
	}
}
