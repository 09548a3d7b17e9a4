// Package resolve implements the layered module-specifier resolution
// algorithm used by bundlers targeting browsers: relative/absolute path
// resolution with extension probing and directory-index fallback,
// node_modules lookup walking parent directories, and package-manifest
// driven redirection through main/module/browser, a generalized alias
// map, and conditional exports subpath maps.
package resolve

import (
	"path"
	"strings"
)

// EmptySentinel is returned verbatim whenever an alias or exports entry
// resolves to "nothing importable".
const EmptySentinel = "//empty.js"

// Normalize collapses runs of '/' into a single '/' and strips a
// trailing '/' (except when p is "/" itself), without resolving '..'
// or stripping a leading "./" or "../" — those are left intact so the
// caller can still tell a relative specifier from an absolute one.
func Normalize(p string) string {
	if p == "" {
		return p
	}
	var b strings.Builder
	b.Grow(len(p))
	lastWasSlash := false
	for _, c := range p {
		if c == '/' {
			if lastWasSlash {
				continue
			}
			lastWasSlash = true
		} else {
			lastWasSlash = false
		}
		b.WriteRune(c)
	}
	out := b.String()
	if len(out) > 1 && strings.HasSuffix(out, "/") {
		out = out[:len(out)-1]
	}
	return out
}

// Join performs a standard posix join of base and rel, resolving any
// "." and ".." segments, then normalizes the result. The outcome is
// always a clean absolute path when base is absolute, satisfying
// invariant 1 (no "..", no "//") for every candidate the resolver
// hands to FileProbe.
func Join(base, rel string) string {
	return Normalize(path.Join(base, rel))
}

// Dirname returns the posix parent directory of p.
func Dirname(p string) string {
	return path.Dir(p)
}

// Basename returns the posix final element of p.
func Basename(p string) string {
	return path.Base(p)
}

// GetParentDirectories returns the sequence [p, dirname(p), dirname(dirname(p)), ...]
// terminating at "/", or earlier at rootDir when provided (inclusive of
// rootDir, exclusive of its parent). The sequence never repeats and is
// always finite.
func GetParentDirectories(p string, rootDir string) []string {
	p = Normalize(p)
	var dirs []string
	seen := map[string]bool{}
	cur := p
	for {
		if seen[cur] {
			break
		}
		seen[cur] = true
		dirs = append(dirs, cur)
		if rootDir != "" && cur == Normalize(rootDir) {
			break
		}
		if cur == "/" {
			break
		}
		next := path.Dir(cur)
		if next == cur {
			break
		}
		cur = next
	}
	return dirs
}
