// Package importmap implements a subset of the browser import maps
// specification as an additional, top-level alias layer a resolve.sh
// caller can load once and consult before running the main resolve
// algorithm: https://developer.mozilla.org/en-US/docs/Web/HTML/Reference/Elements/script/type/importmap
package importmap

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// Imports is an ordered, concurrency-safe specifier-to-target table.
type Imports struct {
	mu      sync.RWMutex
	order   []string
	targets map[string]string
}

func newImports(raw map[string]string) *Imports {
	im := &Imports{targets: map[string]string{}}
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		im.order = append(im.order, k)
		im.targets[k] = raw[k]
	}
	return im
}

// Get returns the target a specifier maps to, if any.
func (im *Imports) Get(specifier string) (string, bool) {
	im.mu.RLock()
	defer im.mu.RUnlock()
	v, ok := im.targets[specifier]
	return v, ok
}

// Set adds or overwrites one entry.
func (im *Imports) Set(specifier, target string) {
	im.mu.Lock()
	defer im.mu.Unlock()
	if _, exists := im.targets[specifier]; !exists {
		im.order = append(im.order, specifier)
	}
	im.targets[specifier] = target
}

// Len reports how many entries are in the table.
func (im *Imports) Len() int {
	im.mu.RLock()
	defer im.mu.RUnlock()
	return len(im.targets)
}

// Map is the raw JSON shape of an import map document.
type Map struct {
	Imports map[string]string            `json:"imports,omitempty"`
	Scopes  map[string]map[string]string `json:"scopes,omitempty"`
}

// ImportMap is a parsed import map: a root imports table plus any
// number of scopes, each overriding the root table for referrers
// beneath its prefix.
type ImportMap struct {
	root   *Imports
	scopes map[string]*Imports
}

// Blank returns an import map with no entries.
func Blank() *ImportMap {
	return &ImportMap{root: newImports(nil), scopes: map[string]*Imports{}}
}

// Parse decodes an import map document.
func Parse(data []byte) (*ImportMap, error) {
	var raw Map
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	im := &ImportMap{root: newImports(raw.Imports), scopes: map[string]*Imports{}}
	for scope, entries := range raw.Scopes {
		im.scopes[scope] = newImports(entries)
	}
	return im, nil
}

// Resolve looks up specifier against the import map. It uses the table
// of the most specific scope whose prefix matches referrerDir, or the
// root table when no scope matches; once a scope is chosen, the root
// table is not consulted for that lookup. It mirrors the browser algorithm's two
// match shapes: an exact key, or a key ending in "/" matched as a
// prefix with the remainder appended to the mapped target.
//
// Resolve never touches the filesystem — it only rewrites specifiers,
// the same way a resolve.sh alias table does, so its result is meant
// to be fed back into ResolveSync rather than treated as a final path.
func (im *ImportMap) Resolve(specifier, referrerDir string) (string, bool) {
	table := im.root
	if referrerDir != "" && len(im.scopes) > 0 {
		prefixes := make([]string, 0, len(im.scopes))
		for prefix := range im.scopes {
			prefixes = append(prefixes, prefix)
		}
		sort.Sort(byLengthDesc(prefixes))
		for _, prefix := range prefixes {
			if strings.HasPrefix(referrerDir, prefix) {
				table = im.scopes[prefix]
				break
			}
		}
	}

	if target, ok := table.Get(specifier); ok {
		return target, true
	}

	if strings.ContainsRune(specifier, '/') {
		var best string
		var bestTarget string
		table.mu.RLock()
		for _, key := range table.order {
			if !strings.HasSuffix(key, "/") || !strings.HasPrefix(specifier, key) {
				continue
			}
			if len(key) > len(best) {
				best, bestTarget = key, table.targets[key]
			}
		}
		table.mu.RUnlock()
		if best != "" {
			return bestTarget + specifier[len(best):], true
		}
	}

	return specifier, false
}

type byLengthDesc []string

func (b byLengthDesc) Len() int           { return len(b) }
func (b byLengthDesc) Less(i, j int) bool { return len(b[i]) > len(b[j]) }
func (b byLengthDesc) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }
