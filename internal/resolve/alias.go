package resolve

import "strings"

// AliasKey is either an exact string or a single-"*" glob split into
// its fixed prefix and suffix.
type AliasKey struct {
	Exact      string
	IsGlob     bool
	Prefix     string
	Suffix     string
}

// AliasValue is either the empty-module sentinel or a redirect
// template that may contain a single "*" standing in for the glob's
// captured middle.
type AliasValue struct {
	Empty    bool
	Redirect string
}

// AliasEntry is one row of a package's merged alias table, in the
// order it was declared (browser-object entries first, in their own
// declaration order, followed by the "alias" field's entries in
// theirs — see ManifestProcessor).
type AliasEntry struct {
	Key   AliasKey
	Value AliasValue
}

// makeAliasKey builds an AliasKey from a raw manifest key. A single
// "*" splits the key into prefix/suffix; anything else is exact.
func makeAliasKey(raw string) AliasKey {
	if i := strings.IndexByte(raw, '*'); i >= 0 {
		return AliasKey{IsGlob: true, Prefix: raw[:i], Suffix: raw[i+1:]}
	}
	return AliasKey{Exact: raw}
}

// AliasMatchResult is the outcome of matching a lookup key against an
// alias table.
type AliasMatchResult struct {
	Matched bool
	Empty   bool
	Value   string // meaningful only when Matched && !Empty
}

// MatchAlias walks entries in order and returns the first one whose key
// matches lookupKey — exact keys and glob keys are both tried in the
// table's declared order, not exact-first; declaration order is what
// the manifest's alias merge rules are built to control.
func MatchAlias(entries []AliasEntry, lookupKey string) AliasMatchResult {
	for _, e := range entries {
		captured, ok := matchAliasKey(e.Key, lookupKey)
		if !ok {
			continue
		}
		if e.Value.Empty {
			return AliasMatchResult{Matched: true, Empty: true}
		}
		value := e.Value.Redirect
		if e.Key.IsGlob && strings.Contains(value, "*") {
			value = strings.Replace(value, "*", captured, 1)
		}
		return AliasMatchResult{Matched: true, Value: value}
	}
	return AliasMatchResult{}
}

// matchAliasKey reports whether key matches k, and if k is a glob,
// returns the substring captured by "*".
func matchAliasKey(k AliasKey, key string) (captured string, ok bool) {
	if !k.IsGlob {
		return "", key == k.Exact
	}
	if !strings.HasPrefix(key, k.Prefix) || !strings.HasSuffix(key, k.Suffix) {
		return "", false
	}
	if len(key) < len(k.Prefix)+len(k.Suffix) {
		return "", false
	}
	return key[len(k.Prefix) : len(key)-len(k.Suffix)], true
}
