package resolve

import "encoding/json"

// rawManifest mirrors the subset of package.json fields this resolver
// consumes. main/module are tolerant of a missing or wrongly-typed
// value. Structurally-invalid JSON is fatal, and so is a "browser" or
// "exports" value that is neither a string, an object nor null, or an
// "alias" value that is not an object.
type rawManifest struct {
	Main    maybeString    `json:"main"`
	Module  maybeString    `json:"module"`
	Browser StringOrObject `json:"browser"`
	Alias   OrderedObject  `json:"alias"`
	Exports StringOrObject `json:"exports"`
}

// maybeString accepts a JSON string and silently becomes "" for any
// other shape, so an unrelated field's quirks never turn into a
// MalformedManifest error.
type maybeString struct {
	Value string
	IsSet bool
}

func (m *maybeString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		m.Value, m.IsSet = s, true
	}
	return nil
}

// ProcessedManifest is the output of ManifestProcessor: everything the
// resolver needs from one package.json, already normalized.
type ProcessedManifest struct {
	// PkgDir is the absolute directory the manifest was read from.
	PkgDir string
	// Entry is the package's main entry point in its raw (unjoined,
	// unaliased) form, or "" when none of browser/module/main applied.
	Entry string
	// Aliases is the merged alias table: browser-object entries first
	// in their declaration order, then the "alias" field's entries in
	// theirs.
	Aliases []AliasEntry
	// Exports is the compiled exports tree, or nil when the manifest
	// has no "exports" field.
	Exports *ExportsTree
}

// RawManifestFunc reads raw package.json bytes for pkgDir, returning
// (nil, nil) when no manifest exists there.
type RawManifestFunc func(pkgDir string) ([]byte, error)

// ManifestCache optionally memoizes manifest processing by package
// directory. When set on Options, FileProbe consults it in place of
// calling ReadFile and ProcessPackageJSON directly — the cache decides
// whether to compute or reuse, but either way the result is the same
// pure function of pkgDir's manifest bytes.
type ManifestCache interface {
	Get(pkgDir string, raw RawManifestFunc) (*ProcessedManifest, error)
}

// ProcessPackageJSON parses raw package.json content and derives a
// ProcessedManifest rooted at pkgDir. It is a pure function of its two
// inputs: same bytes, same directory, same result, always.
func ProcessPackageJSON(content []byte, pkgDir string) (*ProcessedManifest, error) {
	var raw rawManifest
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &MalformedManifestError{Path: pkgDir, Err: err}
	}

	pm := &ProcessedManifest{PkgDir: pkgDir}

	switch {
	case raw.Browser.IsSet && !raw.Browser.IsObj && raw.Browser.Str != "":
		pm.Entry = raw.Browser.Str
	case raw.Module.IsSet && raw.Module.Value != "":
		pm.Entry = raw.Module.Value
	case raw.Main.IsSet && raw.Main.Value != "":
		pm.Entry = raw.Main.Value
	}

	if raw.Browser.IsSet && raw.Browser.IsObj {
		for _, k := range raw.Browser.Obj.Keys() {
			v, _ := raw.Browser.Obj.Get(k)
			pm.Aliases = append(pm.Aliases, browserEntryToAlias(k, v))
		}
	}
	if raw.Alias.Len() > 0 {
		for _, k := range raw.Alias.Keys() {
			v, _ := raw.Alias.Get(k)
			pm.Aliases = append(pm.Aliases, aliasEntryFromValue(k, v))
		}
	}

	exports, err := CompileExports(raw.Exports)
	if err != nil {
		if me, ok := err.(*MalformedManifestError); ok && me.Path == "" {
			me.Path = pkgDir
		}
		return nil, err
	}
	pm.Exports = exports

	return pm, nil
}

// browserEntryToAlias turns one key/value pair of a browser-field
// object into an alias table row. Keys that look like relative paths
// ("./...") are stored as exact matches after normalization to the
// "./..." form; bare keys (package names) are stored exact as-is.
func browserEntryToAlias(key string, value any) AliasEntry {
	k := key
	if k != "." && k != "" {
		if isRelativeLookingKey(k) {
			k = relForm(k)
		}
	}
	return AliasEntry{Key: AliasKey{Exact: k}, Value: aliasValueFromJSON(value)}
}

func aliasEntryFromValue(key string, value any) AliasEntry {
	k := key
	if isRelativeLookingKey(k) {
		k = relForm(k)
	}
	return AliasEntry{Key: makeAliasKey(k), Value: aliasValueFromJSON(value)}
}

func isRelativeLookingKey(k string) bool {
	return len(k) > 0 && (k[0] == '.' || k[0] == '/')
}

func aliasValueFromJSON(value any) AliasValue {
	switch v := value.(type) {
	case bool:
		if !v {
			return AliasValue{Empty: true}
		}
		return AliasValue{}
	case nil:
		return AliasValue{Empty: true}
	case string:
		if v == "" {
			return AliasValue{Empty: true}
		}
		return AliasValue{Redirect: v}
	default:
		return AliasValue{Empty: true}
	}
}
