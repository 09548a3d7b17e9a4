package resolve

// probeEnv bundles the two filesystem predicates plus the extension
// list every probe step needs. It is built once per top-level resolve
// call and threaded through, never mutated.
type probeEnv struct {
	IsFile     func(string) bool
	ReadFile   func(string) (string, error)
	Extensions []string
	// Cache, when non-nil, is consulted for every manifest lookup
	// instead of reading and parsing package.json directly.
	Cache ManifestCache
}

// readManifestBytes is the RawManifestFunc every manifestAt call
// hands to Cache.Get, and what manifestAt falls back to calling
// itself when no cache is configured.
func (env *probeEnv) readManifestBytes(dir string) ([]byte, error) {
	manifestPath := Join(dir, "package.json")
	if !env.IsFile(manifestPath) {
		return nil, nil
	}
	content, err := env.ReadFile(manifestPath)
	if err != nil {
		return nil, err
	}
	return []byte(content), nil
}

// manifestAt attempts to load and process a package.json that lives
// directly inside dir. A missing file is not an error; a malformed one
// is, and is surfaced to the caller rather than treated as absent.
func (env *probeEnv) manifestAt(dir string) (*ProcessedManifest, error) {
	if env.Cache != nil {
		return env.Cache.Get(dir, env.readManifestBytes)
	}
	content, err := env.readManifestBytes(dir)
	if err != nil || content == nil {
		return nil, err
	}
	return ProcessPackageJSON(content, dir)
}

// ProbeFile is FileProbe: given a candidate absolute path, try it
// verbatim, then with each extension appended, then — treating it as a
// directory — via its own manifest's entry field (aliased through that
// manifest's own alias table first) and finally an index.<ext> scan.
//
// It returns the resolved absolute path, or EmptySentinel with
// isEmpty=true when an alias along the way said "nothing here", or
// ok=false when nothing matched at all.
func (env *probeEnv) ProbeFile(candidate string) (resolved string, isEmpty bool, ok bool, err error) {
	if env.IsFile(candidate) {
		return candidate, false, true, nil
	}
	for _, ext := range env.Extensions {
		if env.IsFile(candidate + ext) {
			return candidate + ext, false, true, nil
		}
	}

	manifest, merr := env.manifestAt(candidate)
	if merr != nil {
		return "", false, false, merr
	}

	if manifest != nil && manifest.Entry != "" {
		entryRel := relForm(manifest.Entry)
		match := MatchAlias(manifest.Aliases, entryRel)
		var entryTarget string
		switch {
		case match.Matched && match.Empty:
			return EmptySentinel, true, true, nil
		case match.Matched:
			entryTarget = match.Value
		default:
			entryTarget = manifest.Entry
		}
		sub := Join(candidate, entryTarget)
		if r, empty, found, err := env.ProbeFile(sub); err != nil {
			return "", false, false, err
		} else if found {
			return r, empty, true, nil
		}
		// entry didn't pan out — fall through to the index scan.
	}

	for _, ext := range env.Extensions {
		idx := Join(candidate, "index"+ext)
		if env.IsFile(idx) {
			return idx, false, true, nil
		}
	}

	return "", false, false, nil
}
