package resolve

// Options configures a single resolve call. IsFile and ReadFile are the
// only filesystem access the resolver ever performs; callers supply
// them (see the resolvefs package for ready-made providers).
type Options struct {
	// Filename is the absolute path of the file doing the importing.
	Filename string
	// Extensions is the ordered list of suffixes FileProbe tries after
	// an exact file match fails, e.g. []string{".js", ".json"}.
	Extensions []string
	IsFile     func(path string) bool
	ReadFile   func(path string) (string, error)
	// Conditions is the active export-condition set. Only membership
	// matters: a conditions object is walked in its own declaration
	// order and the first entry in this set (or "default") wins.
	// Defaults to {"browser", "import", "default"}.
	Conditions []string
	// ManifestCache, when set, memoizes manifest processing by package
	// directory instead of reading and parsing package.json on every
	// lookup. Optional; nil means "no cache."
	ManifestCache ManifestCache
}

var defaultConditions = []string{"browser", "import", "default"}

func (o Options) conditions() []string {
	if len(o.Conditions) > 0 {
		return o.Conditions
	}
	return defaultConditions
}

func (o Options) env() *probeEnv {
	return &probeEnv{IsFile: o.IsFile, ReadFile: o.ReadFile, Extensions: o.Extensions, Cache: o.ManifestCache}
}

// ResolveSync resolves specifier relative to opts.Filename and returns
// the absolute path it denotes, EmptySentinel if an alias or exports
// entry explicitly named the empty module, or a *ModuleNotFoundError /
// *MalformedManifestError on failure.
func ResolveSync(specifier string, opts Options) (string, error) {
	env := opts.env()
	importerDir := Dirname(opts.Filename)

	spec := NormalizeModuleSpecifier(specifier)

	enclosing, err := findEnclosingManifest(env, importerDir)
	if err != nil {
		return "", err
	}
	if enclosing != nil {
		if m := MatchAlias(enclosing.Aliases, spec); m.Matched {
			if m.Empty {
				return EmptySentinel, nil
			}
			spec = m.Value
		}
	}

	cls := Classify(spec)
	switch cls.Kind {
	case KindRelative, KindAbsolute:
		candidate := cls.Raw
		if cls.Kind == KindRelative {
			candidate = Join(importerDir, cls.Raw)
		}
		resolved, empty, ok, err := env.ProbeFile(candidate)
		if err != nil {
			return "", err
		}
		if empty {
			return EmptySentinel, nil
		}
		if !ok {
			return "", &ModuleNotFoundError{Specifier: specifier, Importer: opts.Filename}
		}
		return resolved, nil
	default:
		return resolveBare(env, cls, specifier, opts)
	}
}

// findEnclosingManifest walks from dir up to "/" and returns the first
// package.json it finds, processed, or nil if none exists anywhere
// above dir.
func findEnclosingManifest(env *probeEnv, dir string) (*ProcessedManifest, error) {
	for _, d := range GetParentDirectories(dir, "") {
		m, err := env.manifestAt(d)
		if err != nil {
			return nil, err
		}
		if m != nil {
			return m, nil
		}
	}
	return nil, nil
}

// resolveBare implements spec.md's node_modules walk: starting from the
// importer's directory, each ancestor is tried in turn as
// ancestor/node_modules/<pkg>. A directory with its own manifest is
// authoritative — a resolution failure there is definitive and stops
// the walk; a directory with no manifest simply isn't "this package"
// yet, and the walk continues outward.
func resolveBare(env *probeEnv, spec Specifier, original string, opts Options) (string, error) {
	importerDir := Dirname(opts.Filename)
	conditions := opts.conditions()

	for _, dir := range GetParentDirectories(importerDir, "") {
		root := Join(dir, Join("node_modules", spec.Pkg))
		manifest, err := env.manifestAt(root)
		if err != nil {
			return "", err
		}

		if manifest == nil {
			resolved, empty, ok, ferr := probeBareNoManifest(env, root, spec.Subpath)
			if ferr != nil {
				return "", ferr
			}
			if empty {
				return EmptySentinel, nil
			}
			if ok {
				return resolved, nil
			}
			continue // package not found at this level; keep walking outward
		}

		resolved, empty, ok, rerr := resolveWithManifest(env, manifest, root, spec.Subpath, conditions)
		if rerr != nil {
			return "", rerr
		}
		if empty {
			return EmptySentinel, nil
		}
		if ok {
			return resolved, nil
		}
		// The package exists here, and its own authority (exports, or
		// entry/index fallback) said no — that is definitive.
		return "", &ModuleNotFoundError{Specifier: original, Importer: opts.Filename}
	}

	return "", &ModuleNotFoundError{Specifier: original, Importer: opts.Filename}
}

func probeBareNoManifest(env *probeEnv, root, subpath string) (resolved string, empty bool, ok bool, err error) {
	if subpath == "" {
		return env.ProbeFile(root)
	}
	return env.ProbeFile(Join(root, subpath))
}

func resolveWithManifest(env *probeEnv, manifest *ProcessedManifest, root, subpath string, conditions []string) (resolved string, empty bool, ok bool, err error) {
	if manifest.Exports != nil {
		key := relForm(subpath)
		target, isEmpty, matched := MatchExports(manifest.Exports, key, conditions)
		if isEmpty {
			return "", true, true, nil
		}
		if !matched {
			return "", false, false, nil
		}
		return env.ProbeFile(Join(root, target))
	}

	if subpath == "" {
		return env.ProbeFile(root)
	}

	subRel := relForm(subpath)
	target := subpath
	if m := MatchAlias(manifest.Aliases, subRel); m.Matched {
		if m.Empty {
			return "", true, true, nil
		}
		target = trimRelPrefix(m.Value)
	}
	return env.ProbeFile(Join(root, target))
}

func trimRelPrefix(s string) string {
	if len(s) > 2 && s[:2] == "./" {
		return s[2:]
	}
	return s
}
