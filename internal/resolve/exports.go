package resolve

import "strings"

// exportsTargetKind tags what shape an exports target tree node has.
type exportsTargetKind int

const (
	targetString exportsTargetKind = iota
	targetNull
	targetConditions
)

// conditionEntry is one row of a conditions object, in declaration
// order — selection walks this list in order and takes the first
// condition present in the active set, or "default".
type conditionEntry struct {
	Name   string
	Target exportsTarget
}

// exportsTarget is a recursive node in a compiled exports tree: a leaf
// path string, an explicit null (the empty sentinel), or a conditions
// object whose values are themselves targets.
type exportsTarget struct {
	Kind       exportsTargetKind
	Str        string
	Conditions []conditionEntry
}

// subpathEntry is one row of the subpath map, in declaration order.
type subpathEntry struct {
	Pattern string // always starts with "."
	Target  exportsTarget
}

// ExportsTree is the compiled form of a manifest's "exports" field.
type ExportsTree struct {
	// IsBareString is true when the whole field was a single string,
	// equivalent per spec to {".": <that string>}.
	IsBareString bool
	BareString   string
	Subpaths     []subpathEntry
}

// CompileExports turns a manifest's raw "exports" field into an
// ExportsTree. A nil return with a nil error means the field was
// absent. An object whose keys are a mix of subpath-style (leading
// ".") and condition-style (everything else) is malformed.
func CompileExports(raw StringOrObject) (*ExportsTree, error) {
	if !raw.IsSet {
		return nil, nil
	}
	if !raw.IsObj {
		return &ExportsTree{IsBareString: true, BareString: raw.Str}, nil
	}
	keys := raw.Obj.Keys()
	if len(keys) == 0 {
		return &ExportsTree{}, nil
	}
	subpathStyle := 0
	for _, k := range keys {
		if strings.HasPrefix(k, ".") {
			subpathStyle++
		}
	}
	if subpathStyle != 0 && subpathStyle != len(keys) {
		return nil, &MalformedManifestError{Reason: "exports object mixes subpath keys and condition keys"}
	}
	if subpathStyle == 0 {
		// Conditions map at the root, equivalent to {".": <object>}.
		target, err := compileTarget(rawObjectValue(raw.Obj))
		if err != nil {
			return nil, err
		}
		return &ExportsTree{Subpaths: []subpathEntry{{Pattern: ".", Target: target}}}, nil
	}
	tree := &ExportsTree{}
	for _, k := range keys {
		v, _ := raw.Obj.Get(k)
		target, err := compileTarget(v)
		if err != nil {
			return nil, err
		}
		tree.Subpaths = append(tree.Subpaths, subpathEntry{Pattern: k, Target: target})
	}
	return tree, nil
}

// rawObjectValue wraps an already-parsed OrderedObject back into the
// `any` shape compileTarget expects, so the root-is-a-conditions-map
// case can reuse the same recursive compiler as nested condition
// values.
func rawObjectValue(o OrderedObject) any {
	return &o
}

func compileTarget(v any) (exportsTarget, error) {
	switch val := v.(type) {
	case nil:
		return exportsTarget{Kind: targetNull}, nil
	case string:
		return exportsTarget{Kind: targetString, Str: val}, nil
	case *OrderedObject:
		var entries []conditionEntry
		for _, k := range val.Keys() {
			cv, _ := val.Get(k)
			ct, err := compileTarget(cv)
			if err != nil {
				return exportsTarget{}, err
			}
			entries = append(entries, conditionEntry{Name: k, Target: ct})
		}
		return exportsTarget{Kind: targetConditions, Conditions: entries}, nil
	case OrderedObject:
		return compileTarget(&val)
	default:
		return exportsTarget{}, &MalformedManifestError{Reason: "exports target must be a string, object, or null"}
	}
}

// MatchExports resolves subpathKey (always "." or "./...") against
// tree under the given active condition set, returning either a
// resolved relative path, the empty-sentinel flag, or no match at all.
func MatchExports(tree *ExportsTree, subpathKey string, conditions []string) (resolved string, isEmpty bool, matched bool) {
	if tree == nil {
		return "", false, false
	}
	if tree.IsBareString {
		if subpathKey != "." {
			return "", false, false
		}
		return resolveLeaf(exportsTarget{Kind: targetString, Str: tree.BareString}, "", false, conditions)
	}

	// Exact match takes priority over any pattern.
	for _, e := range tree.Subpaths {
		if !strings.Contains(e.Pattern, "*") && e.Pattern == subpathKey {
			return resolveLeaf(e.Target, "", false, conditions)
		}
	}

	var best *subpathEntry
	var bestCaptured string
	for i := range tree.Subpaths {
		e := &tree.Subpaths[i]
		star := strings.IndexByte(e.Pattern, '*')
		if star < 0 {
			continue
		}
		prefix, suffix := e.Pattern[:star], e.Pattern[star+1:]
		if !strings.HasPrefix(subpathKey, prefix) || !strings.HasSuffix(subpathKey, suffix) {
			continue
		}
		if len(subpathKey) < len(prefix)+len(suffix) {
			continue
		}
		captured := subpathKey[len(prefix) : len(subpathKey)-len(suffix)]
		if best == nil || len(prefix) > len(best.Pattern[:strings.IndexByte(best.Pattern, '*')]) {
			best, bestCaptured = e, captured
			continue
		}
		if len(prefix) == len(best.Pattern[:strings.IndexByte(best.Pattern, '*')]) && len(suffix) > len(best.Pattern[strings.IndexByte(best.Pattern, '*')+1:]) {
			best, bestCaptured = e, captured
		}
	}
	if best == nil {
		return "", false, false
	}
	return resolveLeaf(best.Target, bestCaptured, true, conditions)
}

// resolveLeaf descends through a target, selecting a condition branch
// at each conditions node, until it reaches a string or null leaf.
func resolveLeaf(target exportsTarget, captured string, hasCapture bool, conditions []string) (resolved string, isEmpty bool, matched bool) {
	switch target.Kind {
	case targetNull:
		return "", true, true
	case targetString:
		s := target.Str
		if hasCapture && strings.Contains(s, "*") {
			s = strings.Replace(s, "*", captured, 1)
		}
		return s, false, true
	case targetConditions:
		active := map[string]bool{}
		for _, c := range conditions {
			active[c] = true
		}
		var chosen *conditionEntry
		for i := range target.Conditions {
			c := &target.Conditions[i]
			if c.Name == "default" || active[c.Name] {
				chosen = c
				break
			}
		}
		if chosen == nil {
			return "", false, false
		}
		return resolveLeaf(chosen.Target, captured, hasCapture, conditions)
	default:
		return "", false, false
	}
}
