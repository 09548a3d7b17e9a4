// Package rescache is a caller-side memoizing wrapper around manifest
// processing, keyed by package directory and backed by an in-memory
// ristretto LRU — the resolve core itself stays stateless per call;
// this lives strictly above it as a documented caching boundary.
package rescache

import (
	"github.com/dgraph-io/ristretto"

	"resolve.sh/internal/resolve"
)

// ManifestCache memoizes resolve.ProcessPackageJSON results by package
// directory. It satisfies resolve.ManifestCache, so a *ManifestCache
// can be set directly on resolve.Options.ManifestCache.
type ManifestCache struct {
	cache *ristretto.Cache
}

// New builds a ManifestCache with room for roughly size entries.
func New(size int64) (*ManifestCache, error) {
	impl, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: size * 10,
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &ManifestCache{cache: impl}, nil
}

// Get returns the processed manifest for pkgDir, reading and parsing
// it via raw only on a cache miss. Because resolve.ProcessPackageJSON
// is a pure function of manifest bytes and pkgDir, a cached result is
// indistinguishable from a freshly computed one — the cache only
// changes latency, never the outcome.
func (c *ManifestCache) Get(pkgDir string, raw resolve.RawManifestFunc) (*resolve.ProcessedManifest, error) {
	if v, ok := c.cache.Get(pkgDir); ok {
		pm, _ := v.(*resolve.ProcessedManifest)
		return pm, nil
	}
	content, err := raw(pkgDir)
	if err != nil {
		return nil, err
	}
	if content == nil {
		c.cache.Set(pkgDir, (*resolve.ProcessedManifest)(nil), 1)
		c.cache.Wait()
		return nil, nil
	}
	pm, err := resolve.ProcessPackageJSON(content, pkgDir)
	if err != nil {
		return nil, err
	}
	c.cache.Set(pkgDir, pm, 1)
	c.cache.Wait()
	return pm, nil
}

// Forget evicts pkgDir's cached manifest. The cache never calls this
// itself — invalidation is entirely the caller's business, since the
// core has no notion of a manifest "changing".
func (c *ManifestCache) Forget(pkgDir string) {
	c.cache.Del(pkgDir)
	c.cache.Wait()
}

// Purge clears every cached manifest.
func (c *ManifestCache) Purge() {
	c.cache.Clear()
	c.cache.Wait()
}
