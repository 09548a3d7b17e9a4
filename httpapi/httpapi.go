// Package httpapi exposes the resolver over HTTP: a single POST
// /resolve endpoint that drives resolve.ResolveAsync over a configured
// resolvefs provider, for hosts that want to call into this resolver
// as a service rather than a library.
package httpapi

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ije/gox/log"
	"github.com/ije/rex"

	"resolve.sh/internal/importmap"
	"resolve.sh/internal/rescache"
	"resolve.sh/internal/resolve"
	"resolve.sh/internal/resolvefs"
	"resolve.sh/internal/uaprofile"
)

// MB bounds how much request body this handler will read.
const MB = 1 << 20

// Provider is the filesystem predicate pair a Config selects between.
type Provider interface {
	IsFile(path string) bool
	ReadFile(path string) (string, error)
}

// Config selects the backing provider and default probe extensions for
// the HTTP API.
type Config struct {
	Provider   Provider
	Extensions []string
	Logger     *log.Logger
	// ImportMap, when set, is consulted before the core resolve
	// algorithm: a specifier it rewrites is resolved again from the
	// rewritten form, never from the original.
	ImportMap *importmap.ImportMap
	// ManifestCache, when set, memoizes manifest processing across
	// requests instead of re-reading and re-parsing package.json on
	// every resolve.
	ManifestCache *rescache.ManifestCache
}

type resolveRequest struct {
	Specifier  string   `json:"specifier"`
	Importer   string   `json:"importer"`
	Extensions []string `json:"extensions"`
	UserAgent  string   `json:"userAgent"`
}

// resolveOutcome is the status/body pair handleResolveRequest produces,
// kept separate from rex's types so the request-handling logic can be
// exercised without a live rex.Context.
type resolveOutcome struct {
	status   int
	body     any
	noCache  bool
	asStatus bool // true when body is a structured value for rex.Status rather than an error string for rex.Err
}

// handleResolveRequest contains every decision NewHandler's route
// makes once it has a parsed request: validation, import-map rewrite,
// resolution, and error-to-status mapping.
func handleResolveRequest(cfg *Config, provider Provider, req resolveRequest) resolveOutcome {
	if req.Specifier == "" || req.Importer == "" {
		return resolveOutcome{status: 400, body: "specifier and importer are required"}
	}

	extensions := req.Extensions
	if len(extensions) == 0 {
		extensions = cfg.Extensions
	}

	specifier := req.Specifier
	if cfg.ImportMap != nil {
		if rewritten, ok := cfg.ImportMap.Resolve(specifier, resolve.Dirname(req.Importer)); ok {
			specifier = rewritten
		}
	}

	opts := resolve.Options{
		Filename:   req.Importer,
		Extensions: extensions,
		IsFile:     provider.IsFile,
		ReadFile:   provider.ReadFile,
		Conditions: uaprofile.ConditionsFor(req.UserAgent),
	}
	if cfg.ManifestCache != nil {
		opts.ManifestCache = cfg.ManifestCache
	}

	result := <-resolve.ResolveAsync(specifier, opts)
	if result.Err != nil {
		if cfg.Logger != nil {
			cfg.Logger.Warnf("resolve %q from %q: %v", req.Specifier, req.Importer, result.Err)
		}
		switch result.Err.(type) {
		case *resolve.ModuleNotFoundError:
			return resolveOutcome{
				status:   404,
				noCache:  true,
				asStatus: true,
				body: map[string]any{
					"error":     result.Err.Error(),
					"specifier": req.Specifier,
					"importer":  req.Importer,
				},
			}
		case *resolve.MalformedManifestError:
			return resolveOutcome{status: 400, body: result.Err.Error()}
		default:
			return resolveOutcome{status: 500, body: result.Err.Error()}
		}
	}

	return resolveOutcome{status: 200, body: map[string]any{"resolved": result.Path}}
}

// NewHandler builds the rex.Handle that serves POST /resolve.
func NewHandler(cfg *Config) rex.Handle {
	provider := cfg.Provider
	if provider == nil {
		provider = &resolvefs.OS{}
	}

	return func(ctx *rex.Context) any {
		if ctx.R.Method != "POST" || ctx.R.URL.Path != "/resolve" {
			return rex.Status(404, "not found")
		}

		var req resolveRequest
		err := json.NewDecoder(io.LimitReader(ctx.R.Body, MB)).Decode(&req)
		ctx.R.Body.Close()
		if err != nil {
			return rex.Err(400, "require valid json body")
		}

		outcome := handleResolveRequest(cfg, provider, req)
		if outcome.noCache {
			ctx.SetHeader("Cache-Control", "no-cache")
		}
		switch {
		case outcome.asStatus:
			return rex.Status(outcome.status, outcome.body)
		case outcome.status >= 400:
			return rex.Err(outcome.status, fmt.Sprint(outcome.body))
		default:
			return outcome.body
		}
	}
}

// Serve registers the resolve handler with rex and starts listening on
// port, blocking until the server stops or errors.
func Serve(port uint16, cfg *Config) error {
	rex.Use(
		rex.Header("Server", "resolve.sh"),
		rex.ErrorLogger(cfg.Logger),
		NewHandler(cfg),
	)
	return <-rex.Serve(rex.ServerConfig{Port: port})
}
