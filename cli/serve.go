package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/ije/gox/log"

	"resolve.sh/httpapi"
	"resolve.sh/internal/appdir"
	"resolve.sh/internal/importmap"
	"resolve.sh/internal/rescache"
	"resolve.sh/internal/resolvefs"
)

// ServeCmd starts the HTTP resolve API per an optional --config file.
func ServeCmd(args []string) {
	configFile := ""
	for i := 0; i < len(args); i++ {
		if args[i] == "--config" && i+1 < len(args) {
			i++
			configFile = args[i]
		}
	}

	if configFile == "" {
		if dir, err := appdir.Dir(); err == nil {
			candidate := dir + "/config.json"
			if _, statErr := os.Stat(candidate); statErr == nil {
				configFile = candidate
			}
		}
	}

	var cfg *httpapi.ServerConfig
	if configFile != "" {
		loaded, err := httpapi.LoadConfig(configFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	} else {
		cfg = &httpapi.ServerConfig{Port: 8787, Extensions: []string{".js", ".mjs", ".cjs", ".json"}, ManifestCacheSize: 4096}
	}

	var provider httpapi.Provider
	switch cfg.Storage.Type {
	case "s3":
		backingDir := cfg.Storage.BackingDir
		if backingDir == "" {
			if dir, err := appdir.BackingCacheDir(); err == nil {
				backingDir = dir
			}
		}
		s3, err := resolvefs.NewS3(context.Background(), resolvefs.S3Config{
			Bucket:     cfg.Storage.Bucket,
			Region:     cfg.Storage.Region,
			BackingDir: backingDir,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		provider = s3
	default:
		provider = &resolvefs.OS{}
	}

	var im *importmap.ImportMap
	if cfg.ImportMapFile != "" {
		data, err := os.ReadFile(cfg.ImportMapFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		im, err = importmap.Parse(data)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	manifestCache, err := rescache.New(cfg.ManifestCacheSize)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := &log.Logger{}
	err = httpapi.Serve(cfg.Port, &httpapi.Config{
		Provider:      provider,
		Extensions:    cfg.Extensions,
		Logger:        logger,
		ImportMap:     im,
		ManifestCache: manifestCache,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
