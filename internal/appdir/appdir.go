// Package appdir locates the per-user directory resolve.sh uses for
// its default config file and on-disk caches when no explicit path is
// given.
package appdir

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the resolve.sh application directory, creating nothing.
func Dir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".resolve.sh")
	if runtime.GOOS == "windows" {
		dir = filepath.Join(homeDir, "AppData", "Local", "resolve.sh")
	}

	return dir, nil
}

// BackingCacheDir returns the default local-disk backing cache
// directory for a remote filesystem provider.
func BackingCacheDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}
