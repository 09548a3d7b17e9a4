package httpapi

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// ServerConfig is the on-disk shape of the "serve" subcommand's
// --config file.
type ServerConfig struct {
	Port       uint16   `json:"port"`
	Extensions []string `json:"extensions"`
	Storage    struct {
		Type       string `json:"type"` // "local" or "s3"
		Dir        string `json:"dir"`
		Bucket     string `json:"bucket"`
		Region     string `json:"region"`
		BackingDir string `json:"backingDir"`
	} `json:"storage"`
	ManifestCacheSize int64  `json:"manifestCacheSize"`
	ImportMapFile     string `json:"importMapFile"`
}

// LoadConfig reads and parses a ServerConfig from filename.
func LoadConfig(filename string) (*ServerConfig, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("fail to read config file: %w", err)
	}
	defer file.Close()

	var cfg ServerConfig
	if err := json.NewDecoder(file).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("fail to parse config: %w", err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8787
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = []string{".js", ".mjs", ".cjs", ".json"}
	}
	if cfg.ManifestCacheSize == 0 {
		cfg.ManifestCacheSize = 4096
	}
	return &cfg, nil
}
