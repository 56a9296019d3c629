package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user defaults loaded from the config file. Command-line
// flags override config values, which override built-in defaults.
type Config struct {
	// Scale is the default raster scale factor.
	Scale float64 `toml:"scale"`

	// Formats are the default output formats for render.
	Formats []string `toml:"formats"`

	// CacheDir overrides the XDG cache directory.
	CacheDir string `toml:"cache_dir"`

	// Addr is the default listen address for serve mode.
	Addr string `toml:"addr"`

	// Redis is the Redis address for serve mode caching; empty uses the
	// file cache.
	Redis string `toml:"redis"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Scale: 2.0,
		Addr:  ":8734",
	}
}

// LoadConfig reads ~/.config/mapforge/config.toml (or
// $XDG_CONFIG_HOME/mapforge/config.toml). A missing file yields the
// defaults; a malformed file is an error.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
