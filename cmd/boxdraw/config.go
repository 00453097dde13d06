package main

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// cliConfig is the shape of boxdraw.toml: per-invocation defaults that
// command-line flags can still override.
type cliConfig struct {
	TextWidth  float64 `toml:"text_width"`
	TextHeight float64 `toml:"text_height"`
}

// loadConfig reads path, or ~/.config/boxdraw/config.toml if path is empty.
// A missing default config file is not an error; an explicitly requested
// path that doesn't exist is.
func loadConfig(path string) (cliConfig, error) {
	var cfg cliConfig

	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, nil
		}
		def := filepath.Join(home, ".config", "boxdraw", "config.toml")
		if _, err := os.Stat(def); err != nil {
			return cfg, nil
		}
		path = def
	}

	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}
