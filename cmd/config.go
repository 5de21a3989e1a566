package cmd

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// config holds the optional defaults read from the user's config file.
// Every field can be overridden by a flag.
type config struct {
	Currency string `toml:"currency"`
	Backend  string `toml:"backend"`
	Dir      string `toml:"dir"`
}

// loadConfig reads tally/config.toml from the user configuration directory.
// A missing or unreadable file is simply an empty config: the file is a
// convenience, never a requirement.
func loadConfig() config {
	var cfg config
	dir, err := os.UserConfigDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(dir, "tally", "config.toml")
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return config{}
	}
	return cfg
}
