// Package config holds the launch options of the desktop shell.
package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config is filled from command-line flags, falling back to environment
// variables and then to the defaults below.
type Config struct {
	DataDir string // holds xtime.db
	Silent  bool   // start with the window hidden (autostart launch)
	Locale  string // tray menu language: tr or en
	Debug   bool
}

const (
	envDataDir = "XTIME_DATA_DIR"
	envDebug   = "XTIME_DEBUG"

	dbFile = "xtime.db"
)

// Default returns the configuration used when no flag is given.
func Default() Config {
	cfg := Config{
		DataDir: defaultDataDir(),
		Locale:  "tr",
	}
	if v := os.Getenv(envDataDir); v != "" {
		cfg.DataDir = v
	}
	if v, err := strconv.ParseBool(os.Getenv(envDebug)); err == nil {
		cfg.Debug = v
	}
	return cfg
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "xtime")
	}
	return filepath.Join(homeDir, ".local", "share", "xtime")
}

// DBPath returns the SQLite database location.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, dbFile)
}
