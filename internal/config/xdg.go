package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under XDG base directories.
const AppName = "textentropy"

// DefaultConfigDir returns the application config directory.
func DefaultConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.toml")
}
