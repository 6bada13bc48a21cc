package config

import (
	"os"
	"path/filepath"
)

// appName is the directory name used under the XDG base directories.
const appName = "nanox"

// Paths holds the per-user directories nanox reads from.
type Paths struct {
	// ConfigDir holds config.toml, the colorscheme/ and langs/ directories.
	ConfigDir string
	// DataDir is searched after ConfigDir for colorscheme/ and langs/.
	DataDir string
}

// ResolvePaths computes the user directories from the environment.
// getenv is normally os.Getenv. Directories that cannot be determined
// are left empty and callers skip them.
func ResolvePaths(getenv func(string) string) Paths {
	if getenv == nil {
		getenv = os.Getenv
	}
	home := getenv("HOME")

	p := Paths{
		ConfigDir: getenv("NANOX_CONFIG_DIR"),
		DataDir:   getenv("NANOX_DATA_DIR"),
	}
	if p.ConfigDir == "" {
		p.ConfigDir = xdgDir(getenv("XDG_CONFIG_HOME"), home, ".config")
	}
	if p.DataDir == "" {
		p.DataDir = xdgDir(getenv("XDG_DATA_HOME"), home, filepath.Join(".local", "share"))
	}
	return p
}

func xdgDir(xdg, home, fallback string) string {
	if xdg != "" {
		return filepath.Join(xdg, appName)
	}
	if home != "" {
		return filepath.Join(home, fallback, appName)
	}
	return ""
}

// SettingsFile returns the path of config.toml, or "" without a config dir.
func (p Paths) SettingsFile() string {
	if p.ConfigDir == "" {
		return ""
	}
	return filepath.Join(p.ConfigDir, "config.toml")
}
