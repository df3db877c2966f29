// Package config resolves the run configuration for admonitions.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the global admonitions configuration directory.
//
// Resolution:
//   - $ADMONITIONS_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/admonitions if set
//   - %AppData%/admonitions on Windows
//   - ~/.config/admonitions elsewhere
//
// Returns "" when no home directory can be determined.
func Dir() string {
	if dir := os.Getenv("ADMONITIONS_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// GlobalFile returns the path of the global config file, or "" when Dir
// cannot be resolved.
func GlobalFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yml")
}
