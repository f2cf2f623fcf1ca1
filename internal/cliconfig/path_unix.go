//go:build !windows
// +build !windows

package cliconfig

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigFilename = ".listfilter.hcl"
	ConfigXDGDir          = "listfilter"
)

func ConfigDirs() ([]string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	dirs := []string{dir}

	if xdgDir := os.Getenv("XDG_CONFIG_HOME"); xdgDir != "" {
		dirs = append(dirs, filepath.Join(xdgDir, ConfigXDGDir))
	}

	return dirs, nil
}
