//go:build windows
// +build windows

package cliconfig

import (
	"os"
	"path/filepath"
)

const (
	DefaultConfigFilename = "listfilter.hcl"
	ConfigDir             = "listfilter"
)

func ConfigDirs() ([]string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return nil, err
	}

	return []string{filepath.Join(dir, ConfigDir)}, nil
}
