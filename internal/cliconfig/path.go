package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/gruntwork-io/listfilter/internal/errors"
)

const (
	gitDir = ".git"
)

func getRepoDirs(baseDir string) string {
	const maxPathWalking = 100

	for range maxPathWalking {
		if isDir(filepath.Join(baseDir, gitDir)) {
			return baseDir
		}

		if parentDir := filepath.Dir(baseDir); parentDir != baseDir {
			baseDir = parentDir
		} else {
			break
		}
	}

	return ""
}

// DiscoveryPath looks for DefaultConfigFilename in baseDir, the root of the enclosing git
// repository and its `.config` dir, and then the user config dirs. It returns the first found,
// or an empty string.
func DiscoveryPath(baseDir string) (string, error) {
	dirs := []string{
		baseDir,
	}

	if repoDir := getRepoDirs(baseDir); repoDir != "" {
		dirs = append(dirs, []string{
			repoDir,
			filepath.Join(repoDir, ".config"),
		}...)
	}

	configDirs, err := ConfigDirs()
	if err != nil {
		return "", errors.New(err)
	}

	dirs = append(dirs, configDirs...)

	for _, dir := range dirs {
		if !isDir(dir) {
			continue
		}

		path := filepath.Join(dir, DefaultConfigFilename)

		if fileExists(path) {
			return path, nil
		}
	}

	return "", nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
