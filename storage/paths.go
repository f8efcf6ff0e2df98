package storage

import (
	"os"
	"path/filepath"
)

// appDirName is the directory created under the user config dir
const appDirName = "eblitmenu"

// baseDirOverride replaces the user config dir when set (CLI flag, tests)
var baseDirOverride string

// SetBaseDir overrides the directory used for all stored files.
// An empty string restores the default location.
func SetBaseDir(dir string) {
	baseDirOverride = dir
}

// GetBaseDir returns the directory holding config.json and saves
func GetBaseDir() (string, error) {
	if baseDirOverride != "" {
		return baseDirOverride, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// GetConfigPath returns the path to config.json
func GetConfigPath() (string, error) {
	base, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "config.json"), nil
}

// GetGameSaveDir returns the save directory for a game target
func GetGameSaveDir(target string) (string, error) {
	base, err := GetBaseDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "saves", target), nil
}

// EnsureDirectories creates the base and saves directories
func EnsureDirectories() error {
	base, err := GetBaseDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(filepath.Join(base, "saves"), 0755)
}
