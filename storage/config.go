package storage

import (
	"errors"
	"os"
)

// LoadConfig loads the configuration from config.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func LoadConfig() (*ConfigFile, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	// Check if file exists
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfigFile(), nil
	}

	config := &ConfigFile{}
	if err := ReadJSON(path, config); err != nil {
		return nil, err
	}

	// Apply any migration for older config versions
	config = migrateConfig(config)

	return config, nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *ConfigFile) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing creates a default config.json if it doesn't exist
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return SaveConfig(DefaultConfigFile())
	}

	return nil
}

// migrateConfig handles any necessary migrations from older config versions
func migrateConfig(config *ConfigFile) *ConfigFile {
	// Currently at version 1, no migrations needed
	if config.Version == 0 {
		config.Version = 1
	}

	if config.Domains == nil {
		config.Domains = make(map[string]Domain)
	}
	if config.Domains[ApplicationDomain] == nil {
		config.Domains[ApplicationDomain] = Domain{}
	}

	// The transient domain must never come back from disk
	delete(config.Domains, TransientDomain)

	return config
}
