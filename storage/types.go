package storage

// Domain holds the key/value pairs of one configuration domain
type Domain map[string]string

// Well-known domain names
const (
	// ApplicationDomain holds settings shared by every game
	ApplicationDomain = "eblitmenu"
	// TransientDomain holds settings that are never written to disk
	TransientDomain = "__transient"
)

// ConfigFile represents the configuration stored in config.json
type ConfigFile struct {
	Version      int               `json:"version"`
	ActiveDomain string            `json:"activeDomain,omitempty"` // Last active game target
	Domains      map[string]Domain `json:"domains"`                // Domain name -> key/value pairs
}

// DefaultConfigFile returns a new ConfigFile with default values
func DefaultConfigFile() *ConfigFile {
	return &ConfigFile{
		Version: 1,
		Domains: map[string]Domain{
			ApplicationDomain: {},
		},
	}
}
