package storage

import (
	"log"
	"strconv"
	"strings"
)

// ConfigManager is a domain-keyed key/value configuration store.
//
// The empty domain name addresses the currently active settings. Reads
// with it search the transient domain, the active game domain, the
// application domain and the registered defaults in that order. Writes
// with it go to the active game domain (or the application domain when
// no game is active) and clear any transient override.
type ConfigManager struct {
	file         *ConfigFile
	transient    Domain
	defaults     Domain
	activeDomain string

	// persist writes the file on Flush; nil keeps everything in memory
	persist func(*ConfigFile) error
}

// NewConfigManager creates a manager over file. persist is called by Flush
// and may be nil for an in-memory store.
func NewConfigManager(file *ConfigFile, persist func(*ConfigFile) error) *ConfigManager {
	if file == nil {
		file = DefaultConfigFile()
	}
	file = migrateConfig(file)
	return &ConfigManager{
		file:         file,
		transient:    Domain{},
		defaults:     Domain{},
		activeDomain: file.ActiveDomain,
		persist:      persist,
	}
}

// OpenConfigManager loads config.json and returns a manager that flushes
// back to it. When the file is corrupted the manager starts from defaults,
// never overwrites the broken file, and the parse error is returned so the
// caller can tell the user.
func OpenConfigManager() (*ConfigManager, error) {
	file, err := LoadConfig()
	if err != nil {
		return NewConfigManager(DefaultConfigFile(), nil), err
	}
	return NewConfigManager(file, SaveConfig), nil
}

// ActiveDomainName returns the name of the active game domain, or "" when none
func (c *ConfigManager) ActiveDomainName() string {
	return c.activeDomain
}

// SetActiveDomain makes name the active game domain, creating it if needed.
// An empty name deactivates the current game.
func (c *ConfigManager) SetActiveDomain(name string) {
	c.activeDomain = name
	if name != "" {
		c.AddGameDomain(name)
	}
	c.file.ActiveDomain = name
}

// AddGameDomain creates an empty game domain if it doesn't exist
func (c *ConfigManager) AddGameDomain(name string) {
	if _, ok := c.file.Domains[name]; !ok {
		c.file.Domains[name] = Domain{}
	}
}

// HasGameDomain returns whether a domain with the given name exists
func (c *ConfigManager) HasGameDomain(name string) bool {
	_, ok := c.file.Domains[name]
	return ok
}

// RegisterDefault sets the fallback value returned when no domain has key
func (c *ConfigManager) RegisterDefault(key, value string) {
	c.defaults[key] = value
}

// RegisterDefaultBool is RegisterDefault for booleans
func (c *ConfigManager) RegisterDefaultBool(key string, value bool) {
	c.defaults[key] = strconv.FormatBool(value)
}

// RegisterDefaultInt is RegisterDefault for integers
func (c *ConfigManager) RegisterDefaultInt(key string, value int) {
	c.defaults[key] = strconv.Itoa(value)
}

// domain returns the named domain, or nil if it doesn't exist
func (c *ConfigManager) domain(name string) Domain {
	if name == TransientDomain {
		return c.transient
	}
	return c.file.Domains[name]
}

// searchOrder returns the domains consulted for the active settings
func (c *ConfigManager) searchOrder() []Domain {
	order := []Domain{c.transient}
	if c.activeDomain != "" {
		if d := c.domain(c.activeDomain); d != nil {
			order = append(order, d)
		}
	}
	return append(order, c.domain(ApplicationDomain))
}

// HasKey returns whether key is set in domain. Defaults don't count.
func (c *ConfigManager) HasKey(key, domain string) bool {
	if domain == "" {
		for _, d := range c.searchOrder() {
			if _, ok := d[key]; ok {
				return true
			}
		}
		return false
	}
	_, ok := c.domain(domain)[key]
	return ok
}

// Get returns the value of key in domain, falling back to the registered default
func (c *ConfigManager) Get(key, domain string) string {
	if domain == "" {
		for _, d := range c.searchOrder() {
			if v, ok := d[key]; ok {
				return v
			}
		}
		return c.defaults[key]
	}
	if v, ok := c.domain(domain)[key]; ok {
		return v
	}
	return c.defaults[key]
}

// Set stores value for key in domain
func (c *ConfigManager) Set(key, value, domain string) {
	if domain == "" {
		target := ApplicationDomain
		if c.activeDomain != "" {
			target = c.activeDomain
		}
		c.writable(target)[key] = value
		delete(c.transient, key)
		return
	}
	c.writable(domain)[key] = value
}

// writable returns the named domain, creating it on first write
func (c *ConfigManager) writable(name string) Domain {
	if name == TransientDomain {
		return c.transient
	}
	d, ok := c.file.Domains[name]
	if !ok {
		d = Domain{}
		c.file.Domains[name] = d
	}
	return d
}

// RemoveKey deletes key from domain. The empty domain removes it from the
// active game domain and the transient domain.
func (c *ConfigManager) RemoveKey(key, domain string) {
	if domain == "" {
		delete(c.transient, key)
		if c.activeDomain != "" {
			delete(c.domain(c.activeDomain), key)
		}
		return
	}
	delete(c.domain(domain), key)
}

// GetBool returns key parsed as a boolean. Unparseable values read as false.
func (c *ConfigManager) GetBool(key, domain string) bool {
	value := c.Get(key, domain)
	if value == "" {
		return false
	}
	b, ok := ParseBool(value)
	if !ok {
		log.Printf("Warning: config key %q has non-boolean value %q", key, value)
	}
	return b
}

// SetBool stores a boolean for key in domain
func (c *ConfigManager) SetBool(key string, value bool, domain string) {
	c.Set(key, strconv.FormatBool(value), domain)
}

// GetInt returns key parsed as an integer. Unparseable values read as 0.
func (c *ConfigManager) GetInt(key, domain string) int {
	value := c.Get(key, domain)
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		log.Printf("Warning: config key %q has non-integer value %q", key, value)
		return 0
	}
	return n
}

// SetInt stores an integer for key in domain
func (c *ConfigManager) SetInt(key string, value int, domain string) {
	c.Set(key, strconv.Itoa(value), domain)
}

// Flush writes every persistent domain to disk
func (c *ConfigManager) Flush() error {
	if c.persist == nil {
		return nil
	}
	c.file.ActiveDomain = c.activeDomain
	return c.persist(c.file)
}

// ParseBool accepts the spellings users put in config files.
// The second result reports whether value was recognised.
func ParseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "yes", "on", "1":
		return true, true
	case "false", "no", "off", "0":
		return false, true
	}
	return false, false
}
