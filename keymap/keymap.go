// Package keymap describes remappable input actions for an engine.
package keymap

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Config is the subset of the configuration store keymaps persist through
type Config interface {
	HasKey(key, domain string) bool
	Get(key, domain string) string
	Set(key, value, domain string)
}

// Action is one remappable input action
type Action struct {
	ID          string
	Description string
	DefaultKeys []ebiten.Key
}

// Keymap groups the actions of one input context (game, menu, ...)
type Keymap struct {
	ID          string
	Description string
	Actions     []*Action

	// bindings holds the current keys per action ID
	bindings map[string][]ebiten.Key
}

// Array is the ordered set of keymaps an engine contributes
type Array []*Keymap

// New creates an empty keymap
func New(id, description string) *Keymap {
	return &Keymap{
		ID:          id,
		Description: description,
		bindings:    make(map[string][]ebiten.Key),
	}
}

// AddAction appends an action bound to its default keys
func (k *Keymap) AddAction(id, description string, defaults ...ebiten.Key) *Action {
	a := &Action{ID: id, Description: description, DefaultKeys: defaults}
	k.Actions = append(k.Actions, a)
	k.bindings[id] = append([]ebiten.Key(nil), defaults...)
	return a
}

// Action returns the action with the given ID, or nil
func (k *Keymap) Action(id string) *Action {
	for _, a := range k.Actions {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// Bindings returns the keys currently bound to an action
func (k *Keymap) Bindings(actionID string) []ebiten.Key {
	return k.bindings[actionID]
}

// SetBindings replaces the keys bound to an action. A key can only trigger
// one action per keymap, so it is taken away from any other action first.
func (k *Keymap) SetBindings(actionID string, keys ...ebiten.Key) {
	for _, key := range keys {
		for id, bound := range k.bindings {
			if id != actionID {
				k.bindings[id] = removeKey(bound, key)
			}
		}
	}
	k.bindings[actionID] = append([]ebiten.Key(nil), keys...)
}

// ResetBindings restores an action's default keys
func (k *Keymap) ResetBindings(actionID string) {
	if a := k.Action(actionID); a != nil {
		k.SetBindings(actionID, a.DefaultKeys...)
	}
}

// ActionFor returns the action bound to key
func (k *Keymap) ActionFor(key ebiten.Key) (string, bool) {
	for _, a := range k.Actions {
		for _, bound := range k.bindings[a.ID] {
			if bound == key {
				return a.ID, true
			}
		}
	}
	return "", false
}

// ConfigKey returns the configuration key storing an action's bindings
func ConfigKey(keymapID, actionID string) string {
	return "keymap_" + keymapID + "_" + actionID
}

// LoadMappings reads stored bindings for every action from domain.
// Actions without a stored value keep their defaults.
func (k *Keymap) LoadMappings(cfg Config, domain string) {
	for _, a := range k.Actions {
		key := ConfigKey(k.ID, a.ID)
		if !cfg.HasKey(key, domain) {
			k.bindings[a.ID] = append([]ebiten.Key(nil), a.DefaultKeys...)
			continue
		}
		k.bindings[a.ID] = ParseKeys(cfg.Get(key, domain))
	}
}

// SaveMappings writes the bindings of every action to domain
func (k *Keymap) SaveMappings(cfg Config, domain string) {
	for _, a := range k.Actions {
		cfg.Set(ConfigKey(k.ID, a.ID), FormatKeys(k.bindings[a.ID]), domain)
	}
}

// keysByName maps ebiten key names back to keys
var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ParseKey returns the key with the given name (case-insensitive)
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keysByName[strings.ToLower(name)]
	return k, ok
}

// ParseKeys parses a space separated key list, skipping unknown names
func ParseKeys(s string) []ebiten.Key {
	var keys []ebiten.Key
	for _, name := range strings.Fields(s) {
		if k, ok := ParseKey(name); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// FormatKeys joins key names with spaces
func FormatKeys(keys []ebiten.Key) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, " ")
}

// removeKey returns keys without key
func removeKey(keys []ebiten.Key, key ebiten.Key) []ebiten.Key {
	result := keys[:0:0]
	for _, k := range keys {
		if k != key {
			result = append(result, k)
		}
	}
	return result
}
