// Package achievements tracks per-game achievements and statistics.
package achievements

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/quasilyte/gdata"
)

// AchievementDescription describes one achievement of a game
type AchievementDescription struct {
	ID      string
	Title   string
	Comment string
	Hidden  bool // Not listed until unlocked
}

// StatDescription describes one statistic of a game
type StatDescription struct {
	ID      string
	Comment string
	Start   int
}

// Info is everything an engine reports about a game's achievements
type Info struct {
	Platform     string
	AppID        string
	Descriptions []AchievementDescription
	Stats        []StatDescription
}

// Store persists achievement state. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// savedState is the JSON stored per game
type savedState struct {
	Unlocked map[string]int64 `json:"unlocked"` // Achievement ID -> unix time
	Stats    map[string]int   `json:"stats"`
}

// Manager holds the achievements of the active game domain
type Manager struct {
	store Store
	info  Info
	state savedState

	onUnlock func(AchievementDescription)
	now      func() time.Time
}

// OpenStore opens the gdata store used for achievement files
func OpenStore(appName string) (Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open achievements store: %w", err)
	}
	return m, nil
}

// NewManager creates a manager. A nil store keeps state in memory only.
func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		state: newSavedState(),
		now:   time.Now,
	}
}

func newSavedState() savedState {
	return savedState{
		Unlocked: make(map[string]int64),
		Stats:    make(map[string]int),
	}
}

// SetOnUnlockCallback registers fn to run whenever an achievement unlocks
func (m *Manager) SetOnUnlockCallback(fn func(AchievementDescription)) {
	m.onUnlock = fn
}

// SetActiveDomain switches to the game described by info and loads its state.
// An Info without AppID deactivates achievements.
func (m *Manager) SetActiveDomain(info Info) {
	if m.info.AppID == info.AppID && m.info.Platform == info.Platform && info.AppID != "" {
		// Same game, refresh descriptions only
		m.info = info
		return
	}

	m.info = info
	m.state = newSavedState()
	if info.AppID == "" || m.store == nil {
		return
	}

	data, err := m.store.LoadItem(m.itemKey())
	if err != nil {
		log.Printf("Warning: Could not load achievements: %v", err)
		return
	}
	if data == nil {
		// Nothing unlocked yet
		return
	}
	if err := json.Unmarshal(data, &m.state); err != nil {
		log.Printf("Warning: Could not parse achievements for %s: %v", info.AppID, err)
		m.state = newSavedState()
		return
	}
	if m.state.Unlocked == nil {
		m.state.Unlocked = make(map[string]int64)
	}
	if m.state.Stats == nil {
		m.state.Stats = make(map[string]int)
	}
}

// UnsetActiveDomain drops the active game
func (m *Manager) UnsetActiveDomain() {
	m.SetActiveDomain(Info{})
}

// IsReady returns whether a game domain is active
func (m *Manager) IsReady() bool {
	return m.info.AppID != ""
}

// GetAchievementCount returns the number of achievements of the active game
func (m *Manager) GetAchievementCount() int {
	return len(m.info.Descriptions)
}

// GetStatCount returns the number of statistics of the active game
func (m *Manager) GetStatCount() int {
	return len(m.info.Stats)
}

// Descriptions returns the achievements of the active game
func (m *Manager) Descriptions() []AchievementDescription {
	return m.info.Descriptions
}

// Stats returns the statistics of the active game
func (m *Manager) Stats() []StatDescription {
	return m.info.Stats
}

// IsAchieved returns whether an achievement is unlocked
func (m *Manager) IsAchieved(id string) bool {
	_, ok := m.state.Unlocked[id]
	return ok
}

// AchievedAt returns when an achievement was unlocked
func (m *Manager) AchievedAt(id string) (time.Time, bool) {
	ts, ok := m.state.Unlocked[id]
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(ts, 0), true
}

// AchievedCount returns how many achievements of the active game are unlocked
func (m *Manager) AchievedCount() int {
	count := 0
	for _, d := range m.info.Descriptions {
		if m.IsAchieved(d.ID) {
			count++
		}
	}
	return count
}

// SetAchievement unlocks an achievement. It returns false when the ID is
// unknown or the achievement was already unlocked.
func (m *Manager) SetAchievement(id string) bool {
	desc, ok := m.description(id)
	if !ok || m.IsAchieved(id) {
		return false
	}
	m.state.Unlocked[id] = m.now().Unix()
	m.save()
	if m.onUnlock != nil {
		m.onUnlock(desc)
	}
	return true
}

// ClearAchievement locks an achievement again
func (m *Manager) ClearAchievement(id string) {
	if !m.IsAchieved(id) {
		return
	}
	delete(m.state.Unlocked, id)
	m.save()
}

// GetStat returns the value of a statistic, or its start value
func (m *Manager) GetStat(id string) int {
	if v, ok := m.state.Stats[id]; ok {
		return v
	}
	for _, s := range m.info.Stats {
		if s.ID == id {
			return s.Start
		}
	}
	return 0
}

// SetStat stores the value of a statistic
func (m *Manager) SetStat(id string, value int) {
	m.state.Stats[id] = value
	m.save()
}

// IncrementStat adds delta to a statistic and returns the new value
func (m *Manager) IncrementStat(id string, delta int) int {
	v := m.GetStat(id) + delta
	m.SetStat(id, v)
	return v
}

// description looks up an achievement of the active game
func (m *Manager) description(id string) (AchievementDescription, bool) {
	for _, d := range m.info.Descriptions {
		if d.ID == id {
			return d, true
		}
	}
	return AchievementDescription{}, false
}

// itemKey returns the store key of the active game
func (m *Manager) itemKey() string {
	return sanitizeKey(m.info.Platform + "_" + m.info.AppID)
}

// save writes the active game's state to the store
func (m *Manager) save() {
	if m.store == nil || m.info.AppID == "" {
		return
	}
	data, err := json.Marshal(m.state)
	if err != nil {
		log.Printf("Warning: Could not serialize achievements: %v", err)
		return
	}
	if err := m.store.SaveItem(m.itemKey(), data); err != nil {
		log.Printf("Warning: Could not save achievements: %v", err)
	}
}

// sanitizeKey keeps store keys to lowercase letters, digits and underscores
func sanitizeKey(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
