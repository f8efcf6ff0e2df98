package engine

import (
	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/keymap"
	"github.com/user-none/eblitmenu/storage"
	"github.com/user-none/eblitmenu/system"
)

type saveCall struct {
	slot int
	desc string
}

type testEngine struct {
	features map[Feature]bool

	loadAllowed, saveAllowed bool
	loadReason, saveReason   string
	saveErr                  error

	saves     []saveCall
	loadSlots []int
	meta      *testMeta
}

func (e *testEngine) HasFeature(f Feature) bool { return e.features[f] }

func (e *testEngine) CanLoadGameStateCurrently() (bool, string) {
	return e.loadAllowed, e.loadReason
}

func (e *testEngine) CanSaveGameStateCurrently() (bool, string) {
	return e.saveAllowed, e.saveReason
}

func (e *testEngine) SaveGameState(slot int, desc string) error {
	e.saves = append(e.saves, saveCall{slot, desc})
	return e.saveErr
}

func (e *testEngine) SetGameToLoadSlot(slot int) {
	e.loadSlots = append(e.loadSlots, slot)
}

func (e *testEngine) MetaEngine() MetaEngine { return e.meta }

type testMeta struct {
	cfg      *storage.ConfigManager
	options  ExtraGuiOptions
	keymaps  keymap.Array
	info     achievements.Info
	saveList []gui.SaveStateDescriptor
	domains  []string
}

func (m *testMeta) Name() string { return "test" }

func (m *testMeta) BuildEngineOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget {
	m.domains = append(m.domains, domain)
	return BuildExtraOptionsWidget(boss, name, domain, m.cfg, m.options)
}

func (m *testMeta) InitKeymaps(domain string) keymap.Array { return m.keymaps }

func (m *testMeta) AchievementsInfo(domain string) achievements.Info { return m.info }

func (m *testMeta) ListSaves(target string) []gui.SaveStateDescriptor { return m.saveList }

func (m *testMeta) MaxSaveSlot() int { return 4 }

type testBackend struct {
	noQuit  bool
	queue   *system.EventQueue
	domains []string
	options func(boss gui.Container, name, domain string) gui.OptionsWidget
}

func (b *testBackend) HasFeature(f system.Feature) bool {
	return f == system.FeatureNoQuit && b.noQuit
}

func (b *testBackend) BuildBackendOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget {
	b.domains = append(b.domains, domain)
	if b.options == nil {
		return nil
	}
	return b.options(boss, name, domain)
}

func (b *testBackend) EventQueue() *system.EventQueue { return b.queue }

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type testContext struct {
	*Context
	engine  *testEngine
	meta    *testMeta
	backend *testBackend
	flushes int
}

func newTestContext(features ...Feature) *testContext {
	tc := &testContext{}
	cfg := storage.NewConfigManager(nil, func(*storage.ConfigFile) error {
		tc.flushes++
		return nil
	})
	RegisterDefaults(cfg)
	cfg.AddGameDomain("demo")
	cfg.SetActiveDomain("demo")

	tc.meta = &testMeta{cfg: cfg}
	tc.engine = &testEngine{
		features:    make(map[Feature]bool),
		loadAllowed: true,
		saveAllowed: true,
		meta:        tc.meta,
	}
	for _, f := range features {
		tc.engine.features[f] = true
	}
	tc.backend = &testBackend{queue: system.NewEventQueue()}

	tc.Context = &Context{
		Config:       cfg,
		Achievements: achievements.NewManager(memStore{}),
		Engine:       tc.engine,
		Backend:      tc.backend,
		GUI:          gui.NewManager(nil, 640, 480),
		AppName:      "eblitmenu",
		Version:      "1.0.0",
	}
	return tc
}

// openMenu builds the main menu and runs it
func (tc *testContext) openMenu() *MainMenuDialog {
	d := NewMainMenuDialog(tc.Context)
	tc.GUI.RunModal(d, nil)
	return d
}

// topMessage returns the text of the top dialog if it is a message
func (tc *testContext) topMessage() (string, bool) {
	msg, ok := tc.GUI.Top().(*gui.MessageDialog)
	if !ok {
		return "", false
	}
	return msg.Text(), true
}

func (tc *testContext) dismissMessage() {
	tc.GUI.Top().HandleCommand(nil, gui.CmdOK, 0)
}
