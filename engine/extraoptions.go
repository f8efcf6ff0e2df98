package engine

import (
	"fmt"

	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/storage"
)

// CmdClickGroupLeader is fired by group leader checkboxes; data is the
// new state
const CmdClickGroupLeader gui.Command = gui.CmdUser + 100

// ExtraGuiOption is one engine specific boolean option
type ExtraGuiOption struct {
	Label        string
	Tooltip      string
	ConfigOption string
	DefaultState bool

	// GroupID puts the option in a group; 0 means none
	GroupID byte
	// GroupLeaderID makes the option lead the group with that ID; 0 means
	// it leads nothing
	GroupLeaderID byte
}

// ExtraGuiOptions is the ordered option list of an engine
type ExtraGuiOptions []ExtraGuiOption

// ExtraGuiOptionsWidget shows one checkbox per extra option. Toggling a
// group leader enables or disables the members of its group.
type ExtraGuiOptionsWidget struct {
	gui.OptionsContainerWidget
	cfg        *storage.ConfigManager
	options    ExtraGuiOptions
	checkboxes []*gui.Checkbox
	groups     map[byte][]int
}

// NewExtraGuiOptionsWidget creates the panel for options in boss
func NewExtraGuiOptionsWidget(boss gui.Container, name, domain string, cfg *storage.ConfigManager, options ExtraGuiOptions) *ExtraGuiOptionsWidget {
	w := &ExtraGuiOptionsWidget{
		cfg:     cfg,
		options: options,
		groups:  make(map[byte][]int),
	}
	w.InitOptionsContainer(boss, name, extraOptionsLayout(cfg, domain), domain, w)

	for i, opt := range options {
		cmd := gui.CmdNone
		if opt.GroupLeaderID != 0 {
			cmd = CmdClickGroupLeader
		}
		id := fmt.Sprintf("%s.customOption%dCheckbox", w.DialogLayout(), i+1)
		w.checkboxes = append(w.checkboxes, gui.NewCheckbox(w.WidgetsBoss(), id, i18n.Translate(opt.Label), i18n.Translate(opt.Tooltip), cmd))
		if opt.GroupID != 0 {
			w.groups[opt.GroupID] = append(w.groups[opt.GroupID], i)
		}
	}
	return w
}

// BuildExtraOptionsWidget returns the panel for options, or nil when there
// are no options. Meta engines use it to implement BuildEngineOptionsWidget.
func BuildExtraOptionsWidget(boss gui.Container, name, domain string, cfg *storage.ConfigManager, options ExtraGuiOptions) gui.OptionsWidget {
	if len(options) == 0 {
		return nil
	}
	return NewExtraGuiOptionsWidget(boss, name, domain, cfg, options)
}

// The in-game dialog edits the active game; anything else is the
// launcher's per game options
func extraOptionsLayout(cfg *storage.ConfigManager, domain string) string {
	if cfg.ActiveDomainName() == domain {
		return "GlobalConfig_Engine_Container"
	}
	return "GameOptions_Engine_Container"
}

// Checkboxes returns the option checkboxes in option order
func (w *ExtraGuiOptionsWidget) Checkboxes() []*gui.Checkbox { return w.checkboxes }

// Load sets each checkbox from the store, falling back to the default
func (w *ExtraGuiOptionsWidget) Load() {
	for i, opt := range w.options {
		state := opt.DefaultState
		if w.cfg.HasKey(opt.ConfigOption, w.Domain()) {
			state = w.cfg.GetBool(opt.ConfigOption, w.Domain())
		}
		w.checkboxes[i].SetState(state)
	}
	// SetState only fires on change, so an unchecked leader that stayed
	// unchecked still needs its group disabled
	for i, opt := range w.options {
		if opt.GroupLeaderID != 0 {
			w.setGroupEnabled(opt.GroupLeaderID, w.checkboxes[i].State())
		}
	}
}

// Save stores each option as checked only when its checkbox is enabled
func (w *ExtraGuiOptionsWidget) Save() bool {
	for i, opt := range w.options {
		cb := w.checkboxes[i]
		w.cfg.SetBool(opt.ConfigOption, cb.IsEnabled() && cb.State(), w.Domain())
	}
	return true
}

// HandleCommand applies a group leader toggle to its group's members
func (w *ExtraGuiOptionsWidget) HandleCommand(sender gui.Widget, cmd gui.Command, data uint32) {
	if cmd != CmdClickGroupLeader {
		w.OptionsContainerWidget.HandleCommand(sender, cmd, data)
		return
	}
	for i, cb := range w.checkboxes {
		if cb != sender {
			continue
		}
		w.setGroupEnabled(w.options[i].GroupLeaderID, data != 0)
		return
	}
}

func (w *ExtraGuiOptionsWidget) setGroupEnabled(group byte, enabled bool) {
	for _, member := range w.groups[group] {
		w.checkboxes[member].SetEnabled(enabled)
	}
}

// DefineLayout declares one checkbox slot per option in a vertical layout
func (w *ExtraGuiOptionsWidget) DefineLayout(theme *gui.ThemeEval, layoutName, overlayedLayout string) {
	theme.AddDialog(layoutName, overlayedLayout)
	theme.AddLayout(gui.LayoutVertical).AddPadding(0, 0, 0, 0)
	for i := range w.options {
		theme.AddWidget(fmt.Sprintf("customOption%dCheckbox", i+1), "Checkbox")
	}
	theme.CloseLayout().CloseDialog()
}
