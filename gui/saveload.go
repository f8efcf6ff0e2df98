package gui

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/user-none/eblitmenu/i18n"
)

// SaveStateDescriptor describes one save slot
type SaveStateDescriptor struct {
	Slot        int           `json:"slot"`
	Description string        `json:"description"`
	SaveTime    time.Time     `json:"saveTime"`
	PlayTime    time.Duration `json:"playTime"`
}

// SaveLister enumerates the save slots of a target
type SaveLister interface {
	ListSaves(target string) []SaveStateDescriptor
	MaxSaveSlot() int
}

const maxDescriptionLen = 48

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// SaveLoadChooser lets the user pick a save slot. In save mode the
// description of the chosen slot can be edited.
type SaveLoadChooser struct {
	DialogBase
	title       string
	buttonLabel string
	saveMode    bool

	saves    map[int]SaveStateDescriptor
	slots    []*Button
	info     *StaticText
	descEdit *EditText
	choose   *Button
	selected int

	resultString string
	now          func() time.Time
}

// NewSaveLoadChooser creates a chooser. The slot list is filled each run.
func NewSaveLoadChooser(mgr *Manager, title, buttonLabel string, saveMode bool) *SaveLoadChooser {
	c := &SaveLoadChooser{
		title:       title,
		buttonLabel: buttonLabel,
		saveMode:    saveMode,
		selected:    -1,
		now:         time.Now,
	}
	c.Init(mgr, "SaveLoadChooser", c)
	return c
}

// Title returns the chooser heading
func (c *SaveLoadChooser) Title() string { return c.title }

// IsSaveMode reports whether the chooser edits descriptions
func (c *SaveLoadChooser) IsSaveMode() bool { return c.saveMode }

// RunModalForTarget lists the saves of target and opens the chooser. done
// receives the chosen slot, or -1 when cancelled.
func (c *SaveLoadChooser) RunModalForTarget(lister SaveLister, target string, done func(slot int)) {
	c.populate(lister, target)
	c.Manager().RunModal(c, done)
}

func (c *SaveLoadChooser) populate(lister SaveLister, target string) {
	c.clear()
	c.slots = nil
	c.selected = -1
	c.resultString = ""
	c.saves = make(map[int]SaveStateDescriptor)
	for _, s := range lister.ListSaves(target) {
		c.saves[s.Slot] = s
	}

	NewStaticText(c, "SaveLoadChooser.Title", c.title)
	for slot := 0; slot <= lister.MaxSaveSlot(); slot++ {
		label := i18n.T("Empty slot")
		if s, ok := c.saves[slot]; ok {
			label = s.Description
		}
		b := NewButton(c, fmt.Sprintf("SaveLoadChooser.Slot%d", slot), "", "", CmdChooserSelect, 0)
		// Descriptions are user text, never hotkey markup
		b.label = fmt.Sprintf("%2d. %s", slot, label)
		if _, ok := c.saves[slot]; !ok && !c.saveMode {
			b.SetEnabled(false)
		}
		c.slots = append(c.slots, b)
	}

	c.info = NewStaticText(c, "SaveLoadChooser.Info", "")
	if c.saveMode {
		c.descEdit = NewEditText(c, "SaveLoadChooser.Description", "", i18n.T("Description of the save"), maxDescriptionLen)
		c.descEdit.SetEnabled(false)
	} else {
		c.descEdit = nil
	}
	NewButton(c, "SaveLoadChooser.Cancel", i18n.T("Cancel"), "", CmdClose, 0x1b)
	c.choose = NewButton(c, "SaveLoadChooser.Choose", c.buttonLabel, "", CmdChoose, '\r')
	c.choose.SetEnabled(false)
}

// SlotButtons returns the slot rows in slot order
func (c *SaveLoadChooser) SlotButtons() []*Button { return c.slots }

// DescriptionEdit returns the description field in save mode, else nil
func (c *SaveLoadChooser) DescriptionEdit() *EditText { return c.descEdit }

// Selected returns the highlighted slot, or -1
func (c *SaveLoadChooser) Selected() int { return c.selected }

// Info returns the metadata line of the highlighted slot
func (c *SaveLoadChooser) Info() string {
	if c.info == nil {
		return ""
	}
	return c.info.Label()
}

// Select highlights slot
func (c *SaveLoadChooser) Select(slot int) {
	if slot < 0 || slot >= len(c.slots) || !c.slots[slot].IsEnabled() {
		return
	}
	c.selected = slot
	s, exists := c.saves[slot]
	if exists {
		c.info.SetLabel(c.describe(s))
	} else {
		c.info.SetLabel("")
	}
	if c.descEdit != nil {
		c.descEdit.SetEnabled(true)
		c.descEdit.SetFocused(true)
		if exists {
			c.descEdit.SetText(s.Description)
		} else {
			c.descEdit.SetText("")
		}
	}
	c.choose.SetEnabled(true)
}

func (c *SaveLoadChooser) describe(s SaveStateDescriptor) string {
	info := i18n.T("Saved: %s", humanize.RelTime(s.SaveTime, c.now(), i18n.T("ago"), i18n.T("from now")))
	if s.PlayTime > 0 {
		played := durafmt.Parse(s.PlayTime.Truncate(time.Second)).LimitFirstN(2).Format(shortUnits)
		info += "  " + i18n.T("Playtime: %s", played)
	}
	return info
}

// ResultString returns the description entered in save mode
func (c *SaveLoadChooser) ResultString() string { return c.resultString }

// CreateDefaultSaveDescription names a save left without a description
func (c *SaveLoadChooser) CreateDefaultSaveDescription(slot int) string {
	return i18n.T("Save %d", slot+1)
}

// HandleCommand selects slots, confirms or cancels
func (c *SaveLoadChooser) HandleCommand(sender Widget, cmd Command, data uint32) {
	switch cmd {
	case CmdChooserSelect:
		for i, b := range c.slots {
			if b == sender {
				c.Select(i)
				return
			}
		}
	case CmdChoose:
		if c.selected < 0 {
			return
		}
		if c.descEdit != nil {
			c.resultString = c.descEdit.Text()
		}
		c.SetResult(c.selected)
		c.Close()
	case CmdClose:
		c.SetResult(-1)
		c.Close()
	default:
		c.DialogBase.HandleCommand(sender, cmd, data)
	}
}
