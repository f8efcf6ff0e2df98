package gui

import (
	"fmt"

	"github.com/user-none/eblitmenu/i18n"
)

// AboutDialog shows the application name, version and credits
type AboutDialog struct {
	DialogBase
	lines []*StaticText
}

// NewAboutDialog creates the about dialog
func NewAboutDialog(mgr *Manager, appName, version string, credits []string) *AboutDialog {
	d := &AboutDialog{}
	d.Init(mgr, "AboutDialog", d)

	d.addLine(appName, AlignCenter)
	d.addLine(i18n.T("Version %s", version), AlignCenter)
	if len(credits) > 0 {
		d.addLine("", AlignLeft)
		d.addLine(i18n.T("Credits:"), AlignLeft)
		for _, c := range credits {
			d.addLine(c, AlignLeft)
		}
	}
	NewButton(d, "AboutDialog.Close", i18n.T("~C~lose"), "", CmdClose, 0)
	return d
}

func (d *AboutDialog) addLine(text string, align TextAlign) {
	t := NewStaticText(d, fmt.Sprintf("AboutDialog.Line%d", len(d.lines)+1), text)
	t.SetAlign(align)
	d.lines = append(d.lines, t)
}

// Lines returns the displayed text lines
func (d *AboutDialog) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.Label()
	}
	return out
}
