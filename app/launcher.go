package app

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/user-none/eblitmenu/gui/style"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/system"
)

// buildLauncher creates the screen shown while no game runs
func (a *App) buildLauncher() *ebitenui.UI {
	root := style.OverlayRoot()
	panel := style.DialogPanel(style.DialogMinWidth)

	panel.AddChild(style.Label(a.appName, style.Accent, widget.TextPositionCenter))
	if a.version != "" {
		panel.AddChild(style.Label(i18n.T("Version %s", a.version), style.TextSecondary, widget.TextPositionCenter))
	}
	panel.AddChild(style.Label(i18n.T("Press Enter to start"), style.Text, widget.TextPositionCenter))

	panel.AddChild(style.TextButton(i18n.T("Start"), func(args *widget.ButtonClickedEventArgs) {
		a.startPending = true
	}))
	if !a.HasFeature(system.FeatureNoQuit) {
		panel.AddChild(style.TextButton(i18n.T("Quit"), func(args *widget.ButtonClickedEventArgs) {
			a.quitPending = true
		}))
	}

	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
