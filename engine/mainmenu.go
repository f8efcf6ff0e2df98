package engine

import (
	"log"

	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/i18n"
	"github.com/user-none/eblitmenu/system"
)

// Main menu commands
const (
	CmdPlay gui.Command = gui.CmdUser + iota
	CmdLoad
	CmdSave
	CmdOptions
	CmdHelp
	CmdAbout
	CmdLauncher
	CmdQuit
)

// Widest GUI that still gets the short return-to-launcher label
const lowResWidth = 320

const (
	msgSaveUnsupported = "This game does not support saving from the menu. Use in-game interface"
	msgSaveIneligible  = "This game cannot be saved at this time. Please try again later"
	msgLoadUnsupported = "This game does not support loading from the menu. Use in-game interface"
	msgLoadIneligible  = "This game cannot be loaded at this time. Please try again later"
	msgSaveFailed      = "Failed to save game (%s)! Please consult the README for basic information, and for instructions on how to obtain further assistance."
	msgNoHelp          = "Sorry, this engine does not currently provide in-game help. Please consult the README for basic information, and for instructions on how to obtain further assistance."
)

// MainMenuDialog is the global in-game menu
type MainMenuDialog struct {
	gui.DialogBase
	ctx *Context

	logo    *gui.Graphics
	version *gui.StaticText

	resumeButton   *gui.Button
	loadButton     *gui.Button
	saveButton     *gui.Button
	optionsButton  *gui.Button
	helpButton     *gui.Button
	aboutButton    *gui.Button
	launcherButton *gui.Button
	quitButton     *gui.Button

	aboutDialog *gui.AboutDialog
	loadDialog  *gui.SaveLoadChooser
	saveDialog  *gui.SaveLoadChooser
}

// NewMainMenuDialog builds the menu for the engine in ctx
func NewMainMenuDialog(ctx *Context) *MainMenuDialog {
	d := &MainMenuDialog{ctx: ctx}
	d.Init(ctx.GUI, "GlobalMenu", d)

	theme := ctx.GUI.Theme()
	if !theme.HasDialog("GlobalMenu") {
		defineGlobalMenuLayout(theme)
	}

	d.updateLogo()

	d.version = gui.NewStaticText(d, "GlobalMenu.Version", ctx.Version)
	d.version.SetAlign(gui.AlignCenter)

	d.resumeButton = gui.NewButton(d, "GlobalMenu.Resume", i18n.T("~R~esume"), "", CmdPlay, 'P')
	d.loadButton = gui.NewButton(d, "GlobalMenu.Load", i18n.T("~L~oad"), "", CmdLoad, 0)
	d.saveButton = gui.NewButton(d, "GlobalMenu.Save", i18n.T("~S~ave"), "", CmdSave, 0)
	d.optionsButton = gui.NewButton(d, "GlobalMenu.Options", i18n.T("~O~ptions"), "", CmdOptions, 0)

	// The help button is only shown when the engine provides help
	d.helpButton = gui.NewButton(d, "GlobalMenu.Help", i18n.T("~H~elp"), "", CmdHelp, 0)
	help := ctx.Engine.HasFeature(FeatureSupportsHelp)
	d.helpButton.SetVisible(help)
	d.helpButton.SetEnabled(help)

	d.aboutButton = gui.NewButton(d, "GlobalMenu.About", i18n.T("~A~bout"), "", CmdAbout, 0)

	d.launcherButton = gui.NewButton(d, "GlobalMenu.ReturnToLauncher", d.launcherLabel(), "", CmdLauncher, 0)
	d.launcherButton.SetEnabled(ctx.Engine.HasFeature(FeatureSupportsReturnToLauncher))

	if d.showQuit() {
		d.quitButton = gui.NewButton(d, "GlobalMenu.Quit", i18n.T("~Q~uit"), "", CmdQuit, 0)
	}

	d.aboutDialog = gui.NewAboutDialog(ctx.GUI, ctx.AppName, ctx.Version, ctx.Credits)
	d.loadDialog = gui.NewSaveLoadChooser(ctx.GUI, i18n.T("Load game:"), i18n.T("Load"), false)
	d.saveDialog = gui.NewSaveLoadChooser(ctx.GUI, i18n.T("Save game:"), i18n.T("Save"), true)
	return d
}

func defineGlobalMenuLayout(theme *gui.ThemeEval) {
	theme.AddDialog("GlobalMenu", "").
		AddLayout(gui.LayoutVertical).AddPadding(16, 16, 16, 16).
		AddWidget("Logo", "Graphics").
		AddWidget("Title", "StaticText").
		AddWidget("Version", "StaticText").
		AddSpace(8).
		AddWidget("Resume", "Button").
		AddWidget("Load", "Button").
		AddWidget("Save", "Button").
		AddWidget("Options", "Button").
		AddWidget("Help", "Button").
		AddWidget("About", "Button").
		AddWidget("ReturnToLauncher", "Button").
		AddWidget("Quit", "Button").
		CloseLayout().
		CloseDialog()
}

// showQuit reports whether the menu offers quitting directly. Without a
// quit capable backend there is never a quit button; when leaving the game
// returns to the launcher, the launcher button replaces it.
func (d *MainMenuDialog) showQuit() bool {
	if d.ctx.Backend.HasFeature(system.FeatureNoQuit) {
		return false
	}
	return !d.ctx.Config.GetBool(KeyReturnToLauncherAtExit, "") ||
		!d.ctx.Engine.HasFeature(FeatureSupportsReturnToLauncher)
}

func (d *MainMenuDialog) launcherLabel() string {
	if d.Manager().Width() > lowResWidth {
		return i18n.T("~R~eturn to Launcher")
	}
	return i18n.C("~R~eturn to Launcher", "lowres")
}

// updateLogo shows the theme logo when the theme asks for it and can draw
// images, else a text title, removing whichever is not shown
func (d *MainMenuDialog) updateLogo() {
	theme := d.Manager().Theme()
	if theme.GetVar("Globals.ShowGlobalMenuLogo", 0) == 1 && theme.SupportsImages() {
		if d.logo == nil {
			d.logo = gui.NewGraphics(d, "GlobalMenu.Logo")
		}
		d.logo.SetGfxFromTheme(gui.ImageLogoSmall)
		if title := d.FindWidget("GlobalMenu.Title"); title != nil {
			d.RemoveWidget(title)
		}
		return
	}

	if d.FindWidget("GlobalMenu.Title") == nil {
		title := gui.NewStaticText(d, "GlobalMenu.Title", d.ctx.AppName)
		title.SetAlign(gui.AlignCenter)
	}
	if d.logo != nil {
		d.RemoveWidget(d.logo)
		d.logo = nil
	}
}

// ReflowLayout relabels the launcher button for the current width and
// swaps between logo and title
func (d *MainMenuDialog) ReflowLayout() {
	d.launcherButton.SetLabel(d.launcherLabel())
	d.updateLogo()
	d.DialogBase.ReflowLayout()
}

// HandleCommand dispatches the menu commands
func (d *MainMenuDialog) HandleCommand(sender gui.Widget, cmd gui.Command, data uint32) {
	switch cmd {
	case CmdPlay:
		d.Close()
	case CmdLoad:
		d.load()
	case CmdSave:
		d.save()
	case CmdOptions:
		d.Manager().RunModal(NewConfigDialog(d.ctx), nil)
	case CmdAbout:
		d.Manager().RunModal(d.aboutDialog, nil)
	case CmdHelp:
		d.Manager().ShowMessage(i18n.T(msgNoHelp), nil)
	case CmdLauncher:
		d.ctx.Backend.EventQueue().Push(system.Event{Type: system.EventReturnToLauncher})
		d.Close()
	case CmdQuit:
		d.ctx.Backend.EventQueue().Push(system.Event{Type: system.EventQuit})
		d.Close()
	default:
		d.DialogBase.HandleCommand(sender, cmd, data)
	}
}

func (d *MainMenuDialog) save() {
	eng := d.ctx.Engine
	if !eng.HasFeature(FeatureSupportsSavingDuringRuntime) {
		d.Manager().ShowMessage(i18n.T(msgSaveUnsupported), nil)
		return
	}
	if ok, reason := eng.CanSaveGameStateCurrently(); !ok {
		if reason == "" {
			reason = i18n.T(msgSaveIneligible)
		}
		d.Manager().ShowMessage(reason, nil)
		return
	}

	d.saveDialog.RunModalForTarget(eng.MetaEngine(), d.ctx.Config.ActiveDomainName(), func(slot int) {
		if slot < 0 {
			return
		}
		desc := d.saveDialog.ResultString()
		if desc == "" {
			desc = d.saveDialog.CreateDefaultSaveDescription(slot)
		}
		if err := eng.SaveGameState(slot, desc); err != nil {
			log.Printf("Warning: Failed to save slot %d: %v", slot, err)
			d.Manager().ShowMessage(i18n.T(msgSaveFailed, ErrorDescription(err)), d.Close)
			return
		}
		d.Close()
	})
}

func (d *MainMenuDialog) load() {
	eng := d.ctx.Engine
	if !eng.HasFeature(FeatureSupportsLoadingDuringRuntime) {
		d.Manager().ShowMessage(i18n.T(msgLoadUnsupported), nil)
		return
	}
	if ok, reason := eng.CanLoadGameStateCurrently(); !ok {
		if reason == "" {
			reason = i18n.T(msgLoadIneligible)
		}
		d.Manager().ShowMessage(reason, nil)
		return
	}

	d.loadDialog.RunModalForTarget(eng.MetaEngine(), d.ctx.Config.ActiveDomainName(), func(slot int) {
		eng.SetGameToLoadSlot(slot)
		if slot >= 0 {
			d.Close()
		}
	})
}
