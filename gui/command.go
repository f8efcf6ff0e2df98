// Package gui is a small retained widget model for modal in-game dialogs.
//
// Widgets fire commands at a receiver (usually their dialog) when the user
// interacts with them. Dialogs are run through a Manager, which keeps the
// modal stack and calls a continuation when a dialog closes. Drawing is
// left to gui/render, which turns the widget tree into ebitenui widgets.
package gui

// Command identifies what a widget interaction means
type Command uint32

// Generic commands understood by the dialogs in this package
const (
	CmdNone Command = iota // Fires nothing
	CmdOK
	CmdClose
	CmdChoose
	CmdChooserSelect // data = slot
	CmdSubtitleToggle
	CmdMuteAllChanged
	CmdRemap        // data = keymap row
	CmdResetMapping // data = keymap row

	// CmdUser is the first value available to other packages
	CmdUser Command = 1000
)

// CommandReceiver handles commands fired by widgets
type CommandReceiver interface {
	HandleCommand(sender Widget, cmd Command, data uint32)
}

// commandSender is embedded by widgets that fire commands
type commandSender struct {
	cmd    Command
	target CommandReceiver
}

// SetTarget changes the receiver of the widget's command
func (s *commandSender) SetTarget(target CommandReceiver) {
	s.target = target
}

// Command returns the command the widget fires
func (s *commandSender) Command() Command {
	return s.cmd
}

// SetCommand changes the command the widget fires
func (s *commandSender) SetCommand(cmd Command) {
	s.cmd = cmd
}

// send delivers cmd to the target unless cmd is CmdNone
func (s *commandSender) send(sender Widget, cmd Command, data uint32) {
	if cmd == CmdNone || s.target == nil {
		return
	}
	s.target.HandleCommand(sender, cmd, data)
}
