package gui

import "github.com/user-none/eblitmenu/i18n"

// Message dialog results
const (
	MessageOK  = 0
	MessageAlt = 1
)

// MessageDialog shows text with an OK button and an optional second button
type MessageDialog struct {
	DialogBase
	text      *StaticText
	okButton  *Button
	altButton *Button
}

// NewMessageDialog creates a message dialog. An empty defaultButton means "OK";
// an empty altButton means no second button.
func NewMessageDialog(mgr *Manager, message, defaultButton, altButton string) *MessageDialog {
	d := &MessageDialog{}
	d.Init(mgr, "MessageDialog", d)

	if defaultButton == "" {
		defaultButton = i18n.T("OK")
	}
	d.text = NewStaticText(d, "MessageDialog.Text", message)
	d.text.SetAlign(AlignCenter)
	d.okButton = NewButton(d, "MessageDialog.OK", defaultButton, "", CmdOK, '\r')
	if altButton != "" {
		d.altButton = NewButton(d, "MessageDialog.Alt", altButton, "", CmdClose, 0x1b)
	}
	return d
}

// Text returns the message
func (d *MessageDialog) Text() string { return d.text.Label() }

// HandleCommand closes with MessageOK or MessageAlt
func (d *MessageDialog) HandleCommand(sender Widget, cmd Command, data uint32) {
	switch cmd {
	case CmdOK:
		d.SetResult(MessageOK)
		d.Close()
	case CmdClose:
		d.SetResult(MessageAlt)
		d.Close()
	default:
		d.DialogBase.HandleCommand(sender, cmd, data)
	}
}
