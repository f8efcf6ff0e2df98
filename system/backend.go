package system

import "github.com/user-none/eblitmenu/gui"

// Feature is an optional backend capability
type Feature int

const (
	// FeatureNoQuit means the platform has no way to quit (mobile, consoles)
	FeatureNoQuit Feature = iota
	FeatureFullscreenMode
	FeatureVSync
)

// Backend is the platform the GUI runs on
type Backend interface {
	HasFeature(f Feature) bool

	// BuildBackendOptionsWidget returns the backend's options widget for
	// domain, or nil when the backend has no options.
	BuildBackendOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget

	EventQueue() *EventQueue
}
