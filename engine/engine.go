// Package engine holds the interfaces a running game implements and the
// in-game dialogs built on them: the global main menu, the in-game
// options dialog and the extra options checkbox panel.
package engine

import (
	"errors"

	"github.com/user-none/eblitmenu/achievements"
	"github.com/user-none/eblitmenu/gui"
	"github.com/user-none/eblitmenu/keymap"
)

// Feature is an optional engine capability
type Feature int

const (
	FeatureSupportsHelp Feature = iota
	FeatureSupportsReturnToLauncher
	FeatureSupportsLoadingDuringRuntime
	FeatureSupportsSavingDuringRuntime
	FeatureSupportsChangingOptionsDuringRuntime
	FeatureSupportsSubtitleOptions
)

var featureNames = map[Feature]string{
	FeatureSupportsHelp:                         "help",
	FeatureSupportsReturnToLauncher:             "return-to-launcher",
	FeatureSupportsLoadingDuringRuntime:         "loading-during-runtime",
	FeatureSupportsSavingDuringRuntime:          "saving-during-runtime",
	FeatureSupportsChangingOptionsDuringRuntime: "changing-options-during-runtime",
	FeatureSupportsSubtitleOptions:              "subtitle-options",
}

func (f Feature) String() string {
	if name, ok := featureNames[f]; ok {
		return name
	}
	return "unknown"
}

// Engine is the running game
type Engine interface {
	HasFeature(f Feature) bool

	// CanLoadGameStateCurrently reports whether loading is allowed right
	// now. When it is not, the string may explain why.
	CanLoadGameStateCurrently() (bool, string)
	// CanSaveGameStateCurrently reports whether saving is allowed right
	// now. When it is not, the string may explain why.
	CanSaveGameStateCurrently() (bool, string)

	SaveGameState(slot int, desc string) error
	// SetGameToLoadSlot requests loading slot on the next frame; -1
	// clears a pending request
	SetGameToLoadSlot(slot int)

	MetaEngine() MetaEngine
}

// MetaEngine describes the games an engine runs
type MetaEngine interface {
	gui.SaveLister

	Name() string

	// BuildEngineOptionsWidget returns the engine's options widget for
	// domain inside boss, or nil when the engine has none
	BuildEngineOptionsWidget(boss gui.Container, name, domain string) gui.OptionsWidget

	InitKeymaps(domain string) keymap.Array
	AchievementsInfo(domain string) achievements.Info
}

// ErrorCode classifies an engine failure
type ErrorCode int

const (
	ErrNoError ErrorCode = iota
	ErrUnknown
	ErrReadingFailed
	ErrWritingFailed
	ErrPathNotFound
	ErrUnsupported
)

var errorCodeText = map[ErrorCode]string{
	ErrNoError:       "No error",
	ErrUnknown:       "Unknown error",
	ErrReadingFailed: "Reading data failed",
	ErrWritingFailed: "Writing data failed",
	ErrPathNotFound:  "Path not found",
	ErrUnsupported:   "Operation not supported",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeText[c]; ok {
		return s
	}
	return errorCodeText[ErrUnknown]
}

// Error is an engine failure with a user facing description
type Error struct {
	Code ErrorCode
	Desc string
}

// NewError creates an Error. An empty desc uses the code's text.
func NewError(code ErrorCode, desc string) *Error {
	if desc == "" {
		desc = code.String()
	}
	return &Error{Code: code, Desc: desc}
}

func (e *Error) Error() string {
	if e.Desc != "" {
		return e.Desc
	}
	return e.Code.String()
}

// ErrorDescription returns the user facing text of err
func ErrorDescription(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}
