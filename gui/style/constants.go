package style

// Layout constants shared by every dialog
const (
	DialogPadding  = 12
	DefaultSpacing = 8
	SmallSpacing   = 4
	ButtonPadding  = 6

	// Narrowest dialog panel; the panel grows with its content
	DialogMinWidth = 240

	SliderWidth      = 160
	SliderHandleSize = 12

	ScrollbarWidth         = 12
	ScrollWheelSensitivity = 0.05

	TabButtonMinWidth = 72
)
