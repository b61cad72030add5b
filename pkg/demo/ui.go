package demo

// Vec2 is a position or size in logical (device independent) pixels.
type Vec2 struct {
	X, Y float32
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Viewport describes the main window area available to panels.
type Viewport struct {
	Pos  Vec2
	Size Vec2
}

// RGBA is a color given as four floats between 0 and 1. Depending on
// ColorOptions.Input the first three components are read as RGB or HSV.
type RGBA [4]float32

// Condition controls when a panel position or size is applied.
type Condition int

const (
	// CondNone leaves the value to the backend.
	CondNone Condition = iota
	// CondAlways applies the value every frame.
	CondAlways
	// CondFirstUseEver applies the value the first time the panel is seen.
	CondFirstUseEver
	// CondAppearing applies the value whenever the panel becomes visible
	// after being hidden for at least one frame.
	CondAppearing
)

func (c Condition) String() string {
	switch c {
	case CondAlways:
		return "always"
	case CondFirstUseEver:
		return "first-use-ever"
	case CondAppearing:
		return "appearing"
	}
	return "none"
}

// WindowFlags configure panel decorations.
type WindowFlags uint32

const (
	WindowNoTitleBar WindowFlags = 1 << iota
	WindowNoResize
	WindowNoSavedSettings
	// WindowNoBringToFront keeps the panel beneath the others.
	WindowNoBringToFront
	WindowNoScrollbar
	WindowNoCollapse

	// WindowNoDecoration removes the title bar, resize grip, scrollbars
	// and collapse control.
	WindowNoDecoration = WindowNoTitleBar | WindowNoResize | WindowNoScrollbar | WindowNoCollapse
)

// Has reports whether all bits of f2 are set in f.
func (f WindowFlags) Has(f2 WindowFlags) bool { return f&f2 == f2 }

// WindowOptions describe a panel for UI.Window.
type WindowOptions struct {
	Flags    WindowFlags
	Pos      Vec2
	PosCond  Condition
	Size     Vec2
	SizeCond Condition
	// Open, when non-nil, adds a close control to the title bar. The
	// backend sets *Open to false when it is used and skips the panel
	// while *Open is false.
	Open *bool
}

// Preview selects how a color indicator shows its alpha channel.
type Preview int

const (
	// PreviewOpaque ignores alpha when drawing.
	PreviewOpaque Preview = iota
	// PreviewHalfAlpha draws half opaque, half over a checkerboard.
	PreviewHalfAlpha
	// PreviewAlpha draws the whole area over a checkerboard.
	PreviewAlpha
)

func (p Preview) String() string {
	switch p {
	case PreviewHalfAlpha:
		return "half-alpha"
	case PreviewAlpha:
		return "alpha"
	}
	return "opaque"
}

// InputMode selects how the numeric components of a color are read.
type InputMode int

const (
	InputRGB InputMode = iota
	InputHSV
)

func (m InputMode) String() string {
	if m == InputHSV {
		return "hsv"
	}
	return "rgb"
}

// ColorOptions configure a color indicator. The zero value is the
// default indicator: square, tooltip on, alpha included, opaque preview,
// RGB input.
type ColorOptions struct {
	Size      Vec2
	NoTooltip bool
	NoAlpha   bool
	Preview   Preview
	Input     InputMode
}

// UI is the immediate-mode frame handle. A handle is only valid between
// the start and the end of a single frame and must not be retained.
type UI interface {
	MainViewport() Viewport
	// Window builds a panel. body runs only if the panel is visible.
	Window(title string, opts WindowOptions, body func())
	// RadioButton draws a radio option and reports whether it was
	// clicked this frame, including when it was already active.
	RadioButton(label string, active bool) bool
	Text(s string)
	TextWrapped(s string)
	Separator()
	Spacing()
	// ColorButton draws a clickable color indicator and reports whether
	// it was clicked this frame.
	ColorButton(id string, col RGBA, opts ColorOptions) bool
}
