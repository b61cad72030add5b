package headless

import (
	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/placement"
	"github.com/chazu/colorbuttons/pkg/swatch"
	"github.com/samber/lo"
)

// Kind is the kind of a recorded command.
type Kind int

const (
	KindWindow Kind = iota
	KindText
	KindTextWrapped
	KindSeparator
	KindSpacing
	KindRadio
	KindColorButton
)

func (k Kind) String() string {
	return [...]string{"window", "text", "text-wrapped", "separator", "spacing", "radio", "color-button"}[k]
}

// Command is one recorded UI call.
type Command struct {
	Kind   Kind
	Window string
	Label  string

	// Windows.
	Rect  placement.Rect
	Flags demo.WindowFlags
	Open  bool

	// Radio buttons.
	Active bool

	// Color buttons.
	Color   demo.RGBA
	Options demo.ColorOptions
	Swatch  swatch.Swatch

	Clicked bool
}

// DrawList is everything recorded during one frame.
type DrawList struct {
	Frame    uint64
	Viewport demo.Viewport
	Commands []Command
}

// Len returns the number of commands.
func (d DrawList) Len() int { return len(d.Commands) }

// Windows returns the titles of the windows built, in order.
func (d DrawList) Windows() []string {
	wins := lo.Filter(d.Commands, func(c Command, _ int) bool { return c.Kind == KindWindow })
	return lo.Map(wins, func(c Command, _ int) string { return c.Label })
}

// Window returns the window command titled title.
func (d DrawList) Window(title string) (Command, bool) {
	return lo.Find(d.Commands, func(c Command) bool {
		return c.Kind == KindWindow && c.Label == title
	})
}

// Find returns the first widget labelled label inside window. An empty
// window matches any window.
func (d DrawList) Find(window, label string) (Command, bool) {
	return lo.Find(d.Commands, func(c Command) bool {
		return c.Kind != KindWindow && c.Label == label && (window == "" || c.Window == window)
	})
}

// In returns the widgets recorded inside window.
func (d DrawList) In(window string) []Command {
	return lo.Filter(d.Commands, func(c Command, _ int) bool {
		return c.Kind != KindWindow && c.Window == window
	})
}

// ColorButtons returns the color buttons recorded inside window.
func (d DrawList) ColorButtons(window string) []Command {
	return lo.Filter(d.In(window), func(c Command, _ int) bool { return c.Kind == KindColorButton })
}
