package demo

import "fmt"

// Example selects which demo panel is shown.
type Example int

const (
	ExampleNone Example = iota
	ExampleBasics
	ExampleAlpha
	ExampleInputFormat
)

// Examples lists the selectable examples in selector order.
var Examples = []Example{ExampleBasics, ExampleAlpha, ExampleInputFormat}

// Valid reports whether e is one of the known values.
func (e Example) Valid() bool {
	return e >= ExampleNone && e <= ExampleInputFormat
}

// Title is the selector label and panel title of the example.
func (e Example) Title() string {
	switch e {
	case ExampleBasics:
		return "Example 1: Basics"
	case ExampleAlpha:
		return "Example 2: Alpha component"
	case ExampleInputFormat:
		return "Example 3: Input format"
	}
	return ""
}

func (e Example) String() string {
	if e == ExampleNone {
		return "none"
	}
	if !e.Valid() {
		return fmt.Sprintf("Example(%d)", int(e))
	}
	return e.Title()
}

// ParseExample converts a selector number (0-3) to an Example.
func ParseExample(n int) (Example, error) {
	e := Example(n)
	if !e.Valid() {
		return ExampleNone, fmt.Errorf("unknown example %d", n)
	}
	return e, nil
}

// Notification is the message shown after a color indicator was clicked.
type Notification string

const (
	NotifyNone      Notification = ""
	NotifyBlack     Notification = "*** Black button was clicked"
	NotifyRed       Notification = "*** Red button was clicked"
	NotifyBig       Notification = "*** BIG button was clicked"
	NotifyNoTooltip Notification = "*** No tooltip button was clicked"
)

// State is the mutable demo record. It is owned by the frame loop and
// only touched from the goroutine running it.
type State struct {
	Example Example
	Notify  Notification
}

// Reset clears the notification.
func (s *State) Reset() {
	s.Notify = NotifyNone
}

// Select activates e and clears the notification, even when e is
// already active.
func (s *State) Select(e Example) {
	s.Example = e
	s.Reset()
}

func (s State) String() string {
	return fmt.Sprintf("{example:%d notify:%q}", int(s.Example), string(s.Notify))
}
