// Package frame drives the per-frame loop of an immediate-mode UI:
// drain events, start the frame, build the UI, end the frame, render and
// present. It owns the Running -> Quitting state machine.
package frame

import (
	"errors"
	"fmt"

	"github.com/chazu/colorbuttons/pkg/demo"
)

var (
	// ErrFrameActive is returned when a frame is started while the
	// handle of the previous one is still live.
	ErrFrameActive = errors.New("frame already in progress")
	// ErrNoFrame is returned when a frame is ended that was never started.
	ErrNoFrame = errors.New("no frame in progress")
)

// EventKind classifies platform events.
type EventKind int

const (
	// EventInput is keyboard, mouse or focus input.
	EventInput EventKind = iota
	// EventResize reports a new window size.
	EventResize
	// EventFrame tells that the platform is ready for a new frame.
	EventFrame
	// EventQuit asks the loop to stop.
	EventQuit
)

func (k EventKind) String() string {
	switch k {
	case EventInput:
		return "input"
	case EventResize:
		return "resize"
	case EventFrame:
		return "frame"
	case EventQuit:
		return "quit"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is one platform event. Raw carries the backend's own value.
type Event struct {
	Kind   EventKind
	Width  int
	Height int
	// Err is set on quit events caused by a platform failure.
	Err error
	Raw any
}

// DrawList is the immutable output of a finished UI frame.
type DrawList interface {
	Len() int
}

// Platform is the windowing and input side.
type Platform interface {
	// PollEvents returns all pending events.
	PollEvents() ([]Event, error)
	// HandleEvent forwards an event to the UI input adapter.
	HandleEvent(ev Event)
	// PrepareFrame passes the current window size and timing to the UI
	// input adapter. It runs once per frame after events are drained.
	PrepareFrame() error
	// Present shows the rendered frame.
	Present() error
}

// UIContext is the immediate-mode UI library.
type UIContext interface {
	// NewFrame starts a frame and returns its handle.
	NewFrame() (demo.UI, error)
	// EndFrame finishes the frame; the handle must not be used after.
	EndFrame() (DrawList, error)
}

// Renderer turns draw lists into pixels.
type Renderer interface {
	Clear() error
	Render(dl DrawList) error
}

// Backend bundles the three collaborators.
type Backend interface {
	Platform
	UIContext
	Renderer
}

// Builder lays out the UI of one frame.
type Builder interface {
	Build(ui demo.UI)
}

// BuilderFunc adapts a function to Builder.
type BuilderFunc func(ui demo.UI)

func (f BuilderFunc) Build(ui demo.UI) { f(ui) }
