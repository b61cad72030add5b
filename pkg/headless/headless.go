// Package headless is a deterministic backend for the frame loop. It
// never opens a window: input is injected with Click, Close, Resize and
// Quit, and every frame is recorded as a DrawList that tests and scripts
// can inspect.
package headless

import (
	"fmt"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
	"github.com/chazu/colorbuttons/pkg/placement"
)

// ClickEvent is the Raw value of an injected click.
type ClickEvent struct {
	Window string
	Label  string
}

// CloseEvent is the Raw value of an injected close request.
type CloseEvent struct {
	Window string
}

// Backend implements frame.Backend without any window system.
type Backend struct {
	viewport demo.Viewport
	store    *placement.Store

	pending []frame.Event
	handled []frame.Event

	// Clicks and closes forwarded by HandleEvent, armed for the next
	// frame by PrepareFrame.
	queuedClicks []ClickEvent
	queuedCloses []CloseEvent
	armedClicks  []ClickEvent
	armedCloses  map[string]bool

	live      *ui
	lists     []DrawList
	unmatched []ClickEvent

	renderErr error
	rendered  int
	cleared   int
	presented int
	prepared  int
}

var _ frame.Backend = (*Backend)(nil)

// Option configures a Backend.
type Option func(*Backend)

// WithViewport sets the initial main viewport size.
func WithViewport(w, h float32) Option {
	return func(b *Backend) {
		b.viewport.Size = demo.Vec2{X: w, Y: h}
	}
}

// New returns a Backend with a 600x400 viewport.
func New(opts ...Option) *Backend {
	b := &Backend{
		viewport: demo.Viewport{Size: demo.Vec2{X: 600, Y: 400}},
		store:    placement.NewStore(),
	}
	for _, o := range opts {
		o(b)
	}
	return b
}

// Queue appends a raw event for the next poll.
func (b *Backend) Queue(ev frame.Event) {
	b.pending = append(b.pending, ev)
}

// Click queues a click on the first widget labelled label.
func (b *Backend) Click(label string) {
	b.ClickIn("", label)
}

// ClickIn queues a click on the widget labelled label inside window.
func (b *Backend) ClickIn(window, label string) {
	b.Queue(frame.Event{Kind: frame.EventInput, Raw: ClickEvent{Window: window, Label: label}})
}

// Close queues a use of the close control of window.
func (b *Backend) Close(window string) {
	b.Queue(frame.Event{Kind: frame.EventInput, Raw: CloseEvent{Window: window}})
}

// Resize queues a window resize.
func (b *Backend) Resize(w, h int) {
	b.Queue(frame.Event{Kind: frame.EventResize, Width: w, Height: h})
}

// Quit queues a quit request.
func (b *Backend) Quit() {
	b.Queue(frame.Event{Kind: frame.EventQuit})
}

// FailRender makes every following Render return err. A nil err clears it.
func (b *Backend) FailRender(err error) {
	b.renderErr = err
}

// PollEvents returns and clears the pending events.
func (b *Backend) PollEvents() ([]frame.Event, error) {
	evs := b.pending
	b.pending = nil
	return evs, nil
}

// HandleEvent updates the input state from ev.
func (b *Backend) HandleEvent(ev frame.Event) {
	b.handled = append(b.handled, ev)
	switch ev.Kind {
	case frame.EventResize:
		b.viewport.Size = demo.Vec2{X: float32(ev.Width), Y: float32(ev.Height)}
	case frame.EventInput:
		switch raw := ev.Raw.(type) {
		case ClickEvent:
			b.queuedClicks = append(b.queuedClicks, raw)
		case CloseEvent:
			b.queuedCloses = append(b.queuedCloses, raw)
		}
	}
}

// PrepareFrame arms the input received so far for the coming frame.
func (b *Backend) PrepareFrame() error {
	if b.live != nil {
		return frame.ErrFrameActive
	}
	b.prepared++
	b.store.BeginFrame()
	b.armedClicks = b.queuedClicks
	b.queuedClicks = nil
	b.armedCloses = make(map[string]bool, len(b.queuedCloses))
	for _, c := range b.queuedCloses {
		b.armedCloses[c.Window] = true
	}
	b.queuedCloses = nil
	return nil
}

// NewFrame starts recording a frame.
func (b *Backend) NewFrame() (demo.UI, error) {
	if b.live != nil {
		return nil, frame.ErrFrameActive
	}
	b.live = &ui{
		b:    b,
		list: DrawList{Frame: b.store.Frame(), Viewport: b.viewport},
	}
	return b.live, nil
}

// EndFrame closes the live handle and returns its DrawList.
func (b *Backend) EndFrame() (frame.DrawList, error) {
	if b.live == nil {
		return nil, frame.ErrNoFrame
	}
	u := b.live
	u.ended = true
	b.live = nil
	b.unmatched = append(b.unmatched, b.armedClicks...)
	b.armedClicks = nil
	b.lists = append(b.lists, u.list)
	return u.list, nil
}

// Clear counts clears.
func (b *Backend) Clear() error {
	b.cleared++
	return nil
}

// Render accepts a DrawList produced by this backend.
func (b *Backend) Render(dl frame.DrawList) error {
	if b.renderErr != nil {
		return b.renderErr
	}
	if _, ok := dl.(DrawList); !ok {
		return fmt.Errorf("headless: cannot render %T", dl)
	}
	b.rendered++
	return nil
}

// Present counts presented frames.
func (b *Backend) Present() error {
	b.presented++
	return nil
}

// Frames returns every recorded DrawList.
func (b *Backend) Frames() []DrawList { return b.lists }

// Last returns the most recent DrawList.
func (b *Backend) Last() (DrawList, bool) {
	if len(b.lists) == 0 {
		return DrawList{}, false
	}
	return b.lists[len(b.lists)-1], true
}

// Handled returns the events forwarded through HandleEvent.
func (b *Backend) Handled() []frame.Event { return b.handled }

// Unmatched returns the clicks that found no widget in their frame.
func (b *Backend) Unmatched() []ClickEvent { return b.unmatched }

// Presented returns how many frames were presented.
func (b *Backend) Presented() int { return b.presented }

// Rendered returns how many draw lists were rendered.
func (b *Backend) Rendered() int { return b.rendered }

// Prepared returns how many frames were prepared.
func (b *Backend) Prepared() int { return b.prepared }

// Viewport returns the current main viewport.
func (b *Backend) Viewport() demo.Viewport { return b.viewport }

// takeClick consumes the first armed click matching window and label.
func (b *Backend) takeClick(window, label string) bool {
	for i, c := range b.armedClicks {
		if c.Label == label && (c.Window == "" || c.Window == window) {
			b.armedClicks = append(b.armedClicks[:i], b.armedClicks[i+1:]...)
			return true
		}
	}
	return false
}
