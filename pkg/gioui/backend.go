// Package gioui runs the demo on Gio: an app.Window provides the event
// pump and presentation, and a small immediate-mode layer on top of Gio
// widgets implements the demo's UI frame handle.
package gioui

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gioui.org/app"
	"gioui.org/gpu/headless"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
	"github.com/chazu/colorbuttons/pkg/placement"
)

// Options configure the window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Maximized bool
	// Continuous requests a new frame after every presented one.
	Continuous bool
}

var clearColor = color.NRGBA{R: 115, G: 140, B: 153, A: 255}

// Backend implements frame.Backend on a Gio window.
type Backend struct {
	// win is nil when rendering offscreen into target.
	win    *app.Window
	target *headless.Window
	// remaining counts the offscreen frames left before quitting.
	remaining int

	opts  Options
	theme *material.Theme
	ops   op.Ops

	// pending is the latest frame event handed to HandleEvent; current
	// is the one the frame in progress will be presented to.
	pending *app.FrameEvent
	current *app.FrameEvent
	size    image.Point
	metric  unit.Metric
	gtx     layout.Context

	store   *placement.Store
	windows map[string]*windowState
	widgets map[string]*widgetState
	live    *ui
}

var _ frame.Backend = (*Backend)(nil)

// New creates the window. Nothing is shown until events are polled,
// which must happen off the main goroutine while app.Main runs on it.
func New(opts Options) *Backend {
	w := new(app.Window)
	wopts := []app.Option{
		app.Title(opts.Title),
		app.Size(unit.Dp(opts.Width), unit.Dp(opts.Height)),
	}
	if opts.Maximized {
		wopts = append(wopts, app.Maximized.Option())
	}
	w.Option(wopts...)
	return newBackend(w, opts)
}

func newBackend(w *app.Window, opts Options) *Backend {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))
	th.TextSize = unit.Sp(13)
	th.Palette.Fg = textColor
	th.Palette.Bg = windowBg
	return &Backend{
		win:     w,
		opts:    opts,
		theme:   th,
		size:    image.Pt(opts.Width, opts.Height),
		metric:  unit.Metric{PxPerDp: 1, PxPerSp: 1},
		store:   placement.NewStore(),
		windows: make(map[string]*windowState),
		widgets: make(map[string]*widgetState),
	}
}

// PollEvents waits for the window's next frame and returns every event
// received up to and including it. Gio paces frames to the display, so
// this is where the loop waits for vsync.
func (b *Backend) PollEvents() ([]frame.Event, error) {
	if b.win == nil {
		if b.remaining <= 0 {
			return []frame.Event{{Kind: frame.EventQuit}}, nil
		}
		b.remaining--
		return []frame.Event{{Kind: frame.EventFrame, Width: b.size.X, Height: b.size.Y}}, nil
	}
	var evs []frame.Event
	for {
		ev := convert(b.win.Event())
		evs = append(evs, ev)
		if ev.Kind == frame.EventFrame || ev.Kind == frame.EventQuit {
			return evs, nil
		}
	}
}

func convert(e event.Event) frame.Event {
	switch e := e.(type) {
	case app.DestroyEvent:
		return frame.Event{Kind: frame.EventQuit, Err: e.Err, Raw: e}
	case app.FrameEvent:
		return frame.Event{Kind: frame.EventFrame, Width: e.Size.X, Height: e.Size.Y, Raw: e}
	case app.ConfigEvent:
		return frame.Event{Kind: frame.EventResize, Width: e.Config.Size.X, Height: e.Config.Size.Y, Raw: e}
	}
	return frame.Event{Kind: frame.EventInput, Raw: e}
}

// HandleEvent keeps size and metric current. Pointer and key input
// reaches widgets through the frame event's input source.
func (b *Backend) HandleEvent(ev frame.Event) {
	switch ev.Kind {
	case frame.EventFrame:
		if fe, ok := ev.Raw.(app.FrameEvent); ok {
			b.pending = &fe
			b.size = fe.Size
			b.metric = fe.Metric
		}
	case frame.EventResize:
		if ev.Width > 0 && ev.Height > 0 {
			b.size = image.Pt(ev.Width, ev.Height)
		}
	}
}

// PrepareFrame builds the layout context for the coming frame.
func (b *Backend) PrepareFrame() error {
	if b.live != nil {
		return frame.ErrFrameActive
	}
	b.store.BeginFrame()
	if b.pending != nil {
		b.gtx = app.NewContext(&b.ops, *b.pending)
		b.current = b.pending
		b.pending = nil
		return nil
	}
	b.ops.Reset()
	b.gtx = layout.Context{
		Ops:         &b.ops,
		Metric:      b.metric,
		Now:         time.Now(),
		Constraints: layout.Exact(b.size),
	}
	return nil
}

// NewFrame starts the frame.
func (b *Backend) NewFrame() (demo.UI, error) {
	if b.live != nil {
		return nil, frame.ErrFrameActive
	}
	b.live = &ui{b: b, gtx: b.gtx}
	return b.live, nil
}

// EndFrame closes the handle and orders the recorded panels.
func (b *Backend) EndFrame() (frame.DrawList, error) {
	if b.live == nil {
		return nil, frame.ErrNoFrame
	}
	u := b.live
	u.ended = true
	b.live = nil
	return u.drawList(), nil
}

// Clear paints the background.
func (b *Backend) Clear() error {
	paint.Fill(&b.ops, clearColor)
	return nil
}

// Render replays the panels of dl over the cleared background.
func (b *Backend) Render(dl frame.DrawList) error {
	d, ok := dl.(DrawList)
	if !ok {
		return errForeignDrawList(dl)
	}
	for _, c := range d.calls {
		c.Add(&b.ops)
	}
	return nil
}

// Present hands the frame to the window.
func (b *Backend) Present() error {
	if b.target != nil {
		if err := b.target.Frame(&b.ops); err != nil {
			return fmt.Errorf("gioui: offscreen frame: %w", err)
		}
		return nil
	}
	if b.current == nil {
		return nil
	}
	b.current.Frame(&b.ops)
	b.current = nil
	if b.opts.Continuous && b.win != nil {
		b.win.Invalidate()
	}
	return nil
}

// Wake makes a blocked PollEvents return by requesting a frame. It is
// safe to call from any goroutine.
func (b *Backend) Wake() {
	if b.win != nil {
		b.win.Invalidate()
	}
}

// viewport returns the window area in dp.
func (b *Backend) viewport() demo.Viewport {
	return demo.Viewport{Size: demo.Vec2{X: b.toDp(b.size.X), Y: b.toDp(b.size.Y)}}
}

func (b *Backend) pxPerDp() float32 {
	if b.metric.PxPerDp <= 0 {
		return 1
	}
	return b.metric.PxPerDp
}

func (b *Backend) toDp(px int) float32 {
	return float32(px) / b.pxPerDp()
}

func (b *Backend) toPx(v demo.Vec2) image.Point {
	s := b.pxPerDp()
	return image.Pt(int(v.X*s+0.5), int(v.Y*s+0.5))
}

func (b *Backend) windowState(title string) *windowState {
	ws, ok := b.windows[title]
	if !ok {
		ws = &windowState{}
		b.windows[title] = ws
	}
	return ws
}

func (b *Backend) widgetState(key string) *widgetState {
	ws, ok := b.widgets[key]
	if !ok {
		ws = &widgetState{}
		b.widgets[key] = ws
	}
	return ws
}
