package frame

import (
	"context"
	"fmt"
	"log/slog"
)

// Status is the state of the Driver.
type Status int

const (
	Running Status = iota
	Quitting
)

func (s Status) String() string {
	if s == Quitting {
		return "quitting"
	}
	return "running"
}

// QuitMode decides what happens to the current iteration when a quit
// event is drained.
type QuitMode int

const (
	// QuitImmediate ends the iteration right away: no build, render or
	// present happens after the quit event.
	QuitImmediate QuitMode = iota
	// QuitAfterFrame stops draining events, completes the iteration and
	// then stops.
	QuitAfterFrame
)

func (m QuitMode) String() string {
	if m == QuitAfterFrame {
		return "frame"
	}
	return "immediate"
}

// ParseQuitMode converts "immediate" or "frame".
func ParseQuitMode(s string) (QuitMode, error) {
	switch s {
	case "", "immediate":
		return QuitImmediate, nil
	case "frame":
		return QuitAfterFrame, nil
	}
	return QuitImmediate, fmt.Errorf("unknown quit mode %q", s)
}

// RenderPolicy decides what a render failure does.
type RenderPolicy int

const (
	// RenderAbort makes render failures fatal.
	RenderAbort RenderPolicy = iota
	// RenderLog logs render failures and keeps running.
	RenderLog
)

func (p RenderPolicy) String() string {
	if p == RenderLog {
		return "log"
	}
	return "abort"
}

// ParseRenderPolicy converts "abort" or "log".
func ParseRenderPolicy(s string) (RenderPolicy, error) {
	switch s {
	case "", "abort":
		return RenderAbort, nil
	case "log":
		return RenderLog, nil
	}
	return RenderAbort, fmt.Errorf("unknown render failure policy %q", s)
}

// Options configure a Driver.
type Options struct {
	QuitMode     QuitMode
	RenderPolicy RenderPolicy
}

// Driver runs the frame loop. It is not safe for concurrent use; a
// single goroutine owns it and everything it touches.
type Driver struct {
	log     *slog.Logger
	backend Backend
	builder Builder
	opts    Options

	status Status
	frames uint64
	err    error
}

// NewDriver returns a Driver in the Running state.
func NewDriver(log *slog.Logger, backend Backend, builder Builder, opts Options) *Driver {
	return &Driver{log: log, backend: backend, builder: builder, opts: opts}
}

// Status returns the current state.
func (d *Driver) Status() Status { return d.status }

// Frames returns how many frames were presented.
func (d *Driver) Frames() uint64 { return d.frames }

// Err returns the platform failure that caused the quit, if any.
func (d *Driver) Err() error { return d.err }

// Run steps until a quit is observed, a step fails or ctx is done.
// Cancellation counts as a quit observed before the next iteration.
func (d *Driver) Run(ctx context.Context) error {
	d.log.Info("frame loop started", "quit_mode", d.opts.QuitMode, "render_policy", d.opts.RenderPolicy)
	for d.status == Running {
		if err := ctx.Err(); err != nil {
			d.status = Quitting
			d.log.Info("frame loop cancelled", "frames", d.frames)
			return nil
		}
		if err := d.Step(); err != nil {
			return err
		}
	}
	d.log.Info("frame loop stopped", "frames", d.frames)
	return d.err
}

// Step runs one iteration. After a quit it does nothing.
func (d *Driver) Step() error {
	if d.status == Quitting {
		return nil
	}

	quit, err := d.pump()
	if err != nil {
		return fmt.Errorf("poll events: %w", err)
	}
	if quit {
		d.status = Quitting
		d.log.Info("quit requested", "frame", d.frames)
		if d.opts.QuitMode == QuitImmediate {
			return nil
		}
	}

	if err := d.backend.PrepareFrame(); err != nil {
		return fmt.Errorf("prepare frame: %w", err)
	}
	ui, err := d.backend.NewFrame()
	if err != nil {
		return fmt.Errorf("new frame: %w", err)
	}
	d.builder.Build(ui)
	dl, err := d.backend.EndFrame()
	if err != nil {
		return fmt.Errorf("end frame: %w", err)
	}

	if err := d.render(dl); err != nil {
		if d.opts.RenderPolicy == RenderAbort {
			return err
		}
		d.log.Error("render failed", "frame", d.frames, "error", err)
		return nil
	}
	d.frames++
	return nil
}

// pump drains pending events, forwarding each to the UI input adapter.
// Draining stops at the first quit event; the quit event itself is
// forwarded, the ones after it are not.
func (d *Driver) pump() (bool, error) {
	events, err := d.backend.PollEvents()
	if err != nil {
		return false, err
	}
	for _, ev := range events {
		d.backend.HandleEvent(ev)
		if ev.Kind == EventQuit {
			if ev.Err != nil {
				d.err = fmt.Errorf("platform: %w", ev.Err)
			}
			return true, nil
		}
	}
	return false, nil
}

func (d *Driver) render(dl DrawList) error {
	if err := d.backend.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	if err := d.backend.Render(dl); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if err := d.backend.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	return nil
}
