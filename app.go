package main

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"log/slog"
	"os"

	"github.com/mama165/sdk-go/logs"

	"github.com/chazu/colorbuttons/pkg/config"
	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
	"github.com/chazu/colorbuttons/pkg/gioui"
	"github.com/chazu/colorbuttons/pkg/script"
)

// snapshotFrames is how many frames an offscreen render runs so that
// panels placed on appearing settle before the capture.
const snapshotFrames = 3

// App wires the configuration, the logger and a backend to the demo.
type App struct {
	cfg    config.Config
	log    *slog.Logger
	opts   frame.Options
	engine *script.Engine
}

// ScriptError is a scenario error with its line, 0 when unknown.
type ScriptError struct {
	Line    int
	Message string
}

func (e ScriptError) String() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// ScriptResult is the outcome of RunScript.
type ScriptResult struct {
	Transcript script.Transcript
	Errors     []ScriptError
	Quit       bool
	// Demo is the demo state the scenario left behind, a fresh one when
	// the scenario could not run.
	Demo *demo.App
}

// WriteTranscript prints the transcript as a table.
func (r ScriptResult) WriteTranscript(w io.Writer) {
	r.Transcript.Write(w)
}

// NewApp creates an App from cfg.
func NewApp(cfg config.Config) (*App, error) {
	opts, err := cfg.DriverOptions()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)
	return &App{
		cfg:    cfg,
		log:    log,
		opts:   opts,
		engine: script.NewEngine(log, opts, script.WithViewport(float32(cfg.Width), float32(cfg.Height))),
	}, nil
}

// RunWindow opens the demo window and runs the frame loop until the
// window is closed or ctx is done. It must not run on the goroutine
// calling app.Main.
func (a *App) RunWindow(ctx context.Context) error {
	b := gioui.New(gioui.Options{
		Title:      a.cfg.Title,
		Width:      a.cfg.Width,
		Height:     a.cfg.Height,
		Maximized:  a.cfg.Maximized,
		Continuous: a.cfg.ContinuousRedraw,
	})
	defer wakeOnDone(ctx, b)()

	d := frame.NewDriver(a.log, b, demo.NewApp(), a.opts)
	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	return nil
}

// waker unblocks a backend waiting for its next event.
type waker interface {
	Wake()
}

// wakeOnDone wakes w once ctx is done so a loop blocked in PollEvents
// gets to see the cancellation. The returned func stops watching.
func wakeOnDone(ctx context.Context, w waker) (stop func()) {
	unregister := context.AfterFunc(ctx, w.Wake)
	return func() { unregister() }
}

// RunScript replays a scenario against a headless backend.
func (a *App) RunScript(ctx context.Context, source string) ScriptResult {
	result := ScriptResult{Errors: []ScriptError{}}

	res, evalErrs, err := a.engine.Run(ctx, source)
	if err != nil {
		// Fatal error (panic, timeout, loop failure)
		a.log.Error("scenario fatal error", "error", err)
		result.Errors = append(result.Errors, ScriptError{Message: err.Error()})
		result.Demo = demo.NewApp()
		return result
	}

	result.Transcript = res.Transcript
	result.Quit = res.Quit
	result.Demo = res.App
	for _, e := range evalErrs {
		result.Errors = append(result.Errors, ScriptError{Line: e.Line, Message: e.Message})
	}
	a.log.Debug("scenario finished", "steps", len(res.Transcript), "errors", len(evalErrs))
	return result
}

// Snapshot renders d offscreen at the configured size and writes the
// frame to path as a PNG.
func (a *App) Snapshot(ctx context.Context, d *demo.App, path string) error {
	img, err := gioui.Snapshot(ctx, a.log, d, a.cfg.Width, a.cfg.Height, snapshotFrames)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	a.log.Info("snapshot written", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
