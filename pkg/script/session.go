package script

import (
	"errors"
	"fmt"
	"log/slog"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
	"github.com/chazu/colorbuttons/pkg/headless"
)

var errQuit = errors.New("the demo has quit")

// session is the state one scenario run works on. It is only touched
// from the goroutine evaluating the scenario.
type session struct {
	app        *demo.App
	backend    *headless.Backend
	driver     *frame.Driver
	transcript Transcript
	// fatal is a frame loop failure; it aborts the run.
	fatal error
}

func newSession(log *slog.Logger, opts frame.Options, size [2]float32) *session {
	app := demo.NewApp()
	b := headless.New(headless.WithViewport(size[0], size[1]))
	return &session{
		app:     app,
		backend: b,
		driver:  frame.NewDriver(log, b, app, opts),
	}
}

// step runs n frames and records one transcript row for action.
func (s *session) step(action string, n int) error {
	if s.driver.Status() == frame.Quitting {
		return errQuit
	}
	for i := 0; i < n && s.driver.Status() == frame.Running; i++ {
		if err := s.driver.Step(); err != nil {
			s.fatal = err
			return err
		}
	}
	s.record(action)
	return nil
}

func (s *session) record(action string) {
	s.transcript = append(s.transcript, Step{
		Frame:   s.driver.Frames(),
		Action:  action,
		Example: s.app.State.Example,
		Notify:  s.app.State.Notify,
	})
}

// click queues a click, runs a frame and checks a widget took it.
func (s *session) click(window, label, action string) error {
	before := len(s.backend.Unmatched())
	s.backend.ClickIn(window, label)
	if err := s.step(action, 1); err != nil {
		return err
	}
	if len(s.backend.Unmatched()) > before {
		return fmt.Errorf("no widget %q in frame %d", label, s.driver.Frames())
	}
	return nil
}

var exampleKeywords = map[string]demo.Example{
	"basics":       demo.ExampleBasics,
	"alpha":        demo.ExampleAlpha,
	"input-format": demo.ExampleInputFormat,
	"input_format": demo.ExampleInputFormat,
}

func toExample(s zygo.Sexp) (demo.Example, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return demo.ParseExample(int(v.Val))
	case *zygo.SexpStr:
		name := v.S
		if kw, ok := isKW(s); ok {
			name = kw
		}
		if e, ok := exampleKeywords[name]; ok {
			return e, nil
		}
		return demo.ExampleNone, fmt.Errorf("unknown example %q", name)
	}
	return demo.ExampleNone, fmt.Errorf("expected example number or keyword, got %T (%s)", s, s.SexpString(nil))
}
