// Package script runs scenario files against the demo. A scenario is a
// small Lisp program evaluated by zygomys in a sandbox; its builtins
// inject input into a headless backend and step the frame loop, so a
// scenario replays a user session deterministically.
package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
	"github.com/chazu/colorbuttons/pkg/headless"
)

var (
	ErrTimeout    = errors.New("scenario timed out")
	ErrSuperseded = errors.New("scenario superseded by newer run")
)

// EvalError is a non-fatal scenario error: a parse error, a runtime
// error or a failed expectation.
type EvalError struct {
	Line    int
	Message string
}

func (e EvalError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// Result is the outcome of a scenario, including partial runs that
// stopped on an EvalError.
type Result struct {
	App        *demo.App
	Backend    *headless.Backend
	Transcript Transcript
	Quit       bool
}

// Engine evaluates scenarios. It is safe for concurrent use; each run
// gets a fresh sandbox, app and backend.
type Engine struct {
	log     *slog.Logger
	opts    frame.Options
	timeout time.Duration
	size    [2]float32

	mu         sync.Mutex
	generation uint64
}

// Option configures an Engine.
type Option func(*Engine)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) { e.timeout = d }
}

// WithViewport sets the headless viewport size.
func WithViewport(w, h float32) Option {
	return func(e *Engine) { e.size = [2]float32{w, h} }
}

// NewEngine returns an Engine driving the loop with opts.
func NewEngine(log *slog.Logger, opts frame.Options, options ...Option) *Engine {
	e := &Engine{log: log, opts: opts, timeout: DefaultTimeout, size: [2]float32{600, 400}}
	for _, o := range options {
		o(e)
	}
	return e
}

// Run evaluates source.
//
// Return semantics:
//   - On success: result + nil errors + nil error
//   - On parse/eval failure: partial result + eval errors + nil error
//   - On fatal failure (timeout, panic, loop failure): nil + nil + error
func (e *Engine) Run(ctx context.Context, source string) (*Result, []EvalError, error) {
	e.mu.Lock()
	e.generation++
	gen := e.generation
	e.mu.Unlock()

	ch := make(chan runResult, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- runResult{err: fmt.Errorf("panic during scenario: %v", r)}
			}
		}()

		res, evalErrs, err := e.run(source)
		ch <- runResult{result: res, errors: evalErrs, err: err}
	}()

	return waitWithTimeout(ctx, ch, e.timeout, gen, &e.mu, &e.generation)
}

func (e *Engine) run(source string) (*Result, []EvalError, error) {
	s := newSession(e.log, e.opts, e.size)
	res := &Result{App: s.app, Backend: s.backend}

	if strings.TrimSpace(source) == "" {
		return res, nil, nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	s.register(env)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return res, parseZygomysError(err), nil
	}
	_, err := env.Run()
	res.Transcript = s.transcript
	res.Quit = s.driver.Status() == frame.Quitting
	if s.fatal != nil {
		return nil, nil, s.fatal
	}
	if err != nil {
		return res, parseZygomysError(err), nil
	}
	return res, nil, nil
}

var linePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

var linePatternShort = regexp.MustCompile(`(?i)^line (\d+):\s*(.*)`)

// parseZygomysError converts a zygomys error into EvalErrors, pulling
// the line number out of the message when there is one.
func parseZygomysError(err error) []EvalError {
	msg := err.Error()

	for _, re := range []*regexp.Regexp{linePattern, linePatternShort} {
		if m := re.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			return []EvalError{{Line: line, Message: strings.TrimSpace(m[2])}}
		}
	}
	return []EvalError{{Message: strings.TrimSpace(msg)}}
}
