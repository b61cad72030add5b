package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/chazu/colorbuttons/pkg/demo"
)

// isKW reports whether s is a preprocessed keyword and returns its name.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		return int(v.Val), nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func toStrings(args []zygo.Sexp) ([]string, error) {
	out := make([]string, len(args))
	for i, a := range args {
		s, err := toString(a)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// register installs the scenario builtins. Kebab-case names in scenarios
// reach zygomys in snake_case, see preprocessSource.
func (s *session) register(env *zygo.Zlisp) {
	// (select 2) or (select :alpha)
	env.AddFunction("select", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("select requires one example argument")
		}
		e, err := toExample(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("select: %w", err)
		}
		if e == demo.ExampleNone {
			return zygo.SexpNull, fmt.Errorf("select: the selector has no option 0")
		}
		if !s.app.SelectorOpen {
			return zygo.SexpNull, fmt.Errorf("select: the selector is closed")
		}
		if err := s.click(demo.SelectorTitle, e.Title(), fmt.Sprintf("select %d", int(e))); err != nil {
			return zygo.SexpNull, fmt.Errorf("select: %w", err)
		}
		return &zygo.SexpInt{Val: int64(s.app.State.Example)}, nil
	})

	// (click "Red color") or (click "Example 1: Basics" "Red color")
	env.AddFunction("click", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		strs, err := toStrings(args)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("click: %w", err)
		}
		var window, label string
		switch len(strs) {
		case 1:
			label = strs[0]
		case 2:
			window, label = strs[0], strs[1]
		default:
			return zygo.SexpNull, fmt.Errorf("click requires a label, optionally preceded by a window title")
		}
		if err := s.click(window, label, fmt.Sprintf("click %q", label)); err != nil {
			return zygo.SexpNull, fmt.Errorf("click: %w", err)
		}
		return &zygo.SexpStr{S: string(s.app.State.Notify)}, nil
	})

	// (close "Color button examples")
	env.AddFunction("close", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("close requires a window title")
		}
		title, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("close: %w", err)
		}
		s.backend.Close(title)
		if err := s.step(fmt.Sprintf("close %q", title), 1); err != nil {
			return zygo.SexpNull, fmt.Errorf("close: %w", err)
		}
		return zygo.SexpNull, nil
	})

	// (resize 1280 720)
	env.AddFunction("resize", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("resize requires width and height")
		}
		w, err := toInt(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("resize: width: %w", err)
		}
		h, err := toInt(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("resize: height: %w", err)
		}
		if w <= 0 || h <= 0 {
			return zygo.SexpNull, fmt.Errorf("resize: size must be positive, got %dx%d", w, h)
		}
		s.backend.Resize(w, h)
		if err := s.step(fmt.Sprintf("resize %dx%d", w, h), 1); err != nil {
			return zygo.SexpNull, fmt.Errorf("resize: %w", err)
		}
		return zygo.SexpNull, nil
	})

	// (frames) or (frames 10)
	env.AddFunction("frames", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		n := 1
		if len(args) == 1 {
			var err error
			if n, err = toInt(args[0]); err != nil {
				return zygo.SexpNull, fmt.Errorf("frames: %w", err)
			}
		}
		if n < 1 {
			return zygo.SexpNull, fmt.Errorf("frames: count must be positive, got %d", n)
		}
		if err := s.step(fmt.Sprintf("frames %d", n), n); err != nil {
			return zygo.SexpNull, fmt.Errorf("frames: %w", err)
		}
		return &zygo.SexpInt{Val: int64(s.driver.Frames())}, nil
	})

	// (quit)
	env.AddFunction("quit", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		s.backend.Quit()
		if err := s.step("quit", 1); err != nil {
			return zygo.SexpNull, fmt.Errorf("quit: %w", err)
		}
		return zygo.SexpNull, nil
	})

	// (example) -> current example number
	env.AddFunction("example", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpInt{Val: int64(s.app.State.Example)}, nil
	})

	// (notify) -> current notification text
	env.AddFunction("notify", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		return &zygo.SexpStr{S: string(s.app.State.Notify)}, nil
	})

	// (expect-example 1) or (expect-example :basics)
	env.AddFunction("expect_example", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("expect-example requires one argument")
		}
		want, err := toExample(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("expect-example: %w", err)
		}
		if got := s.app.State.Example; got != want {
			return zygo.SexpNull, fmt.Errorf("expect-example: want %d, got %d", int(want), int(got))
		}
		return zygo.SexpNull, nil
	})

	// (expect-notify "*** Red button was clicked"); "" expects no notification
	env.AddFunction("expect_notify", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("expect-notify requires one argument")
		}
		want, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("expect-notify: %w", err)
		}
		if got := string(s.app.State.Notify); got != want {
			return zygo.SexpNull, fmt.Errorf("expect-notify: want %q, got %q", want, got)
		}
		return zygo.SexpNull, nil
	})

	// (expect-selector :open) or (expect-selector :closed)
	env.AddFunction("expect_selector", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 1 {
			return zygo.SexpNull, fmt.Errorf("expect-selector requires :open or :closed")
		}
		kw, ok := isKW(args[0])
		if !ok || (kw != "open" && kw != "closed") {
			return zygo.SexpNull, fmt.Errorf("expect-selector requires :open or :closed, got %s", args[0].SexpString(nil))
		}
		if want := kw == "open"; s.app.SelectorOpen != want {
			return zygo.SexpNull, fmt.Errorf("expect-selector: want %s", kw)
		}
		return zygo.SexpNull, nil
	})
}
