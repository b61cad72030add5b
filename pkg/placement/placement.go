// Package placement resolves panel geometry across frames according to
// the always / first-use-ever / appearing conditions.
package placement

import "github.com/chazu/colorbuttons/pkg/demo"

// DefaultSize is used for panels that never requested a size.
var DefaultSize = demo.Vec2{X: 400, Y: 300}

// Rect is a resolved panel rectangle.
type Rect struct {
	Pos  demo.Vec2
	Size demo.Vec2
}

type entry struct {
	rect     Rect
	posSet   bool
	sizeSet  bool
	lastSeen uint64
}

// Store remembers panel geometry between frames. Frames are numbered by
// the caller through BeginFrame; a panel "appears" when it was not
// resolved during the previous frame.
type Store struct {
	frame   uint64
	entries map[string]*entry
	next    demo.Vec2
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]*entry), next: demo.Vec2{X: 60, Y: 60}}
}

// BeginFrame advances the frame counter.
func (s *Store) BeginFrame() {
	s.frame++
}

// Frame returns the current frame number.
func (s *Store) Frame() uint64 { return s.frame }

// Resolve returns the rectangle of the panel title for this frame.
func (s *Store) Resolve(title string, opts demo.WindowOptions) Rect {
	e, known := s.entries[title]
	if !known {
		e = &entry{}
		s.entries[title] = e
	}
	appearing := !known || e.lastSeen+1 < s.frame
	e.lastSeen = s.frame

	if apply(opts.PosCond, known, appearing) {
		e.rect.Pos = opts.Pos
		e.posSet = true
	}
	if !e.posSet {
		// Cascade unpositioned panels like a window manager would.
		e.rect.Pos = s.next
		e.posSet = true
		s.next.X += 20
		s.next.Y += 20
	}

	if apply(opts.SizeCond, known, appearing) {
		e.rect.Size = opts.Size
		e.sizeSet = true
	}
	if !e.sizeSet {
		e.rect.Size = DefaultSize
		e.sizeSet = true
	}
	return e.rect
}

// Move sets the position of a known panel, as a user drag would.
func (s *Store) Move(title string, pos demo.Vec2) {
	if e, ok := s.entries[title]; ok {
		e.rect.Pos = pos
	}
}

func apply(c demo.Condition, known, appearing bool) bool {
	switch c {
	case demo.CondAlways:
		return true
	case demo.CondFirstUseEver:
		return !known
	case demo.CondAppearing:
		return appearing
	}
	return false
}
