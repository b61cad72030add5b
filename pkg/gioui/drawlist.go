package gioui

import (
	"fmt"

	"gioui.org/op"

	"github.com/chazu/colorbuttons/pkg/frame"
)

// DrawList holds the recorded panels of one frame, bottom first.
type DrawList struct {
	calls []op.CallOp
}

// Len returns the number of panels.
func (d DrawList) Len() int { return len(d.calls) }

func errForeignDrawList(dl frame.DrawList) error {
	return fmt.Errorf("gioui: cannot render %T", dl)
}
