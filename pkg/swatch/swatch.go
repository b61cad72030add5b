// Package swatch works out how a color indicator is displayed: which
// color model the input is in, whether alpha counts, which part of the
// area sits on a checkerboard and what the tooltip says.
package swatch

import (
	"fmt"
	"image/color"
	"math"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/lucasb-eyer/go-colorful"
)

// Checker tells which part of the indicator is drawn over a checkerboard.
type Checker int

const (
	CheckerNone Checker = iota
	CheckerRightHalf
	CheckerFull
)

func (c Checker) String() string {
	switch c {
	case CheckerRightHalf:
		return "right-half"
	case CheckerFull:
		return "full"
	}
	return "none"
}

// Checkerboard cell colors.
var (
	CheckerLight = color.NRGBA{R: 204, G: 204, B: 204, A: 255}
	CheckerDark  = color.NRGBA{R: 128, G: 128, B: 128, A: 255}
)

// Swatch is the resolved display of one indicator.
type Swatch struct {
	// Color is the RGB color including the alpha that will be shown.
	Color color.NRGBA
	// Opaque is Color with alpha forced to 255.
	Opaque  color.NRGBA
	Checker Checker
	// Tooltip is nil when the tooltip is disabled.
	Tooltip []string
}

// Resolve computes the display of an indicator.
func Resolve(label string, col demo.RGBA, opts demo.ColorOptions) Swatch {
	c := ToRGB(col, opts.Input)
	alpha := float64(col[3])
	if opts.NoAlpha {
		alpha = 1
	}
	nrgba := toNRGBA(c, alpha)
	opaque := nrgba
	opaque.A = 255

	s := Swatch{Color: nrgba, Opaque: opaque}
	if !opts.NoAlpha && nrgba.A < 255 {
		switch opts.Preview {
		case demo.PreviewHalfAlpha:
			s.Checker = CheckerRightHalf
		case demo.PreviewAlpha:
			s.Checker = CheckerFull
		}
	}
	if !opts.NoTooltip {
		s.Tooltip = Tooltip(label, nrgba, !opts.NoAlpha)
	}
	return s
}

// ToRGB interprets the first three components of col per mode.
func ToRGB(col demo.RGBA, mode demo.InputMode) colorful.Color {
	if mode == demo.InputHSV {
		h := math.Mod(float64(col[0])*360, 360)
		return colorful.Hsv(h, clamp01(col[1]), clamp01(col[2])).Clamped()
	}
	return colorful.Color{R: clamp01(col[0]), G: clamp01(col[1]), B: clamp01(col[2])}
}

// Hex formats c as #RRGGBB or #RRGGBBAA.
func Hex(c color.NRGBA, withAlpha bool) string {
	if withAlpha {
		return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Tooltip returns the hover lines for an indicator.
func Tooltip(label string, c color.NRGBA, withAlpha bool) []string {
	lines := []string{label, Hex(c, withAlpha)}
	if withAlpha {
		lines = append(lines,
			fmt.Sprintf("R: %d, G: %d, B: %d, A: %d", c.R, c.G, c.B, c.A),
			fmt.Sprintf("(%.3f,%.3f,%.3f,%.3f)", unit(c.R), unit(c.G), unit(c.B), unit(c.A)))
	} else {
		lines = append(lines,
			fmt.Sprintf("R: %d, G: %d, B: %d", c.R, c.G, c.B),
			fmt.Sprintf("(%.3f,%.3f,%.3f)", unit(c.R), unit(c.G), unit(c.B)))
	}
	return lines
}

func toNRGBA(c colorful.Color, alpha float64) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Round(clamp01(float32(alpha)) * 255))}
}

func clamp01(v float32) float64 {
	return math.Max(0, math.Min(1, float64(v)))
}

func unit(v uint8) float64 { return float64(v) / 255 }
