package swatch

import (
	"image/color"
	"testing"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/stretchr/testify/require"
)

func TestResolvePreviewModes(t *testing.T) {
	halfRed := demo.RGBA{1, 0, 0, 0.5}
	tests := []struct {
		name    string
		opts    demo.ColorOptions
		checker Checker
		alpha   uint8
	}{
		{"opaque", demo.ColorOptions{Preview: demo.PreviewOpaque}, CheckerNone, 128},
		{"half alpha", demo.ColorOptions{Preview: demo.PreviewHalfAlpha}, CheckerRightHalf, 128},
		{"alpha", demo.ColorOptions{Preview: demo.PreviewAlpha}, CheckerFull, 128},
		{"no alpha wins over preview", demo.ColorOptions{NoAlpha: true, Preview: demo.PreviewAlpha}, CheckerNone, 255},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			s := Resolve("Red", halfRed, tt.opts)
			req.Equal(tt.checker, s.Checker)
			req.Equal(tt.alpha, s.Color.A)
			req.Equal(color.NRGBA{R: 255, A: 255}, s.Opaque)
		})
	}
}

func TestResolveNoCheckerWhenOpaque(t *testing.T) {
	s := Resolve("Red", demo.RGBA{1, 0, 0, 1}, demo.ColorOptions{Preview: demo.PreviewAlpha})
	require.Equal(t, CheckerNone, s.Checker)
}

func TestResolveInputModes(t *testing.T) {
	req := require.New(t)
	value := demo.RGBA{1, 0, 0, 1}

	rgb := Resolve("RGBA red", value, demo.ColorOptions{})
	req.Equal(color.NRGBA{R: 255, A: 255}, rgb.Color)

	// Hue 1.0 wraps to 0, saturation and value are zero: black.
	hsv := Resolve("HSVA black", value, demo.ColorOptions{Input: demo.InputHSV})
	req.Equal(color.NRGBA{A: 255}, hsv.Color)
}

func TestToRGBHSVPrimary(t *testing.T) {
	c := ToRGB(demo.RGBA{1.0 / 3, 1, 1, 1}, demo.InputHSV)
	r, g, b := c.RGB255()
	require.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
}

func TestTooltip(t *testing.T) {
	req := require.New(t)

	s := Resolve("Red color", demo.RGBA{1, 0, 0, 0.5}, demo.ColorOptions{NoAlpha: true})
	req.Equal([]string{"Red color", "#FF0000", "R: 255, G: 0, B: 0", "(1.000,0.000,0.000)"}, s.Tooltip)

	s = Resolve("Black color", demo.RGBA{0, 0, 0, 1}, demo.ColorOptions{})
	req.Equal("#000000FF", s.Tooltip[1])
	req.Equal("R: 0, G: 0, B: 0, A: 255", s.Tooltip[2])

	s = Resolve("No tooltip", demo.RGBA{0, 0, 1, 1}, demo.ColorOptions{NoTooltip: true})
	req.Nil(s.Tooltip)
}
