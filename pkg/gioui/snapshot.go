package gioui

import (
	"context"
	"fmt"
	"image"
	"log/slog"

	"gioui.org/gpu/headless"

	"github.com/chazu/colorbuttons/pkg/frame"
)

// Snapshot runs builder for frames frames in an offscreen window of
// width×height pixels and returns the last frame.
func Snapshot(ctx context.Context, log *slog.Logger, builder frame.Builder, width, height, frames int) (*image.RGBA, error) {
	hw, err := headless.NewWindow(width, height)
	if err != nil {
		return nil, fmt.Errorf("gioui: offscreen window: %w", err)
	}
	defer hw.Release()

	b := newBackend(nil, Options{Width: width, Height: height})
	b.target = hw
	b.remaining = frames

	d := frame.NewDriver(log, b, builder, frame.Options{RenderPolicy: frame.RenderAbort})
	if err := d.Run(ctx); err != nil {
		return nil, err
	}
	if d.Frames() == 0 {
		return nil, fmt.Errorf("gioui: no frame rendered")
	}

	img := image.NewRGBA(image.Rectangle{Max: hw.Size()})
	if err := hw.Screenshot(img); err != nil {
		return nil, fmt.Errorf("gioui: screenshot: %w", err)
	}
	return img, nil
}
