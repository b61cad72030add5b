package gioui

import (
	"errors"
	"image"
	"testing"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/unit"
	"github.com/stretchr/testify/require"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/frame"
)

func TestConvert(t *testing.T) {
	boom := errors.New("boom")

	ev := convert(app.DestroyEvent{Err: boom})
	require.Equal(t, frame.EventQuit, ev.Kind)
	require.ErrorIs(t, ev.Err, boom)

	ev = convert(app.FrameEvent{Size: image.Pt(640, 480)})
	require.Equal(t, frame.EventFrame, ev.Kind)
	require.Equal(t, 640, ev.Width)
	require.Equal(t, 480, ev.Height)

	ev = convert(app.ConfigEvent{Config: app.Config{Size: image.Pt(800, 600)}})
	require.Equal(t, frame.EventResize, ev.Kind)
	require.Equal(t, 800, ev.Width)

	ev = convert(key.Event{Name: "A"})
	require.Equal(t, frame.EventInput, ev.Kind)
}

func TestCheckerCells(t *testing.T) {
	cells := checkerCells(image.Rect(0, 0, 12, 12), 6)
	require.Equal(t, []image.Rectangle{
		image.Rect(6, 0, 12, 6),
		image.Rect(0, 6, 6, 12),
	}, cells)

	// Partial cells are clipped.
	cells = checkerCells(image.Rect(10, 0, 20, 4), 6)
	require.Equal(t, []image.Rectangle{image.Rect(16, 0, 20, 4)}, cells)

	require.Nil(t, checkerCells(image.Rectangle{}, 6))
	require.Nil(t, checkerCells(image.Rect(0, 0, 10, 10), 0))
}

func TestSplitHalf(t *testing.T) {
	l, r := splitHalf(image.Rect(0, 0, 100, 50))
	require.Equal(t, image.Rect(0, 0, 50, 50), l)
	require.Equal(t, image.Rect(50, 0, 100, 50), r)
}

func TestVisibleLabel(t *testing.T) {
	require.Equal(t, "Red color", visibleLabel("Red color"))
	require.Equal(t, "", visibleLabel("##hidden"))
	require.Equal(t, "Debug", visibleLabel(implicitWindow))
}

func TestUnits(t *testing.T) {
	b := newBackend(nil, Options{Width: 1200, Height: 800})
	b.metric = unit.Metric{PxPerDp: 2, PxPerSp: 2}

	require.Equal(t, image.Pt(200, 100), b.toPx(demo.Vec2{X: 100, Y: 50}))
	require.Equal(t, demo.Viewport{Size: demo.Vec2{X: 600, Y: 400}}, b.viewport())

	b.metric = unit.Metric{}
	require.Equal(t, float32(1), b.pxPerDp())
}

func TestHandleEventTracksSize(t *testing.T) {
	b := newBackend(nil, Options{Width: 600, Height: 400})

	b.HandleEvent(frame.Event{Kind: frame.EventResize, Width: 1024, Height: 768})
	require.Equal(t, image.Pt(1024, 768), b.size)

	// Degenerate sizes from minimised windows are ignored.
	b.HandleEvent(frame.Event{Kind: frame.EventResize})
	require.Equal(t, image.Pt(1024, 768), b.size)
}

func TestOffscreenPolling(t *testing.T) {
	b := newBackend(nil, Options{Width: 320, Height: 200})
	b.remaining = 2

	for range 2 {
		evs, err := b.PollEvents()
		require.NoError(t, err)
		require.Equal(t, []frame.Event{{Kind: frame.EventFrame, Width: 320, Height: 200}}, evs)
	}
	evs, err := b.PollEvents()
	require.NoError(t, err)
	require.Equal(t, frame.EventQuit, evs[0].Kind)
}

func TestFrameHandleLifecycle(t *testing.T) {
	b := newBackend(nil, Options{Width: 600, Height: 400})

	_, err := b.EndFrame()
	require.ErrorIs(t, err, frame.ErrNoFrame)

	require.NoError(t, b.PrepareFrame())
	ui, err := b.NewFrame()
	require.NoError(t, err)

	_, err = b.NewFrame()
	require.ErrorIs(t, err, frame.ErrFrameActive)
	require.ErrorIs(t, b.PrepareFrame(), frame.ErrFrameActive)

	dl, err := b.EndFrame()
	require.NoError(t, err)
	require.Equal(t, 0, dl.Len())
	require.Panics(t, func() { ui.Separator() })
}

func TestRenderRejectsForeignDrawList(t *testing.T) {
	b := newBackend(nil, Options{Width: 600, Height: 400})
	require.Error(t, b.Render(foreign{}))
}

type foreign struct{}

func (foreign) Len() int { return 0 }

func TestWakeWithoutWindow(t *testing.T) {
	b := newBackend(nil, Options{Width: 600, Height: 400})
	require.NotPanics(t, b.Wake)
}
