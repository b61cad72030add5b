package demo_test

import (
	"testing"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/headless"
	"github.com/chazu/colorbuttons/pkg/swatch"
	"github.com/stretchr/testify/require"
)

// frame runs one App.Build against b, forwarding queued input first.
func frame(t *testing.T, b *headless.Backend, app *demo.App) headless.DrawList {
	t.Helper()
	evs, err := b.PollEvents()
	require.NoError(t, err)
	for _, ev := range evs {
		b.HandleEvent(ev)
	}
	require.NoError(t, b.PrepareFrame())
	ui, err := b.NewFrame()
	require.NoError(t, err)
	app.Build(ui)
	dl, err := b.EndFrame()
	require.NoError(t, err)
	return dl.(headless.DrawList)
}

func TestSelectorClicksSelectAndReset(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()

	for _, e := range []demo.Example{demo.ExampleAlpha, demo.ExampleBasics, demo.ExampleBasics, demo.ExampleInputFormat} {
		app.State.Notify = demo.NotifyBlack
		b.ClickIn(demo.SelectorTitle, e.Title())
		frame(t, b, app)
		req.Equal(e, app.State.Example)
		req.Equal(demo.NotifyNone, app.State.Notify)
	}
	req.Empty(b.Unmatched())
}

func TestNoPanelWhenNothingSelected(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()

	dl := frame(t, b, app)
	req.Equal([]string{demo.SelectorTitle, demo.BackdropTitle}, dl.Windows())
	for _, e := range demo.Examples {
		req.Zero(app.Built(e))
	}
}

func TestExactlyOnePanelPerFrame(t *testing.T) {
	req := require.New(t)
	for _, e := range demo.Examples {
		b := headless.New()
		app := demo.NewApp()
		app.State.Example = e

		dl := frame(t, b, app)
		req.Equal([]string{demo.SelectorTitle, e.Title(), demo.BackdropTitle}, dl.Windows())
		for _, other := range demo.Examples {
			if other == e {
				req.Equal(1, app.Built(other))
			} else {
				req.Zero(app.Built(other))
			}
		}
	}
}

func TestBasicsNotifications(t *testing.T) {
	tests := []struct {
		label string
		want  demo.Notification
	}{
		{"Black color", demo.NotifyBlack},
		{"Red color", demo.NotifyRed},
		{"Green color", demo.NotifyBig},
		{"No tooltip", demo.NotifyNoTooltip},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			b := headless.New()
			app := demo.NewApp()
			app.State.Example = demo.ExampleBasics

			b.Click(tt.label)
			frame(t, b, app)
			require.Equal(t, tt.want, app.State.Notify)
			require.Equal(t, demo.ExampleBasics, app.State.Example)
		})
	}
}

func TestBasicsShowsNotificationNextFrame(t *testing.T) {
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleBasics

	b.Click("Red color")
	frame(t, b, app)
	dl := frame(t, b, app)

	_, ok := dl.Find(demo.ExampleBasics.Title(), string(demo.NotifyRed))
	require.True(t, ok)
}

func TestBasicsOptions(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleBasics

	btns := frame(t, b, app).ColorButtons(demo.ExampleBasics.Title())
	req.Len(btns, 4)

	req.Equal(demo.ColorOptions{}, btns[0].Options)
	req.Equal(demo.ColorOptions{}, btns[1].Options)
	req.Equal(demo.Vec2{X: 100, Y: 50}, btns[2].Options.Size)
	req.True(btns[3].Options.NoTooltip)
	req.Nil(btns[3].Swatch.Tooltip)
	req.NotNil(btns[0].Swatch.Tooltip)
}

func TestAlphaPanelOptionsAndSilence(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleAlpha

	btns := frame(t, b, app).ColorButtons(demo.ExampleAlpha.Title())
	req.Len(btns, 4)
	req.True(btns[0].Options.NoAlpha)
	req.Equal(swatch.CheckerNone, btns[0].Swatch.Checker)
	req.Equal(demo.PreviewOpaque, btns[1].Options.Preview)
	req.Equal(swatch.CheckerNone, btns[1].Swatch.Checker)
	req.Equal(demo.PreviewHalfAlpha, btns[2].Options.Preview)
	req.Equal(swatch.CheckerRightHalf, btns[2].Swatch.Checker)
	req.Equal(demo.PreviewAlpha, btns[3].Options.Preview)
	req.Equal(swatch.CheckerFull, btns[3].Swatch.Checker)

	// Clicking any of them leaves the notification alone
	for _, btn := range btns {
		b.ClickIn(demo.ExampleAlpha.Title(), btn.Label)
		frame(t, b, app)
		req.Equal(demo.NotifyNone, app.State.Notify)
	}
	req.Empty(b.Unmatched())
}

func TestAlphaPanelLabels(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleAlpha

	btns := frame(t, b, app).ColorButtons(demo.ExampleAlpha.Title())
	labels := make([]string, 0, len(btns))
	for _, btn := range btns {
		labels = append(labels, btn.Label)
	}
	req.Equal([]string{
		"Red color",
		"Red + ColorPreview::Opaque",
		"Red + ColorPreview::HalfAlpha",
		"Red + ColorPreview::Alpha",
	}, labels)
	// The label is the first tooltip line.
	req.Equal("Red + ColorPreview::HalfAlpha", btns[2].Swatch.Tooltip[0])
}

func TestPanelsTableMatchesBuiltWindows(t *testing.T) {
	req := require.New(t)
	for e, p := range demo.Panels {
		req.Equal(e, p.Example)

		b := headless.New()
		app := demo.NewApp()
		app.State.Example = e
		dl := frame(t, b, app)

		w, ok := dl.Window(e.Title())
		req.True(ok, "no window for %s", e)
		req.Equal(p.Size, w.Rect.Size)
	}
}

func TestInputFormatPanel(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleInputFormat

	btns := frame(t, b, app).ColorButtons(demo.ExampleInputFormat.Title())
	req.Len(btns, 2)
	req.Equal(btns[0].Color, btns[1].Color, "both read the same value")
	req.Equal(demo.InputRGB, btns[0].Options.Input)
	req.Equal(demo.InputHSV, btns[1].Options.Input)
	req.Equal(uint8(255), btns[0].Swatch.Color.R)
	req.Equal(uint8(0), btns[1].Swatch.Color.R)
}

func TestSelectorCloseHidesItLater(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	app.State.Example = demo.ExampleBasics

	b.Close(demo.SelectorTitle)
	frame(t, b, app)
	req.False(app.SelectorOpen)

	dl := frame(t, b, app)
	req.Equal([]string{demo.ExampleBasics.Title(), demo.BackdropTitle}, dl.Windows())
	req.Equal(demo.ExampleBasics, app.State.Example)
}

func TestPanelGeometry(t *testing.T) {
	req := require.New(t)
	b := headless.New(headless.WithViewport(1280, 720))
	app := demo.NewApp()
	app.State.Example = demo.ExampleAlpha
	dl := frame(t, b, app)

	sel, _ := dl.Window(demo.SelectorTitle)
	req.Equal(demo.Vec2{X: 20, Y: 20}, sel.Rect.Pos)
	req.Equal(demo.Vec2{X: 700, Y: 100}, sel.Rect.Size)

	p, _ := dl.Window(demo.ExampleAlpha.Title())
	req.Equal(demo.Vec2{X: 20, Y: 140}, p.Rect.Pos)
	req.Equal(demo.Vec2{X: 700, Y: 320}, p.Rect.Size)

	bg, _ := dl.Window(demo.BackdropTitle)
	req.Equal(demo.Vec2{X: 1280, Y: 720}, bg.Rect.Size)
	req.True(bg.Flags.Has(demo.WindowNoDecoration | demo.WindowNoSavedSettings | demo.WindowNoTitleBar))
}

func TestEndToEndScenario(t *testing.T) {
	req := require.New(t)
	b := headless.New()
	app := demo.NewApp()
	req.Equal(demo.State{}, app.State)

	b.ClickIn(demo.SelectorTitle, demo.ExampleAlpha.Title())
	frame(t, b, app)
	req.Equal(demo.State{Example: demo.ExampleAlpha}, app.State)

	// "Red color" in panel 2 ignores alpha and does not notify
	b.ClickIn(demo.ExampleAlpha.Title(), "Red color")
	frame(t, b, app)
	req.Equal(demo.State{Example: demo.ExampleAlpha}, app.State)

	b.ClickIn(demo.SelectorTitle, demo.ExampleBasics.Title())
	frame(t, b, app)
	req.Equal(demo.State{Example: demo.ExampleBasics}, app.State)

	b.ClickIn(demo.ExampleBasics.Title(), "Red color")
	frame(t, b, app)
	req.Equal(demo.State{Example: demo.ExampleBasics, Notify: demo.NotifyRed}, app.State)
	req.Empty(b.Unmatched())
}
