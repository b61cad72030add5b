package demo

const (
	SelectorTitle = "Color button examples"
	BackdropTitle = "Your first window!"
)

// Panel is one example panel.
type Panel struct {
	Example Example
	Size    Vec2
	Build   func(ui UI, s *State)
}

var (
	panelPos = Vec2{X: 20, Y: 140}

	basicsSize      = Vec2{X: 700, Y: 300}
	alphaSize       = Vec2{X: 700, Y: 320}
	inputFormatSize = Vec2{X: 700, Y: 320}
)

// Panels maps each selectable example to its builder.
var Panels = map[Example]Panel{
	ExampleBasics:      {Example: ExampleBasics, Size: basicsSize, Build: Basics},
	ExampleAlpha:       {Example: ExampleAlpha, Size: alphaSize, Build: Alpha},
	ExampleInputFormat: {Example: ExampleInputFormat, Size: inputFormatSize, Build: InputFormat},
}

func panelOptions(size Vec2) WindowOptions {
	return WindowOptions{
		Pos:      panelPos,
		PosCond:  CondAppearing,
		Size:     size,
		SizeCond: CondAppearing,
	}
}

// Selector draws the example selector. Clicking any option, including
// the active one, selects it and clears the notification. The panel's
// close control clears *open; later frames skip the panel.
func Selector(ui UI, s *State, open *bool) {
	opts := WindowOptions{
		Flags:    WindowNoResize,
		Pos:      Vec2{X: 20, Y: 20},
		PosCond:  CondAppearing,
		Size:     Vec2{X: 700, Y: 100},
		SizeCond: CondAppearing,
		Open:     open,
	}
	ui.Window(SelectorTitle, opts, func() {
		picked := ExampleNone
		// Every option is drawn even after one was clicked so the
		// layout stays stable within the frame.
		for _, e := range Examples {
			if ui.RadioButton(e.Title(), s.Example == e) {
				picked = e
			}
		}
		if picked != ExampleNone {
			s.Select(picked)
		}
	})
}

// Basics shows default indicators, a custom size and a disabled tooltip.
func Basics(ui UI, s *State) {
	ui.Window(ExampleBasics.Title(), panelOptions(basicsSize), func() {
		ui.TextWrapped("Color button is a widget that displays a color value as a clickable rectangle. " +
			"It also supports a tooltip with detailed information about the color value. " +
			"Try hovering over and clicking these buttons!")
		ui.Text(string(s.Notify))

		ui.Text("This button is black:")
		if ui.ColorButton("Black color", RGBA{0, 0, 0, 1}, ColorOptions{}) {
			s.Notify = NotifyBlack
		}

		ui.Text("This button is red:")
		if ui.ColorButton("Red color", RGBA{1, 0, 0, 1}, ColorOptions{}) {
			s.Notify = NotifyRed
		}

		ui.Text("This button is BIG because it has a custom size:")
		if ui.ColorButton("Green color", RGBA{0, 1, 0, 1}, ColorOptions{Size: Vec2{X: 100, Y: 50}}) {
			s.Notify = NotifyBig
		}

		ui.Text("This button doesn't use the tooltip at all:")
		if ui.ColorButton("No tooltip", RGBA{0, 0, 1, 1}, ColorOptions{NoTooltip: true}) {
			s.Notify = NotifyNoTooltip
		}
	})
}

// Alpha shows the alpha inclusion switch and the three preview modes.
// Its indicators do not notify.
func Alpha(ui UI, _ *State) {
	halfRed := RGBA{1, 0, 0, 0.5}
	ui.Window(ExampleAlpha.Title(), panelOptions(alphaSize), func() {
		ui.TextWrapped("The displayed color is passed to the button as four float values between " +
			"0.0 - 1.0 (RGBA). If you don't care about the alpha component, it can be " +
			"disabled and it won't show up in the tooltip")

		ui.Text("This button ignores the alpha component:")
		ui.ColorButton("Red color", halfRed, ColorOptions{NoAlpha: true})

		ui.Spacing()
		ui.Spacing()
		ui.Spacing()
		ui.TextWrapped("If you *do* care about the alpha component, you can choose how it's " +
			"displayed in the button and the tooltip")

		ui.Separator()
		ui.TextWrapped("ColorPreview::Opaque (default) doesn't show the alpha component at all")
		ui.ColorButton("Red + ColorPreview::Opaque", halfRed, ColorOptions{Preview: PreviewOpaque})

		ui.Separator()
		ui.TextWrapped("ColorPreview::HalfAlpha divides the color area into two halves and uses a " +
			"checkerboard pattern in one half to illustrate the alpha component")
		ui.ColorButton("Red + ColorPreview::HalfAlpha", halfRed, ColorOptions{Preview: PreviewHalfAlpha})

		ui.Separator()
		ui.TextWrapped("ColorPreview::Alpha uses a checkerboard pattern in the entire color area to " +
			"illustrate the alpha component")
		ui.ColorButton("Red + ColorPreview::Alpha", halfRed, ColorOptions{Preview: PreviewAlpha})
	})
}

// InputFormat shows the same value read as RGB and as HSV.
func InputFormat(ui UI, _ *State) {
	ui.Window(ExampleInputFormat.Title(), panelOptions(inputFormatSize), func() {
		ui.Text("This button interprets the input value [1.0, 0.0, 0.0, 1.0] as RGB(A) (default):")
		ui.ColorButton("RGBA red", RGBA{1, 0, 0, 1}, ColorOptions{})

		ui.Separator()
		ui.Text("This button interprets the input value [1.0, 0.0, 0.0, 1.0] as HSV(A):")
		ui.ColorButton("HSVA black", RGBA{1, 0, 0, 1}, ColorOptions{Input: InputHSV})
	})
}

// Backdrop fills the viewport behind the demo panels.
func Backdrop(ui UI, vp Viewport) {
	opts := WindowOptions{
		Flags:    WindowNoDecoration | WindowNoSavedSettings | WindowNoTitleBar | WindowNoBringToFront,
		Pos:      vp.Pos,
		PosCond:  CondFirstUseEver,
		Size:     vp.Size,
		SizeCond: CondFirstUseEver,
	}
	ui.Window(BackdropTitle, opts, func() {
		ui.Text("Hello world!")
	})
}
