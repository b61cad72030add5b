package demo

// App is the per-process demo: its state and whether the selector is
// still open.
type App struct {
	State        State
	SelectorOpen bool

	// built counts panel builder runs per example, for inspection.
	built map[Example]int
}

// NewApp returns an App with default state and the selector open.
func NewApp() *App {
	return &App{SelectorOpen: true, built: make(map[Example]int)}
}

// Build lays out one frame: selector, the active example panel, then
// the backdrop sized to the main viewport.
func (a *App) Build(ui UI) {
	vp := ui.MainViewport()

	if a.SelectorOpen {
		Selector(ui, &a.State, &a.SelectorOpen)
	}
	if p, ok := Panels[a.State.Example]; ok {
		p.Build(ui, &a.State)
		a.built[p.Example]++
	}

	Backdrop(ui, vp)
}

// Built returns how many frames built the panel of e.
func (a *App) Built(e Example) int {
	return a.built[e]
}
