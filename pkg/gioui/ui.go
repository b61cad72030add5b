package gioui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/chazu/colorbuttons/pkg/demo"
)

// implicitWindow holds widgets built outside any window.
const implicitWindow = "Debug##Default"

const (
	titleHeight = unit.Dp(22)
	padding     = unit.Dp(8)
	itemGap     = unit.Dp(4)
	spacing     = unit.Dp(8)
)

var (
	windowBg  = color.NRGBA{R: 15, G: 15, B: 15, A: 240}
	titleBg   = color.NRGBA{R: 41, G: 74, B: 122, A: 255}
	borderCol = color.NRGBA{R: 110, G: 110, B: 128, A: 128}
	textColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	frameBg   = color.NRGBA{R: 41, G: 74, B: 122, A: 138}
	markCol   = color.NRGBA{R: 66, G: 150, B: 250, A: 255}
)

type windowState struct {
	drag  gesture.Drag
	grab  f32.Point
	close widget.Clickable
}

type widgetState struct {
	click widget.Clickable
}

// panel is a window being built.
type panel struct {
	title  string
	size   image.Point
	cursor int
}

type ui struct {
	b       *Backend
	gtx     layout.Context
	stack   []*panel
	loose   *panel
	looseAt image.Point
	back    []op.CallOp
	front   []op.CallOp
	ended   bool
}

var _ demo.UI = (*ui)(nil)

func (u *ui) check() {
	if u.ended {
		panic("gioui: UI frame handle used after the frame ended")
	}
}

func (u *ui) MainViewport() demo.Viewport {
	u.check()
	return u.b.viewport()
}

func (u *ui) Window(title string, opts demo.WindowOptions, body func()) {
	u.check()
	if opts.Open != nil && !*opts.Open {
		return
	}
	gtx := u.gtx
	rect := u.b.store.Resolve(title, opts)
	ws := u.b.windowState(title)
	decorated := !opts.Flags.Has(demo.WindowNoTitleBar)

	if decorated {
		for {
			e, ok := ws.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
			if !ok {
				break
			}
			switch e.Kind {
			case pointer.Press:
				ws.grab = e.Position
			case pointer.Drag:
				d := e.Position.Sub(ws.grab)
				s := u.b.pxPerDp()
				rect.Pos = demo.Vec2{X: rect.Pos.X + d.X/s, Y: rect.Pos.Y + d.Y/s}
				u.b.store.Move(title, rect.Pos)
			}
		}
	}
	closing := opts.Open != nil && ws.close.Clicked(gtx)

	p := &panel{title: title, size: u.b.toPx(rect.Size)}
	m := op.Record(gtx.Ops)
	trans := op.Offset(u.b.toPx(rect.Pos)).Push(gtx.Ops)
	cl := clip.Rect{Max: p.size}.Push(gtx.Ops)
	paint.Fill(gtx.Ops, windowBg)
	if decorated {
		p.cursor = u.titleBar(gtx, title, p.size.X, ws, opts.Open != nil)
	}
	p.cursor += gtx.Dp(padding)

	u.stack = append(u.stack, p)
	body()
	u.stack = u.stack[:len(u.stack)-1]

	cl.Pop()
	outline(gtx.Ops, image.Rectangle{Max: p.size}, borderCol)
	trans.Pop()
	call := m.Stop()
	if opts.Flags.Has(demo.WindowNoBringToFront) {
		u.back = append(u.back, call)
	} else {
		u.front = append(u.front, call)
	}

	if closing {
		*opts.Open = false
	}
}

// titleBar draws the bar and its drag area and returns its height.
func (u *ui) titleBar(gtx layout.Context, title string, width int, ws *windowState, closable bool) int {
	h := gtx.Dp(titleHeight)
	bar := image.Rect(0, 0, width, h)
	paint.FillShape(gtx.Ops, titleBg, clip.Rect(bar).Op())

	area := clip.Rect(bar).Push(gtx.Ops)
	ws.drag.Add(gtx.Ops)
	pointer.CursorGrab.Add(gtx.Ops)
	area.Pop()

	pad := gtx.Dp(padding)
	off := op.Offset(image.Pt(pad, (h-gtx.Sp(u.b.theme.TextSize))/2)).Push(gtx.Ops)
	lbl := material.Body2(u.b.theme, visibleLabel(title))
	lbl.MaxLines = 1
	lbl.Color = textColor
	gtx.Constraints = layout.Constraints{Max: image.Pt(width-2*pad-h, h)}
	lbl.Layout(gtx)
	off.Pop()

	if closable {
		off := op.Offset(image.Pt(width-h, 0)).Push(gtx.Ops)
		gtx.Constraints = layout.Exact(image.Pt(h, h))
		ws.close.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			x := material.Body2(u.b.theme, "×")
			x.Color = textColor
			return layout.Center.Layout(gtx, x.Layout)
		})
		off.Pop()
	}
	return h
}

// item lays out w at the cursor of the current panel. Widgets built
// outside any window land in the implicit debug window.
func (u *ui) item(w layout.Widget) {
	gtx := u.gtx
	if len(u.stack) == 0 {
		u.looseItem(w)
		return
	}
	p := u.stack[len(u.stack)-1]
	u.place(gtx, p, w)
}

func (u *ui) place(gtx layout.Context, p *panel, w layout.Widget) {
	pad := gtx.Dp(padding)
	off := op.Offset(image.Pt(pad, p.cursor)).Push(gtx.Ops)
	gtx.Constraints = layout.Constraints{Max: image.Pt(max(p.size.X-2*pad, 0), max(p.size.Y-p.cursor, 0))}
	dims := w(gtx)
	off.Pop()
	p.cursor += dims.Size.Y + gtx.Dp(itemGap)
}

func (u *ui) looseItem(w layout.Widget) {
	gtx := u.gtx
	if u.loose == nil {
		rect := u.b.store.Resolve(implicitWindow, demo.WindowOptions{})
		u.loose = &panel{title: implicitWindow, size: u.b.toPx(rect.Size), cursor: gtx.Dp(padding)}
		u.looseAt = u.b.toPx(rect.Pos)
	}
	m := op.Record(gtx.Ops)
	trans := op.Offset(u.looseAt).Push(gtx.Ops)
	u.place(gtx, u.loose, w)
	trans.Pop()
	u.front = append(u.front, m.Stop())
}

func (u *ui) key(id string) string {
	title := implicitWindow
	if len(u.stack) > 0 {
		title = u.stack[len(u.stack)-1].title
	}
	return title + "/" + id
}

func (u *ui) RadioButton(label string, active bool) bool {
	u.check()
	st := u.b.widgetState(u.key(label))
	clicked := st.click.Clicked(u.gtx)
	u.item(func(gtx layout.Context) layout.Dimensions {
		return st.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			return radio(gtx, u.b.theme, visibleLabel(label), active)
		})
	})
	return clicked
}

func (u *ui) Text(s string) {
	u.check()
	u.item(func(gtx layout.Context) layout.Dimensions {
		l := material.Body2(u.b.theme, s)
		l.MaxLines = 1
		l.Color = textColor
		return l.Layout(gtx)
	})
}

func (u *ui) TextWrapped(s string) {
	u.check()
	u.item(func(gtx layout.Context) layout.Dimensions {
		l := material.Body2(u.b.theme, s)
		l.Color = textColor
		return l.Layout(gtx)
	})
}

func (u *ui) Separator() {
	u.check()
	u.item(func(gtx layout.Context) layout.Dimensions {
		sz := image.Pt(gtx.Constraints.Max.X, max(gtx.Dp(1), 1))
		paint.FillShape(gtx.Ops, borderCol, clip.Rect{Max: sz}.Op())
		return layout.Dimensions{Size: sz}
	})
}

func (u *ui) Spacing() {
	u.check()
	u.item(func(gtx layout.Context) layout.Dimensions {
		return layout.Dimensions{Size: image.Pt(0, gtx.Dp(spacing)-gtx.Dp(itemGap))}
	})
}

func (u *ui) ColorButton(id string, col demo.RGBA, opts demo.ColorOptions) bool {
	u.check()
	st := u.b.widgetState(u.key(id))
	clicked := st.click.Clicked(u.gtx)
	size := opts.Size
	if size.IsZero() {
		size = demo.Vec2{X: 20, Y: 20}
	}
	sz := u.b.toPx(size)
	u.item(func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints = layout.Exact(sz)
		return st.click.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			sw := colorButton(gtx, visibleLabel(id), col, opts, sz)
			if st.click.Hovered() && len(sw.Tooltip) > 0 {
				tooltip(gtx, u.b.theme, sw.Tooltip, image.Pt(0, sz.Y+gtx.Dp(itemGap)))
			}
			return layout.Dimensions{Size: sz}
		})
	})
	return clicked
}

// drawList orders the recorded panels: panels that never come to the
// front first, then the rest in build order.
func (u *ui) drawList() DrawList {
	calls := make([]op.CallOp, 0, len(u.back)+len(u.front))
	calls = append(calls, u.back...)
	calls = append(calls, u.front...)
	return DrawList{calls: calls}
}
