package gioui

import (
	"image"
	"image/color"
	"strings"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/swatch"
)

const checkerCell = unit.Dp(6)

// visibleLabel strips the "##id" suffix used to disambiguate widgets.
func visibleLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

func radio(gtx layout.Context, th *material.Theme, label string, active bool) layout.Dimensions {
	d := gtx.Sp(th.TextSize) + gtx.Dp(4)
	circle := image.Rect(0, 0, d, d)
	paint.FillShape(gtx.Ops, frameBg, clip.Ellipse(circle).Op(gtx.Ops))
	if active {
		in := circle.Inset(d / 4)
		paint.FillShape(gtx.Ops, markCol, clip.Ellipse(in).Op(gtx.Ops))
	}

	gap := gtx.Dp(padding) / 2
	off := op.Offset(image.Pt(d+gap, 0)).Push(gtx.Ops)
	lgtx := gtx
	lgtx.Constraints.Min = image.Point{}
	lgtx.Constraints.Max.X = max(gtx.Constraints.Max.X-d-gap, 0)
	l := material.Body2(th, label)
	l.MaxLines = 1
	l.Color = textColor
	ld := l.Layout(lgtx)
	off.Pop()

	return layout.Dimensions{Size: image.Pt(d+gap+ld.Size.X, max(d, ld.Size.Y))}
}

// colorButton paints the indicator for col into a sz rectangle.
func colorButton(gtx layout.Context, label string, col demo.RGBA, opts demo.ColorOptions, sz image.Point) swatch.Swatch {
	sw := swatch.Resolve(label, col, opts)
	r := image.Rectangle{Max: sz}
	switch sw.Checker {
	case swatch.CheckerNone:
		paint.FillShape(gtx.Ops, sw.Opaque, clip.Rect(r).Op())
	case swatch.CheckerRightHalf:
		left, right := splitHalf(r)
		paint.FillShape(gtx.Ops, sw.Opaque, clip.Rect(left).Op())
		checker(gtx.Ops, right, gtx.Dp(checkerCell))
		paint.FillShape(gtx.Ops, sw.Color, clip.Rect(right).Op())
	case swatch.CheckerFull:
		checker(gtx.Ops, r, gtx.Dp(checkerCell))
		paint.FillShape(gtx.Ops, sw.Color, clip.Rect(r).Op())
	}
	outline(gtx.Ops, r, borderCol)
	return sw
}

func splitHalf(r image.Rectangle) (left, right image.Rectangle) {
	mid := r.Min.X + r.Dx()/2
	left, right = r, r
	left.Max.X = mid
	right.Min.X = mid
	return left, right
}

func checker(ops *op.Ops, r image.Rectangle, cell int) {
	paint.FillShape(ops, swatch.CheckerLight, clip.Rect(r).Op())
	for _, c := range checkerCells(r, cell) {
		paint.FillShape(ops, swatch.CheckerDark, clip.Rect(c).Op())
	}
}

// checkerCells returns the dark cells of a checkerboard over r, cell
// pixels wide, with the top left cell light. Cells are clipped to r.
func checkerCells(r image.Rectangle, cell int) []image.Rectangle {
	if cell <= 0 || r.Empty() {
		return nil
	}
	var cells []image.Rectangle
	for y, row := r.Min.Y, 0; y < r.Max.Y; y, row = y+cell, row+1 {
		for x, col := r.Min.X, 0; x < r.Max.X; x, col = x+cell, col+1 {
			if (row+col)%2 == 0 {
				continue
			}
			cells = append(cells, image.Rect(x, y, x+cell, y+cell).Intersect(r))
		}
	}
	return cells
}

func outline(ops *op.Ops, r image.Rectangle, c color.NRGBA) {
	paint.FillShape(ops, c, clip.Stroke{Path: clip.Rect(r).Path(), Width: 1}.Op())
}

// tooltip draws lines in a box at off, above everything else.
func tooltip(gtx layout.Context, th *material.Theme, lines []string, off image.Point) {
	m := op.Record(gtx.Ops)
	t := op.Offset(off).Push(gtx.Ops)
	gtx.Constraints = layout.Constraints{Max: image.Pt(gtx.Dp(320), gtx.Dp(200))}
	pad := gtx.Dp(padding) / 2

	inner := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(4)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, len(lines))
		for _, s := range lines {
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				l := material.Body2(th, s)
				l.MaxLines = 1
				l.Color = textColor
				return l.Layout(gtx)
			}))
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
	body := inner.Stop()

	box := image.Rectangle{Max: dims.Size.Add(image.Pt(pad, pad))}
	paint.FillShape(gtx.Ops, windowBg, clip.Rect(box).Op())
	outline(gtx.Ops, box, borderCol)
	body.Add(gtx.Ops)
	t.Pop()
	op.Defer(gtx.Ops, m.Stop())
}
