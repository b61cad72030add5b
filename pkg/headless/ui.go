package headless

import (
	"github.com/chazu/colorbuttons/pkg/demo"
	"github.com/chazu/colorbuttons/pkg/swatch"
)

// implicitWindow holds widgets built outside any window.
const implicitWindow = "Debug##Default"

type ui struct {
	b     *Backend
	list  DrawList
	stack []string
	ended bool
}

var _ demo.UI = (*ui)(nil)

func (u *ui) check() {
	if u.ended {
		panic("headless: UI frame handle used after the frame ended")
	}
}

func (u *ui) window() string {
	if len(u.stack) == 0 {
		return implicitWindow
	}
	return u.stack[len(u.stack)-1]
}

func (u *ui) add(c Command) {
	c.Window = u.window()
	u.list.Commands = append(u.list.Commands, c)
}

func (u *ui) MainViewport() demo.Viewport {
	u.check()
	return u.b.viewport
}

func (u *ui) Window(title string, opts demo.WindowOptions, body func()) {
	u.check()
	if opts.Open != nil && !*opts.Open {
		return
	}
	rect := u.b.store.Resolve(title, opts)
	u.list.Commands = append(u.list.Commands, Command{
		Kind:   KindWindow,
		Window: title,
		Label:  title,
		Rect:   rect,
		Flags:  opts.Flags,
		Open:   true,
	})

	u.stack = append(u.stack, title)
	body()
	u.stack = u.stack[:len(u.stack)-1]

	if opts.Open != nil && u.b.armedCloses[title] {
		delete(u.b.armedCloses, title)
		*opts.Open = false
	}
}

func (u *ui) RadioButton(label string, active bool) bool {
	u.check()
	clicked := u.b.takeClick(u.window(), label)
	u.add(Command{Kind: KindRadio, Label: label, Active: active, Clicked: clicked})
	return clicked
}

func (u *ui) Text(s string) {
	u.check()
	u.add(Command{Kind: KindText, Label: s})
}

func (u *ui) TextWrapped(s string) {
	u.check()
	u.add(Command{Kind: KindTextWrapped, Label: s})
}

func (u *ui) Separator() {
	u.check()
	u.add(Command{Kind: KindSeparator})
}

func (u *ui) Spacing() {
	u.check()
	u.add(Command{Kind: KindSpacing})
}

func (u *ui) ColorButton(id string, col demo.RGBA, opts demo.ColorOptions) bool {
	u.check()
	clicked := u.b.takeClick(u.window(), id)
	u.add(Command{
		Kind:    KindColorButton,
		Label:   id,
		Color:   col,
		Options: opts,
		Swatch:  swatch.Resolve(id, col, opts),
		Clicked: clicked,
	})
	return clicked
}
