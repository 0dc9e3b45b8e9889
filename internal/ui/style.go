package ui

import (
	"noteboard/internal/note"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	colorUnfocusedBg = tcell.Color236
	colorFocusedBg   = tcell.Color24
	colorDisabledFg  = tcell.Color244
)

// noteColors are the dark variants of the palette.
var noteColors = map[note.Color]tcell.Color{
	note.Blue:   tcell.NewRGBColor(30, 58, 138),
	note.Green:  tcell.NewRGBColor(20, 83, 45),
	note.Purple: tcell.NewRGBColor(88, 28, 135),
	note.Pink:   tcell.NewRGBColor(131, 24, 67),
	note.Yellow: tcell.NewRGBColor(113, 63, 18),
	note.Orange: tcell.NewRGBColor(124, 45, 18),
}

func noteBackground(c note.Color) tcell.Color {
	if bg, ok := noteColors[c]; ok {
		return bg
	}
	return colorUnfocusedBg
}

func styleButton(b *tview.Button) *tview.Button {
	b.SetBackgroundColor(colorUnfocusedBg)
	b.SetLabelColor(tcell.ColorWhite)
	b.SetFocusFunc(func() {
		b.SetLabelColor(colorFocusedBg)
		b.SetBackgroundColor(tcell.ColorWhite)
	})
	b.SetBlurFunc(func() {
		b.SetBackgroundColor(colorUnfocusedBg)
		if b.IsDisabled() {
			b.SetLabelColor(colorDisabledFg)
		} else {
			b.SetLabelColor(tcell.ColorWhite)
		}
	})
	return b
}

// setButtonEnabled greys out a disabled button so it reads as unavailable.
func setButtonEnabled(b *tview.Button, enabled bool) {
	b.SetDisabled(!enabled)
	if enabled {
		b.SetLabelColor(tcell.ColorWhite)
	} else {
		b.SetLabelColor(colorDisabledFg)
	}
}

func styleInput(f *tview.InputField) *tview.InputField {
	f.SetFieldBackgroundColor(colorUnfocusedBg)
	f.SetFocusFunc(func() { f.SetFieldBackgroundColor(colorFocusedBg) })
	f.SetBlurFunc(func() { f.SetFieldBackgroundColor(colorUnfocusedBg) })
	return f
}

func styleForm(f *tview.Form) {
	for i := 0; i < f.GetFormItemCount(); i++ {
		if input, ok := f.GetFormItem(i).(*tview.InputField); ok {
			styleInput(input)
		}
	}
	for i := 0; i < f.GetButtonCount(); i++ {
		styleButton(f.GetButton(i))
	}
}

// enableButtonNav lets the arrow keys move between a form's buttons.
func (a *App) enableButtonNav(form *tview.Form) {
	prev := form.GetInputCapture()
	form.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		_, btn := form.GetFocusedItemIndex()
		if btn >= 0 {
			switch event.Key() {
			case tcell.KeyLeft:
				if btn > 0 {
					a.tv.SetFocus(form.GetButton(btn - 1))
				}
				return nil
			case tcell.KeyRight:
				if btn < form.GetButtonCount()-1 {
					a.tv.SetFocus(form.GetButton(btn + 1))
				}
				return nil
			}
		}
		if prev != nil {
			return prev(event)
		}
		return event
	})
}
