package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// charCounter shows how many characters the draft can still take.
type charCounter struct {
	views []*tview.TextView
}

func newCharCounter() *charCounter {
	return &charCounter{}
}

// AddTo inserts a 1-row text view into form at the current position. The
// label is a single space so it does not widen the label column.
func (c *charCounter) AddTo(form *tview.Form) {
	tv := tview.NewTextView().SetDynamicColors(true)
	tv.SetLabel(" ")
	tv.SetSize(1, 0)
	tv.SetScrollable(false)
	form.AddFormItem(tv)
	c.views = append(c.views, tv)
}

func (c *charCounter) Update(remaining int, low bool) {
	text := formatRemaining(remaining, low)
	for _, tv := range c.views {
		tv.SetText(text)
	}
}

func formatRemaining(remaining int, low bool) string {
	color := "gray"
	if low {
		color = "red"
	}
	unit := "characters"
	if remaining == 1 {
		unit = "character"
	}
	return fmt.Sprintf("[%s]%d %s left[-]", color, remaining, unit)
}
