package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// centeredBox keeps content centred at a share of the screen, clamped
// between a minimum and an optional maximum size. A zero max means no cap.
type centeredBox struct {
	*tview.Flex
	content       tview.Primitive
	minW, minH    int
	maxW, maxH    int
	widthPercent  float64
	heightPercent float64
	lastW, lastH  int
}

func newCenteredBox(p tview.Primitive, minW, minH, maxW, maxH int, widthPercent, heightPercent float64) *centeredBox {
	c := &centeredBox{
		Flex:          tview.NewFlex(),
		content:       p,
		minW:          minW,
		minH:          minH,
		maxW:          maxW,
		maxH:          maxH,
		widthPercent:  widthPercent,
		heightPercent: heightPercent,
	}
	c.Flex.AddItem(p, 0, 1, true)
	return c
}

func clampSize(total int, percent float64, minSize, maxSize int) int {
	size := int(float64(total) * percent)
	if size < minSize {
		size = minSize
	}
	if maxSize > 0 && size > maxSize {
		size = maxSize
	}
	if size > total {
		size = total
	}
	return size
}

func (c *centeredBox) Draw(screen tcell.Screen) {
	_, _, w, h := c.GetRect()
	if w != c.lastW || h != c.lastH {
		boxW := clampSize(w, c.widthPercent, c.minW, c.maxW)
		boxH := clampSize(h, c.heightPercent, c.minH, c.maxH)
		padLeft, padTop := (w-boxW)/2, (h-boxH)/2

		column := tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, padTop, 0, false).
			AddItem(c.content, boxH, 0, true).
			AddItem(nil, h-boxH-padTop, 0, false)

		c.Flex.Clear().
			AddItem(nil, padLeft, 0, false).
			AddItem(column, boxW, 0, true).
			AddItem(nil, w-boxW-padLeft, 0, false)

		c.lastW, c.lastH = w, h
	}
	c.Flex.Draw(screen)
}
