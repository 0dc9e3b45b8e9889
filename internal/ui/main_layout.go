package ui

import (
	"noteboard/internal/board"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	headerTitle    = "The nicest board of all"
	headerSubtitle = "A simple, colourful place to add notes with text and images."
)

var keyBindings = [][2]string{
	{"a / Enter", "Add note"},
	{"← / p", "Previous page"},
	{"→ / n", "Next page"},
	{"c", "Copy note text"},
	{"o", "Open note image"},
	{"Ctrl+S", "Submit note"},
	{"Esc", "Cancel / close"},
	{"?", "Show keys"},
	{"q", "Quit"},
}

func (a *App) setupMainLayout() {
	header := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(tview.NewTextView().SetDynamicColors(true).SetText("[white::b]"+headerTitle+"[-::-]"), 1, 0, false).
		AddItem(tview.NewTextView().SetText(headerSubtitle).SetTextColor(tcell.ColorGray), 1, 0, false)

	a.addBtn = styleButton(tview.NewButton("Add note").SetSelectedFunc(func() { a.openCompose() }))
	a.status = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	addRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 0, 1, false).
		AddItem(a.addBtn, 14, 0, true).
		AddItem(nil, 0, 1, false)

	footer := tview.NewTextView().SetDynamicColors(true).
		SetText("[gray]? keys · q quit[-]").
		SetTextAlign(tview.AlignRight)

	a.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(tview.NewTextView().SetText(""), 1, 0, false).
		AddItem(a.content, 0, 1, false).
		AddItem(tview.NewTextView().SetText(""), 1, 0, false).
		AddItem(addRow, 1, 0, true).
		AddItem(a.status, 1, 0, false).
		AddItem(footer, 1, 0, false)
	a.root.SetBorderPadding(1, 0, 2, 2)
	a.root.SetInputCapture(a.handleKey)

	a.pages.AddPage(pageMain, newCenteredBox(a.root, 40, 16, 100, 0, 0.9, 1.0), true, true)
}

// handleKey routes board-level shortcuts. In the compose view only Esc and
// Ctrl+S are taken; other keys reach the fields.
func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	if a.board.State() == board.StateCompose {
		return a.composeKey(event)
	}
	switch event.Key() {
	case tcell.KeyLeft:
		a.prevPage()
		return nil
	case tcell.KeyRight:
		a.nextPage()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'a':
			a.openCompose()
		case 'p':
			a.prevPage()
		case 'n':
			a.nextPage()
		case 'c':
			a.copyNote()
		case 'o':
			a.openImage()
		case '?':
			a.showHelp()
		case 'q':
			a.Stop()
		default:
			return event
		}
		return nil
	}
	return event
}

func (a *App) setupHelp() {
	table := tview.NewTable().SetBorders(false).SetSelectable(false, false)
	table.SetCell(0, 0, tview.NewTableCell("[yellow::b]Key[-::-]").SetExpansion(1).SetAlign(tview.AlignRight))
	table.SetCell(0, 1, tview.NewTableCell("  "))
	table.SetCell(0, 2, tview.NewTableCell("[yellow::b]Action[-::-]").SetExpansion(2))
	for i, b := range keyBindings {
		row := i + 1
		table.SetCell(row, 0, tview.NewTableCell("[skyblue]"+b[0]+"[-]").SetAlign(tview.AlignRight).SetExpansion(1))
		table.SetCell(row, 1, tview.NewTableCell("  "))
		table.SetCell(row, 2, tview.NewTableCell("[white]"+b[1]+"[-]").SetExpansion(2))
	}
	table.SetBorder(true).SetTitle(" Keys (Esc to close) ")
	table.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || event.Rune() == '?' {
			a.hideHelp()
			return nil
		}
		return event
	})
	a.pages.AddPage(pageHelp, newCenteredBox(table, 36, len(keyBindings)+4, 60, len(keyBindings)+4, 0.5, 0.5), true, false)
}

func (a *App) showHelp() {
	a.pages.ShowPage(pageHelp)
	if _, p := a.pages.GetFrontPage(); p != nil {
		a.tv.SetFocus(p)
	}
}

func (a *App) hideHelp() {
	a.pages.HidePage(pageHelp)
	a.refresh()
}
