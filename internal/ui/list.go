package ui

import (
	"fmt"

	"noteboard/internal/note"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const emptyMessage = "No notes yet. Start by adding one!"

func (a *App) setupList() {
	empty := tview.NewTextView().
		SetText(emptyMessage).
		SetTextAlign(tview.AlignCenter).
		SetTextColor(tcell.ColorGray)

	a.noteList = tview.NewFlex().SetDirection(tview.FlexRow)

	a.prevBtn = styleButton(tview.NewButton("← Previous").SetSelectedFunc(func() { a.prevPage() }))
	a.nextBtn = styleButton(tview.NewButton("Next →").SetSelectedFunc(func() { a.nextPage() }))
	a.pageLabel = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)

	a.pagerRow = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(a.prevBtn, 14, 0, false).
		AddItem(a.pageLabel, 0, 1, false).
		AddItem(a.nextBtn, 14, 0, false)

	a.notesView = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(a.noteList, 0, 1, false).
		AddItem(a.pagerRow, 0, 0, false)

	a.content = tview.NewPages()
	a.content.SetBorder(true)
	a.content.AddPage(contentEmpty, tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(empty, 1, 0, false).
		AddItem(nil, 0, 1, false), true, true)
	a.content.AddPage(contentNotes, a.notesView, true, false)
}

func (a *App) renderNotes() {
	a.noteList.Clear()
	for _, n := range a.board.Page().Notes {
		a.noteList.AddItem(newNoteCard(n), 0, 1, false)
		a.noteList.AddItem(tview.NewTextView().SetText(""), 1, 0, false)
	}
}

func newNoteCard(n note.Note) *tview.Flex {
	bg := noteBackground(n.Color)

	text := tview.NewTextView().SetWrap(true).SetWordWrap(true).SetText(n.Text)
	text.SetBackgroundColor(bg)

	card := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(text, 0, 1, false)
	if n.HasImage() {
		link := tview.NewTextView().SetDynamicColors(true).
			SetText("[::u]" + tview.Escape(n.ImageURL) + "[::-] [gray](o to open)[-]")
		link.SetBackgroundColor(bg)
		card.AddItem(link, 1, 0, false)
	}
	card.SetBackgroundColor(bg)
	card.SetBorderPadding(1, 1, 2, 2)
	return card
}

// renderPager shows the navigation row only when there is more than one note.
func (a *App) renderPager() {
	a.pagerShown = a.board.ShowPagination()
	if !a.pagerShown {
		a.notesView.ResizeItem(a.pagerRow, 0, 0)
		a.pageLabel.SetText("")
		setButtonEnabled(a.prevBtn, false)
		setButtonEnabled(a.nextBtn, false)
		return
	}
	page := a.board.Page()
	a.notesView.ResizeItem(a.pagerRow, 1, 0)
	setButtonEnabled(a.prevBtn, page.HasPrev)
	setButtonEnabled(a.nextBtn, page.HasNext)
	a.pageLabel.SetText(fmt.Sprintf("Page %d of %d", page.Number, page.Total))
}

func (a *App) nextPage() {
	if a.board.NextPage() {
		a.refresh()
	}
}

func (a *App) prevPage() {
	if a.board.PrevPage() {
		a.refresh()
	}
}
