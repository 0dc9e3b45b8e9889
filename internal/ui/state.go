package ui

import (
	"log/slog"

	"noteboard/internal/board"

	"github.com/rivo/tview"
)

const (
	pageMain = "main"
	pageHelp = "help"

	contentEmpty   = "empty"
	contentNotes   = "notes"
	contentCompose = "compose"
)

// App is the terminal view of a board. It owns the widgets; all note state
// lives in the board.
type App struct {
	tv    *tview.Application
	pages *tview.Pages
	root  *tview.Flex
	board *board.Board
	log   *slog.Logger

	clip    func(string) error
	openURL func(string) error

	content   *tview.Pages
	notesView *tview.Flex
	noteList  *tview.Flex
	pagerRow  *tview.Flex
	prevBtn   *tview.Button
	nextBtn   *tview.Button
	pageLabel *tview.TextView
	addBtn    *tview.Button
	status    *tview.TextView

	pagerShown bool

	composeForm  *tview.Form
	composeText  *tview.TextArea
	composeImage *tview.InputField
	counter      *charCounter
	submitBtn    *tview.Button

	// syncing is set while the view writes board state back into the
	// compose widgets, so their change handlers do not feed it back.
	syncing bool
}
