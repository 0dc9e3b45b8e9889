package ui

import (
	"log/slog"

	"noteboard/internal/board"
	"noteboard/internal/note"
	"noteboard/internal/platform"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func NewApp(b *board.Board, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{
		tv:      tview.NewApplication(),
		pages:   tview.NewPages(),
		board:   b,
		log:     logger,
		clip:    clipboard.WriteAll,
		openURL: platform.OpenURL,
	}
	a.setupUI()
	return a
}

func (a *App) setupUI() {
	tview.Styles.ContrastBackgroundColor = colorUnfocusedBg
	tview.Styles.TitleColor = tcell.ColorLightSkyBlue

	a.setupList()
	a.setupCompose()
	a.setupMainLayout()
	a.setupHelp()
}

// Run installs seed on the board and blocks until the user quits.
func (a *App) Run(seed []note.Note) error {
	a.activate(seed)
	return a.tv.SetRoot(a.pages, true).EnableMouse(true).Run()
}

func (a *App) Stop() {
	a.tv.Stop()
}

func (a *App) activate(seed []note.Note) {
	a.board.Activate(seed)
	a.refresh()
}

// refresh redraws the content panel from board state.
func (a *App) refresh() {
	a.syncCompose()
	if a.board.State() == board.StateCompose {
		a.content.SwitchToPage(contentCompose)
		a.tv.SetFocus(a.composeText)
		return
	}
	if a.board.Empty() {
		a.content.SwitchToPage(contentEmpty)
	} else {
		a.renderNotes()
		a.content.SwitchToPage(contentNotes)
	}
	a.renderPager()
	a.tv.SetFocus(a.addBtn)
}
