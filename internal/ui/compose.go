package ui

import (
	"noteboard/internal/board"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (a *App) setupCompose() {
	a.composeForm = tview.NewForm()

	a.composeText = tview.NewTextArea().
		SetLabel("Note").
		SetSize(6, 0).
		SetPlaceholder("What's on your mind?")
	a.composeText.SetChangedFunc(func() { a.onDraftText() })
	a.composeForm.AddFormItem(a.composeText)

	a.counter = newCharCounter()
	a.counter.AddTo(a.composeForm)

	a.composeImage = tview.NewInputField().
		SetLabel("Image URL").
		SetPlaceholder("https://... (optional)")
	a.composeImage.SetChangedFunc(func(text string) { a.onDraftImage(text) })
	a.composeForm.AddFormItem(a.composeImage)

	submitIndex := a.composeForm.GetButtonCount()
	a.composeForm.AddButton("Submit", func() { a.submit() })
	a.submitBtn = a.composeForm.GetButton(submitIndex)
	a.composeForm.AddButton("Cancel", func() { a.cancelCompose() })

	a.composeForm.SetBorder(true).SetTitle(" New note ")
	styleForm(a.composeForm)
	a.enableButtonNav(a.composeForm)

	a.content.AddPage(contentCompose, a.composeForm, true, false)
	a.updateComposeState()
}

func (a *App) openCompose() {
	if a.board.State() == board.StateCompose {
		return
	}
	a.board.OpenCompose()
	a.refresh()
}

func (a *App) cancelCompose() {
	a.board.Cancel()
	a.refresh()
}

func (a *App) submit() {
	if _, err := a.board.Submit(); err != nil {
		a.log.Debug("submit ignored", "error", err)
		return
	}
	a.refresh()
	a.flash("[green]✓ Note added[-]")
}

func (a *App) onDraftText() {
	if a.syncing {
		return
	}
	typed := a.composeText.GetText()
	if stored := a.board.SetDraftText(typed); stored != typed {
		a.syncing = true
		a.composeText.SetText(stored, true)
		a.syncing = false
	}
	a.updateComposeState()
}

func (a *App) onDraftImage(text string) {
	if a.syncing {
		return
	}
	a.board.SetDraftImage(text)
}

// syncCompose copies the board's draft into the compose widgets.
func (a *App) syncCompose() {
	draft := a.board.Draft()
	a.syncing = true
	if a.composeText.GetText() != draft.Text {
		a.composeText.SetText(draft.Text, true)
	}
	if a.composeImage.GetText() != draft.ImageURL {
		a.composeImage.SetText(draft.ImageURL)
	}
	a.syncing = false
	a.updateComposeState()
}

func (a *App) updateComposeState() {
	a.counter.Update(a.board.Remaining(), a.board.LowRemaining())
	setButtonEnabled(a.submitBtn, a.board.CanSubmit())
}

// composeKey handles keys while the compose view is up. Esc cancels and
// Ctrl+S submits; everything else goes to the focused field.
func (a *App) composeKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEsc:
		a.cancelCompose()
		return nil
	case tcell.KeyCtrlS:
		if a.board.CanSubmit() {
			a.submit()
		}
		return nil
	}
	return event
}
