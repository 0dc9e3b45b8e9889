package ui

import (
	"time"

	"noteboard/internal/note"
)

const statusTimeout = 2 * time.Second

// flash shows msg on the status line and clears it after statusTimeout
// unless something else was written meanwhile.
func (a *App) flash(msg string) {
	a.status.SetText(msg)
	go func() {
		time.Sleep(statusTimeout)
		a.tv.QueueUpdateDraw(func() {
			if a.status.GetText(false) == msg {
				a.status.SetText("")
			}
		})
	}()
}

// visibleNote returns the first note on the current page that satisfies keep.
func (a *App) visibleNote(keep func(note.Note) bool) (note.Note, bool) {
	for _, n := range a.board.Page().Notes {
		if keep(n) {
			return n, true
		}
	}
	return note.Note{}, false
}

func (a *App) copyNote() {
	n, ok := a.visibleNote(func(note.Note) bool { return true })
	if !ok {
		return
	}
	if err := a.clip(n.Text); err != nil {
		a.log.Warn("copy to clipboard failed", "id", n.ID, "error", err)
		a.flash("[red]Clipboard unavailable[-]")
		return
	}
	a.flash("[green]✓ Note copied![-]")
}

func (a *App) openImage() {
	n, ok := a.visibleNote(note.Note.HasImage)
	if !ok {
		return
	}
	if err := a.openURL(n.ImageURL); err != nil {
		a.log.Warn("opening image failed", "id", n.ID, "url", n.ImageURL, "error", err)
		a.flash("[red]Could not open image[-]")
		return
	}
	a.log.Debug("opened image", "id", n.ID)
	a.flash("[green]✓ Opening image…[-]")
}
