package ui

import (
	"testing"

	"noteboard/internal/board"
	"noteboard/internal/note"

	"github.com/gdamore/tcell/v2"
)

type fakeDesktop struct {
	copied []string
	opened []string
	err    error
}

func (f *fakeDesktop) copy(s string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, s)
	return nil
}

func (f *fakeDesktop) open(s string) error {
	if f.err != nil {
		return f.err
	}
	f.opened = append(f.opened, s)
	return nil
}

func newTestApp(t *testing.T, seed []note.Note, opts ...board.Option) (*App, *fakeDesktop) {
	t.Helper()
	desk := &fakeDesktop{}
	a := NewApp(board.New(opts...), nil)
	a.clip = desk.copy
	a.openURL = desk.open
	a.activate(seed)
	return a, desk
}

func mustNote(t *testing.T, id int64, text string, c note.Color, image string) note.Note {
	t.Helper()
	n, err := note.New(id, text, c, image)
	if err != nil {
		t.Fatalf("note.New: %v", err)
	}
	return n
}

func threeNotes(t *testing.T) []note.Note {
	return []note.Note{
		mustNote(t, 1, "first", note.Blue, ""),
		mustNote(t, 2, "second", note.Green, "https://example.com/2.png"),
		mustNote(t, 3, "third", note.Purple, ""),
	}
}

func press(a *App, r rune) {
	a.handleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func pressKey(a *App, k tcell.Key) *tcell.EventKey {
	return a.handleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func frontContent(a *App) string {
	name, _ := a.content.GetFrontPage()
	return name
}

func typeDraft(a *App, text string) {
	a.composeText.SetText(text, true)
	a.onDraftText()
}
