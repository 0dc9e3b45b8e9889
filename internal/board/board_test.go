package board

import (
	"strings"
	"testing"

	"noteboard/internal/note"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedNotes(t *testing.T, n int) []note.Note {
	t.Helper()
	notes := make([]note.Note, 0, n)
	for i := 0; i < n; i++ {
		nt, err := note.New(int64(100+i), "seed", note.PaletteColor(i), "")
		require.NoError(t, err)
		notes = append(notes, nt)
	}
	return notes
}

func TestActivateRunsOnce(t *testing.T) {
	b := New()
	first := seedNotes(t, 2)

	assert.True(t, b.Activate(first))
	assert.False(t, b.Activate(seedNotes(t, 5)))
	assert.Equal(t, first, b.Notes())
}

func TestActivateCopiesSeed(t *testing.T) {
	b := New()
	seed := seedNotes(t, 1)
	b.Activate(seed)
	seed[0].Text = "changed"
	assert.Equal(t, "seed", b.Notes()[0].Text)
}

func TestSubmitHelloOnEmptyBoard(t *testing.T) {
	b := New()
	b.Activate(nil)
	b.OpenCompose()
	b.SetDraftText("Hello")

	n, err := b.Submit()
	require.NoError(t, err)

	require.Equal(t, 1, b.Len())
	got := b.Notes()[0]
	assert.Equal(t, n, got)
	assert.Equal(t, "Hello", got.Text)
	assert.Empty(t, got.ImageURL)
	assert.Equal(t, note.PaletteColor(0), got.Color)
	assert.Equal(t, StateList, b.State())
	assert.Equal(t, 1, b.Page().Number)
	assert.Equal(t, Draft{}, b.Draft())
}

func TestSubmitTrimsAndKeepsImage(t *testing.T) {
	b := New()
	b.OpenCompose()
	b.SetDraftText("  spaced  ")
	b.SetDraftImage(" https://example.com/cat.png ")

	n, err := b.Submit()
	require.NoError(t, err)
	assert.Equal(t, "spaced", n.Text)
	assert.Equal(t, "https://example.com/cat.png", n.ImageURL)
}

func TestSubmitBlankImageIsAbsent(t *testing.T) {
	b := New()
	b.SetDraftText("x")
	b.SetDraftImage("   ")
	n, err := b.Submit()
	require.NoError(t, err)
	assert.False(t, n.HasImage())
}

func TestSubmitUnavailableForBlankDraft(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 2))
	b.OpenCompose()

	for _, text := range []string{"", "   ", "\n\t"} {
		b.SetDraftText(text)
		assert.False(t, b.CanSubmit())
		_, err := b.Submit()
		assert.ErrorIs(t, err, ErrSubmitUnavailable)
		assert.Equal(t, 2, b.Len())
		assert.Equal(t, StateCompose, b.State())
	}
}

func TestSubmitPrependsNewestFirst(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 1))

	b.SetDraftText("one")
	_, err := b.Submit()
	require.NoError(t, err)
	b.SetDraftText("two")
	_, err = b.Submit()
	require.NoError(t, err)

	notes := b.Notes()
	require.Len(t, notes, 3)
	assert.Equal(t, "two", notes[0].Text)
	assert.Equal(t, "one", notes[1].Text)
	assert.Equal(t, "seed", notes[2].Text)
}

func TestSubmitColorFollowsInsertionIndex(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 3))

	for k := 3; k < 10; k++ {
		b.SetDraftText("n")
		n, err := b.Submit()
		require.NoError(t, err)
		assert.Equal(t, note.PaletteColor(k), n.Color, "insertion %d", k)
	}
}

func TestSubmitResetsPage(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 3))
	require.True(t, b.NextPage())
	require.True(t, b.NextPage())
	require.Equal(t, 3, b.Page().Number)

	b.OpenCompose()
	b.SetDraftText("fresh")
	_, err := b.Submit()
	require.NoError(t, err)

	page := b.Page()
	assert.Equal(t, 1, page.Number)
	require.Len(t, page.Notes, 1)
	assert.Equal(t, "fresh", page.Notes[0].Text)
}

func TestIDsSkipSeedIDs(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 3)) // ids 100..102
	b.SetDraftText("x")
	n, err := b.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(103), n.ID)
}

type fixedIDs struct{ next int64 }

func (f *fixedIDs) NextID() int64 {
	f.next++
	return f.next
}

func TestInjectedIDGenerator(t *testing.T) {
	ids := &fixedIDs{next: 41}
	b := New(WithIDGenerator(ids))
	b.SetDraftText("x")
	n, err := b.Submit()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.ID)
}

func TestCancelKeepsDraftByDefault(t *testing.T) {
	b := New()
	b.OpenCompose()
	b.SetDraftText("half written")
	b.SetDraftImage("https://example.com/i.png")
	b.Cancel()

	assert.Equal(t, StateList, b.State())
	assert.Equal(t, Draft{Text: "half written", ImageURL: "https://example.com/i.png"}, b.Draft())
	assert.Equal(t, 0, b.Len())

	b.OpenCompose()
	assert.Equal(t, "half written", b.Draft().Text)
}

func TestCancelResetsDraftWhenConfigured(t *testing.T) {
	b := New(WithResetDraftOnCancel(true))
	b.OpenCompose()
	b.SetDraftText("gone")
	b.Cancel()
	assert.Equal(t, Draft{}, b.Draft())
}

func TestCancelOutsideComposeIsNoop(t *testing.T) {
	b := New(WithResetDraftOnCancel(true))
	b.SetDraftText("kept")
	b.Cancel()
	assert.Equal(t, StateList, b.State())
	assert.Equal(t, "kept", b.Draft().Text)
}

func TestSetDraftTextTruncates(t *testing.T) {
	b := New()
	stored := b.SetDraftText(strings.Repeat("a", note.MaxChars+40))
	assert.Len(t, stored, note.MaxChars)
	assert.Equal(t, 0, b.Remaining())
}

func TestRemainingAtExactlyMax(t *testing.T) {
	b := New()
	b.SetDraftText(strings.Repeat("x", note.MaxChars))
	assert.Equal(t, 0, b.Remaining())
	assert.True(t, b.LowRemaining())
}

func TestRemainingCountdown(t *testing.T) {
	b := New()
	assert.Equal(t, note.MaxChars, b.Remaining())
	assert.False(t, b.LowRemaining())

	b.SetDraftText("Hello")
	assert.Equal(t, note.MaxChars-5, b.Remaining())
}

func TestEmptyBoard(t *testing.T) {
	b := New()
	b.Activate(nil)
	assert.True(t, b.Empty())
	assert.False(t, b.ShowPagination())

	page := b.Page()
	assert.Empty(t, page.Notes)
	assert.Equal(t, 1, page.Total)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}

func TestPaginationVisibility(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 1))
	assert.False(t, b.ShowPagination())

	b.SetDraftText("second")
	_, err := b.Submit()
	require.NoError(t, err)
	assert.True(t, b.ShowPagination())
}

func TestThreeNotesNavigation(t *testing.T) {
	b := New()
	b.Activate(seedNotes(t, 3))

	page := b.Page()
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 1, page.Number)
	assert.False(t, page.HasPrev)
	assert.True(t, page.HasNext)

	assert.True(t, b.NextPage())
	assert.True(t, b.NextPage())

	page = b.Page()
	assert.Equal(t, 3, page.Number)
	assert.True(t, page.HasPrev)
	assert.False(t, page.HasNext)
	assert.False(t, b.NextPage())
	assert.Equal(t, 3, b.Page().Number)

	require.Len(t, page.Notes, 1)
	assert.Equal(t, int64(102), page.Notes[0].ID)
}

func TestPageSizeOption(t *testing.T) {
	b := New(WithPageSize(2))
	b.Activate(seedNotes(t, 5))

	page := b.Page()
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Notes, 2)

	b.NextPage()
	b.NextPage()
	assert.Len(t, b.Page().Notes, 1)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "list", StateList.String())
	assert.Equal(t, "compose", StateCompose.String())
	assert.Equal(t, "unknown", State(9).String())
}
