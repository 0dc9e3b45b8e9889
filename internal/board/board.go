// Package board holds the state of a note board: the note collection, the
// compose workflow with its draft, and pagination over the collection.
//
// A Board is driven from a single event loop and is not safe for concurrent use.
package board

import (
	"errors"
	"log/slog"
	"strings"

	"noteboard/internal/note"
)

// State is the view a board is showing.
type State int

const (
	StateList State = iota
	StateCompose
)

func (s State) String() string {
	switch s {
	case StateList:
		return "list"
	case StateCompose:
		return "compose"
	default:
		return "unknown"
	}
}

var ErrSubmitUnavailable = errors.New("submit unavailable: draft text is empty")

// Draft is the uncommitted input of the compose view.
type Draft struct {
	Text     string
	ImageURL string
}

type Board struct {
	opts      *options
	log       *slog.Logger
	ids       note.IDGenerator
	notes     Collection
	pager     *Pager
	state     State
	draft     Draft
	activated bool
}

func New(opts ...Option) *Board {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.ids == nil {
		o.ids = &note.Sequence{}
	}
	logger := o.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Board{
		opts:  o,
		log:   logger,
		ids:   o.ids,
		pager: NewPager(o.pageSize),
		state: StateList,
	}
}

// observer is implemented by id generators that must skip ids already in use.
type observer interface {
	Observe(id int64)
}

// Activate installs seed as the initial collection. Only the first call has
// an effect; it reports whether the seed was installed.
func (b *Board) Activate(seed []note.Note) bool {
	if b.activated {
		return false
	}
	b.activated = true
	b.notes.reset(seed)
	if obs, ok := b.ids.(observer); ok {
		for _, n := range seed {
			obs.Observe(n.ID)
		}
	}
	b.log.Info("board activated", "notes", len(seed))
	return true
}

func (b *Board) State() State { return b.state }
func (b *Board) Draft() Draft { return b.draft }
func (b *Board) Len() int     { return b.notes.Len() }
func (b *Board) Empty() bool  { return b.notes.Len() == 0 }

// Notes returns the whole collection, newest-first.
func (b *Board) Notes() []note.Note { return b.notes.All() }

// OpenCompose switches to the compose view. Any existing draft is kept.
func (b *Board) OpenCompose() {
	if b.state == StateCompose {
		return
	}
	b.state = StateCompose
	b.log.Debug("compose opened", "draft_len", len(b.draft.Text))
}

// Cancel returns to the list without creating a note.
func (b *Board) Cancel() {
	if b.state != StateCompose {
		return
	}
	b.state = StateList
	if b.opts.resetDraftOnCancel {
		b.draft = Draft{}
	}
	b.log.Debug("compose cancelled", "draft_kept", !b.opts.resetDraftOnCancel)
}

// SetDraftText stores text cut to note.MaxChars and returns what was stored.
func (b *Board) SetDraftText(text string) string {
	b.draft.Text = note.Truncate(text)
	return b.draft.Text
}

func (b *Board) SetDraftImage(url string) {
	b.draft.ImageURL = url
}

func (b *Board) CanSubmit() bool {
	return strings.TrimSpace(b.draft.Text) != ""
}

// Remaining is the number of characters the draft text can still grow by.
func (b *Board) Remaining() int { return note.Remaining(b.draft.Text) }

func (b *Board) LowRemaining() bool { return note.LowRemaining(b.draft.Text) }

// Submit turns the draft into a note at the front of the collection, clears
// the draft, returns to the list and shows page 1.
func (b *Board) Submit() (note.Note, error) {
	if !b.CanSubmit() {
		return note.Note{}, ErrSubmitUnavailable
	}
	color := note.PaletteColor(b.notes.Len())
	n, err := note.New(b.ids.NextID(), b.draft.Text, color, b.draft.ImageURL)
	if err != nil {
		return note.Note{}, err
	}
	b.notes.Prepend(n)
	b.draft = Draft{}
	b.state = StateList
	b.pager.Reset()
	b.log.Info("note added", "id", n.ID, "color", n.Color.String(), "image", n.HasImage())
	return n, nil
}

// Page is the visible part of the collection.
type Page struct {
	Notes   []note.Note
	Number  int
	Total   int
	HasPrev bool
	HasNext bool
}

func (b *Board) Page() Page {
	n := b.notes.Len()
	start, end := b.pager.Window(n)
	return Page{
		Notes:   b.notes.Slice(start, end),
		Number:  b.pager.Current(),
		Total:   b.pager.TotalPages(n),
		HasPrev: b.pager.HasPrev(),
		HasNext: b.pager.HasNext(n),
	}
}

// ShowPagination reports whether navigation controls apply, which is when
// there is more than one note.
func (b *Board) ShowPagination() bool {
	return b.notes.Len() > 1
}

func (b *Board) NextPage() bool {
	moved := b.pager.Next(b.notes.Len())
	if moved {
		b.log.Debug("page changed", "page", b.pager.Current())
	}
	return moved
}

func (b *Board) PrevPage() bool {
	moved := b.pager.Prev()
	if moved {
		b.log.Debug("page changed", "page", b.pager.Current())
	}
	return moved
}
