package board

import (
	"log/slog"

	"noteboard/internal/note"
)

type options struct {
	pageSize           int
	resetDraftOnCancel bool
	ids                note.IDGenerator
	logger             *slog.Logger
}

// Option configures a Board.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		pageSize: DefaultPageSize,
	}
}

// WithPageSize sets how many notes a page shows. Values below 1 fall back to DefaultPageSize.
func WithPageSize(size int) Option {
	return func(o *options) {
		o.pageSize = size
	}
}

// WithResetDraftOnCancel clears the draft when the compose view is cancelled.
// By default the draft survives a cancel and is shown again on the next open.
func WithResetDraftOnCancel(reset bool) Option {
	return func(o *options) {
		o.resetDraftOnCancel = reset
	}
}

// WithIDGenerator injects the source of note ids. The default is a note.Sequence.
func WithIDGenerator(ids note.IDGenerator) Option {
	return func(o *options) {
		o.ids = ids
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
