// Package pages orchestrates the hero screens: the list with search,
// pagination and delete confirmation, and the add and edit forms. Pages talk
// to the store and move between each other through a Navigator; they hold no
// rendering code.
package pages

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/herodex/pkg/types"
)

// Navigator moves between screens.
type Navigator interface {
	ToList()
	ToAdd()
	ToEdit(id int)
}

// Option configures a page.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	pageSize int
}

func defaultOptions() options {
	return options{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		pageSize: types.DefaultPageSize,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger sets the logger used for failed operations.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithPageSize sets how many heroes the list shows per page.
func WithPageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}
