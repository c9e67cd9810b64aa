package engine

import (
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/engine/history"
	"github.com/dshills/inkwell/internal/engine/nav"
	"github.com/dshills/inkwell/internal/engine/position"
	"github.com/dshills/inkwell/internal/logging"
)

// Default configuration values.
const (
	DefaultMaxHistory = history.DefaultMaxEntries
	DefaultMaxDepth   = position.DefaultMaxDepth
	DefaultSeparators = nav.DefaultSeparators
)

// Option configures a Document during creation.
type Option func(*Document)

// WithMaxHistory sets the maximum number of undo entries.
func WithMaxHistory(max int) Option {
	return func(d *Document) {
		if max > 0 {
			d.maxHistory = max
		}
	}
}

// WithMerge enables or disables coalescing of consecutive edits.
func WithMerge(enabled bool) Option {
	return func(d *Document) {
		d.merge = enabled
	}
}

// WithWordSeparators sets the characters that end a word for word motion
// and edit merging.
func WithWordSeparators(seps string) Option {
	return func(d *Document) {
		if seps != "" {
			d.cfg.Separators = seps
		}
	}
}

// WithMaxDepth bounds the tree depth the resolver descends.
func WithMaxDepth(depth int) Option {
	return func(d *Document) {
		if depth > 0 {
			d.cfg.Resolver = position.NewResolver(depth)
		}
	}
}

// WithNormalization sets the Unicode normal form applied to typed text.
func WithNormalization(n edit.Normalization) Option {
	return func(d *Document) {
		d.cfg.Normalization = n
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSelection sets the initial selection.
func WithSelection(anchor, head int) Option {
	return func(d *Document) {
		d.sel = Selection{Anchor: anchor, Head: head}
	}
}

// WithReadOnly creates a read-only document.
// Edits return ErrReadOnly; selection changes are still allowed.
func WithReadOnly() Option {
	return func(d *Document) {
		d.readOnly = true
	}
}
