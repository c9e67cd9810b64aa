package history

import "github.com/dshills/inkwell/internal/logging"

// DefaultMaxEntries bounds the done stack when no limit is configured.
const DefaultMaxEntries = 1000

// Option configures a History.
type Option func(*History)

// WithMaxEntries sets the done stack limit. Values <= 0 select
// DefaultMaxEntries. The oldest entries are evicted first.
func WithMaxEntries(n int) Option {
	return func(h *History) {
		if n <= 0 {
			n = DefaultMaxEntries
		}
		h.maxEntries = n
	}
}

// WithMerge enables or disables TryMerge coalescing.
func WithMerge(enabled bool) Option {
	return func(h *History) {
		h.merge = enabled
	}
}

// WithListener adds a listener called after every execute, undo and redo.
func WithListener(l Listener) Option {
	return func(h *History) {
		if l != nil {
			h.listeners = append(h.listeners, l)
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l.WithComponent("history")
		}
	}
}
