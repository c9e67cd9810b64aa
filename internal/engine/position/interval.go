package position

import "fmt"

// Interval is a span of biases inside one scoping root.
type Interval struct {
	Start int
	End   int
}

// Span creates an interval.
func Span(start, end int) Interval {
	return Interval{Start: start, End: end}
}

// Caret creates a collapsed interval at b.
func Caret(b int) Interval {
	return Interval{Start: b, End: b}
}

// IsCollapsed reports whether start equals end.
func (iv Interval) IsCollapsed() bool {
	return iv.Start == iv.End
}

// Len returns the number of tokens spanned.
func (iv Interval) Len() int {
	return iv.End - iv.Start
}

// Contains reports whether b lies in [Start, End].
func (iv Interval) Contains(b int) bool {
	return b >= iv.Start && b <= iv.End
}

// String returns "[start,end)".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)", iv.Start, iv.End)
}

// NormalizeBias resolves a negative bias against a root of the given size.
func NormalizeBias(bias, size int) (int, error) {
	b := bias
	if b < 0 {
		b += size + 1
	}
	if b < 0 || b > size {
		return 0, &NotFoundError{Bias: bias, Err: ErrOutOfRange}
	}
	return b, nil
}

// Normalize resolves negative ends against size and validates ordering.
func (iv Interval) Normalize(size int) (Interval, error) {
	s, err := NormalizeBias(iv.Start, size)
	if err != nil {
		return Interval{}, err
	}
	e, err := NormalizeBias(iv.End, size)
	if err != nil {
		return Interval{}, err
	}
	if s > e {
		return Interval{}, fmt.Errorf("interval %v: %w", iv, ErrInvertedInterval)
	}
	return Interval{Start: s, End: e}, nil
}
