package cursor

import (
	"testing"

	"github.com/dshills/inkwell/internal/engine/position"
)

func TestSelectionBounds(t *testing.T) {
	tests := []struct {
		name       string
		sel        Selection
		start, end int
		forward    bool
	}{
		{"caret", NewCursorSelection(4), 4, 4, true},
		{"forward", NewSelection(2, 7), 2, 7, true},
		{"backward", NewSelection(7, 2), 2, 7, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.sel.Start() != tt.start || tt.sel.End() != tt.end {
				t.Errorf("bounds = %d..%d, want %d..%d", tt.sel.Start(), tt.sel.End(), tt.start, tt.end)
			}
			if tt.sel.IsForward() != tt.forward {
				t.Errorf("IsForward = %v", tt.sel.IsForward())
			}
			if tt.sel.Interval() != position.Span(tt.start, tt.end) {
				t.Errorf("Interval = %v", tt.sel.Interval())
			}
			if tt.sel.Len() != tt.end-tt.start {
				t.Errorf("Len = %d", tt.sel.Len())
			}
		})
	}
}

func TestSelectionTransforms(t *testing.T) {
	s := NewSelection(3, 8)
	if got := s.Extend(1); got.Anchor != 3 || got.Head != 1 {
		t.Errorf("Extend = %v", got)
	}
	if got := s.Collapse(); !got.IsEmpty() || got.Head != 8 {
		t.Errorf("Collapse = %v", got)
	}
	if got := s.Flip().CollapseToStart(); got != NewCursorSelection(3) {
		t.Errorf("CollapseToStart = %v", got)
	}
	if got := s.CollapseToEnd(); got != NewCursorSelection(8) {
		t.Errorf("CollapseToEnd = %v", got)
	}
	if got := s.Clamp(5); got != NewSelection(3, 5) {
		t.Errorf("Clamp = %v", got)
	}
	if got := NewSelection(-2, 4).Clamp(10); got.Anchor != 0 {
		t.Errorf("Clamp negative = %v", got)
	}
	if got := FromInterval(position.Span(1, 2)); got.String() != "1->2" {
		t.Errorf("FromInterval = %v", got)
	}
}
