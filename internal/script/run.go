package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/logging"
	"github.com/dshills/inkwell/internal/macro"
)

// Runner replays scripts against one document.
type Runner struct {
	doc          *engine.Document
	logger       *logging.Logger
	out          io.Writer
	macroTimeout time.Duration
	lua          *macro.State
}

// RunOption configures a Runner.
type RunOption func(*Runner)

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) RunOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithOutput receives print output from lua steps.
func WithOutput(w io.Writer) RunOption {
	return func(r *Runner) {
		if w != nil {
			r.out = w
		}
	}
}

// WithMacroTimeout bounds each lua step.
func WithMacroTimeout(d time.Duration) RunOption {
	return func(r *Runner) {
		r.macroTimeout = d
	}
}

// NewRunner creates a runner for d.
func NewRunner(d *engine.Document, opts ...RunOption) *Runner {
	r := &Runner{
		doc:          d,
		logger:       logging.Null(),
		out:          os.Stdout,
		macroTimeout: macro.DefaultExecutionTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("script")
	return r
}

// Document returns the document being edited.
func (r *Runner) Document() *engine.Document {
	return r.doc
}

// Close releases the Lua state, if one was started.
func (r *Runner) Close() {
	if r.lua != nil {
		r.lua.Close()
		r.lua = nil
	}
}

// Run executes the steps in order and stops at the first failure, which
// is returned as a *StepError.
func (r *Runner) Run(ctx context.Context, s *Script) error {
	r.logger.Debug("running %q (%d steps)", s.Name, len(s.Steps))
	for i := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		step := &s.Steps[i]
		if err := r.step(ctx, step); err != nil {
			return &StepError{Index: i, Line: step.Line, Err: err}
		}
	}
	return nil
}

func (r *Runner) step(ctx context.Context, s *Step) error {
	action, err := s.action()
	if err != nil {
		return err
	}
	d := r.doc

	switch action {
	case "select":
		if len(s.Select) == 0 || len(s.Select) > 2 {
			return fmt.Errorf("select takes one or two biases: %w", ErrBadStep)
		}
		anchor, head := pair(s.Select)
		return d.Select(anchor, head)
	case "select_all":
		d.SelectAll()
		return nil
	case "type":
		return d.Type(*s.Type)
	case "backspace":
		return repeat(s.Backspace, d.Backspace)
	case "delete":
		return repeat(s.Delete, d.DeleteForward)
	case "backspace_word":
		return repeat(s.BackspaceWord, d.DeleteWordBackward)
	case "delete_word":
		return repeat(s.DeleteWord, d.DeleteWordForward)
	case "move":
		fn, err := r.motion(s.Move)
		if err != nil {
			return err
		}
		return repeat(max(s.Repeat, 1), func() error { return fn(s.Extend) })
	case "format":
		return d.Format(s.Format)
	case "unformat":
		return d.Unformat(s.Unformat)
	case "label":
		if s.Label.Tag == "" {
			return fmt.Errorf("label needs a tag: %w", ErrBadStep)
		}
		return d.InsertLabel(s.Label.Tag, s.Label.Content)
	case "undo":
		return repeat(s.Undo, d.Undo)
	case "redo":
		return repeat(s.Redo, d.Redo)
	case "lua":
		return r.runLua(ctx, s)
	case "expect":
		return r.check(s.Expect)
	}
	return fmt.Errorf("unhandled action %q: %w", action, ErrBadStep)
}

func (r *Runner) motion(name string) (func(bool) error, error) {
	d := r.doc
	switch name {
	case "left":
		return d.MoveLeft, nil
	case "right":
		return d.MoveRight, nil
	case "word_left":
		return d.MoveWordLeft, nil
	case "word_right":
		return d.MoveWordRight, nil
	}
	return nil, fmt.Errorf("unknown move %q: %w", name, ErrBadStep)
}

func (r *Runner) runLua(ctx context.Context, s *Step) error {
	if r.lua == nil {
		r.lua = macro.NewState(r.doc,
			macro.WithExecutionTimeout(r.macroTimeout),
			macro.WithOutput(r.out),
			macro.WithLogger(r.logger),
		)
	}
	return r.lua.Run(ctx, fmt.Sprintf("step@%d", s.Line), s.Lua)
}

func (r *Runner) check(e *Expect) error {
	d := r.doc
	if e.Tree != "" && d.String() != e.Tree {
		return &ExpectationError{Field: "tree", Got: d.String(), Want: e.Tree}
	}
	if e.Text != nil && d.Text() != *e.Text {
		return &ExpectationError{Field: "text", Got: d.Text(), Want: *e.Text}
	}
	if len(e.Selection) > 0 {
		anchor, head := pair(e.Selection)
		sel := d.Selection()
		if got := []int{sel.Anchor, sel.Head}; !cmp.Equal(got, []int{anchor, head}) {
			return &ExpectationError{Field: "selection", Got: got, Want: []int{anchor, head}}
		}
	}
	if e.Undo != nil && d.UndoCount() != *e.Undo {
		return &ExpectationError{Field: "undo count", Got: d.UndoCount(), Want: *e.Undo}
	}
	if e.Redo != nil && d.RedoCount() != *e.Redo {
		return &ExpectationError{Field: "redo count", Got: d.RedoCount(), Want: *e.Redo}
	}
	return nil
}

func repeat(n int, fn func() error) error {
	for range n {
		if err := fn(); err != nil {
			return err
		}
	}
	return nil
}
