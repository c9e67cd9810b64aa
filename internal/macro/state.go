package macro

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/logging"
)

// DefaultExecutionTimeout bounds a single Run or Call.
const DefaultExecutionTimeout = 5 * time.Second

// State is a sandboxed Lua runtime bound to one document.
//
// gopher-lua's LState is not goroutine-safe, and neither is Document. A
// State must be used from one goroutine.
type State struct {
	L       *lua.LState
	doc     *engine.Document
	bridge  *Bridge
	timeout time.Duration
	out     io.Writer
	logger  *logging.Logger

	// goErr is the last Go error raised into Lua by a doc.* function.
	goErr  error
	closed bool
}

// Option configures a State.
type Option func(*State)

// WithExecutionTimeout sets the deadline applied to each run.
// Zero disables the deadline; the caller's context still applies.
func WithExecutionTimeout(d time.Duration) Option {
	return func(s *State) {
		if d >= 0 {
			s.timeout = d
		}
	}
}

// WithOutput redirects print.
func WithOutput(w io.Writer) Option {
	return func(s *State) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState creates a sandboxed Lua state with doc bound to d.
func NewState(d *engine.Document, opts ...Option) *State {
	s := &State{
		doc:     d,
		timeout: DefaultExecutionTimeout,
		out:     os.Stdout,
		logger:  logging.Null(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithComponent("macro")

	s.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	s.bridge = NewBridge(s.L)
	openSafeLibraries(s.L)
	s.installSandbox()
	s.L.SetGlobal("doc", s.documentModule())
	return s
}

// openSafeLibraries opens only libraries without host access.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

func (s *State) installSandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		s.L.SetGlobal(name, lua.LNil)
	}
	s.L.SetGlobal("print", s.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(s.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// Document returns the bound document.
func (s *State) Document() *engine.Document {
	return s.doc
}

// Run executes Lua source. name labels the chunk in error messages.
func (s *State) Run(ctx context.Context, name, code string) error {
	if s.closed {
		return ErrStateClosed
	}
	fn, err := s.L.Load(strings.NewReader(code), name)
	if err != nil {
		return &ScriptError{Message: err.Error()}
	}
	return s.protect(ctx, func() error {
		s.L.Push(fn)
		return s.L.PCall(0, lua.MultRet, nil)
	})
}

// RunFile executes a Lua file.
func (s *State) RunFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading macro: %w", err)
	}
	return s.Run(ctx, path, string(data))
}

// SetArgs exposes args to macros as the global table args.
func (s *State) SetArgs(args map[string]any) {
	if s.closed {
		return
	}
	s.L.SetGlobal("args", s.bridge.ToLuaValue(args))
}

// Call calls a global Lua function and converts its results to Go values.
func (s *State) Call(ctx context.Context, fn string, args ...any) ([]any, error) {
	if s.closed {
		return nil, ErrStateClosed
	}
	f, ok := s.L.GetGlobal(fn).(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("%q: %w", fn, ErrNotFunction)
	}

	top := s.L.GetTop()
	err := s.protect(ctx, func() error {
		s.L.Push(f)
		for _, a := range args {
			s.L.Push(s.bridge.ToLuaValue(a))
		}
		return s.L.PCall(len(args), lua.MultRet, nil)
	})
	if err != nil {
		s.L.SetTop(top)
		return nil, err
	}

	n := s.L.GetTop() - top
	results := make([]any, n)
	for i := range n {
		results[i] = s.bridge.ToGoValue(s.L.Get(top + i + 1))
	}
	s.L.SetTop(top)
	return results, nil
}

// protect runs fn under the execution deadline and translates Lua
// failures into ScriptErrors.
func (s *State) protect(ctx context.Context, fn func() error) (err error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	s.L.SetContext(ctx)
	defer s.L.RemoveContext()
	s.goErr = nil

	defer func() {
		if r := recover(); r != nil {
			err = &ScriptError{Message: fmt.Sprintf("panic: %v", r)}
		}
	}()

	if err := fn(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Warn("macro stopped: %v", ctxErr)
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %w", ErrExecutionTimeout, ctxErr)
			}
			return ctxErr
		}
		return s.scriptError(err)
	}
	return nil
}

func (s *State) scriptError(err error) error {
	msg := err.Error()
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg = apiErr.Object.String()
	}
	serr := &ScriptError{Message: msg}
	if s.goErr != nil && strings.Contains(msg, s.goErr.Error()) {
		serr.Err = s.goErr
	}
	return serr
}

// raise reports err to Lua and remembers it for Run's caller.
func (s *State) raise(L *lua.LState, err error) int {
	s.goErr = err
	L.RaiseError("%s", err.Error())
	return 0
}

// Close releases the Lua state.
func (s *State) Close() {
	if s.closed {
		return
	}
	s.L.Close()
	s.closed = true
}
