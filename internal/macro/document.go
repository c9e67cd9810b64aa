package macro

import (
	"errors"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/inkwell/internal/engine"
)

// documentModule builds the doc table. Biases are plain integers; negative
// biases count from the end as in Document.Select.
func (s *State) documentModule() *lua.LTable {
	d := s.doc
	edit := func(fn func() error) lua.LGFunction {
		return func(L *lua.LState) int {
			if err := fn(); err != nil {
				return s.raise(L, err)
			}
			return 0
		}
	}
	move := func(fn func(extend bool) error) lua.LGFunction {
		return func(L *lua.LState) int {
			if err := fn(L.OptBool(1, false)); err != nil {
				return s.raise(L, err)
			}
			return 0
		}
	}
	history := func(fn func() error, none error) lua.LGFunction {
		return func(L *lua.LState) int {
			err := fn()
			switch {
			case errors.Is(err, none):
				L.Push(lua.LFalse)
			case err != nil:
				return s.raise(L, err)
			default:
				L.Push(lua.LTrue)
			}
			return 1
		}
	}

	return s.L.SetFuncs(s.L.NewTable(), map[string]lua.LGFunction{
		"type": func(L *lua.LState) int {
			if err := d.Type(L.CheckString(1)); err != nil {
				return s.raise(L, err)
			}
			return 0
		},
		"backspace":      edit(d.Backspace),
		"delete":         edit(d.DeleteForward),
		"delete_word":    edit(d.DeleteWordForward),
		"backspace_word": edit(d.DeleteWordBackward),
		"format": func(L *lua.LState) int {
			if err := d.Format(L.CheckString(1)); err != nil {
				return s.raise(L, err)
			}
			return 0
		},
		"unformat": func(L *lua.LState) int {
			if err := d.Unformat(L.CheckString(1)); err != nil {
				return s.raise(L, err)
			}
			return 0
		},
		"label": func(L *lua.LState) int {
			if err := d.InsertLabel(L.CheckString(1), L.OptString(2, "")); err != nil {
				return s.raise(L, err)
			}
			return 0
		},
		"select": func(L *lua.LState) int {
			anchor := L.CheckInt(1)
			head := L.OptInt(2, anchor)
			if err := d.Select(anchor, head); err != nil {
				return s.raise(L, err)
			}
			return 0
		},
		"select_all": func(L *lua.LState) int {
			d.SelectAll()
			return 0
		},
		"selection": func(L *lua.LState) int {
			sel := d.Selection()
			L.Push(lua.LNumber(sel.Anchor))
			L.Push(lua.LNumber(sel.Head))
			return 2
		},
		"left":       move(d.MoveLeft),
		"right":      move(d.MoveRight),
		"word_left":  move(d.MoveWordLeft),
		"word_right": move(d.MoveWordRight),
		"undo":       history(d.Undo, engine.ErrNothingToUndo),
		"redo":       history(d.Redo, engine.ErrNothingToRedo),
		"group": func(L *lua.LState) int {
			name := L.CheckString(1)
			fn := L.CheckFunction(2)
			err := d.Group(name, func() error {
				return L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true})
			})
			if err != nil {
				if s.goErr == nil {
					s.goErr = err
				}
				L.RaiseError("%s", err.Error())
			}
			return 0
		},
		"text": func(L *lua.LState) int {
			L.Push(lua.LString(d.Text()))
			return 1
		},
		"tree": func(L *lua.LState) int {
			L.Push(lua.LString(d.String()))
			return 1
		},
		"size": func(L *lua.LState) int {
			L.Push(lua.LNumber(d.Size()))
			return 1
		},
	})
}
