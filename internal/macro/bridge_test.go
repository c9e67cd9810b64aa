package macro

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	lua "github.com/yuin/gopher-lua"
)

func TestBridgeToGoValue(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	bridge := NewBridge(L)

	seq := L.NewTable()
	seq.Append(lua.LString("a"))
	seq.Append(lua.LNumber(2))

	rec := L.NewTable()
	rec.RawSetString("name", lua.LString("b"))
	rec.RawSetString("on", lua.LTrue)

	cyclic := L.NewTable()
	cyclic.RawSetString("self", cyclic)

	tests := []struct {
		name  string
		input lua.LValue
		want  any
	}{
		{"nil", lua.LNil, nil},
		{"true", lua.LTrue, true},
		{"integer", lua.LNumber(42), int64(42)},
		{"float", lua.LNumber(1.5), 1.5},
		{"string", lua.LString("hello"), "hello"},
		{"sequence", seq, []any{"a", int64(2)}},
		{"record", rec, map[string]any{"name": "b", "on": true}},
		{"cycle", cyclic, map[string]any{"self": nil}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, bridge.ToGoValue(tt.input)); diff != "" {
				t.Errorf("ToGoValue mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBridgeRoundTrip(t *testing.T) {
	L := lua.NewState()
	defer L.Close()
	bridge := NewBridge(L)

	in := map[string]any{
		"tags":  []string{"b", "i"},
		"depth": 3,
		"items": []any{"x", true},
	}
	want := map[string]any{
		"tags":  []any{"b", "i"},
		"depth": int64(3),
		"items": []any{"x", true},
	}
	if diff := cmp.Diff(want, bridge.ToGoValue(bridge.ToLuaValue(in))); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	type opaque struct{ n int }
	ud, ok := bridge.ToLuaValue(opaque{n: 1}).(*lua.LUserData)
	if !ok || ud.Value != (opaque{n: 1}) {
		t.Errorf("ToLuaValue(struct) = %v", ud)
	}
}
