package loader

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func environ(vars ...string) func() []string {
	return func() []string { return vars }
}

func TestEnvLoader_Load(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix).WithEnviron(environ(
		"INKWELL_HISTORY_MAX_ENTRIES=25",
		"INKWELL_HISTORY_MERGE=off",
		"INKWELL_LOG_LEVEL=debug",
		"INKWELL_SEPARATORS= ,",
		"INKWELL_BOGUS=1",
		"HOME=/root",
	))

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := map[string]any{
		"history": map[string]any{"max_entries": int64(25), "merge": false},
		"log":     map[string]any{"level": "debug"},
		"editing": map[string]any{"word_separators": " ,"},
	}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	l := NewEnvLoaderWithMapping("APP_", nil).WithEnviron(environ("APP_DEPTH=12"))
	l.AddMapping("APP_DEPTH", "engine.max_depth")

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := map[string]any{"engine": map[string]any{"max_depth": int64(12)}}
	if diff := cmp.Diff(want, config); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvToPath(t *testing.T) {
	l := NewEnvLoader(DefaultEnvPrefix)
	tests := []struct {
		env  string
		want string
	}{
		{"INKWELL_HISTORY_MAX_ENTRIES", "history.max_entries"},
		{"INKWELL_LOG_LEVEL", "log.level"},
		{"INKWELL_ENGINE_MAX_DEPTH", "engine.max_depth"},
		{"INKWELL_VERBOSE", ""},
	}
	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			if got := l.envToPath(tt.env); got != tt.want {
				t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"", ""},
		{"1", int64(1)},
		{"0", int64(0)},
		{"-4", int64(-4)},
		{"TRUE", true},
		{"no", false},
		{"nfc", "nfc"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, parseValue(tt.in)); diff != "" {
				t.Errorf("parseValue(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
