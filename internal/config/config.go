package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/inkwell/internal/config/loader"
	"github.com/dshills/inkwell/internal/engine"
	"github.com/dshills/inkwell/internal/engine/edit"
	"github.com/dshills/inkwell/internal/logging"
)

// Config holds every inkwell setting.
type Config struct {
	History HistoryConfig `toml:"history"`
	Editing EditingConfig `toml:"editing"`
	Engine  EngineConfig  `toml:"engine"`
	Log     LogConfig     `toml:"log"`
}

// HistoryConfig controls undo history.
type HistoryConfig struct {
	// MaxEntries bounds the undo stack; the oldest entries are evicted.
	MaxEntries int `toml:"max_entries"`
	// Merge coalesces consecutive single-character edits.
	Merge bool `toml:"merge"`
}

// EditingConfig controls text handling.
type EditingConfig struct {
	// WordSeparators lists the characters that end a word.
	WordSeparators string `toml:"word_separators"`
	// Normalize names the Unicode normal form for typed text.
	Normalize string `toml:"normalize"`
}

// EngineConfig holds structural limits.
type EngineConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		History: HistoryConfig{MaxEntries: engine.DefaultMaxHistory, Merge: true},
		Editing: EditingConfig{WordSeparators: engine.DefaultSeparators, Normalize: string(edit.NormalizeNFC)},
		Engine:  EngineConfig{MaxDepth: engine.DefaultMaxDepth},
		Log:     LogConfig{Level: "info"},
	}
}

type loadOptions struct {
	fs       loader.FileSystem
	env      *loader.EnvLoader
	required bool
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

// WithFS reads config files through fsys.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnviron reads environment variables from environ instead of the
// process environment.
func WithEnviron(environ func() []string) LoadOption {
	return func(o *loadOptions) {
		o.env = loader.NewEnvLoader(loader.DefaultEnvPrefix).WithEnviron(environ)
	}
}

// WithoutEnv ignores environment variables.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.env = nil
	}
}

// Required makes a missing config file an error.
func Required() LoadOption {
	return func(o *loadOptions) {
		o.required = true
	}
}

// Load builds a Config from defaults, the TOML file at path and the
// environment. An empty path skips the file layer.
func Load(path string, opts ...LoadOption) (*Config, error) {
	o := loadOptions{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(&o)
	}

	merged := map[string]any{}
	if path != "" {
		data, err := loader.NewTOMLLoaderWithFS(o.fs, path).Load()
		if err != nil {
			return nil, err
		}
		if data == nil && o.required {
			return nil, fmt.Errorf("%s: %w", path, ErrFileNotFound)
		}
		merged = loader.DeepMerge(merged, data)
	}
	if o.env != nil {
		data, err := o.env.Load()
		if err != nil {
			return nil, err
		}
		merged = loader.DeepMerge(merged, data)
	}

	cfg := Default()
	if err := decode(merged, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML from r over the defaults. Includes and environment
// variables are not consulted.
func Parse(r io.Reader) (*Config, error) {
	data, err := loader.NewTOMLLoaderWithFS(loader.MapFS{}, "").LoadFromReader(r)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := decode(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode re-encodes the merged map and decodes it strictly into cfg, so
// every layer is checked against the same field set.
func decode(data map[string]any, cfg *Config) error {
	if len(data) == 0 {
		return nil
	}
	raw, err := toml.Marshal(data)
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, strict.String())
		}
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// Validate checks every setting and returns the first failure.
func (c *Config) Validate() error {
	if c.History.MaxEntries < 1 {
		return &ValidationError{
			Path: "history.max_entries", Message: "must be at least 1",
			Value: c.History.MaxEntries, Code: ErrCodeOutOfRange,
		}
	}
	if c.Editing.WordSeparators == "" {
		return &ValidationError{
			Path: "editing.word_separators", Message: "must not be empty",
			Value: c.Editing.WordSeparators, Code: ErrCodeRequiredMissing,
		}
	}
	if _, err := edit.ParseNormalization(c.Editing.Normalize); err != nil {
		return &ValidationError{
			Path: "editing.normalize", Message: "must be one of none, nfc, nfd, nfkc, nfkd",
			Value: c.Editing.Normalize, Code: ErrCodeInvalidEnum,
		}
	}
	if c.Engine.MaxDepth < 1 {
		return &ValidationError{
			Path: "engine.max_depth", Message: "must be at least 1",
			Value: c.Engine.MaxDepth, Code: ErrCodeOutOfRange,
		}
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return &ValidationError{
			Path: "log.level", Message: "must be one of debug, info, warn, error",
			Value: c.Log.Level, Code: ErrCodeInvalidEnum,
		}
	}
	return nil
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// Logger returns a logger writing to w at the configured level.
func (c *Config) Logger(w io.Writer) *logging.Logger {
	cfg := logging.DefaultConfig()
	cfg.Level = c.LogLevel()
	if w != nil {
		cfg.Output = w
	}
	return logging.New(cfg)
}

// DocumentOptions translates the settings into engine options.
func (c *Config) DocumentOptions() []engine.Option {
	n, err := edit.ParseNormalization(c.Editing.Normalize)
	if err != nil {
		n = edit.NormalizeNFC
	}
	return []engine.Option{
		engine.WithMaxHistory(c.History.MaxEntries),
		engine.WithMerge(c.History.Merge),
		engine.WithWordSeparators(c.Editing.WordSeparators),
		engine.WithNormalization(n),
		engine.WithMaxDepth(c.Engine.MaxDepth),
	}
}
