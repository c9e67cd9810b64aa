// Package loader reads inkwell configuration sources into generic maps.
//
// Sources are TOML files (with @include support) and INKWELL_ prefixed
// environment variables. The config package merges the maps and decodes
// the result into typed settings.
package loader

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Loader is the interface for configuration loaders.
type Loader interface {
	// Load reads configuration from the source and returns a map.
	// Returns nil, nil if the source doesn't exist (not an error).
	Load() (map[string]any, error)
}

// FileSystem is an abstraction for file system operations.
// This allows for easy testing with in-memory file systems.
type FileSystem interface {
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// MapFS is an in-memory FileSystem keyed by path.
type MapFS map[string]string

// ReadFile returns the content stored at path.
func (m MapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(data), nil
}

// Stat returns file info for path.
func (m MapFS) Stat(path string) (fs.FileInfo, error) {
	data, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return mapFileInfo{name: filepath.Base(path), size: int64(len(data))}, nil
}

type mapFileInfo struct {
	name string
	size int64
}

func (f mapFileInfo) Name() string       { return f.name }
func (f mapFileInfo) Size() int64        { return f.size }
func (f mapFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f mapFileInfo) ModTime() time.Time { return time.Time{} }
func (f mapFileInfo) IsDir() bool        { return false }
func (f mapFileInfo) Sys() any           { return nil }
