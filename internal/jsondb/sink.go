package jsondb

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Sink is the persistence medium behind a Store: a single document
// holding the full collection. Implementations must treat every write
// as a complete replacement of the previous contents.
type Sink[T any] interface {
	ReadAll() ([]T, error)
	WriteAll(items []T) error
}

// FileSink persists a collection as one pretty-printed JSON file.
type FileSink[T any] struct {
	path string
}

// NewFileSink creates a sink backed by the file at path. The file and
// its parent directories are created on first write.
func NewFileSink[T any](path string) *FileSink[T] {
	return &FileSink[T]{path: path}
}

// ReadAll loads the full collection. A missing file is an empty
// collection, not an error.
func (f *FileSink[T]) ReadAll() ([]T, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}
	var items []T
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", f.path, err)
	}
	return items, nil
}

// WriteAll rewrites the whole file with the given collection.
func (f *FileSink[T]) WriteAll(items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", f.path, err)
	}
	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(f.path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
