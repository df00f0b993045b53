package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the answer in a YAML file
type FileStore struct {
	path  string
	count int
}

// NewFileStore creates a store backed by path
func NewFileStore(path string, count int) *FileStore {
	return &FileStore{path: path, count: count}
}

// Load reads the saved answer, ErrNotFound when absent
func (f *FileStore) Load(ctx context.Context) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read answer file: %w", err)
	}

	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse answer file: %w", err)
	}
	if err := rec.check(f.count); err != nil {
		return nil, err
	}
	return rec.Answer, nil
}

// Save writes the answer atomically via a temp file rename
func (f *FileStore) Save(ctx context.Context, answer []int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rec, err := newRecord(answer, f.count)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create answer directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".patternlock-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write answer: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace answer file: %w", err)
	}
	return nil
}

func (f *FileStore) Close() error { return nil }

// Path returns the backing file
func (f *FileStore) Path() string { return f.path }
