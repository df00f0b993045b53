package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/patternlock/config"
)

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "answer.yaml")
	fs := NewFileStore(path, 3)

	_, err := fs.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, fs.Save(ctx, []int{2, 5, 8}))
	got, err := fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 8}, got)

	require.NoError(t, fs.Save(ctx, []int{1}))
	got, err = fs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file removed")
}

func TestFileStore_RejectsEmpty(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "answer.yaml"), 3)
	assert.ErrorIs(t, fs.Save(context.Background(), nil), ErrEmptyAnswer)
}

func TestFileStore_GridMismatch(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "answer.yaml")
	require.NoError(t, NewFileStore(path, 4).Save(ctx, []int{16}))

	_, err := NewFileStore(path, 3).Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFileStore_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("answer: [3, 2, 1]\n"), 0o644))

	got, err := NewFileStore(path, 3).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2, 1}, got)

	require.NoError(t, os.WriteFile(path, []byte("answer: [oops"), 0o644))
	_, err = NewFileStore(path, 3).Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestFileStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fs := NewFileStore(filepath.Join(t.TempDir(), "answer.yaml"), 3)
	assert.ErrorIs(t, fs.Save(ctx, []int{1}), context.Canceled)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StoreConfig{Backend: config.BackendNone}, 3)
	require.NoError(t, err)
	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Save(ctx, []int{1}))

	s, err = Open(ctx, config.StoreConfig{Backend: config.BackendFile, Path: filepath.Join(t.TempDir(), "a.yaml")}, 3)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	_, err = Open(ctx, config.StoreConfig{Backend: "s3"}, 3)
	assert.ErrorIs(t, err, ErrUnknownStore)

	_, err = Open(ctx, config.StoreConfig{Backend: config.BackendRedis, RedisURL: "not a url"}, 3)
	assert.Error(t, err)
}
