package store

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Runs against a live server only when PATTERNLOCK_TEST_REDIS_URL is set
func TestRedisStore_RoundTrip(t *testing.T) {
	url := os.Getenv("PATTERNLOCK_TEST_REDIS_URL")
	if url == "" {
		t.Skip("PATTERNLOCK_TEST_REDIS_URL not set")
	}
	ctx := context.Background()
	key := "patternlock:test:" + t.Name()

	rs, err := NewRedisStore(ctx, url, key, 3)
	require.NoError(t, err)
	t.Cleanup(func() {
		rs.client.Del(context.Background(), key)
		rs.Close()
	})

	_, err = rs.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, rs.Save(ctx, []int{7, 5, 3}))
	got, err := rs.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{7, 5, 3}, got)

	assert.ErrorIs(t, rs.Save(ctx, nil), ErrEmptyAnswer)
}

func TestNewRedisStore_RequiresURL(t *testing.T) {
	_, err := NewRedisStore(context.Background(), "", "k", 3)
	assert.Error(t, err)
}
