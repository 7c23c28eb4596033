package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemember(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Options{Version: "1"})
	require.NoError(t, err)

	calls := 0
	load := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"saree", "lehenga"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, "categories", SetOptions{TTL: time.Minute}, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"saree", "lehenga"}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestRememberLoadErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, Options{Version: "1"})
	require.NoError(t, err)

	errDown := errors.New("database unavailable")
	_, err = Remember(ctx, c, "k", SetOptions{}, func(ctx context.Context) (int, error) {
		return 0, errDown
	})
	assert.ErrorIs(t, err, errDown)

	got, err := Remember(ctx, c, "k", SetOptions{}, func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}
