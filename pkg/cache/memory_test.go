package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", sample{Name: "a", Count: 2}, time.Minute))

	var got sample
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, sample{Name: "a", Count: 2}, got)

	require.NoError(t, c.Delete(ctx, "k"))
	found, err = c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", 1, time.Second))
	var v int
	found, _ := c.Get(ctx, "k", &v)
	assert.True(t, found)
	assert.Equal(t, 1, v)

	now = now.Add(time.Second)
	found, _ = c.Get(ctx, "k", &v)
	assert.False(t, found)
}

func TestMemoryCache_NoTTL(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()
	require.NoError(t, c.Set(ctx, "k", "v", 0))

	c.now = func() time.Time { return time.Now().Add(24 * 365 * time.Hour) }
	var v string
	found, err := c.Get(ctx, "k", &v)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "v", v)
}
