package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"webflow-forms-backend/internal/domains/uploadsession/model"
	"webflow-forms-backend/pkg/cache"
)

func TestCacheRepository_RoundTrip(t *testing.T) {
	repo := NewCacheRepository(cache.NewMemoryCache())
	ctx := context.Background()

	got, err := repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)

	session := &model.Session{
		ID:     "s1",
		Images: map[string]model.UploadedImage{"photo1": {URL: "https://cdn.test/a.jpg", FileKey: "images/a.jpg"}},
	}
	require.NoError(t, repo.Save(ctx, session, time.Hour))

	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "images/a.jpg", got.Images["photo1"].FileKey)

	require.NoError(t, repo.Delete(ctx, "s1"))
	got, err = repo.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
