package repository

import (
	"context"
	"testing"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAuthor(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	user := &models.User{WalletAddress: "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", Name: "author"}
	require.NoError(t, db.Create(user).Error)
	return user
}

func seedContent(t *testing.T, db *gorm.DB, authorID uint, contentType models.ContentType, createdAt time.Time, active bool) *models.Content {
	t.Helper()
	content := &models.Content{
		AuthorID:    authorID,
		ContentType: contentType,
		Title:       "post",
		IsActive:    active,
		CreatedAt:   createdAt,
	}
	if contentType == models.ContentTypeVideo {
		content.Video = &models.Video{URL: "https://cdn.example/v.mp4"}
	} else {
		content.Images = []models.ContentImage{
			{URL: "https://cdn.example/b.jpg", Order: 1},
			{URL: "https://cdn.example/a.jpg", Order: 0},
		}
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

func TestContentRepository_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	author := seedAuthor(t, db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	old := seedContent(t, db, author.ID, models.ContentTypeVideo, base.Add(-2*time.Hour), true)
	newest := seedContent(t, db, author.ID, models.ContentTypeVideo, base, true)
	mid := seedContent(t, db, author.ID, models.ContentTypeVideo, base.Add(-time.Hour), true)
	seedContent(t, db, author.ID, models.ContentTypeImages, base, true)
	inactive := seedContent(t, db, author.ID, models.ContentTypeVideo, base.Add(time.Hour), false)

	t.Run("Newest first, single type", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, models.ContentTypeVideo, true, 10)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, newest.ID, got[0].ID)
		assert.Equal(t, mid.ID, got[1].ID)
		assert.Equal(t, old.ID, got[2].ID)
	})

	t.Run("Limit respected", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, models.ContentTypeVideo, true, 2)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Inactive included only when requested", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, models.ContentTypeVideo, false, 10)
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, inactive.ID, got[0].ID)
	})

	t.Run("Video preloaded", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, models.ContentTypeVideo, true, 1)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Video)
	})

	t.Run("Non-positive limit returns empty", func(t *testing.T) {
		got, err := repo.ListRecent(ctx, models.ContentTypeVideo, true, 0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestContentRepository_ListPage(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	author := seedAuthor(t, db)

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	ids := make([]uint, 0, 5)
	for i := 0; i < 5; i++ {
		c := seedContent(t, db, author.ID, models.ContentTypeVideo, base.Add(-time.Duration(i)*time.Minute), true)
		ids = append(ids, c.ID)
	}

	first, err := repo.ListPage(ctx, true, 2, nil)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, ids[0], first[0].ID)
	assert.Equal(t, ids[1], first[1].ID)

	after := &Keyset{CreatedAt: first[1].CreatedAt, ID: first[1].ID}
	second, err := repo.ListPage(ctx, true, 2, after)
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, ids[2], second[0].ID)
	assert.Equal(t, ids[3], second[1].ID)
}

func TestContentRepository_GetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	author := seedAuthor(t, db)

	created := seedContent(t, db, author.ID, models.ContentTypeImages, time.Now(), true)

	t.Run("Images preloaded in sort order", func(t *testing.T) {
		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Len(t, got.Images, 2)
		assert.Equal(t, 0, got.Images[0].Order)
		assert.Equal(t, 1, got.Images[1].Order)
	})

	t.Run("Missing returns nil", func(t *testing.T) {
		got, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestContentRepository_IncrementViewCount(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepository(db)
	ctx := context.Background()
	author := seedAuthor(t, db)

	created := seedContent(t, db, author.ID, models.ContentTypeVideo, time.Now(), true)
	viewedAt := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)

	require.NoError(t, repo.IncrementViewCount(ctx, created.ID, viewedAt))
	require.NoError(t, repo.IncrementViewCount(ctx, created.ID, viewedAt.Add(time.Hour)))

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ViewCount)
	require.NotNil(t, got.LastViewedAt)
	assert.True(t, got.LastViewedAt.Equal(viewedAt.Add(time.Hour)))

	err = repo.IncrementViewCount(ctx, 9999, viewedAt)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
}
