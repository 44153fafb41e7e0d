package repository

import (
	"context"
	"testing"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, &models.Comment{
			ContentID: 1,
			AuthorID:  1,
			Text:      "comment",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Comment{ContentID: 2, AuthorID: 1, Text: "other thread"}))

	t.Run("ListRecent is newest first and scoped to the content", func(t *testing.T) {
		comments, err := repo.ListRecent(ctx, 1, 3)
		require.NoError(t, err)
		require.Len(t, comments, 3)
		assert.True(t, comments[0].CreatedAt.After(comments[1].CreatedAt))
		assert.True(t, comments[1].CreatedAt.After(comments[2].CreatedAt))
	})

	t.Run("ListByContent returns the whole thread", func(t *testing.T) {
		comments, err := repo.ListByContent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, comments, 5)
	})

	t.Run("Delete removes from listings", func(t *testing.T) {
		comments, err := repo.ListByContent(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, repo.Delete(ctx, comments[0].ID))

		remaining, err := repo.ListByContent(ctx, 1)
		require.NoError(t, err)
		assert.Len(t, remaining, 4)

		gone, err := repo.GetByID(ctx, comments[0].ID)
		require.NoError(t, err)
		assert.Nil(t, gone)
	})

	t.Run("GetByID missing returns nil", func(t *testing.T) {
		comment, err := repo.GetByID(ctx, 9999)
		require.NoError(t, err)
		assert.Nil(t, comment)
	})
}
