package service

import (
	"context"
	"strings"
	"testing"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:        func(context.Context, *models.Comment) error { return nil },
		getByIDFn:       func(context.Context, uint) (*models.Comment, error) { return nil, nil },
		listRecentFn:    func(context.Context, uint, int) ([]*models.Comment, error) { return nil, nil },
		listByContentFn: func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

func TestCommentService_Create(t *testing.T) {
	t.Parallel()

	newSvc := func(comments *commentRepoStub) *CommentService {
		return NewCommentService(comments, existingContentRepo(), noopUserRepo())
	}

	t.Run("Success", func(t *testing.T) {
		var created *models.Comment
		comments := noopCommentRepo()
		comments.createFn = func(_ context.Context, c *models.Comment) error {
			created = c
			return nil
		}
		svc := newSvc(comments)

		comment, err := svc.Create(context.Background(), CreateCommentInput{
			ContentID: 1, AuthorID: 2, Text: "  nice clip  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "nice clip", comment.Text)
		assert.Equal(t, int64(0), comment.LikeCount)
		assert.Same(t, comment, created)
	})

	t.Run("Empty text rejected", func(t *testing.T) {
		svc := newSvc(noopCommentRepo())

		_, err := svc.Create(context.Background(), CreateCommentInput{ContentID: 1, AuthorID: 2, Text: "   "})
		assert.True(t, models.IsCode(err, models.CodeValidation))
	})

	t.Run("Over length rejected", func(t *testing.T) {
		svc := newSvc(noopCommentRepo())

		_, err := svc.Create(context.Background(), CreateCommentInput{
			ContentID: 1, AuthorID: 2, Text: strings.Repeat("a", maxCommentLen+1),
		})
		assert.True(t, models.IsCode(err, models.CodeValidation))
	})

	t.Run("Missing content is NotFound", func(t *testing.T) {
		contentRepo := existingContentRepo()
		contentRepo.getByIDFn = func(context.Context, uint) (*models.Content, error) { return nil, nil }
		svc := NewCommentService(noopCommentRepo(), contentRepo, noopUserRepo())

		_, err := svc.Create(context.Background(), CreateCommentInput{ContentID: 404, AuthorID: 2, Text: "hi"})
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("Missing author is NotFound", func(t *testing.T) {
		users := noopUserRepo()
		users.getByIDFn = func(context.Context, uint) (*models.User, error) { return nil, nil }
		svc := NewCommentService(noopCommentRepo(), existingContentRepo(), users)

		_, err := svc.Create(context.Background(), CreateCommentInput{ContentID: 1, AuthorID: 404, Text: "hi"})
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})
}

func TestCommentService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("Owner deletes", func(t *testing.T) {
		var deletedID uint
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 2}, nil
		}
		comments.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}
		svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

		require.NoError(t, svc.Delete(context.Background(), 10, 2))
		assert.Equal(t, uint(10), deletedID)
	})

	t.Run("Missing comment is NotFound", func(t *testing.T) {
		svc := NewCommentService(noopCommentRepo(), existingContentRepo(), noopUserRepo())

		err := svc.Delete(context.Background(), 10, 2)
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	})

	t.Run("Non-owner rejected", func(t *testing.T) {
		comments := noopCommentRepo()
		comments.getByIDFn = func(_ context.Context, id uint) (*models.Comment, error) {
			return &models.Comment{ID: id, AuthorID: 2}, nil
		}
		svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

		err := svc.Delete(context.Background(), 10, 3)
		assert.True(t, models.IsCode(err, models.CodeUnauthorized))
	})
}

func TestCommentService_List(t *testing.T) {
	t.Parallel()

	pool := func(n int) []*models.Comment {
		out := make([]*models.Comment, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, &models.Comment{ID: uint(i + 1), ContentID: 1, AuthorID: 2, Text: "c"})
		}
		return out
	}

	t.Run("Offset slices the fetched window", func(t *testing.T) {
		var requestedLimit int
		comments := noopCommentRepo()
		comments.listRecentFn = func(_ context.Context, _ uint, limit int) ([]*models.Comment, error) {
			requestedLimit = limit
			all := pool(30)
			if limit > len(all) {
				limit = len(all)
			}
			return all[:limit], nil
		}
		svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

		result, err := svc.List(context.Background(), 1, 10, 5)
		require.NoError(t, err)
		// fetches limit+offset rows, returns [offset, offset+limit)
		assert.Equal(t, 15, requestedLimit)
		require.Len(t, result, 10)
		assert.Equal(t, uint(6), result[0].ID)
		assert.Equal(t, uint(15), result[9].ID)
	})

	t.Run("Offset beyond the data returns empty", func(t *testing.T) {
		comments := noopCommentRepo()
		comments.listRecentFn = func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) {
			return pool(3), nil
		}
		svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

		result, err := svc.List(context.Background(), 1, 10, 50)
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("Non-positive limit defaults", func(t *testing.T) {
		var requestedLimit int
		comments := noopCommentRepo()
		comments.listRecentFn = func(_ context.Context, _ uint, limit int) ([]*models.Comment, error) {
			requestedLimit = limit
			return nil, nil
		}
		svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

		_, err := svc.List(context.Background(), 1, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, defaultCommentLimit, requestedLimit)
	})

	t.Run("Author fields resolved", func(t *testing.T) {
		comments := noopCommentRepo()
		comments.listRecentFn = func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) {
			return pool(2), nil
		}
		users := noopUserRepo()
		users.getByIDFn = func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, WalletAddress: "0xfeed", Name: "alice"}, nil
		}
		svc := NewCommentService(comments, existingContentRepo(), users)

		result, err := svc.List(context.Background(), 1, 10, 0)
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "0xfeed", result[0].AuthorWallet)
		assert.Equal(t, "alice", result[0].AuthorName)
	})

	t.Run("Missing author is a hard data-integrity failure", func(t *testing.T) {
		comments := noopCommentRepo()
		comments.listRecentFn = func(_ context.Context, _ uint, _ int) ([]*models.Comment, error) {
			return pool(2), nil
		}
		users := noopUserRepo()
		users.getByIDFn = func(context.Context, uint) (*models.User, error) { return nil, nil }
		svc := NewCommentService(comments, existingContentRepo(), users)

		_, err := svc.List(context.Background(), 1, 10, 0)
		require.Error(t, err)
		assert.True(t, models.IsCode(err, models.CodeDataIntegrity))
	})
}

func TestCommentService_Count(t *testing.T) {
	t.Parallel()

	comments := noopCommentRepo()
	comments.listByContentFn = func(_ context.Context, _ uint) ([]*models.Comment, error) {
		return []*models.Comment{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	}
	svc := NewCommentService(comments, existingContentRepo(), noopUserRepo())

	count, err := svc.Count(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}
