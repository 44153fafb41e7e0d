package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"
)

const (
	maxCommentLen       = 1000
	defaultCommentLimit = 20
)

// CommentService provides comment creation, deletion, and offset-based
// pagination. Its pagination style is intentionally different from the
// feed's cursor scheme.
type CommentService struct {
	commentRepo repository.CommentRepository
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
}

// CreateCommentInput carries the fields of a new comment.
type CreateCommentInput struct {
	ContentID uint
	AuthorID  uint
	Text      string
}

// NewCommentService returns a CommentService.
func NewCommentService(commentRepo repository.CommentRepository, contentRepo repository.ContentRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		contentRepo: contentRepo,
		userRepo:    userRepo,
	}
}

// Create validates and inserts a comment with a zero like count.
func (s *CommentService) Create(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Comment text is required")
	}
	if utf8.RuneCountInString(text) > maxCommentLen {
		return nil, models.NewValidationError(fmt.Sprintf("Comment too long (max %d characters)", maxCommentLen))
	}

	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", in.AuthorID)
	}

	content, err := s.contentRepo.GetByID(ctx, in.ContentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, models.NewNotFoundError("Content", in.ContentID)
	}

	comment := &models.Comment{
		ContentID: in.ContentID,
		AuthorID:  in.AuthorID,
		Text:      text,
		LikeCount: 0,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment. Only the comment's author may delete it; a
// missing comment and a non-owner are distinct failures.
func (s *CommentService) Delete(ctx context.Context, commentID, authorID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return models.NewNotFoundError("Comment", commentID)
	}
	if comment.AuthorID != authorID {
		return models.NewUnauthorizedError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}

// List returns a window of the content's comments in reverse-chronological
// order: it fetches limit+offset rows, slices [offset, offset+limit), and
// resolves each comment's author. A comment whose author cannot be
// resolved is a data-integrity failure, not a tolerated absence.
func (s *CommentService) List(ctx context.Context, contentID uint, limit, offset int) ([]models.CommentWithAuthor, error) {
	if limit <= 0 {
		limit = defaultCommentLimit
	}
	if offset < 0 {
		offset = 0
	}

	comments, err := s.commentRepo.ListRecent(ctx, contentID, limit+offset)
	if err != nil {
		return nil, err
	}

	if offset >= len(comments) {
		return []models.CommentWithAuthor{}, nil
	}
	end := offset + limit
	if end > len(comments) {
		end = len(comments)
	}
	window := comments[offset:end]

	authors := make(map[uint]*models.User, len(window))
	result := make([]models.CommentWithAuthor, 0, len(window))
	for _, c := range window {
		author, ok := authors[c.AuthorID]
		if !ok {
			author, err = s.userRepo.GetByID(ctx, c.AuthorID)
			if err != nil {
				return nil, err
			}
			authors[c.AuthorID] = author
		}
		if author == nil {
			return nil, models.NewDataIntegrityError(fmt.Sprintf("comment %d references missing author %d", c.ID, c.AuthorID))
		}
		result = append(result, models.CommentWithAuthor{
			Comment:         *c,
			AuthorWallet:    author.WalletAddress,
			AuthorName:      author.Name,
			AuthorAvatarURL: author.AvatarURL,
		})
	}
	return result, nil
}

// Count returns the number of comments on the content. It counts fetched
// rows rather than issuing an aggregate query.
func (s *CommentService) Count(ctx context.Context, contentID uint) (int, error) {
	comments, err := s.commentRepo.ListByContent(ctx, contentID)
	if err != nil {
		return 0, err
	}
	return len(comments), nil
}
