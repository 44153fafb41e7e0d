// Package repository implements the data access layer over gorm.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/cache"
	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"gorm.io/gorm"
)

// Keyset is a resumable position inside the recency-ordered content list.
type Keyset struct {
	CreatedAt time.Time
	ID        uint
}

// ContentRepository defines the interface for content data operations.
type ContentRepository interface {
	Create(ctx context.Context, content *models.Content) error
	GetByID(ctx context.Context, id uint) (*models.Content, error)
	ListRecent(ctx context.Context, contentType models.ContentType, activeOnly bool, limit int) ([]*models.Content, error)
	ListPage(ctx context.Context, activeOnly bool, limit int, after *Keyset) ([]*models.Content, error)
	ListAll(ctx context.Context, activeOnly bool) ([]*models.Content, error)
	IncrementViewCount(ctx context.Context, id uint, viewedAt time.Time) error
	WithTx(tx *gorm.DB) ContentRepository
}

type contentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new content repository.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepository{db: db}
}

func (r *contentRepository) WithTx(tx *gorm.DB) ContentRepository {
	return &contentRepository{db: tx}
}

// withMedia preloads the media union rows. Images come back in their
// author-chosen order.
func withMedia(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Video").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("content_images.sort_order ASC")
		})
}

func (r *contentRepository) Create(ctx context.Context, content *models.Content) error {
	if err := r.db.WithContext(ctx).Create(content).Error; err != nil {
		return err
	}
	cache.InvalidateContentLists(ctx)
	return nil
}

// GetByID returns the content row or nil when the id does not exist.
func (r *contentRepository) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	var content models.Content
	err := cache.Aside(ctx, cache.ContentKey(id), &content, cache.ContentTTL, func() error {
		return withMedia(r.db.WithContext(ctx)).First(&content, id).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &content, nil
}

// ListRecent returns up to limit rows of one content type, newest first.
// Ties on created_at break on id so the order is total.
func (r *contentRepository) ListRecent(ctx context.Context, contentType models.ContentType, activeOnly bool, limit int) ([]*models.Content, error) {
	if limit <= 0 {
		return []*models.Content{}, nil
	}

	q := withMedia(r.db.WithContext(ctx)).
		Where("content_type = ?", contentType).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var contents []*models.Content
	if err := q.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// ListPage returns up to limit rows across all content types, newest
// first, starting strictly after the given keyset position.
func (r *contentRepository) ListPage(ctx context.Context, activeOnly bool, limit int, after *Keyset) ([]*models.Content, error) {
	if limit <= 0 {
		return []*models.Content{}, nil
	}

	q := withMedia(r.db.WithContext(ctx)).
		Order("created_at DESC, id DESC").
		Limit(limit)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	if after != nil {
		q = q.Where("created_at < ? OR (created_at = ? AND id < ?)", after.CreatedAt, after.CreatedAt, after.ID)
	}

	var contents []*models.Content
	if err := q.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// ListAll returns every content row, newest first. Search scans this set.
func (r *contentRepository) ListAll(ctx context.Context, activeOnly bool) ([]*models.Content, error) {
	q := withMedia(r.db.WithContext(ctx)).Order("created_at DESC, id DESC")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var contents []*models.Content
	if err := q.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// IncrementViewCount bumps the denormalized view counter and stamps the
// last view time in one update.
func (r *contentRepository) IncrementViewCount(ctx context.Context, id uint, viewedAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Content{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"view_count":     gorm.Expr("view_count + 1"),
			"last_viewed_at": viewedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("Content", id)
	}
	cache.Invalidate(ctx, cache.ContentKey(id))
	return nil
}
