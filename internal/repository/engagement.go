package repository

import (
	"context"
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"gorm.io/gorm"
)

// EngagementRepository persists like votes and the view log.
// GetLike and LatestView return (nil, nil) when no row exists.
type EngagementRepository interface {
	GetLike(ctx context.Context, contentID, userID uint) (*models.ContentLike, error)
	CreateLike(ctx context.Context, like *models.ContentLike) error
	UpdateLikeKind(ctx context.Context, id uint, kind models.LikeKind) error
	DeleteLike(ctx context.Context, id uint) error
	CountLikes(ctx context.Context, contentID uint, kind models.LikeKind) (int64, error)
	LatestView(ctx context.Context, contentID uint, viewerKey string) (*models.ContentView, error)
	CreateView(ctx context.Context, view *models.ContentView) error
	WithTx(tx *gorm.DB) EngagementRepository
}

type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository.
func NewEngagementRepository(db *gorm.DB) EngagementRepository {
	return &engagementRepository{db: db}
}

func (r *engagementRepository) WithTx(tx *gorm.DB) EngagementRepository {
	return &engagementRepository{db: tx}
}

func (r *engagementRepository) GetLike(ctx context.Context, contentID, userID uint) (*models.ContentLike, error) {
	var like models.ContentLike
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND user_id = ?", contentID, userID).
		First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *engagementRepository) CreateLike(ctx context.Context, like *models.ContentLike) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(like).Error)
}

func (r *engagementRepository) UpdateLikeKind(ctx context.Context, id uint, kind models.LikeKind) error {
	return r.db.WithContext(ctx).
		Model(&models.ContentLike{}).
		Where("id = ?", id).
		Update("kind", kind).Error
}

func (r *engagementRepository) DeleteLike(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ContentLike{}, id).Error
}

func (r *engagementRepository) CountLikes(ctx context.Context, contentID uint, kind models.LikeKind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ContentLike{}).
		Where("content_id = ? AND kind = ?", contentID, kind).
		Count(&count).Error
	return count, err
}

func (r *engagementRepository) LatestView(ctx context.Context, contentID uint, viewerKey string) (*models.ContentView, error) {
	var view models.ContentView
	err := r.db.WithContext(ctx).
		Where("content_id = ? AND viewer_key = ?", contentID, viewerKey).
		Order("viewed_at DESC, id DESC").
		First(&view).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (r *engagementRepository) CreateView(ctx context.Context, view *models.ContentView) error {
	return r.db.WithContext(ctx).Create(view).Error
}
