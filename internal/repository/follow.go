package repository

import (
	"context"
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"gorm.io/gorm"
)

// FollowRepository persists the (follower, following) edge.
// GetEdge returns (nil, nil) when the edge does not exist.
type FollowRepository interface {
	GetEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error)
	Create(ctx context.Context, follow *models.Follow) error
	Delete(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) FollowRepository
}

type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository.
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) WithTx(tx *gorm.DB) FollowRepository {
	return &followRepository{db: tx}
}

func (r *followRepository) GetEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	var follow models.Follow
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		First(&follow).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) Create(ctx context.Context, follow *models.Follow) error {
	return translateDuplicate(r.db.WithContext(ctx).Create(follow).Error)
}

func (r *followRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Follow{}, id).Error
}
