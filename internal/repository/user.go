package repository

import (
	"context"
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/cache"
	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations.
// GetByID and GetByWallet return (nil, nil) when the user does not exist.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByWallet(ctx context.Context, wallet string) (*models.User, error)
	AdjustFollowerCount(ctx context.Context, id uint, delta int) error
	AdjustFollowingCount(ctx context.Context, id uint, delta int) error
	WithTx(tx *gorm.DB) UserRepository
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{db: tx}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	var user models.User
	err := cache.Aside(ctx, cache.UserKey(wallet), &user, cache.UserTTL, func() error {
		return r.db.WithContext(ctx).Where("wallet_address = ?", wallet).First(&user).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AdjustFollowerCount applies delta to the denormalized follower counter,
// clamped at zero. The CASE expression is portable across PostgreSQL and
// SQLite, unlike GREATEST.
func (r *userRepository) AdjustFollowerCount(ctx context.Context, id uint, delta int) error {
	return r.adjustCounter(ctx, id, "follower_count", delta)
}

// AdjustFollowingCount applies delta to the denormalized following counter,
// clamped at zero.
func (r *userRepository) AdjustFollowingCount(ctx context.Context, id uint, delta int) error {
	return r.adjustCounter(ctx, id, "following_count", delta)
}

func (r *userRepository) adjustCounter(ctx context.Context, id uint, column string, delta int) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(
			"CASE WHEN "+column+" + ? < 0 THEN 0 ELSE "+column+" + ? END", delta, delta,
		))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	r.invalidateUser(ctx, id)
	return nil
}

func (r *userRepository) invalidateUser(ctx context.Context, id uint) {
	var user models.User
	if err := r.db.WithContext(ctx).Select("wallet_address").First(&user, id).Error; err != nil {
		return
	}
	cache.Invalidate(ctx, cache.UserKey(user.WalletAddress))
}
