package service

import (
	"context"
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/observability"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"

	"gorm.io/gorm"
)

// SocialService toggles follow edges and keeps the denormalized follower
// counters in step with them.
type SocialService struct {
	tx         TxRunner
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewSocialService returns a SocialService.
func NewSocialService(tx TxRunner, followRepo repository.FollowRepository, userRepo repository.UserRepository) *SocialService {
	return &SocialService{
		tx:         tx,
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// ToggleFollow follows the target when no edge exists (returns true) and
// unfollows when one does (returns false). The edge write and both counter
// writes happen in a single transaction: partial application would leave
// edges and counters inconsistent. Decrements clamp at zero.
func (s *SocialService) ToggleFollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	span, ctx := observability.NewSpan(ctx, "SocialService.ToggleFollow")
	defer span.End()

	if followerID == followingID {
		return false, models.NewValidationError("Cannot follow yourself")
	}

	target, err := s.userRepo.GetByID(ctx, followingID)
	if err != nil {
		span.SetError(err)
		return false, err
	}
	if target == nil {
		return false, models.NewNotFoundError("User", followingID)
	}

	var following bool
	err = s.tx.Transaction(func(tx *gorm.DB) error {
		followRepo := s.followRepo.WithTx(tx)
		userRepo := s.userRepo.WithTx(tx)

		edge, err := followRepo.GetEdge(ctx, followerID, followingID)
		if err != nil {
			return err
		}

		if edge != nil {
			if err := followRepo.Delete(ctx, edge.ID); err != nil {
				return err
			}
			if err := userRepo.AdjustFollowingCount(ctx, followerID, -1); err != nil {
				return err
			}
			if err := userRepo.AdjustFollowerCount(ctx, followingID, -1); err != nil {
				return err
			}
			following = false
			observability.FollowToggles.WithLabelValues("unfollowed").Inc()
			return nil
		}

		if err := followRepo.Create(ctx, &models.Follow{FollowerID: followerID, FollowingID: followingID}); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				// a concurrent request created the edge, counters already moved
				following = true
				return nil
			}
			return err
		}
		if err := userRepo.AdjustFollowingCount(ctx, followerID, 1); err != nil {
			return err
		}
		if err := userRepo.AdjustFollowerCount(ctx, followingID, 1); err != nil {
			return err
		}
		following = true
		observability.FollowToggles.WithLabelValues("followed").Inc()
		return nil
	})
	if err != nil {
		span.SetError(err)
		observability.LogServiceError(ctx, "SocialService", "ToggleFollow", err)
		return false, err
	}
	return following, nil
}

// IsFollowing reports whether follower currently follows following.
func (s *SocialService) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	edge, err := s.followRepo.GetEdge(ctx, followerID, followingID)
	if err != nil {
		return false, err
	}
	return edge != nil, nil
}
