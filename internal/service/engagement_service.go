package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/observability"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"

	"gorm.io/gorm"
)

// DefaultViewCooldown is the window during which repeat views from the
// same viewer do not re-increment the counter.
const DefaultViewCooldown = 30 * time.Minute

// AnonymousViewer is the shared viewer key for unauthenticated requests.
// All anonymous viewers share one cooldown bucket; that coarse-graining is
// intentional.
const AnonymousViewer = "anonymous"

// TxRunner runs a function within a database transaction. *gorm.DB
// satisfies it directly.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// EngagementService maintains the denormalized engagement counters and the
// like/view records behind them.
type EngagementService struct {
	tx             TxRunner
	engagementRepo repository.EngagementRepository
	contentRepo    repository.ContentRepository
	cooldown       time.Duration
	now            func() time.Time
}

// NewEngagementService returns an EngagementService. A non-positive
// cooldown falls back to DefaultViewCooldown.
func NewEngagementService(tx TxRunner, engagementRepo repository.EngagementRepository, contentRepo repository.ContentRepository, cooldown time.Duration) *EngagementService {
	if cooldown <= 0 {
		cooldown = DefaultViewCooldown
	}
	return &EngagementService{
		tx:             tx,
		engagementRepo: engagementRepo,
		contentRepo:    contentRepo,
		cooldown:       cooldown,
		now:            time.Now,
	}
}

// ToggleLike cycles the user's vote on a piece of content through three
// states: no vote -> vote of the given kind, same kind -> removed,
// opposite kind -> switched in place. The returned kind is the resulting
// vote, nil when the vote was removed. The whole toggle runs in one
// transaction so concurrent toggles on the same (content, user) key cannot
// produce a second row.
func (s *EngagementService) ToggleLike(ctx context.Context, contentID, userID uint, kind models.LikeKind) (*models.LikeKind, error) {
	span, ctx := observability.NewSpan(ctx, "EngagementService.ToggleLike")
	defer span.End()

	if !kind.Valid() {
		return nil, models.NewValidationError("like type must be 'like' or 'dislike'")
	}

	var result *models.LikeKind
	err := s.tx.Transaction(func(tx *gorm.DB) error {
		repo := s.engagementRepo.WithTx(tx)

		existing, err := repo.GetLike(ctx, contentID, userID)
		if err != nil {
			return err
		}

		switch {
		case existing == nil:
			like := &models.ContentLike{ContentID: contentID, UserID: userID, Kind: kind}
			if err := repo.CreateLike(ctx, like); err != nil {
				if errors.Is(err, repository.ErrDuplicate) {
					// a concurrent toggle won the insert race, the vote is set
					result = &kind
					return nil
				}
				return err
			}
			result = &kind
			observability.LikeToggles.WithLabelValues("created").Inc()
		case existing.Kind == kind:
			if err := repo.DeleteLike(ctx, existing.ID); err != nil {
				return err
			}
			result = nil
			observability.LikeToggles.WithLabelValues("removed").Inc()
		default:
			if err := repo.UpdateLikeKind(ctx, existing.ID, kind); err != nil {
				return err
			}
			result = &kind
			observability.LikeToggles.WithLabelValues("switched").Inc()
		}
		return nil
	})
	if err != nil {
		span.SetError(err)
		observability.LogServiceError(ctx, "EngagementService", "ToggleLike", err)
		return nil, err
	}
	return result, nil
}

// IncrementView counts a view once per viewer per cooldown window. Inside
// the window the call is a deliberate silent no-op, not an error. The
// viewerKey is the authenticated subject, or AnonymousViewer when empty.
func (s *EngagementService) IncrementView(ctx context.Context, contentID uint, viewerKey string) error {
	span, ctx := observability.NewSpan(ctx, "EngagementService.IncrementView")
	defer span.End()

	if viewerKey == "" {
		viewerKey = AnonymousViewer
	}

	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		span.SetError(err)
		return err
	}
	if content == nil {
		return models.NewNotFoundError("Content", contentID)
	}

	now := s.now()
	err = s.tx.Transaction(func(tx *gorm.DB) error {
		repo := s.engagementRepo.WithTx(tx)

		latest, err := repo.LatestView(ctx, contentID, viewerKey)
		if err != nil {
			return err
		}
		if latest != nil && now.Sub(latest.ViewedAt) <= s.cooldown {
			observability.ViewIncrements.WithLabelValues("suppressed").Inc()
			return nil
		}

		view := &models.ContentView{ContentID: contentID, ViewerKey: viewerKey, ViewedAt: now}
		if err := repo.CreateView(ctx, view); err != nil {
			return err
		}
		if err := s.contentRepo.WithTx(tx).IncrementViewCount(ctx, contentID, now); err != nil {
			return err
		}
		observability.ViewIncrements.WithLabelValues("counted").Inc()
		return nil
	})
	if err != nil {
		span.SetError(err)
		observability.LogServiceError(ctx, "EngagementService", "IncrementView", err)
	}
	return err
}

// GetStats returns engagement stats for a piece of content. The view count
// comes from the denormalized Content fields; like and dislike counts are
// computed from ContentLike rows at read time. That asymmetry mirrors the
// write paths and is kept on purpose.
func (s *EngagementService) GetStats(ctx context.Context, contentID uint) (*models.ContentStats, error) {
	content, err := s.contentRepo.GetByID(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, models.NewNotFoundError("Content", contentID)
	}

	likes, err := s.engagementRepo.CountLikes(ctx, contentID, models.LikeKindLike)
	if err != nil {
		return nil, err
	}
	dislikes, err := s.engagementRepo.CountLikes(ctx, contentID, models.LikeKindDislike)
	if err != nil {
		return nil, err
	}

	return &models.ContentStats{
		ContentID:    contentID,
		ViewCount:    content.ViewCount,
		LastViewedAt: content.LastViewedAt,
		Likes:        likes,
		Dislikes:     dislikes,
	}, nil
}
