package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"

	"gorm.io/gorm"
)

// txRunnerStub runs the callback without a real transaction. The stubbed
// repos return themselves from WithTx, so the services exercise the same
// code path as with a real database.
type txRunnerStub struct{}

func (txRunnerStub) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type contentRepoStub struct {
	createFn             func(context.Context, *models.Content) error
	getByIDFn            func(context.Context, uint) (*models.Content, error)
	listRecentFn         func(context.Context, models.ContentType, bool, int) ([]*models.Content, error)
	listPageFn           func(context.Context, bool, int, *repository.Keyset) ([]*models.Content, error)
	listAllFn            func(context.Context, bool) ([]*models.Content, error)
	incrementViewCountFn func(context.Context, uint, time.Time) error
}

func (s *contentRepoStub) Create(ctx context.Context, content *models.Content) error {
	return s.createFn(ctx, content)
}
func (s *contentRepoStub) GetByID(ctx context.Context, id uint) (*models.Content, error) {
	return s.getByIDFn(ctx, id)
}
func (s *contentRepoStub) ListRecent(ctx context.Context, contentType models.ContentType, activeOnly bool, limit int) ([]*models.Content, error) {
	return s.listRecentFn(ctx, contentType, activeOnly, limit)
}
func (s *contentRepoStub) ListPage(ctx context.Context, activeOnly bool, limit int, after *repository.Keyset) ([]*models.Content, error) {
	return s.listPageFn(ctx, activeOnly, limit, after)
}
func (s *contentRepoStub) ListAll(ctx context.Context, activeOnly bool) ([]*models.Content, error) {
	return s.listAllFn(ctx, activeOnly)
}
func (s *contentRepoStub) IncrementViewCount(ctx context.Context, id uint, viewedAt time.Time) error {
	return s.incrementViewCountFn(ctx, id, viewedAt)
}
func (s *contentRepoStub) WithTx(_ *gorm.DB) repository.ContentRepository { return s }

type userRepoStub struct {
	createFn               func(context.Context, *models.User) error
	getByIDFn              func(context.Context, uint) (*models.User, error)
	getByWalletFn          func(context.Context, string) (*models.User, error)
	adjustFollowerCountFn  func(context.Context, uint, int) error
	adjustFollowingCountFn func(context.Context, uint, int) error
}

func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	return s.getByWalletFn(ctx, wallet)
}
func (s *userRepoStub) AdjustFollowerCount(ctx context.Context, id uint, delta int) error {
	return s.adjustFollowerCountFn(ctx, id, delta)
}
func (s *userRepoStub) AdjustFollowingCount(ctx context.Context, id uint, delta int) error {
	return s.adjustFollowingCountFn(ctx, id, delta)
}
func (s *userRepoStub) WithTx(_ *gorm.DB) repository.UserRepository { return s }

// noopUserRepo resolves every id to a plain user.
func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		createFn: func(context.Context, *models.User) error { return nil },
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, WalletAddress: "0x0000000000000000000000000000000000000000"}, nil
		},
		getByWalletFn:          func(context.Context, string) (*models.User, error) { return nil, nil },
		adjustFollowerCountFn:  func(context.Context, uint, int) error { return nil },
		adjustFollowingCountFn: func(context.Context, uint, int) error { return nil },
	}
}

type engagementRepoStub struct {
	getLikeFn        func(context.Context, uint, uint) (*models.ContentLike, error)
	createLikeFn     func(context.Context, *models.ContentLike) error
	updateLikeKindFn func(context.Context, uint, models.LikeKind) error
	deleteLikeFn     func(context.Context, uint) error
	countLikesFn     func(context.Context, uint, models.LikeKind) (int64, error)
	latestViewFn     func(context.Context, uint, string) (*models.ContentView, error)
	createViewFn     func(context.Context, *models.ContentView) error
}

func (s *engagementRepoStub) GetLike(ctx context.Context, contentID, userID uint) (*models.ContentLike, error) {
	return s.getLikeFn(ctx, contentID, userID)
}
func (s *engagementRepoStub) CreateLike(ctx context.Context, like *models.ContentLike) error {
	return s.createLikeFn(ctx, like)
}
func (s *engagementRepoStub) UpdateLikeKind(ctx context.Context, id uint, kind models.LikeKind) error {
	return s.updateLikeKindFn(ctx, id, kind)
}
func (s *engagementRepoStub) DeleteLike(ctx context.Context, id uint) error {
	return s.deleteLikeFn(ctx, id)
}
func (s *engagementRepoStub) CountLikes(ctx context.Context, contentID uint, kind models.LikeKind) (int64, error) {
	return s.countLikesFn(ctx, contentID, kind)
}
func (s *engagementRepoStub) LatestView(ctx context.Context, contentID uint, viewerKey string) (*models.ContentView, error) {
	return s.latestViewFn(ctx, contentID, viewerKey)
}
func (s *engagementRepoStub) CreateView(ctx context.Context, view *models.ContentView) error {
	return s.createViewFn(ctx, view)
}
func (s *engagementRepoStub) WithTx(_ *gorm.DB) repository.EngagementRepository { return s }

type followRepoStub struct {
	getEdgeFn func(context.Context, uint, uint) (*models.Follow, error)
	createFn  func(context.Context, *models.Follow) error
	deleteFn  func(context.Context, uint) error
}

func (s *followRepoStub) GetEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getEdgeFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Create(ctx context.Context, follow *models.Follow) error {
	return s.createFn(ctx, follow)
}
func (s *followRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *followRepoStub) WithTx(_ *gorm.DB) repository.FollowRepository { return s }

type commentRepoStub struct {
	createFn        func(context.Context, *models.Comment) error
	getByIDFn       func(context.Context, uint) (*models.Comment, error)
	listRecentFn    func(context.Context, uint, int) ([]*models.Comment, error)
	listByContentFn func(context.Context, uint) ([]*models.Comment, error)
	deleteFn        func(context.Context, uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListRecent(ctx context.Context, contentID uint, limit int) ([]*models.Comment, error) {
	return s.listRecentFn(ctx, contentID, limit)
}
func (s *commentRepoStub) ListByContent(ctx context.Context, contentID uint) ([]*models.Comment, error) {
	return s.listByContentFn(ctx, contentID)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

// makeContents builds n content rows of one type with descending recency.
func makeContents(contentType models.ContentType, n int, startID uint) []*models.Content {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	out := make([]*models.Content, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Content{
			ID:          startID + uint(i),
			AuthorID:    1,
			ContentType: contentType,
			Title:       "post",
			IsActive:    true,
			CreatedAt:   base.Add(-time.Duration(i) * time.Minute),
		})
	}
	return out
}
