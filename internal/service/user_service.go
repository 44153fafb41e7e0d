package service

import (
	"context"
	"strings"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"
	"github.com/0xvictorb/slide-alpha-sub000/internal/validation"
)

// UserService is the user directory keyed by wallet address.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetOrCreateByWallet resolves a user by wallet address, creating the
// account on first sight. The address is checksum-validated and stored in
// its normalized form; the default display name is a shortened address.
func (s *UserService) GetOrCreateByWallet(ctx context.Context, wallet string) (*models.User, error) {
	normalized, err := validation.NormalizeWalletAddress(wallet)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	user, err := s.userRepo.GetByWallet(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user = &models.User{
		WalletAddress: normalized,
		Name:          shortenAddress(normalized),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByWallet returns the user's profile or a NotFound error.
func (s *UserService) GetByWallet(ctx context.Context, wallet string) (*models.User, error) {
	normalized, err := validation.NormalizeWalletAddress(wallet)
	if err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	user, err := s.userRepo.GetByWallet(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", wallet)
	}
	return user, nil
}

func shortenAddress(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "..." + strings.ToLower(addr[len(addr)-4:])
}
