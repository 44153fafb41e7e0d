package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"
)

// DefaultPremiumMinFollowers is the follower threshold an author must reach
// before publishing premium content.
const DefaultPremiumMinFollowers = 100

// ContentService handles content creation and its eligibility rules.
type ContentService struct {
	contentRepo         repository.ContentRepository
	userRepo            repository.UserRepository
	premiumMinFollowers int64
}

// NewContentService returns a ContentService. A non-positive threshold
// falls back to DefaultPremiumMinFollowers.
func NewContentService(contentRepo repository.ContentRepository, userRepo repository.UserRepository, premiumMinFollowers int64) *ContentService {
	if premiumMinFollowers <= 0 {
		premiumMinFollowers = DefaultPremiumMinFollowers
	}
	return &ContentService{
		contentRepo:         contentRepo,
		userRepo:            userRepo,
		premiumMinFollowers: premiumMinFollowers,
	}
}

// VideoInput is the media payload of a video post.
type VideoInput struct {
	URL          string  `json:"url"`
	ThumbnailURL string  `json:"thumbnail_url"`
	Duration     float64 `json:"duration"`
}

// ImageInput is one image of an image post. Images keep their input order.
type ImageInput struct {
	URL        string `json:"url"`
	StorageRef string `json:"storage_ref"`
}

// CreateContentInput carries the fields of a new post.
type CreateContentInput struct {
	AuthorID        uint
	ContentType     models.ContentType
	Video           *VideoInput
	Images          []ImageInput
	Title           string
	Description     string
	Hashtags        []string
	IsPremium       bool
	PremiumPrice    float64
	PromotedTokenID string
	IsOnChain       bool
}

// Create validates the tagged-union media shape and premium eligibility,
// then inserts the content as active.
func (s *ContentService) Create(ctx context.Context, in CreateContentInput) (*models.Content, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	if !in.ContentType.Valid() {
		return nil, models.NewValidationError("content type must be 'video' or 'images'")
	}

	switch in.ContentType {
	case models.ContentTypeVideo:
		if in.Video == nil || len(in.Images) > 0 {
			return nil, models.NewValidationError("video content requires a video and no images")
		}
		if strings.TrimSpace(in.Video.URL) == "" {
			return nil, models.NewValidationError("video URL is required")
		}
	case models.ContentTypeImages:
		if len(in.Images) == 0 || in.Video != nil {
			return nil, models.NewValidationError("image content requires at least one image and no video")
		}
		for i, img := range in.Images {
			if strings.TrimSpace(img.URL) == "" {
				return nil, models.NewValidationError(fmt.Sprintf("image %d is missing its URL", i))
			}
		}
	}

	author, err := s.userRepo.GetByID(ctx, in.AuthorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", in.AuthorID)
	}

	if in.IsPremium {
		if in.PremiumPrice <= 0 {
			return nil, models.NewValidationError("premium content requires a positive price")
		}
		if author.FollowerCount < s.premiumMinFollowers {
			return nil, models.NewValidationError(fmt.Sprintf("premium content requires at least %d followers", s.premiumMinFollowers))
		}
	}

	content := &models.Content{
		AuthorID:        in.AuthorID,
		ContentType:     in.ContentType,
		Title:           title,
		Description:     strings.TrimSpace(in.Description),
		Hashtags:        normalizeHashtags(in.Hashtags),
		IsPremium:       in.IsPremium,
		PremiumPrice:    in.PremiumPrice,
		IsActive:        true,
		PromotedTokenID: in.PromotedTokenID,
		IsOnChain:       in.IsOnChain,
	}
	if in.ContentType == models.ContentTypeVideo {
		content.Video = &models.Video{
			URL:          in.Video.URL,
			ThumbnailURL: in.Video.ThumbnailURL,
			Duration:     in.Video.Duration,
		}
	} else {
		content.Images = make([]models.ContentImage, 0, len(in.Images))
		for i, img := range in.Images {
			content.Images = append(content.Images, models.ContentImage{
				URL:        img.URL,
				Order:      i,
				StorageRef: img.StorageRef,
			})
		}
	}

	if err := s.contentRepo.Create(ctx, content); err != nil {
		return nil, err
	}
	return content, nil
}

// normalizeHashtags trims, strips the leading '#', lowercases, and dedupes
// while preserving order.
func normalizeHashtags(tags []string) models.HashtagList {
	seen := make(map[string]struct{}, len(tags))
	out := make(models.HashtagList, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(tag), "#"))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
