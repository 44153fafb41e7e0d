package service

import (
	"context"
	"math"
	"strings"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/observability"
	"github.com/0xvictorb/slide-alpha-sub000/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

// DefaultVideoRatio is the share of a mixed feed page reserved for videos.
const DefaultVideoRatio = 0.7

// FeedService composes paginated, ranked pages of mixed video and image
// content, and answers content lookups and search.
type FeedService struct {
	contentRepo repository.ContentRepository
	userRepo    repository.UserRepository
	videoRatio  float64
}

// NewFeedService returns a FeedService. videoRatio outside (0, 1] falls
// back to DefaultVideoRatio.
func NewFeedService(contentRepo repository.ContentRepository, userRepo repository.UserRepository, videoRatio float64) *FeedService {
	if videoRatio <= 0 || videoRatio > 1 {
		videoRatio = DefaultVideoRatio
	}
	return &FeedService{
		contentRepo: contentRepo,
		userRepo:    userRepo,
		videoRatio:  videoRatio,
	}
}

// FeedPageOptions are the inputs of GetPage.
type FeedPageOptions struct {
	NumItems     int
	Cursor       FeedCursor
	ActiveOnly   bool
	PreferVideos bool
}

// FeedPage is the standard list envelope of feed pagination.
type FeedPage struct {
	Page           []models.ContentSummary `json:"page"`
	IsDone         bool                    `json:"isDone"`
	ContinueCursor *FeedCursor             `json:"continueCursor"`
}

// GetPage returns one page of the feed. With PreferVideos set it mixes
// videos and images at the configured ratio; otherwise it pages over all
// content in plain recency order with a resumable cursor.
func (s *FeedService) GetPage(ctx context.Context, opts FeedPageOptions) (*FeedPage, error) {
	span, ctx := observability.NewSpan(ctx, "FeedService.GetPage")
	defer span.End()
	span.AddAttributes(
		attribute.Int("feed.num_items", opts.NumItems),
		attribute.Bool("feed.prefer_videos", opts.PreferVideos),
	)

	if opts.NumItems <= 0 {
		return nil, models.NewValidationError("numItems must be positive")
	}
	observability.LogServiceCall(ctx, "FeedService", "GetPage", map[string]interface{}{
		"num_items":     opts.NumItems,
		"prefer_videos": opts.PreferVideos,
	})

	if !opts.PreferVideos {
		page, err := s.recentPage(ctx, opts)
		if err != nil {
			span.SetError(err)
			observability.LogServiceError(ctx, "FeedService", "GetPage", err)
			return nil, err
		}
		observability.FeedPagesServed.WithLabelValues("recent").Inc()
		return page, nil
	}

	page, err := s.mixedPage(ctx, opts)
	if err != nil {
		span.SetError(err)
		observability.LogServiceError(ctx, "FeedService", "GetPage", err)
		return nil, err
	}
	observability.FeedPagesServed.WithLabelValues("mixed").Inc()
	return page, nil
}

// mixedPage runs the two-phase mix: fetch both kinds at their targets,
// evaluate shortfall, backfill at most one side, merge, truncate.
func (s *FeedService) mixedPage(ctx context.Context, opts FeedPageOptions) (*FeedPage, error) {
	videoTarget := int(math.Ceil(s.videoRatio * float64(opts.NumItems)))
	if videoTarget > opts.NumItems {
		videoTarget = opts.NumItems
	}
	imageTarget := opts.NumItems - videoTarget

	videos, err := s.contentRepo.ListRecent(ctx, models.ContentTypeVideo, opts.ActiveOnly, videoTarget)
	if err != nil {
		return nil, err
	}
	images, err := s.contentRepo.ListRecent(ctx, models.ContentTypeImages, opts.ActiveOnly, imageTarget)
	if err != nil {
		return nil, err
	}

	// Single-direction backfill. The video-shortfall branch is evaluated
	// first, against the ORIGINAL image fetch; when it fires, the image
	// shortfall is not considered in the same pass.
	switch {
	case len(videos) < videoTarget:
		shortfall := videoTarget - len(videos)
		images, err = s.contentRepo.ListRecent(ctx, models.ContentTypeImages, opts.ActiveOnly, imageTarget+shortfall)
		if err != nil {
			return nil, err
		}
		observability.FeedBackfills.WithLabelValues("images").Inc()
	case len(images) < imageTarget:
		shortfall := imageTarget - len(images)
		videos, err = s.contentRepo.ListRecent(ctx, models.ContentTypeVideo, opts.ActiveOnly, videoTarget+shortfall)
		if err != nil {
			return nil, err
		}
		observability.FeedBackfills.WithLabelValues("videos").Inc()
	}

	// Two sorted runs concatenated: all videos (recency desc), then all
	// images (recency desc). Not a global interleave.
	combined := make([]*models.Content, 0, len(videos)+len(images))
	combined = append(combined, videos...)
	combined = append(combined, images...)

	// Done means the sources ran dry before the truncation, not that the
	// returned page happens to be short.
	isDone := len(combined) < opts.NumItems
	if len(combined) > opts.NumItems {
		combined = combined[:opts.NumItems]
	}

	page := &FeedPage{
		Page:   s.enrich(ctx, combined),
		IsDone: isDone,
	}
	if !isDone {
		cursor := NewMixCursor()
		page.ContinueCursor = &cursor
	}
	return page, nil
}

// recentPage pages over all content in recency order using a resumable
// keyset cursor.
func (s *FeedService) recentPage(ctx context.Context, opts FeedPageOptions) (*FeedPage, error) {
	after := opts.Cursor.Keyset()

	// Fetch one extra row to learn whether another page exists.
	contents, err := s.contentRepo.ListPage(ctx, opts.ActiveOnly, opts.NumItems+1, after)
	if err != nil {
		return nil, err
	}

	isDone := len(contents) <= opts.NumItems
	if !isDone {
		contents = contents[:opts.NumItems]
	}

	page := &FeedPage{
		Page:   s.enrich(ctx, contents),
		IsDone: isDone,
	}
	if !isDone {
		last := contents[len(contents)-1]
		cursor := NewKeysetCursor(repository.Keyset{CreatedAt: last.CreatedAt, ID: last.ID})
		page.ContinueCursor = &cursor
	}
	return page, nil
}

// GetByID returns one content item enriched with the author's wallet
// address, or nil when the id does not exist.
func (s *FeedService) GetByID(ctx context.Context, id uint) (*models.ContentDetail, error) {
	content, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	detail := &models.ContentDetail{Content: *content}
	author, err := s.userRepo.GetByID(ctx, content.AuthorID)
	if err != nil {
		return nil, err
	}
	if author != nil {
		detail.AuthorWallet = author.WalletAddress
	}
	return detail, nil
}

// SearchPage is the list envelope of search pagination. Its cursor is a
// numeric offset string, not interchangeable with the feed cursor.
type SearchPage struct {
	Page           []models.ContentSummary `json:"page"`
	IsDone         bool                    `json:"isDone"`
	ContinueCursor *SearchCursor           `json:"continueCursor"`
}

// Search scans content for a case-insensitive substring match. A query
// starting with '#' matches hashtags only (hash stripped); otherwise the
// query OR-matches title, description, and hashtags.
func (s *FeedService) Search(ctx context.Context, query string, numItems int, cursor SearchCursor, activeOnly bool) (*SearchPage, error) {
	span, ctx := observability.NewSpan(ctx, "FeedService.Search")
	defer span.End()

	if numItems <= 0 {
		return nil, models.NewValidationError("numItems must be positive")
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, models.NewValidationError("search query is required")
	}

	contents, err := s.contentRepo.ListAll(ctx, activeOnly)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	hashtagOnly := strings.HasPrefix(query, "#")
	needle := strings.ToLower(strings.TrimPrefix(query, "#"))

	filtered := make([]*models.Content, 0, len(contents))
	for _, c := range contents {
		if matchesQuery(c, needle, hashtagOnly) {
			filtered = append(filtered, c)
		}
	}

	offset := cursor.Offset()
	end := offset + numItems
	if end > len(filtered) {
		end = len(filtered)
	}
	start := offset
	if start > len(filtered) {
		start = len(filtered)
	}

	isDone := end >= len(filtered)
	page := &SearchPage{
		Page:   s.enrich(ctx, filtered[start:end]),
		IsDone: isDone,
	}
	if !isDone {
		next := SearchCursorFrom(end)
		page.ContinueCursor = &next
	}
	return page, nil
}

func matchesQuery(c *models.Content, needle string, hashtagOnly bool) bool {
	for _, tag := range c.Hashtags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	if hashtagOnly {
		return false
	}
	return strings.Contains(strings.ToLower(c.Title), needle) ||
		strings.Contains(strings.ToLower(c.Description), needle)
}

// enrich resolves denormalized author fields for each page item. A missing
// author is tolerated: the item ships with empty author fields.
func (s *FeedService) enrich(ctx context.Context, contents []*models.Content) []models.ContentSummary {
	summaries := make([]models.ContentSummary, 0, len(contents))
	for _, c := range contents {
		summary := models.ContentSummary{
			ID:          c.ID,
			AuthorID:    c.AuthorID,
			ContentType: c.ContentType,
			Video:       c.Video,
			Images:      c.Images,
			Title:       c.Title,
			Description: c.Description,
			Hashtags:    c.Hashtags,
			IsPremium:   c.IsPremium,
			ViewCount:   c.ViewCount,
			CreatedAt:   c.CreatedAt,
		}
		author, err := s.userRepo.GetByID(ctx, c.AuthorID)
		if err == nil && author != nil {
			summary.AuthorWallet = author.WalletAddress
			summary.AuthorName = author.Name
			summary.AuthorAvatarURL = author.AvatarURL
		}
		summaries = append(summaries, summary)
	}
	return summaries
}
