package server

import (
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetFeed godoc
// @Summary Get a feed page
// @Description Returns one page of the content feed. With preferVideos=true pages are mixed at the configured video/image ratio; otherwise content is paged in plain recency order with a resumable cursor.
// @Tags feed
// @Produce json
// @Param numItems query int false "Page size" default(10)
// @Param cursor query string false "Continuation cursor from a previous page"
// @Param preferVideos query bool false "Mix videos and images at the configured ratio" default(true)
// @Param activeOnly query bool false "Only include active content" default(true)
// @Success 200 {object} service.FeedPage
// @Failure 400 {object} map[string]string
// @Router /feed [get]
func (s *Server) GetFeed(c *fiber.Ctx) error {
	numItems := c.QueryInt("numItems", 10)
	if numItems > maxPaginationLimit {
		numItems = maxPaginationLimit
	}

	page, err := s.feedService.GetPage(c.Context(), service.FeedPageOptions{
		NumItems:     numItems,
		Cursor:       service.FeedCursor(c.Query("cursor")),
		ActiveOnly:   c.QueryBool("activeOnly", true),
		PreferVideos: c.QueryBool("preferVideos", true),
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(page)
}

// SearchContent godoc
// @Summary Search content
// @Description Case-insensitive substring search over title, description, and hashtags. A query starting with '#' matches hashtags only. Pagination uses a numeric-offset cursor that is not interchangeable with the feed cursor.
// @Tags feed
// @Produce json
// @Param q query string true "Search query"
// @Param numItems query int false "Page size" default(10)
// @Param cursor query string false "Continuation cursor from a previous search page"
// @Success 200 {object} service.SearchPage
// @Failure 400 {object} map[string]string
// @Router /feed/search [get]
func (s *Server) SearchContent(c *fiber.Ctx) error {
	numItems := c.QueryInt("numItems", 10)
	if numItems > maxPaginationLimit {
		numItems = maxPaginationLimit
	}

	page, err := s.feedService.Search(
		c.Context(),
		c.Query("q"),
		numItems,
		service.SearchCursor(c.Query("cursor")),
		c.QueryBool("activeOnly", true),
	)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(page)
}

// GetContent godoc
// @Summary Get content by ID
// @Description Returns one content item with its author's wallet address.
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.ContentDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /content/{id} [get]
func (s *Server) GetContent(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	detail, err := s.feedService.GetByID(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if detail == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Content not found",
		})
	}
	return c.JSON(detail)
}
