package server

import (
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"
	"github.com/0xvictorb/slide-alpha-sub000/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateContentRequest is the body of POST /content.
type CreateContentRequest struct {
	ContentType     string               `json:"contentType"`
	Video           *service.VideoInput  `json:"video,omitempty"`
	Images          []service.ImageInput `json:"images,omitempty"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	Hashtags        []string             `json:"hashtags"`
	IsPremium       bool                 `json:"isPremium"`
	PremiumPrice    float64              `json:"premiumPrice"`
	PromotedTokenID string               `json:"promotedTokenId"`
	IsOnChain       bool                 `json:"isOnChain"`
}

// CreateContent godoc
// @Summary Create a content post
// @Description Creates a video or image post for the authenticated wallet. Premium posts require a positive price and enough followers.
// @Tags content
// @Accept json
// @Produce json
// @Param request body CreateContentRequest true "Content payload"
// @Success 201 {object} models.Content
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /content [post]
func (s *Server) CreateContent(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	var req CreateContentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	content, err := s.contentService.Create(c.Context(), service.CreateContentInput{
		AuthorID:        user.ID,
		ContentType:     models.ContentType(req.ContentType),
		Video:           req.Video,
		Images:          req.Images,
		Title:           req.Title,
		Description:     req.Description,
		Hashtags:        req.Hashtags,
		IsPremium:       req.IsPremium,
		PremiumPrice:    req.PremiumPrice,
		PromotedTokenID: req.PromotedTokenID,
		IsOnChain:       req.IsOnChain,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(content)
}

// GetContentStats godoc
// @Summary Get engagement stats for a content item
// @Description Returns view count, like and dislike counts, and the last view timestamp.
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} models.ContentStats
// @Failure 404 {object} map[string]string
// @Router /content/{id}/stats [get]
func (s *Server) GetContentStats(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	stats, err := s.engagementService.GetStats(c.Context(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(stats)
}
