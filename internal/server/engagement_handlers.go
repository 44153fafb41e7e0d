package server

import (
	"errors"

	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ToggleLikeRequest is the body of POST /content/{id}/like.
type ToggleLikeRequest struct {
	Kind string `json:"kind"`
}

// ToggleLikeResponse reports the reaction state after a toggle. Kind is
// nil when the toggle removed the reaction.
type ToggleLikeResponse struct {
	Kind *models.LikeKind `json:"kind"`
}

// ToggleLike godoc
// @Summary Toggle a like or dislike
// @Description Applies the three-state toggle: no reaction sets the given kind, the same kind removes it, the opposite kind switches it.
// @Tags engagement
// @Accept json
// @Produce json
// @Param id path int true "Content ID"
// @Param request body ToggleLikeRequest true "Reaction kind: like or dislike"
// @Success 200 {object} ToggleLikeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Security BearerAuth
// @Router /content/{id}/like [post]
func (s *Server) ToggleLike(c *fiber.Ctx) error {
	user, err := s.requireUser(c)
	if err != nil {
		return nil
	}
	id, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	var req ToggleLikeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	kind, err := s.engagementService.ToggleLike(c.Context(), id, user.ID, models.LikeKind(req.Kind))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(ToggleLikeResponse{Kind: kind})
}

// RecordView godoc
// @Summary Record a content view
// @Description Counts a view unless the same viewer saw this content within the cooldown window. Anonymous viewers share a single cooldown bucket.
// @Tags engagement
// @Produce json
// @Param id path int true "Content ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /content/{id}/view [post]
func (s *Server) RecordView(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		if errors.Is(err, errResponseWritten) {
			return nil
		}
		return err
	}

	if err := s.engagementService.IncrementView(c.Context(), id, viewerWallet(c)); err != nil {
		return models.RespondWithError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
