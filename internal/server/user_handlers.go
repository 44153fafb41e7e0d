package server

import (
	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUser godoc
// @Summary Get a user by wallet address
// @Tags users
// @Produce json
// @Param wallet path string true "Wallet address"
// @Success 200 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{wallet} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userService.GetByWallet(c.Context(), c.Params("wallet"))
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(user)
}

// ToggleFollowResponse reports the edge state after a toggle.
type ToggleFollowResponse struct {
	Following bool `json:"following"`
}

// ToggleFollow godoc
// @Summary Toggle following a user
// @Description Follows the target if no edge exists, unfollows otherwise. Both users' denormalized counters move together in one transaction.
// @Tags users
// @Produce json
// @Param wallet path string true "Target wallet address"
// @Success 200 {object} ToggleFollowResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{wallet}/follow [post]
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	follower, err := s.requireUser(c)
	if err != nil {
		return nil
	}

	target, err := s.userService.GetByWallet(c.Context(), c.Params("wallet"))
	if err != nil {
		return models.RespondWithError(c, err)
	}

	following, err := s.socialService.ToggleFollow(c.Context(), follower.ID, target.ID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return c.JSON(ToggleFollowResponse{Following: following})
}
