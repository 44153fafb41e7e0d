package server

import (
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/middleware"
	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

const tokenTTL = 24 * time.Hour

// WalletLoginRequest is the body of POST /auth/wallet.
type WalletLoginRequest struct {
	Wallet string `json:"wallet"`
}

// WalletLoginResponse carries the signed token and the resolved user.
type WalletLoginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// WalletLogin godoc
// @Summary Authenticate with a wallet address
// @Description Validates the wallet address checksum, creates the user's directory entry on first sight, and returns a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body WalletLoginRequest true "Wallet address"
// @Success 200 {object} WalletLoginResponse
// @Failure 400 {object} map[string]string
// @Router /auth/wallet [post]
func (s *Server) WalletLogin(c *fiber.Ctx) error {
	var req WalletLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	user, err := s.userService.GetOrCreateByWallet(c.Context(), req.Wallet)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	token, err := middleware.IssueToken(user.WalletAddress, tokenTTL)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return c.JSON(WalletLoginResponse{Token: token, User: user})
}
