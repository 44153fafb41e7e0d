package server

import (
	"strconv"
	"strings"

	"github.com/0xvictorb/slide-alpha-sub000/internal/middleware"
	"github.com/0xvictorb/slide-alpha-sub000/internal/models"

	"github.com/gofiber/fiber/v2"
)

const maxPaginationLimit = 100

// errResponseWritten signals that the helper already wrote an error response
// and the handler should return nil.
var errResponseWritten = fiber.NewError(fiber.StatusTeapot, "response written")

// parseID reads a positive integer path parameter. On failure it writes a
// 400 response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid " + humanizeParam(param),
		})
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// parsePagination reads limit and offset query params with sane bounds.
func parsePagination(c *fiber.Ctx, defaultLimit int) (limit, offset int) {
	limit = c.QueryInt("limit", defaultLimit)
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPaginationLimit {
		limit = maxPaginationLimit
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// humanizeParam turns "commentId" into "comment id" for error messages.
func humanizeParam(param string) string {
	var b strings.Builder
	for i, r := range param {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// requireUser resolves the authenticated wallet to a user record, creating
// the directory entry on first sight. Writes the error response itself.
func (s *Server) requireUser(c *fiber.Ctx) (*models.User, error) {
	wallet, _ := c.Locals(middleware.LocalsWallet).(string)
	if wallet == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
		return nil, errResponseWritten
	}
	user, err := s.userService.GetOrCreateByWallet(c.Context(), wallet)
	if err != nil {
		_ = models.RespondWithError(c, err)
		return nil, errResponseWritten
	}
	return user, nil
}

// viewerWallet returns the authenticated wallet if present, else "".
func viewerWallet(c *fiber.Ctx) string {
	wallet, _ := c.Locals(middleware.LocalsWallet).(string)
	return wallet
}
