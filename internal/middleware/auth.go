// Package middleware provides authentication and request middleware for the application.
package middleware

import (
	"strings"
	"time"

	"github.com/0xvictorb/slide-alpha-sub000/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// Locals keys set by the auth middleware.
const (
	LocalsWallet = "wallet"
)

// InitMiddleware initializes authentication middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// IssueToken signs a JWT whose subject is the given wallet address.
func IssueToken(wallet string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   wallet,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// AuthRequired enforces authentication for protected routes. On success the
// caller's wallet address is stored in locals under LocalsWallet.
func AuthRequired(c *fiber.Ctx) error {
	wallet, err := walletFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	c.Locals(LocalsWallet, wallet)
	return c.Next()
}

// OptionalAuth extracts the caller's wallet when a valid token is present
// and continues anonymously otherwise. Used by endpoints like view counting
// where unauthenticated callers are legitimate.
func OptionalAuth(c *fiber.Ctx) error {
	if wallet, err := walletFromRequest(c); err == nil {
		c.Locals(LocalsWallet, wallet)
	}
	return c.Next()
}

func walletFromRequest(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Authorization header required")
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid authorization header format")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	subject, ok := claims["sub"].(string)
	if !ok || subject == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Invalid token structure - missing subject")
	}
	return subject, nil
}
