// Package auth resolves the current signed-in subject from a bearer JWT.
// Tokens are issued by the external identity provider; this service only
// verifies the signature and extracts the subject id.
package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const userIDKey = "auth_user_id"

var errUnexpectedSigning = errors.New("unexpected token signing method")

// New returns a middleware that rejects requests without a valid
// "Authorization: Bearer <token>" header and stores the token subject
// as the current user id.
func New(secret string, log *zap.Logger) fiber.Handler {
	key := []byte(secret)

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || raw == "" {
			return unauthorized(c)
		}

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errUnexpectedSigning
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			log.Debug("token rejected", zap.Error(err))
			return unauthorized(c)
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			return unauthorized(c)
		}

		c.Locals(userIDKey, sub)
		return c.Next()
	}
}

// UserID returns the current signed-in subject id, or false when the
// request carries no identity.
func UserID(c *fiber.Ctx) (string, bool) {
	id, ok := c.Locals(userIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{
		"error": "unauthorized",
	})
}
