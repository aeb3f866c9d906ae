package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/utils"
	"github.com/travel-admin/internal/usecase"
)

const sessionKey = "session"

// RequireAuth guards management routes behind a valid bearer token.
func RequireAuth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		session, err := authUC.Authenticate(c.Context(), token)
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(sessionKey, session)
		return c.Next()
	}
}
