package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tour-planning-service/internal/pkg/errors"
	"github.com/tour-planning-service/internal/pkg/utils"
)

const UserEmailKey = "user_email"

// RequireUser extracts the caller identity set by the API gateway. Requests
// without the header never reach a handler.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.Get("X-User-Email"))
		if email == "" {
			return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Missing X-User-Email header"))
		}
		c.Locals(UserEmailKey, email)
		return c.Next()
	}
}

// UserEmail reads the identity stored by RequireUser.
func UserEmail(c *fiber.Ctx) string {
	email, _ := c.Locals(UserEmailKey).(string)
	return email
}
