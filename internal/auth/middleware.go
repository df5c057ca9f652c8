package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/hmanriquer/expensi-server/internal/respond"
	"github.com/hmanriquer/expensi-server/internal/user"
)

const principalKey = "principal"

// Principal is the authenticated identity attached to a request after the
// guard admits it.
type Principal struct {
	ID    int
	Name  string
	Email string
}

// Protect returns the access guard: it requires a "Bearer" token in the
// Authorization header, verifies it, and resolves the encoded id to a live
// user row before letting the request proceed.
func Protect(tokens *TokenManager, users user.Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		var raw string
		if strings.HasPrefix(header, "Bearer ") {
			raw = strings.TrimPrefix(header, "Bearer ")
		}
		if raw == "" {
			return respond.Fail(c, fiber.StatusUnauthorized,
				"You are not logged in! Please log in to get access.")
		}

		id, err := tokens.Verify(raw)
		if err != nil {
			return respond.Fail(c, fiber.StatusUnauthorized,
				"Invalid token. Please log in again.")
		}

		u, err := users.FindByID(c.Context(), id)
		if err != nil {
			return err
		}
		if u == nil {
			return respond.Fail(c, fiber.StatusUnauthorized,
				"The user belonging to this token does no longer exist.")
		}

		c.Locals(principalKey, Principal{ID: u.ID, Name: u.Name, Email: u.Email})
		return c.Next()
	}
}

// PrincipalFrom returns the authenticated principal attached by Protect,
// if any.
func PrincipalFrom(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey).(Principal)
	return p, ok
}
