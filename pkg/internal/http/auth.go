package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
	"github.com/th41ng/SocialNetwork/pkg/internal/security"
	"github.com/th41ng/SocialNetwork/pkg/internal/services"
)

// authMiddleware resolves the bearer token into an account and parks it in
// the request locals. It never rejects by itself; handlers decide whether
// authentication is required.
func authMiddleware(c *fiber.Ctx) error {
	raw := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(raw, "Bearer ") {
		raw = strings.TrimPrefix(raw, "Bearer ")
	} else {
		raw = c.Cookies("access_token", c.Query("tk"))
	}
	if len(raw) == 0 {
		return c.Next()
	}

	accountId, err := security.ReadToken(viper.GetString("security.jwt_secret"), raw)
	if err != nil {
		return c.Next()
	}

	user, err := services.GetAccount(accountId)
	if err != nil || user.Suspended {
		return c.Next()
	}

	c.Locals("user", user)
	return c.Next()
}
