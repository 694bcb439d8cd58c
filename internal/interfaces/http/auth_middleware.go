package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/domain"
)

// LocalUser clave de c.Locals donde queda el *auth.UserContext.
const LocalUser = "user"

// AuthMiddleware valida el Bearer Token JWT y deja la identidad en c.Locals.
// Sin token o con token inválido responde 403; con token vencido, 401.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := auth.Authorize(jwtSecret, bearerToken(c), "")
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUser, user)
		return c.Next()
	}
}

// RequirePermission exige que el usuario autenticado tenga el permiso.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			return respondError(c, domain.ErrUnauthenticated)
		}
		if !user.Has(permission) {
			return respondError(c, domain.ErrForbidden)
		}
		return c.Next()
	}
}

func bearerToken(c *fiber.Ctx) string {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetUser devuelve la identidad del contexto (nil si no pasó por AuthMiddleware).
func GetUser(c *fiber.Ctx) *auth.UserContext {
	u, _ := c.Locals(LocalUser).(*auth.UserContext)
	return u
}

// GetUserID devuelve el UserID del contexto.
func GetUserID(c *fiber.Ctx) string {
	if u := GetUser(c); u != nil {
		return u.UserID
	}
	return ""
}
