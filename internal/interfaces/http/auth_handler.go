package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signing godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/v1/auth/signing [post]
func (h *AuthHandler) Signing(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondError(c, domain.ErrInvalidCredentials)
	}
	out, err := h.uc.Authenticate(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
