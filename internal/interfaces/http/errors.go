package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
)

// Mensajes visibles para el cliente.
const (
	msgInvalidData        = "Invalid data."
	msgIdentityMismatch   = "IDs must be the same in path and body."
	msgTokenExpired       = "Token expired."
	msgInvalidCredentials = "Invalid username or password."
)

// respondError traduce errores de dominio a la respuesta HTTP.
// ErrForbidden responde 403 sin cuerpo; lo desconocido se registra y responde 500 genérico.
func respondError(c *fiber.Ctx, err error) error {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", msgInvalidData, verr.Fields)
	case errors.Is(err, domain.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION", msgInvalidData, nil)
	case errors.Is(err, domain.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "Resource not found.", nil)
	case errors.Is(err, domain.ErrIdentityMismatch):
		return writeError(c, fiber.StatusUnprocessableEntity, "ID_MISMATCH", msgIdentityMismatch, nil)
	case errors.Is(err, domain.ErrDuplicate):
		return writeError(c, fiber.StatusConflict, "DUPLICATE", "Resource already exists.", nil)
	case errors.Is(err, domain.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "Resource is in use.", nil)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return writeError(c, fiber.StatusForbidden, "INVALID_CREDENTIALS", msgInvalidCredentials, nil)
	case errors.Is(err, domain.ErrTokenExpired):
		return writeError(c, fiber.StatusUnauthorized, "TOKEN_EXPIRED", msgTokenExpired, nil)
	case errors.Is(err, domain.ErrUnauthenticated):
		return writeError(c, fiber.StatusForbidden, "UNAUTHENTICATED", "Authentication required.", nil)
	case errors.Is(err, domain.ErrForbidden):
		// sin cuerpo: SendStatus escribiría "Forbidden"
		return c.Status(fiber.StatusForbidden).Send(nil)
	default:
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL", "Internal server error.", nil)
	}
}

func writeError(c *fiber.Ctx, status int, code, message string, fields map[string]string) error {
	return c.Status(status).JSON(dto.ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Fields:  fields,
	})
}

// invalidBody respuesta para cuerpos que no se pueden decodificar.
func invalidBody(c *fiber.Ctx) error {
	return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", msgInvalidData, nil)
}

// ErrorHandler manejador global de Fiber: *fiber.Error conserva su código, el resto pasa por respondError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ferr *fiber.Error
	if errors.As(err, &ferr) {
		return writeError(c, ferr.Code, "HTTP_ERROR", ferr.Message, nil)
	}
	return respondError(c, err)
}
