package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrIdentityMismatch   = errors.New("el id de la ruta y del cuerpo no coinciden")
	ErrValidation         = errors.New("datos inválidos")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrTokenExpired       = errors.New("token expirado")
	ErrInvalidCredentials = errors.New("usuario o contraseña inválidos")
	ErrDelivery           = errors.New("no se pudo entregar el aviso")
)

// ValidationError detalla los campos que fallaron. Es un ErrValidation para errors.Is.
type ValidationError struct {
	Fields map[string]string // campo -> regla incumplida
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s:%s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s (%s)", ErrValidation.Error(), strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError de un solo campo.
func NewValidationError(field, rule string) error {
	return &ValidationError{Fields: map[string]string{field: rule}}
}
