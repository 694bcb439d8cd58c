package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
	"github.com/jhoicas/g-inventory/pkg/jwt"
	"github.com/jhoicas/g-inventory/pkg/validation"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UserContext identidad autenticada extraída del token.
type UserContext struct {
	UserID      string
	Username    string
	Permissions map[string]struct{}
}

// Has indica si el usuario tiene el permiso.
func (u *UserContext) Has(permission string) bool {
	_, ok := u.Permissions[permission]
	return ok
}

// AuthUseCase autenticación por usuario/contraseña y autorización por permisos.
type AuthUseCase struct {
	userRepo       repository.UserRepository
	permissionRepo repository.PermissionRepository
	jwtCfg         JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, permissionRepo repository.PermissionRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, permissionRepo: permissionRepo, jwtCfg: jwtCfg}
}

// Authenticate verifica credenciales y emite un token con los nombres de permisos del usuario.
// Usuario inexistente, contraseña incorrecta o usuario DEACTIVE devuelven ErrInvalidCredentials.
func (uc *AuthUseCase) Authenticate(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	user, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return nil, fmt.Errorf("auth: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive() {
		return nil, domain.ErrInvalidCredentials
	}

	perms, err := uc.permissionRepo.ListByIDs(ctx, user.PermissionIDs)
	if err != nil {
		return nil, fmt.Errorf("auth: obtener permisos: %w", err)
	}
	names := make([]string, 0, len(perms))
	for _, p := range perms {
		names = append(names, p.Description)
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, names, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, UserID: user.ID}, nil
}

// Authorize valida el token y, si required no está vacío, exige ese permiso.
func (uc *AuthUseCase) Authorize(token, required string) (*UserContext, error) {
	return Authorize(uc.jwtCfg.Secret, token, required)
}

// Authorize es la versión sin estado usada por el middleware HTTP.
func Authorize(secret, token, required string) (*UserContext, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}
	claims, err := jwt.Parse(secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrUnauthenticated
	}
	uctx := &UserContext{
		UserID:      claims.UserID,
		Username:    claims.Username,
		Permissions: make(map[string]struct{}, len(claims.Permissions)),
	}
	for _, p := range claims.Permissions {
		uctx.Permissions[p] = struct{}{}
	}
	if required != "" && !uctx.Has(required) {
		return nil, domain.ErrForbidden
	}
	return uctx, nil
}
