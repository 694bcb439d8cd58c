package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	crud        *CRUD[entity.User, *entity.User]
	permissions repository.PermissionRepository
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia.
func NewUserUseCase(repo repository.UserRepository, permissions repository.PermissionRepository) *UserUseCase {
	return &UserUseCase{crud: NewCRUD[entity.User](repo), permissions: permissions}
}

func (uc *UserUseCase) List(ctx context.Context) ([]dto.UserResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromUser), nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// Create hashea la contraseña con bcrypt y persiste. La contraseña es obligatoria en el alta.
func (uc *UserUseCase) Create(ctx context.Context, in dto.UserRequest) (*dto.UserResponse, error) {
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "required")
	}
	u, err := uc.crud.Create(ctx, in, func() (*entity.User, error) {
		u := &entity.User{}
		if err := uc.apply(ctx, u, in); err != nil {
			return nil, err
		}
		return u, nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

// Update reemplaza nombre, rol, usuario, estado y permisos. Password vacío conserva el hash actual.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UserRequest) (*dto.UserResponse, error) {
	u, err := uc.crud.Update(ctx, id, in.ID, in, func(u *entity.User) error {
		return uc.apply(ctx, u, in)
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromUser(u)
	return &out, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.crud.Delete(ctx, id)
}

func (uc *UserUseCase) apply(ctx context.Context, u *entity.User, in dto.UserRequest) error {
	ids := dedupe(in.PermissionIDs)
	if len(ids) > 0 {
		found, err := uc.permissions.ListByIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(found) != len(ids) {
			return domain.NewValidationError("permissionIds", "exists")
		}
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return domain.NewValidationError("password", "bcryptlen")
		}
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		u.PasswordHash = string(hash)
	}
	u.Name = in.Name
	u.Role = in.Role
	u.Username = in.Username
	u.Status = in.Status
	u.PermissionIDs = ids
	return nil
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
