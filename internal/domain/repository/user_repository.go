package repository

import (
	"context"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Store[entity.User]
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}

// PermissionRepository define el puerto de persistencia para Permission.
type PermissionRepository interface {
	Store[entity.Permission]
	GetByDescription(ctx context.Context, description string) (*entity.Permission, error)
	ListByIDs(ctx context.Context, ids []string) ([]*entity.Permission, error)
}
