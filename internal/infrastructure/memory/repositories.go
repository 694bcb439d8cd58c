package memory

import (
	"context"
	"time"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

var (
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.PermissionRepository    = (*PermissionRepo)(nil)
	_ repository.ProductRepository       = (*ProductRepo)(nil)
	_ repository.ProductInputRepository  = (*ProductInputRepo)(nil)
	_ repository.ProductOutputRepository = (*ProductOutputRepo)(nil)
	_ repository.ReportRepository        = (*ReportRepo)(nil)
	_ repository.ConfigurationRepository = (*ConfigurationRepo)(nil)
)

func createdAt(e interface{}) time.Time {
	switch v := e.(type) {
	case *entity.User:
		return v.CreatedAt
	case *entity.Permission:
		return v.CreatedAt
	case *entity.Product:
		return v.CreatedAt
	case *entity.ProductInput:
		return v.CreatedAt
	case *entity.ProductOutput:
		return v.CreatedAt
	case *entity.Report:
		return v.CreatedAt
	case *entity.Configuration:
		return v.CreatedAt
	}
	return time.Time{}
}

// UserRepo usuarios; Username es único.
type UserRepo struct {
	*Store[entity.User, *entity.User]
}

func NewUserRepository() *UserRepo {
	return &UserRepo{newStore[entity.User](
		(*entity.User).Clone,
		func(a, b *entity.User) bool { return a.Username == b.Username },
	)}
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.first(func(u *entity.User) bool { return u.Username == username }), nil
}

func (r *UserRepo) dropPermission(permissionID string) {
	r.each(func(u *entity.User) {
		kept := make([]string, 0, len(u.PermissionIDs))
		for _, id := range u.PermissionIDs {
			if id != permissionID {
				kept = append(kept, id)
			}
		}
		u.PermissionIDs = kept
	})
}

func (r *UserRepo) Count(_ context.Context) (int, error) {
	return r.Len(), nil
}

// PermissionRepo permisos; Description es única.
// Con users asignado, borrar un permiso lo quita de los usuarios (como el ON DELETE CASCADE de PostgreSQL).
type PermissionRepo struct {
	*Store[entity.Permission, *entity.Permission]
	users *UserRepo
}

func NewPermissionRepository() *PermissionRepo {
	return &PermissionRepo{Store: newStore[entity.Permission](nil,
		func(a, b *entity.Permission) bool { return a.Description == b.Description },
	)}
}

func (r *PermissionRepo) Delete(ctx context.Context, id string) error {
	if err := r.Store.Delete(ctx, id); err != nil {
		return err
	}
	if r.users != nil {
		r.users.dropPermission(id)
	}
	return nil
}

func (r *PermissionRepo) GetByDescription(_ context.Context, description string) (*entity.Permission, error) {
	return r.first(func(p *entity.Permission) bool { return p.Description == description }), nil
}

func (r *PermissionRepo) ListByIDs(_ context.Context, ids []string) ([]*entity.Permission, error) {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	return r.filter(func(p *entity.Permission) bool {
		_, ok := want[p.ID]
		return ok
	}), nil
}

type ProductRepo struct {
	*Store[entity.Product, *entity.Product]
}

func NewProductRepository() *ProductRepo {
	return &ProductRepo{newStore[entity.Product](nil, nil)}
}

type ProductInputRepo struct {
	*Store[entity.ProductInput, *entity.ProductInput]
}

func NewProductInputRepository() *ProductInputRepo {
	return &ProductInputRepo{newStore[entity.ProductInput](nil, nil)}
}

func (r *ProductInputRepo) ListByProduct(_ context.Context, productID string) ([]*entity.ProductInput, error) {
	return r.filter(func(i *entity.ProductInput) bool { return i.ProductID == productID }), nil
}

type ProductOutputRepo struct {
	*Store[entity.ProductOutput, *entity.ProductOutput]
}

func NewProductOutputRepository() *ProductOutputRepo {
	return &ProductOutputRepo{newStore[entity.ProductOutput](nil, nil)}
}

func (r *ProductOutputRepo) ListByProduct(_ context.Context, productID string) ([]*entity.ProductOutput, error) {
	return r.filter(func(o *entity.ProductOutput) bool { return o.ProductID == productID }), nil
}

type ReportRepo struct {
	*Store[entity.Report, *entity.Report]
}

func NewReportRepository() *ReportRepo {
	return &ReportRepo{newStore[entity.Report](nil, nil)}
}

// ConfigurationRepo configuraciones; Name es único.
type ConfigurationRepo struct {
	*Store[entity.Configuration, *entity.Configuration]
}

func NewConfigurationRepository() *ConfigurationRepo {
	return &ConfigurationRepo{newStore[entity.Configuration](nil,
		func(a, b *entity.Configuration) bool { return a.Name == b.Name },
	)}
}

func (r *ConfigurationRepo) GetByName(_ context.Context, name string) (*entity.Configuration, error) {
	return r.first(func(c *entity.Configuration) bool { return c.Name == name }), nil
}

// Repositories agrupa todos los repositorios en memoria.
type Repositories struct {
	Users          *UserRepo
	Permissions    *PermissionRepo
	Products       *ProductRepo
	Inputs         *ProductInputRepo
	Outputs        *ProductOutputRepo
	Reports        *ReportRepo
	Configurations *ConfigurationRepo
}

// NewRepositories crea un juego vacío de repositorios.
func NewRepositories() *Repositories {
	users := NewUserRepository()
	permissions := NewPermissionRepository()
	permissions.users = users
	return &Repositories{
		Users:          users,
		Permissions:    permissions,
		Products:       NewProductRepository(),
		Inputs:         NewProductInputRepository(),
		Outputs:        NewProductOutputRepository(),
		Reports:        NewReportRepository(),
		Configurations: NewConfigurationRepository(),
	}
}
