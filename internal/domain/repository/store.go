package repository

import "context"

// Store puerto genérico de persistencia por tipo de entidad.
// GetByID devuelve (nil, nil) si no existe; Update y Delete devuelven domain.ErrNotFound.
type Store[T any] interface {
	Create(ctx context.Context, e *T) error
	GetByID(ctx context.Context, id string) (*T, error)
	List(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, e *T) error
	Delete(ctx context.Context, id string) error
}
