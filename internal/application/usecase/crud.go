package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
	"github.com/jhoicas/g-inventory/pkg/validation"
)

// RecordPtr restringe P al puntero de una entidad persistible.
type RecordPtr[T any] interface {
	*T
	entity.Record
}

// CRUD operaciones comunes sobre un Store. Cada caso de uso aporta solo la copia de campos.
type CRUD[T any, P RecordPtr[T]] struct {
	store repository.Store[T]
	now   func() time.Time
}

// NewCRUD construye el servicio genérico.
func NewCRUD[T any, P RecordPtr[T]](store repository.Store[T]) *CRUD[T, P] {
	return &CRUD[T, P]{store: store, now: time.Now}
}

// FindAll lista todas las entidades.
func (c *CRUD[T, P]) FindAll(ctx context.Context) ([]*T, error) {
	return c.store.List(ctx)
}

// FindByID devuelve domain.ErrNotFound si no existe.
func (c *CRUD[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	e, err := c.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

// Create valida payload, construye la entidad con build, le asigna id nuevo y fechas, y persiste.
// El id que traiga el cliente se ignora.
func (c *CRUD[T, P]) Create(ctx context.Context, payload interface{}, build func() (*T, error)) (*T, error) {
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}
	e, err := build()
	if err != nil {
		return nil, err
	}
	P(e).SetID(uuid.New().String())
	P(e).MarkCreated(c.now())
	if err := c.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Update carga la entidad, exige que payloadID coincida con id, valida, aplica apply y persiste.
// La comprobación de identidad va antes de la validación.
func (c *CRUD[T, P]) Update(ctx context.Context, id, payloadID string, payload interface{}, apply func(current *T) error) (*T, error) {
	current, err := c.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if payloadID != id {
		return nil, domain.ErrIdentityMismatch
	}
	if err := validation.Struct(payload); err != nil {
		return nil, err
	}
	if err := apply(current); err != nil {
		return nil, err
	}
	P(current).MarkModified(c.now())
	if err := c.store.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Delete borra físicamente; domain.ErrNotFound si no existe.
func (c *CRUD[T, P]) Delete(ctx context.Context, id string) error {
	return c.store.Delete(ctx, id)
}
