package inventory

import (
	"context"
	"fmt"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// ProductInputUseCase CRUD de entradas de stock. Toda escritura recalcula el nivel del producto.
type ProductInputUseCase struct {
	crud     *usecase.CRUD[entity.ProductInput, *entity.ProductInput]
	products repository.ProductRepository
	alerts   *AlertEngine
}

// NewProductInputUseCase construye el caso de uso.
func NewProductInputUseCase(repo repository.ProductInputRepository, products repository.ProductRepository, alerts *AlertEngine) *ProductInputUseCase {
	return &ProductInputUseCase{
		crud:     usecase.NewCRUD[entity.ProductInput](repo),
		products: products,
		alerts:   alerts,
	}
}

func (uc *ProductInputUseCase) List(ctx context.Context) ([]dto.ProductInputResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromProductInput), nil
}

func (uc *ProductInputUseCase) GetByID(ctx context.Context, id string) (*dto.ProductInputResponse, error) {
	in, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProductInput(in)
	return &out, nil
}

// Create registra la entrada a nombre de userID y encola el aviso si aplica.
func (uc *ProductInputUseCase) Create(ctx context.Context, userID string, in dto.ProductInputRequest) (*dto.ProductInputResponse, error) {
	saved, err := uc.crud.Create(ctx, in, func() (*entity.ProductInput, error) {
		if err := ensureProduct(ctx, uc.products, in.ProductID); err != nil {
			return nil, err
		}
		e := &entity.ProductInput{UserID: userID}
		copyInput(e, in)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	uc.alerts.recompute(ctx, saved.ProductID)
	out := dto.FromProductInput(saved)
	return &out, nil
}

// Update reemplaza los campos editables; si cambia el producto se evalúan ambos.
func (uc *ProductInputUseCase) Update(ctx context.Context, id, userID string, in dto.ProductInputRequest) (*dto.ProductInputResponse, error) {
	var previous string
	saved, err := uc.crud.Update(ctx, id, in.ID, in, func(e *entity.ProductInput) error {
		if e.ProductID != in.ProductID {
			if err := ensureProduct(ctx, uc.products, in.ProductID); err != nil {
				return err
			}
		}
		previous = e.ProductID
		copyInput(e, in)
		e.UserID = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.alerts.recompute(ctx, saved.ProductID, previous)
	out := dto.FromProductInput(saved)
	return &out, nil
}

// Delete borra la entrada y recalcula el nivel del producto sin ella.
func (uc *ProductInputUseCase) Delete(ctx context.Context, id string) error {
	current, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.crud.Delete(ctx, id); err != nil {
		return err
	}
	uc.alerts.recompute(ctx, current.ProductID)
	return nil
}

func copyInput(e *entity.ProductInput, in dto.ProductInputRequest) {
	e.ProductID = in.ProductID
	e.Barcode = in.Barcode
	e.Supplier = in.Supplier
	e.PurchaseValue = in.PurchaseValue
	e.PurchaseDate = in.PurchaseDate
	e.Quantity = in.Quantity
	e.Observations = in.Observations
}

func ensureProduct(ctx context.Context, products repository.ProductRepository, id string) error {
	p, err := products.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("obtener producto: %w", err)
	}
	if p == nil {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
