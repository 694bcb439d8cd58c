package inventory

import (
	"context"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// ProductOutputUseCase CRUD de salidas de stock. Toda escritura recalcula el nivel del producto.
type ProductOutputUseCase struct {
	crud     *usecase.CRUD[entity.ProductOutput, *entity.ProductOutput]
	products repository.ProductRepository
	alerts   *AlertEngine
}

// NewProductOutputUseCase construye el caso de uso.
func NewProductOutputUseCase(repo repository.ProductOutputRepository, products repository.ProductRepository, alerts *AlertEngine) *ProductOutputUseCase {
	return &ProductOutputUseCase{
		crud:     usecase.NewCRUD[entity.ProductOutput](repo),
		products: products,
		alerts:   alerts,
	}
}

func (uc *ProductOutputUseCase) List(ctx context.Context) ([]dto.ProductOutputResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromProductOutput), nil
}

func (uc *ProductOutputUseCase) GetByID(ctx context.Context, id string) (*dto.ProductOutputResponse, error) {
	in, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProductOutput(in)
	return &out, nil
}

// Create registra la salida a nombre de userID y encola el aviso si aplica.
func (uc *ProductOutputUseCase) Create(ctx context.Context, userID string, in dto.ProductOutputRequest) (*dto.ProductOutputResponse, error) {
	saved, err := uc.crud.Create(ctx, in, func() (*entity.ProductOutput, error) {
		if err := ensureProduct(ctx, uc.products, in.ProductID); err != nil {
			return nil, err
		}
		e := &entity.ProductOutput{UserID: userID}
		copyOutput(e, in)
		return e, nil
	})
	if err != nil {
		return nil, err
	}
	uc.alerts.recompute(ctx, saved.ProductID)
	out := dto.FromProductOutput(saved)
	return &out, nil
}

// Update reemplaza los campos editables; si cambia el producto se evalúan ambos.
func (uc *ProductOutputUseCase) Update(ctx context.Context, id, userID string, in dto.ProductOutputRequest) (*dto.ProductOutputResponse, error) {
	var previous string
	saved, err := uc.crud.Update(ctx, id, in.ID, in, func(e *entity.ProductOutput) error {
		if e.ProductID != in.ProductID {
			if err := ensureProduct(ctx, uc.products, in.ProductID); err != nil {
				return err
			}
		}
		previous = e.ProductID
		copyOutput(e, in)
		e.UserID = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.alerts.recompute(ctx, saved.ProductID, previous)
	out := dto.FromProductOutput(saved)
	return &out, nil
}

// Delete borra la salida y recalcula el nivel del producto sin ella.
func (uc *ProductOutputUseCase) Delete(ctx context.Context, id string) error {
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

func copyOutput(e *entity.ProductOutput, in dto.ProductOutputRequest) {
	e.ProductID = in.ProductID
	e.Barcode = in.Barcode
	e.Buyer = in.Buyer
	e.SaleValue = in.SaleValue
	e.SaleDate = in.SaleDate
	e.Quantity = in.Quantity
	e.Observations = in.Observations
}
