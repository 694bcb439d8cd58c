package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// ProductUseCase CRUD de productos más sus movimientos y nivel.
type ProductUseCase struct {
	crud    *CRUD[entity.Product, *entity.Product]
	repo    repository.ProductRepository
	inputs  repository.ProductInputRepository
	outputs repository.ProductOutputRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, inputs repository.ProductInputRepository, outputs repository.ProductOutputRepository) *ProductUseCase {
	return &ProductUseCase{
		crud:    NewCRUD[entity.Product](repo),
		repo:    repo,
		inputs:  inputs,
		outputs: outputs,
	}
}

func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.crud.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromProduct), nil
}

func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Create crea el producto a nombre de userID.
func (uc *ProductUseCase) Create(ctx context.Context, userID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.crud.Create(ctx, in, func() (*entity.Product, error) {
		p := &entity.Product{UserID: userID}
		copyProduct(p, in)
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Update reemplaza los campos editables; el usuario siempre es el autenticado.
func (uc *ProductUseCase) Update(ctx context.Context, id, userID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	p, err := uc.crud.Update(ctx, id, in.ID, in, func(p *entity.Product) error {
		copyProduct(p, in)
		p.UserID = userID
		return nil
	})
	if err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Delete falla con ErrConflict si el producto aún tiene movimientos.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.crud.FindByID(ctx, id); err != nil {
		return err
	}
	ins, err := uc.inputs.ListByProduct(ctx, id)
	if err != nil {
		return err
	}
	outs, err := uc.outputs.ListByProduct(ctx, id)
	if err != nil {
		return err
	}
	if len(ins) > 0 || len(outs) > 0 {
		return fmt.Errorf("producto con movimientos: %w", domain.ErrConflict)
	}
	return uc.crud.Delete(ctx, id)
}

// Inputs historial de entradas del producto.
func (uc *ProductUseCase) Inputs(ctx context.Context, id string) ([]dto.ProductInputResponse, error) {
	if _, err := uc.crud.FindByID(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.inputs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromProductInput), nil
}

// Outputs historial de salidas del producto.
func (uc *ProductUseCase) Outputs(ctx context.Context, id string) ([]dto.ProductOutputResponse, error) {
	if _, err := uc.crud.FindByID(ctx, id); err != nil {
		return nil, err
	}
	list, err := uc.outputs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.MapList(list, dto.FromProductOutput), nil
}

// Level calcula el nivel actual del producto desde sus movimientos.
func (uc *ProductUseCase) Level(ctx context.Context, id string) (*dto.InventoryLevelResponse, error) {
	p, err := uc.crud.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ins, err := uc.inputs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	outs, err := uc.outputs.ListByProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromInventoryLevel(inventory.Snapshot(p, ins, outs))
	return &out, nil
}

func copyProduct(p *entity.Product, in dto.ProductRequest) {
	p.Description = in.Description
	p.Type = in.Type
	p.InventoryMinimum = in.InventoryMinimum
	p.InventoryMaximum = in.InventoryMaximum
	p.Observations = in.Observations
}
