package repository

import (
	"context"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Store[entity.Product]
}

// ProductInputRepository entradas de stock, consultables por producto.
type ProductInputRepository interface {
	Store[entity.ProductInput]
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductInput, error)
}

// ProductOutputRepository salidas de stock, consultables por producto.
type ProductOutputRepository interface {
	Store[entity.ProductOutput]
	ListByProduct(ctx context.Context, productID string) ([]*entity.ProductOutput, error)
}
