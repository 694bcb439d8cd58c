package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, description, type, inventory_minimum, inventory_maximum, observations, user_id, created_at, modified_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.Description, &p.Type, &p.InventoryMinimum, &p.InventoryMaximum,
		&p.Observations, &p.UserID, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Description, p.Type, p.InventoryMinimum, p.InventoryMaximum,
		p.Observations, p.UserID, p.CreatedAt, p.ModifiedAt,
	)
	if err != nil {
		return writeError("insert product", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	return queryOne(ctx, r.q, scanProduct, "get product",
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
}

func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	return queryAll(ctx, r.q, scanProduct, "list products",
		`SELECT `+productColumns+` FROM products ORDER BY created_at, id`)
}

func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE products SET description = $2, type = $3, inventory_minimum = $4, inventory_maximum = $5,
			observations = $6, user_id = $7, modified_at = $8
		WHERE id = $1`
	return execOne(ctx, r.q, "update product", query,
		p.ID, p.Description, p.Type, p.InventoryMinimum, p.InventoryMaximum,
		p.Observations, p.UserID, p.ModifiedAt,
	)
}

func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete product", `DELETE FROM products WHERE id = $1`, id)
}
