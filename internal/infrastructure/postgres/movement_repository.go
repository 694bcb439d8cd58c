package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/g-inventory/internal/domain/entity"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

var (
	_ repository.ProductInputRepository  = (*ProductInputRepo)(nil)
	_ repository.ProductOutputRepository = (*ProductOutputRepo)(nil)
)

const (
	inputColumns  = `id, product_id, barcode, supplier, purchase_value, purchase_date, quantity, observations, user_id, created_at, modified_at`
	outputColumns = `id, product_id, barcode, buyer, sale_value, sale_date, quantity, observations, user_id, created_at, modified_at`
)

// ProductInputRepo entradas de stock sobre PostgreSQL.
type ProductInputRepo struct {
	q Querier
}

func NewProductInputRepository(q Querier) *ProductInputRepo {
	return &ProductInputRepo{q: q}
}

func scanInput(row pgx.Row) (*entity.ProductInput, error) {
	var i entity.ProductInput
	err := row.Scan(&i.ID, &i.ProductID, &i.Barcode, &i.Supplier, &i.PurchaseValue, &i.PurchaseDate,
		&i.Quantity, &i.Observations, &i.UserID, &i.CreatedAt, &i.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ProductInputRepo) Create(ctx context.Context, i *entity.ProductInput) error {
	query := `
		INSERT INTO product_inputs (` + inputColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		i.ID, i.ProductID, i.Barcode, i.Supplier, i.PurchaseValue, i.PurchaseDate,
		i.Quantity, i.Observations, i.UserID, i.CreatedAt, i.ModifiedAt,
	)
	if err != nil {
		return writeError("insert product input", err)
	}
	return nil
}

func (r *ProductInputRepo) GetByID(ctx context.Context, id string) (*entity.ProductInput, error) {
	return queryOne(ctx, r.q, scanInput, "get product input",
		`SELECT `+inputColumns+` FROM product_inputs WHERE id = $1`, id)
}

func (r *ProductInputRepo) List(ctx context.Context) ([]*entity.ProductInput, error) {
	return queryAll(ctx, r.q, scanInput, "list product inputs",
		`SELECT `+inputColumns+` FROM product_inputs ORDER BY created_at, id`)
}

// ListByProduct todas las entradas de un producto (recalculo del nivel).
func (r *ProductInputRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductInput, error) {
	return queryAll(ctx, r.q, scanInput, "list product inputs by product",
		`SELECT `+inputColumns+` FROM product_inputs WHERE product_id = $1 ORDER BY created_at, id`, productID)
}

func (r *ProductInputRepo) Update(ctx context.Context, i *entity.ProductInput) error {
	query := `
		UPDATE product_inputs SET product_id = $2, barcode = $3, supplier = $4, purchase_value = $5,
			purchase_date = $6, quantity = $7, observations = $8, user_id = $9, modified_at = $10
		WHERE id = $1`
	return execOne(ctx, r.q, "update product input", query,
		i.ID, i.ProductID, i.Barcode, i.Supplier, i.PurchaseValue,
		i.PurchaseDate, i.Quantity, i.Observations, i.UserID, i.ModifiedAt,
	)
}

func (r *ProductInputRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete product input", `DELETE FROM product_inputs WHERE id = $1`, id)
}

// ProductOutputRepo salidas de stock sobre PostgreSQL.
type ProductOutputRepo struct {
	q Querier
}

func NewProductOutputRepository(q Querier) *ProductOutputRepo {
	return &ProductOutputRepo{q: q}
}

func scanOutput(row pgx.Row) (*entity.ProductOutput, error) {
	var o entity.ProductOutput
	err := row.Scan(&o.ID, &o.ProductID, &o.Barcode, &o.Buyer, &o.SaleValue, &o.SaleDate,
		&o.Quantity, &o.Observations, &o.UserID, &o.CreatedAt, &o.ModifiedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *ProductOutputRepo) Create(ctx context.Context, o *entity.ProductOutput) error {
	query := `
		INSERT INTO product_outputs (` + outputColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		o.ID, o.ProductID, o.Barcode, o.Buyer, o.SaleValue, o.SaleDate,
		o.Quantity, o.Observations, o.UserID, o.CreatedAt, o.ModifiedAt,
	)
	if err != nil {
		return writeError("insert product output", err)
	}
	return nil
}

func (r *ProductOutputRepo) GetByID(ctx context.Context, id string) (*entity.ProductOutput, error) {
	return queryOne(ctx, r.q, scanOutput, "get product output",
		`SELECT `+outputColumns+` FROM product_outputs WHERE id = $1`, id)
}

func (r *ProductOutputRepo) List(ctx context.Context) ([]*entity.ProductOutput, error) {
	return queryAll(ctx, r.q, scanOutput, "list product outputs",
		`SELECT `+outputColumns+` FROM product_outputs ORDER BY created_at, id`)
}

func (r *ProductOutputRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.ProductOutput, error) {
	return queryAll(ctx, r.q, scanOutput, "list product outputs by product",
		`SELECT `+outputColumns+` FROM product_outputs WHERE product_id = $1 ORDER BY created_at, id`, productID)
}

func (r *ProductOutputRepo) Update(ctx context.Context, o *entity.ProductOutput) error {
	query := `
		UPDATE product_outputs SET product_id = $2, barcode = $3, buyer = $4, sale_value = $5,
			sale_date = $6, quantity = $7, observations = $8, user_id = $9, modified_at = $10
		WHERE id = $1`
	return execOne(ctx, r.q, "update product output", query,
		o.ID, o.ProductID, o.Barcode, o.Buyer, o.SaleValue,
		o.SaleDate, o.Quantity, o.Observations, o.UserID, o.ModifiedAt,
	)
}

func (r *ProductOutputRepo) Delete(ctx context.Context, id string) error {
	return execOne(ctx, r.q, "delete product output", `DELETE FROM product_outputs WHERE id = $1`, id)
}
