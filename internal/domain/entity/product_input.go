package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductInput entrada de stock (compra).
type ProductInput struct {
	ID            string
	ProductID     string
	Barcode       string
	Supplier      string
	PurchaseValue decimal.Decimal
	PurchaseDate  time.Time
	Quantity      int64
	Observations  string
	UserID        string
	Audit
}

func (p *ProductInput) GetID() string   { return p.ID }
func (p *ProductInput) SetID(id string) { p.ID = id }
