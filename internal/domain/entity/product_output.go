package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductOutput salida de stock (venta).
type ProductOutput struct {
	ID           string
	ProductID    string
	Barcode      string
	Buyer        string
	SaleValue    decimal.Decimal
	SaleDate     time.Time
	Quantity     int64
	Observations string
	UserID       string
	Audit
}

func (p *ProductOutput) GetID() string   { return p.ID }
func (p *ProductOutput) SetID(id string) { p.ID = id }
