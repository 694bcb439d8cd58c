package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest alta o edición de producto. El usuario sale del token.
type ProductRequest struct {
	ID               string `json:"id"`
	Description      string `json:"description" validate:"required,max=125"`
	Type             string `json:"type" validate:"required,max=50"`
	InventoryMinimum int    `json:"inventoryMinimum" validate:"min=1,max=2147483647"`
	InventoryMaximum int    `json:"inventoryMaximum" validate:"min=1,max=2147483647"`
	Observations     string `json:"observations" validate:"max=1024"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID               string `json:"id"`
	Description      string `json:"description"`
	Type             string `json:"type"`
	InventoryMinimum int    `json:"inventoryMinimum"`
	InventoryMaximum int    `json:"inventoryMaximum"`
	Observations     string `json:"observations"`
	UserID           string `json:"userId"`
	AuditResponse
}

// InventoryLevelResponse nivel calculado de un producto.
type InventoryLevelResponse struct {
	ProductID        string `json:"productId"`
	Description      string `json:"description"`
	Inputs           int64  `json:"inputs"`
	Outputs          int64  `json:"outputs"`
	Level            int64  `json:"level"`
	InventoryMinimum int    `json:"inventoryMinimum"`
	InventoryMaximum int    `json:"inventoryMaximum"`
	Status           string `json:"status"`
}

// ProductInputRequest alta o edición de una entrada de stock.
type ProductInputRequest struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId" validate:"required"`
	Barcode       string          `json:"barcode" validate:"max=20"`
	Supplier      string          `json:"supplier" validate:"max=125"`
	PurchaseValue decimal.Decimal `json:"purchaseValue" validate:"money"`
	PurchaseDate  time.Time       `json:"purchaseDate" validate:"required"`
	Quantity      int64           `json:"quantity" validate:"min=1"`
	Observations  string          `json:"observations" validate:"max=1024"`
}

// ProductInputResponse salida de una entrada de stock.
type ProductInputResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"productId"`
	Barcode       string          `json:"barcode"`
	Supplier      string          `json:"supplier"`
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
	PurchaseDate  time.Time       `json:"purchaseDate"`
	Quantity      int64           `json:"quantity"`
	Observations  string          `json:"observations"`
	UserID        string          `json:"userId"`
	AuditResponse
}

// ProductOutputRequest alta o edición de una salida de stock.
type ProductOutputRequest struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId" validate:"required"`
	Barcode      string          `json:"barcode" validate:"max=20"`
	Buyer        string          `json:"buyer" validate:"max=125"`
	SaleValue    decimal.Decimal `json:"saleValue" validate:"money"`
	SaleDate     time.Time       `json:"saleDate" validate:"required"`
	Quantity     int64           `json:"quantity" validate:"min=1"`
	Observations string          `json:"observations" validate:"max=1024"`
}

// ProductOutputResponse salida de una salida de stock.
type ProductOutputResponse struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	Barcode      string          `json:"barcode"`
	Buyer        string          `json:"buyer"`
	SaleValue    decimal.Decimal `json:"saleValue"`
	SaleDate     time.Time       `json:"saleDate"`
	Quantity     int64           `json:"quantity"`
	Observations string          `json:"observations"`
	UserID       string          `json:"userId"`
	AuditResponse
}
