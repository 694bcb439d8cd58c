package entity

// Product producto del inventario con sus umbrales de stock.
// El nivel no se guarda: se recalcula desde entradas y salidas.
type Product struct {
	ID               string
	Description      string
	Type             string
	InventoryMinimum int
	InventoryMaximum int
	Observations     string
	UserID           string // usuario que hizo el último cambio
	Audit
}

func (p *Product) GetID() string   { return p.ID }
func (p *Product) SetID(id string) { p.ID = id }
