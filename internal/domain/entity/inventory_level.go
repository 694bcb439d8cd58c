package entity

// Estados del nivel de inventario frente a sus umbrales.
const (
	LevelStatusOK   = "OK"
	LevelStatusLow  = "LOW"
	LevelStatusHigh = "HIGH"
)

// InventoryLevel stock actual de un producto, derivado de sus movimientos.
// No se persiste.
type InventoryLevel struct {
	ProductID        string
	Description      string
	Type             string
	Inputs           int64
	Outputs          int64
	Level            int64
	InventoryMinimum int
	InventoryMaximum int
	Status           string
}
