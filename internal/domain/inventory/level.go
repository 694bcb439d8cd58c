package inventory

import "github.com/jhoicas/g-inventory/internal/domain/entity"

// AlertKind tipo de aviso por umbral.
type AlertKind string

const (
	AlertNone AlertKind = ""
	AlertHigh AlertKind = "HIGH"
	AlertLow  AlertKind = "LOW"
)

// Level calcula el stock actual: suma de entradas menos suma de salidas.
// El resultado no depende del orden de los movimientos.
func Level(inputs []*entity.ProductInput, outputs []*entity.ProductOutput) (in, out, level int64) {
	for _, i := range inputs {
		in += i.Quantity
	}
	for _, o := range outputs {
		out += o.Quantity
	}
	return in, out, in - out
}

// Classify compara el nivel con los umbrales del producto.
// El máximo se evalúa primero; con min > max solo una rama puede disparar.
func Classify(level int64, minimum, maximum int) AlertKind {
	if level > int64(maximum) {
		return AlertHigh
	}
	if level < int64(minimum) {
		return AlertLow
	}
	return AlertNone
}

// Snapshot arma la vista de nivel de un producto.
func Snapshot(p *entity.Product, inputs []*entity.ProductInput, outputs []*entity.ProductOutput) entity.InventoryLevel {
	in, out, level := Level(inputs, outputs)
	status := entity.LevelStatusOK
	switch Classify(level, p.InventoryMinimum, p.InventoryMaximum) {
	case AlertHigh:
		status = entity.LevelStatusHigh
	case AlertLow:
		status = entity.LevelStatusLow
	}
	return entity.InventoryLevel{
		ProductID:        p.ID,
		Description:      p.Description,
		Type:             p.Type,
		Inputs:           in,
		Outputs:          out,
		Level:            level,
		InventoryMinimum: p.InventoryMinimum,
		InventoryMaximum: p.InventoryMaximum,
		Status:           status,
	}
}
