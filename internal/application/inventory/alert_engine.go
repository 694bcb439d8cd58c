package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	domaininv "github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/domain/repository"
)

// AlertEngine recalcula el nivel de un producto desde todos sus movimientos y
// encola un aviso si queda fuera de [mínimo, máximo].
type AlertEngine struct {
	products   repository.ProductRepository
	inputs     repository.ProductInputRepository
	outputs    repository.ProductOutputRepository
	dispatcher AlertDispatcher
	log        zerolog.Logger
	now        func() time.Time
}

// NewAlertEngine construye el motor de avisos.
func NewAlertEngine(
	products repository.ProductRepository,
	inputs repository.ProductInputRepository,
	outputs repository.ProductOutputRepository,
	dispatcher AlertDispatcher,
	log zerolog.Logger,
) *AlertEngine {
	return &AlertEngine{
		products:   products,
		inputs:     inputs,
		outputs:    outputs,
		dispatcher: dispatcher,
		log:        log,
		now:        time.Now,
	}
}

// Evaluate recalcula y, si corresponde, encola el aviso. Devuelve el aviso evaluado
// (Kind vacío si no hubo). Los errores de lectura se devuelven al caller para que los registre.
func (e *AlertEngine) Evaluate(ctx context.Context, productID string) (Alert, error) {
	var alert Alert
	p, err := e.products.GetByID(ctx, productID)
	if err != nil {
		return alert, err
	}
	if p == nil {
		return alert, nil
	}
	ins, err := e.inputs.ListByProduct(ctx, productID)
	if err != nil {
		return alert, err
	}
	outs, err := e.outputs.ListByProduct(ctx, productID)
	if err != nil {
		return alert, err
	}
	_, _, level := domaininv.Level(ins, outs)

	alert = Alert{
		Kind:        domaininv.Classify(level, p.InventoryMinimum, p.InventoryMaximum),
		ProductID:   p.ID,
		Description: p.Description,
		Level:       level,
		Minimum:     p.InventoryMinimum,
		Maximum:     p.InventoryMaximum,
		DetectedAt:  e.now(),
	}
	if alert.Kind == domaininv.AlertNone {
		return alert, nil
	}
	if !e.dispatcher.Enqueue(alert) {
		e.log.Warn().
			Str("product_id", p.ID).
			Str("kind", string(alert.Kind)).
			Int64("level", level).
			Msg("aviso de inventario descartado")
	}
	return alert, nil
}

// recompute evalúa cada producto una sola vez y solo registra los errores:
// el movimiento ya quedó persistido y la respuesta no debe fallar por el aviso.
func (e *AlertEngine) recompute(ctx context.Context, productIDs ...string) {
	seen := make(map[string]struct{}, len(productIDs))
	for _, id := range productIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if _, err := e.Evaluate(ctx, id); err != nil {
			e.log.Error().Err(err).Str("product_id", id).Msg("no se pudo evaluar el nivel de inventario")
		}
	}
}
