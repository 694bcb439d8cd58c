package inventory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/inventory"
	"github.com/jhoicas/g-inventory/internal/domain"
	"github.com/jhoicas/g-inventory/internal/domain/entity"
	domaininv "github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
)

type fakeDispatcher struct {
	mu     sync.Mutex
	accept bool
	alerts []inventory.Alert
}

func (d *fakeDispatcher) Enqueue(a inventory.Alert) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, a)
	return d.accept
}

// brokenOutputs falla al listar por producto.
type brokenOutputs struct {
	*memory.ProductOutputRepo
}

func (brokenOutputs) ListByProduct(context.Context, string) ([]*entity.ProductOutput, error) {
	return nil, errors.New("db caída")
}

type fixture struct {
	repos   *memory.Repositories
	disp    *fakeDispatcher
	inputs  *inventory.ProductInputUseCase
	outputs *inventory.ProductOutputUseCase
	product *entity.Product
}

func newFixture(t *testing.T, min, max int) *fixture {
	t.Helper()
	repos := memory.NewRepositories()
	disp := &fakeDispatcher{accept: true}
	engine := inventory.NewAlertEngine(repos.Products, repos.Inputs, repos.Outputs, disp, zerolog.Nop())
	p := &entity.Product{ID: "p1", Description: "Tornillo", Type: "X", InventoryMinimum: min, InventoryMaximum: max}
	p.MarkCreated(time.Now())
	require.NoError(t, repos.Products.Create(context.Background(), p))
	return &fixture{
		repos:   repos,
		disp:    disp,
		inputs:  inventory.NewProductInputUseCase(repos.Inputs, repos.Products, engine),
		outputs: inventory.NewProductOutputUseCase(repos.Outputs, repos.Products, engine),
		product: p,
	}
}

func input(productID string, qty int64) dto.ProductInputRequest {
	return dto.ProductInputRequest{
		ProductID: productID, Supplier: "ACME", PurchaseValue: decimal.RequireFromString("10.50"),
		PurchaseDate: time.Now(), Quantity: qty,
	}
}

func output(productID string, qty int64) dto.ProductOutputRequest {
	return dto.ProductOutputRequest{
		ProductID: productID, Buyer: "Cliente", SaleValue: decimal.RequireFromString("15"),
		SaleDate: time.Now(), Quantity: qty,
	}
}

func TestAlertEngine_EntradaSobreMaximo(t *testing.T) {
	f := newFixture(t, 5, 10)

	_, err := f.inputs.Create(context.Background(), "user-1", input("p1", 20))
	require.NoError(t, err)

	require.Len(t, f.disp.alerts, 1)
	a := f.disp.alerts[0]
	assert.Equal(t, domaininv.AlertHigh, a.Kind)
	assert.Equal(t, int64(20), a.Level)
	assert.Equal(t, "Alerta de estoque cheio! (Tornillo)", a.Subject())
	assert.Contains(t, a.Body(), "O estoque máximo esperado é 10 e o atual é 20.")
}

func TestAlertEngine_SalidaBajoMinimo(t *testing.T) {
	f := newFixture(t, 5, 30)
	ctx := context.Background()

	_, err := f.inputs.Create(ctx, "user-1", input("p1", 20))
	require.NoError(t, err)
	assert.Empty(t, f.disp.alerts)

	_, err = f.outputs.Create(ctx, "user-1", output("p1", 17))
	require.NoError(t, err)

	require.Len(t, f.disp.alerts, 1)
	a := f.disp.alerts[0]
	assert.Equal(t, domaininv.AlertLow, a.Kind)
	assert.Equal(t, int64(3), a.Level)
	assert.Contains(t, a.Subject(), "baixo")
	assert.Contains(t, a.Body(), "O estoque mínimo esperado é 5 e o atual é 3.")
}

func TestAlertEngine_DentroDeRangoNoAvisa(t *testing.T) {
	f := newFixture(t, 5, 10)
	_, err := f.inputs.Create(context.Background(), "user-1", input("p1", 10))
	require.NoError(t, err)
	assert.Empty(t, f.disp.alerts, "10 no supera el máximo")
}

func TestAlertEngine_ColaLlenaNoFallaLaPeticion(t *testing.T) {
	f := newFixture(t, 5, 10)
	f.disp.accept = false

	out, err := f.inputs.Create(context.Background(), "user-1", input("p1", 50))
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Len(t, f.disp.alerts, 1)
}

func TestAlertEngine_ErrorDeLecturaSeRegistraYSeIgnora(t *testing.T) {
	repos := memory.NewRepositories()
	disp := &fakeDispatcher{accept: true}
	engine := inventory.NewAlertEngine(repos.Products, repos.Inputs, brokenOutputs{repos.Outputs}, disp, zerolog.Nop())
	p := &entity.Product{ID: "p1", Description: "Tornillo", InventoryMinimum: 1, InventoryMaximum: 2}
	require.NoError(t, repos.Products.Create(context.Background(), p))
	uc := inventory.NewProductInputUseCase(repos.Inputs, repos.Products, engine)

	_, err := uc.Create(context.Background(), "user-1", input("p1", 50))
	require.NoError(t, err)
	assert.Empty(t, disp.alerts)

	_, err = engine.Evaluate(context.Background(), "p1")
	assert.Error(t, err)
}

func TestMovimiento_CambioDeProductoEvaluaAmbos(t *testing.T) {
	f := newFixture(t, 5, 10)
	ctx := context.Background()
	other := &entity.Product{ID: "p2", Description: "Tuerca", InventoryMinimum: 1, InventoryMaximum: 3}
	require.NoError(t, f.repos.Products.Create(ctx, other))

	created, err := f.inputs.Create(ctx, "user-1", input("p1", 7))
	require.NoError(t, err)
	assert.Empty(t, f.disp.alerts)

	moved := input("p2", 7)
	moved.ID = created.ID
	_, err = f.inputs.Update(ctx, created.ID, "user-1", moved)
	require.NoError(t, err)

	kinds := map[string]domaininv.AlertKind{}
	for _, a := range f.disp.alerts {
		kinds[a.ProductID] = a.Kind
	}
	assert.Equal(t, domaininv.AlertLow, kinds["p1"], "p1 queda en 0")
	assert.Equal(t, domaininv.AlertHigh, kinds["p2"], "p2 queda en 7")
}

func TestMovimiento_BorradoRecalculaSinElMovimiento(t *testing.T) {
	f := newFixture(t, 5, 10)
	ctx := context.Background()

	_, err := f.inputs.Create(ctx, "user-1", input("p1", 8))
	require.NoError(t, err)
	out, err := f.outputs.Create(ctx, "user-1", output("p1", 1))
	require.NoError(t, err)
	assert.Empty(t, f.disp.alerts)

	second, err := f.inputs.Create(ctx, "user-1", input("p1", 1))
	require.NoError(t, err)
	require.NoError(t, f.inputs.Delete(ctx, second.ID))
	require.NoError(t, f.outputs.Delete(ctx, out.ID))
	assert.Empty(t, f.disp.alerts, "8 está dentro de [5, 10]")

	assert.ErrorIs(t, f.outputs.Delete(ctx, out.ID), domain.ErrNotFound)
}

func TestMovimiento_ProductoInexistente(t *testing.T) {
	f := newFixture(t, 5, 10)
	_, err := f.inputs.Create(context.Background(), "user-1", input("nope", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.outputs.Create(context.Background(), "user-1", output("nope", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMovimiento_IdentidadYValidacion(t *testing.T) {
	f := newFixture(t, 5, 10)
	ctx := context.Background()
	created, err := f.inputs.Create(ctx, "user-1", input("p1", 8))
	require.NoError(t, err)

	bad := input("p1", 0)
	bad.ID = "otro"
	_, err = f.inputs.Update(ctx, created.ID, "user-1", bad)
	assert.ErrorIs(t, err, domain.ErrIdentityMismatch)

	bad.ID = created.ID
	_, err = f.inputs.Update(ctx, created.ID, "user-1", bad)
	assert.ErrorIs(t, err, domain.ErrValidation)

	neg := input("p1", 1)
	neg.PurchaseValue = decimal.RequireFromString("-1")
	_, err = f.inputs.Create(ctx, "user-1", neg)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
