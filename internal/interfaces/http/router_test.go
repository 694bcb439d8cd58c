package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/application/auth"
	"github.com/jhoicas/g-inventory/internal/application/bootstrap"
	"github.com/jhoicas/g-inventory/internal/application/dto"
	"github.com/jhoicas/g-inventory/internal/application/inventory"
	appreport "github.com/jhoicas/g-inventory/internal/application/report"
	"github.com/jhoicas/g-inventory/internal/application/usecase"
	domaininv "github.com/jhoicas/g-inventory/internal/domain/inventory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/memory"
	"github.com/jhoicas/g-inventory/internal/infrastructure/metrics"
	"github.com/jhoicas/g-inventory/internal/infrastructure/notify"
	infrareport "github.com/jhoicas/g-inventory/internal/infrastructure/report"
	apphttp "github.com/jhoicas/g-inventory/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Aplicación completa sobre repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

// recordingDispatcher guarda los avisos encolados.
type recordingDispatcher struct {
	mu     sync.Mutex
	alerts []inventory.Alert
}

func (d *recordingDispatcher) Enqueue(a inventory.Alert) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alerts = append(d.alerts, a)
	return true
}

func (d *recordingDispatcher) Alerts() []inventory.Alert {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]inventory.Alert(nil), d.alerts...)
}

// blockingChannel no vuelve de Send hasta que se cierra release.
type blockingChannel struct {
	release chan struct{}
}

func (c *blockingChannel) Name() string { return "blocking" }

func (c *blockingChannel) Send(ctx context.Context, _ notify.Notification) error {
	select {
	case <-c.release:
	case <-ctx.Done():
	}
	return nil
}

func buildApp(t *testing.T, dispatcher inventory.AlertDispatcher) (*fiber.App, *memory.Repositories) {
	t.Helper()
	repos := memory.NewRepositories()
	_, err := bootstrap.NewSeeder(repos.Users, repos.Permissions, repos.Configurations, bootstrap.Options{
		AdminPassword:   "1234",
		LimitedPassword: "4321",
		AlertEmail:      "admin@mail.com",
	}, zerolog.Nop()).Run(context.Background())
	require.NoError(t, err)

	engine := inventory.NewAlertEngine(repos.Products, repos.Inputs, repos.Outputs, dispatcher, zerolog.Nop())
	export := appreport.NewExportUseCase(repos.Reports, repos.Products, repos.Inputs, repos.Outputs, repos.Configurations,
		map[string]appreport.Format{
			"xlsx": {Renderer: infrareport.NewXLSXRenderer(), ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", Extension: "xlsx"},
			"pdf":  {Renderer: infrareport.NewPDFRenderer(), ContentType: "application/pdf", Extension: "pdf"},
		})

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.AccessLog(zerolog.Nop(), metrics.New(prometheus.NewRegistry())))
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:          auth.NewAuthUseCase(repos.Users, repos.Permissions, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer}),
		ProductUC:       usecase.NewProductUseCase(repos.Products, repos.Inputs, repos.Outputs),
		InputUC:         inventory.NewProductInputUseCase(repos.Inputs, repos.Products, engine),
		OutputUC:        inventory.NewProductOutputUseCase(repos.Outputs, repos.Products, engine),
		UserUC:          usecase.NewUserUseCase(repos.Users, repos.Permissions),
		PermissionUC:    usecase.NewPermissionUseCase(repos.Permissions),
		ConfigurationUC: usecase.NewConfigurationUseCase(repos.Configurations),
		ReportUC:        usecase.NewReportUseCase(repos.Reports),
		ExportUC:        export,
		JWTSecret:       testJWTSecret,
	})
	return app, repos
}

func call(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/v1/auth/signing", "", dto.LoginRequest{Username: username, Password: password})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LoginResponse](t, resp)
	require.NotEmpty(t, out.Token)
	return out.Token
}

func createProduct(t *testing.T, app *fiber.App, token string, min, max int) dto.ProductResponse {
	t.Helper()
	resp := call(t, app, http.MethodPost, "/api/v1/product", token, dto.ProductRequest{
		Description: "Tornillo", Type: "Ferretería", InventoryMinimum: min, InventoryMaximum: max,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

func inputBody(productID string, qty int64) map[string]interface{} {
	return map[string]interface{}{
		"productId":     productID,
		"supplier":      "ACME",
		"purchaseValue": 10.5,
		"purchaseDate":  time.Now().UTC().Format(time.RFC3339),
		"quantity":      qty,
	}
}

func outputBody(productID string, qty int64) map[string]interface{} {
	return map[string]interface{}{
		"productId": productID,
		"buyer":     "Cliente",
		"saleValue": 15,
		"saleDate":  time.Now().UTC().Format(time.RFC3339),
		"quantity":  qty,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestSigning(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})

	login(t, app, bootstrap.AdminUsername, "1234")

	resp := call(t, app, http.MethodPost, "/api/v1/auth/signing", "", dto.LoginRequest{Username: bootstrap.AdminUsername, Password: "mala"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Invalid username or password.", body.Message)

	resp = call(t, app, http.MethodPost, "/api/v1/auth/signing", "", dto.LoginRequest{Username: "nadie", Password: "1234"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestUsuarioLimitadoNoEditaProductos(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})
	admin := login(t, app, bootstrap.AdminUsername, "1234")
	limited := login(t, app, bootstrap.LimitedUsername, "4321")
	p := createProduct(t, app, admin, 5, 10)

	resp := call(t, app, http.MethodGet, "/api/v1/product/"+p.ID, limited, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	update := dto.ProductRequest{ID: p.ID, Description: "Otro", Type: "X", InventoryMinimum: 1, InventoryMaximum: 2}
	resp = call(t, app, http.MethodPut, "/api/v1/product/"+p.ID, limited, update)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Empty(t, raw)

	resp = call(t, app, http.MethodGet, "/api/v1/report", limited, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD
// ──────────────────────────────────────────────────────────────────────────────

func TestProductCRUD(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})
	token := login(t, app, bootstrap.AdminUsername, "1234")

	p := createProduct(t, app, token, 5, 10)
	assert.NotEmpty(t, p.ID)
	assert.Nil(t, p.Modified)

	// id distinto en ruta y cuerpo
	resp := call(t, app, http.MethodPut, "/api/v1/product/"+p.ID, token, dto.ProductRequest{ID: "otro", Description: "X", Type: "Y", InventoryMinimum: 1, InventoryMaximum: 1})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "IDs must be the same in path and body.", decode[dto.ErrorResponse](t, resp).Message)

	resp = call(t, app, http.MethodPut, "/api/v1/product/"+p.ID, token, dto.ProductRequest{ID: p.ID, Description: "", Type: "Y", InventoryMinimum: 1, InventoryMaximum: 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	verr := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Invalid data.", verr.Message)
	assert.Contains(t, verr.Fields, "description")

	resp = call(t, app, http.MethodPut, "/api/v1/product/"+p.ID, token, dto.ProductRequest{ID: p.ID, Description: "Tuerca", Type: "Y", InventoryMinimum: 2, InventoryMaximum: 8})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Tuerca", updated.Description)
	assert.NotNil(t, updated.Modified)

	resp = call(t, app, http.MethodDelete, "/api/v1/product/"+p.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = call(t, app, http.MethodGet, "/api/v1/product/"+p.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = call(t, app, http.MethodDelete, "/api/v1/product/"+p.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestConfigurationRoundTrip(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})
	token := login(t, app, bootstrap.AdminUsername, "1234")

	resp := call(t, app, http.MethodPost, "/api/v1/configuration", token, dto.ConfigurationRequest{Name: "THEME", Data: "dark"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[dto.ConfigurationResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/v1/configuration/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.ConfigurationResponse](t, resp)
	assert.Equal(t, "THEME", got.Name)
	assert.Equal(t, "dark", got.Data)

	// lectura permitida a cualquier usuario autenticado
	limited := login(t, app, bootstrap.LimitedUsername, "4321")
	resp = call(t, app, http.MethodGet, "/api/v1/configuration", limited, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = call(t, app, http.MethodDelete, "/api/v1/configuration/"+created.ID, limited, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimientos y avisos
// ──────────────────────────────────────────────────────────────────────────────

func TestEntradaSobreMaximoEncolaAvisoCheio(t *testing.T) {
	d := &recordingDispatcher{}
	app, _ := buildApp(t, d)
	token := login(t, app, bootstrap.AdminUsername, "1234")
	p := createProduct(t, app, token, 5, 10)

	resp := call(t, app, http.MethodPost, "/api/v1/product-input", token, inputBody(p.ID, 20))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alerts := d.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, domaininv.AlertHigh, alerts[0].Kind)
	assert.Equal(t, int64(20), alerts[0].Level)
	assert.Contains(t, alerts[0].Subject(), "cheio")

	resp = call(t, app, http.MethodGet, "/api/v1/product/"+p.ID+"/inventory", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	level := decode[dto.InventoryLevelResponse](t, resp)
	assert.Equal(t, int64(20), level.Level)
	assert.Equal(t, "HIGH", level.Status)
}

func TestSalidaBajoMinimoEncolaAvisoBaixo(t *testing.T) {
	d := &recordingDispatcher{}
	app, _ := buildApp(t, d)
	token := login(t, app, bootstrap.AdminUsername, "1234")
	p := createProduct(t, app, token, 5, 30)

	resp := call(t, app, http.MethodPost, "/api/v1/product-input", token, inputBody(p.ID, 20))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, d.Alerts(), "20 está dentro de [5, 30]")

	resp = call(t, app, http.MethodPost, "/api/v1/product-output", token, outputBody(p.ID, 17))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	alerts := d.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, domaininv.AlertLow, alerts[0].Kind)
	assert.Equal(t, int64(3), alerts[0].Level)
	assert.Contains(t, alerts[0].Subject(), "baixo")

	// un producto con movimientos no se puede borrar
	resp = call(t, app, http.MethodDelete, "/api/v1/product/"+p.ID, token, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestMovimientoConProductoInexistente(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})
	token := login(t, app, bootstrap.AdminUsername, "1234")

	resp := call(t, app, http.MethodPost, "/api/v1/product-input", token, inputBody("no-existe", 1))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMovimientoFechaSinZonaHoraria(t *testing.T) {
	d := &recordingDispatcher{}
	app, repos := buildApp(t, d)
	token := login(t, app, bootstrap.AdminUsername, "1234")
	p := createProduct(t, app, token, 5, 30)

	body := inputBody(p.ID, 10)
	body["purchaseDate"] = "2024-05-01T10:00:00"
	resp := call(t, app, http.MethodPost, "/api/v1/product-input", token, body)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "Invalid data.", out.Message)

	list, err := repos.Inputs.ListByProduct(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	body["purchaseDate"] = "2024-05-01T10:00:00-05:00"
	resp = call(t, app, http.MethodPost, "/api/v1/product-input", token, body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestMovimientoNoEsperaAlEnvio(t *testing.T) {
	ch := &blockingChannel{release: make(chan struct{})}
	configs := memory.NewConfigurationRepository()
	disp := notify.NewDispatcher(notify.Options{Workers: 1, QueueSize: 1, SendTimeout: time.Minute},
		configs, []notify.Channel{ch}, metrics.New(prometheus.NewRegistry()), zerolog.Nop())
	disp.Start()
	t.Cleanup(func() {
		close(ch.release)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = disp.Shutdown(ctx)
	})

	app, _ := buildApp(t, disp)
	token := login(t, app, bootstrap.AdminUsername, "1234")
	p := createProduct(t, app, token, 1, 2)

	// cada entrada deja el nivel sobre el máximo; el canal nunca termina
	for i := 0; i < 5; i++ {
		start := time.Now()
		resp := call(t, app, http.MethodPost, "/api/v1/product-input", token, inputBody(p.ID, 10))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Less(t, time.Since(start), 2*time.Second)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reportes
// ──────────────────────────────────────────────────────────────────────────────

func TestReportExport(t *testing.T) {
	app, _ := buildApp(t, &recordingDispatcher{})
	token := login(t, app, bootstrap.AdminUsername, "1234")
	createProduct(t, app, token, 5, 10)

	resp := call(t, app, http.MethodPost, "/api/v1/report", token, dto.ReportRequest{Description: "Todo", Filters: ""})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	rep := decode[dto.ReportResponse](t, resp)

	resp = call(t, app, http.MethodGet, "/api/v1/report/"+rep.ID+"/export?format=xlsx", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "application/vnd.openxmlformats"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")

	resp = call(t, app, http.MethodGet, "/api/v1/report/"+rep.ID+"/export?format=pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	pdf, _ := io.ReadAll(resp.Body)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))

	resp = call(t, app, http.MethodGet, "/api/v1/report/"+rep.ID+"/export?format=csv", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
