package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/g-inventory/internal/application/dto"
	apphttp "github.com/jhoicas/g-inventory/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/g-inventory/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "g-inventory-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(permission string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(permission),
		func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"ok": true, "userId": apphttp.GetUserID(c)})
		},
	)
	return app
}

// tokenFor genera un JWT con los permisos indicados.
func tokenFor(t *testing.T, permissions ...string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "tester", permissions, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

func TestRequirePermission_ConPermisoPasa(t *testing.T) {
	app := buildTestApp("VIEW_PRODUCTS")
	resp := doRequest(t, app, tokenFor(t, "VIEW_PRODUCTS", "EDIT_PRODUCTS"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["userId"], "el middleware debe dejar el usuario en Locals")
}

func TestRequirePermission_SinPermisoResponde403SinCuerpo(t *testing.T) {
	app := buildTestApp("EDIT_PRODUCTS")
	resp := doRequest(t, app, tokenFor(t, "VIEW_PRODUCTS"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body, "un 403 por permiso no lleva cuerpo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SinTokenResponde403(t *testing.T) {
	app := buildTestApp("VIEW_PRODUCTS")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_FormatoInvalido(t *testing.T) {
	app := buildTestApp("VIEW_PRODUCTS")
	resp := doRequest(t, app, "Token abc")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAuthMiddleware_FirmaInvalida(t *testing.T) {
	tok, err := pkgjwt.Generate("otra-clave", testUserID, "tester", []string{"VIEW_PRODUCTS"}, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildTestApp("VIEW_PRODUCTS")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "UNAUTHENTICATED", decodeError(t, resp).Code)
}

func TestAuthMiddleware_TokenExpiradoResponde401(t *testing.T) {
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, "tester", []string{"VIEW_PRODUCTS"}, testIssuer, -5)
	require.NoError(t, err)

	app := buildTestApp("VIEW_PRODUCTS")
	resp := doRequest(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body := decodeError(t, resp)
	assert.Equal(t, "TOKEN_EXPIRED", body.Code)
	assert.Equal(t, "Token expired.", body.Message)
}
