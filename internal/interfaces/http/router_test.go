package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/inventario-tienda/internal/application/auth"
	"github.com/tu-usuario/inventario-tienda/internal/application/dto"
	"github.com/tu-usuario/inventario-tienda/internal/application/inventory"
	"github.com/tu-usuario/inventario-tienda/internal/domain/entity"
	apphttp "github.com/tu-usuario/inventario-tienda/internal/interfaces/http"
	"github.com/tu-usuario/inventario-tienda/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testStoreRef  = "tienda-test"
	testIssuer    = "inventario-tienda-test"
	testPassword  = "llave-del-mostrador"
)

// memRepo repositorio de snapshots en memoria; failSaves simula un guardado
// caído para probar el contrato de persistencia en el borde HTTP.
type memRepo struct {
	snap      *entity.Snapshot
	failSaves bool
}

func (m *memRepo) Load(_ context.Context, _ string) (*entity.Snapshot, error) {
	if m.snap == nil {
		return entity.EmptySnapshot(), nil
	}
	return m.snap, nil
}

func (m *memRepo) Save(_ context.Context, _ string, snap *entity.Snapshot) error {
	if m.failSaves {
		return errors.New("disco lleno")
	}
	m.snap = snap
	return nil
}

// buildTestApp monta la aplicación completa con el router real, un repositorio
// en memoria y el candado de admin con contraseña conocida.
func buildTestApp(t *testing.T) (*fiber.App, *memRepo) {
	t.Helper()
	repo := &memRepo{}
	store, err := inventory.Open(context.Background(), repo, testStoreRef, logger.Nop())
	require.NoError(t, err)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	authUC := auth.NewAuthUseCase(string(hash), testStoreRef, auth.JWTConfig{
		Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer,
	})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store:     store,
		AuthUC:    authUC,
		PDF:       nil, // las rutas de PDF no se ejercitan aquí
		JWTSecret: testJWTSecret,
	})
	return app, repo
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
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

// adminToken abre sesión con la contraseña de test y devuelve el token.
func adminToken(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Password: testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login con la contraseña correcta debe abrir sesión")
	return decode[dto.LoginResponse](t, resp).Token
}

// crearProducto alta mínima vía la API, devuelve la respuesta decodificada.
func crearProducto(t *testing.T, app *fiber.App, token, nombre string, cantidad int64) dto.ProductResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products", token, fiber.Map{
		"category":         "Camisas",
		"name":             nombre,
		"size":             "M",
		"color":            "azul",
		"initial_quantity": cantidad,
		"suggested_price":  "350",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ProductResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth y candado de admin
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ContrasenaIncorrecta(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Password: "otra"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMutaciones_BloqueadasSinToken(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/products", "", fiber.Map{"name": "x"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"cargar mercancía sin sesión de admin debe rechazarse")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestMutaciones_TokenInvalido(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodDelete, "/api/products/PROD_X", "token.invalido.aqui", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mostrador: alta, venta y reportes de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompleto_AltaVentaYCaja(t *testing.T) {
	app, _ := buildTestApp(t)
	token := adminToken(t, app)

	p := crearProducto(t, app, token, "Camisa de vestir", 10)
	assert.Equal(t, "piso", p.PrimaryLocation, "sin ubicación explícita la mercancía entra al piso")
	assert.Equal(t, int64(10), p.QuantityFloor)

	// Vender es público: el mostrador no pide sesión.
	resp := doJSON(t, app, http.MethodPost, "/api/products/"+p.ID+"/sell", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	ev := decode[dto.SaleEventResponse](t, resp)
	assert.Equal(t, p.ID, ev.ProductID)
	assert.Equal(t, "piso", ev.Location)
	assert.Equal(t, "350", ev.Price.String())

	resp = doJSON(t, app, http.MethodGet, "/api/reports/summary", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[dto.SummaryResponse](t, resp)
	assert.Equal(t, "350", sum.Cash.String(), "la caja se deriva del journal")
	assert.Equal(t, int64(1), sum.TotalUnitsSold)
	assert.Equal(t, int64(9), sum.TotalStock)
}

func TestSell_SinStock_Responde409(t *testing.T) {
	app, _ := buildTestApp(t)
	token := adminToken(t, app)
	p := crearProducto(t, app, token, "Playera única", 1)

	resp := doJSON(t, app, http.MethodPost, "/api/products/"+p.ID+"/sell", "", nil)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/products/"+p.ID+"/sell", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "OUT_OF_STOCK")
}

func TestProducto_Inexistente_Responde404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/PROD_NO_EXISTE", "", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCategorias_AltaYTallas(t *testing.T) {
	app, _ := buildTestApp(t)
	token := adminToken(t, app)

	resp := doJSON(t, app, http.MethodPost, "/api/categories", token, dto.AddCategoryRequest{Name: "Vestidos"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	list := decode[dto.CategoryListResponse](t, resp)
	nombres := make([]string, 0, len(list.Items))
	for _, it := range list.Items {
		nombres = append(nombres, it.Name)
	}
	assert.Contains(t, nombres, "Vestidos")

	// Las tallas sugeridas para pantalón son numéricas.
	resp = doJSON(t, app, http.MethodGet, "/api/categories/Pantalones/sizes", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sizes := decode[dto.SizeOptionsResponse](t, resp)
	assert.Contains(t, sizes.Sizes, "32")

	// Las base no se pueden quitar.
	resp = doJSON(t, app, http.MethodDelete, "/api/categories/Camisas", token, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestExportCSV_DescargaConNombreDeArchivo(t *testing.T) {
	app, _ := buildTestApp(t)
	token := adminToken(t, app)
	crearProducto(t, app, token, "Camisa export", 3)

	resp := doJSON(t, app, http.MethodGet, "/api/export/csv", "", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/csv")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario_")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Camisa export")
}

// ──────────────────────────────────────────────────────────────────────────────
// Contrato de persistencia en el borde HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestMutacion_GuardadoCaidoRespondeConAviso(t *testing.T) {
	app, repo := buildTestApp(t)
	token := adminToken(t, app)
	p := crearProducto(t, app, token, "Camisa frágil", 5)

	repo.failSaves = true
	resp := doJSON(t, app, http.MethodPost, "/api/products/"+p.ID+"/sell", "", nil)
	defer resp.Body.Close()

	// La venta queda aplicada en memoria; el fallo de guardado se reporta
	// como aviso, no como error duro.
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.PersistWarningHeader))

	repo.failSaves = false
	flush := doJSON(t, app, http.MethodPost, "/api/admin/flush", token, nil)
	flush.Body.Close()
	assert.Equal(t, http.StatusNoContent, flush.StatusCode)
}
