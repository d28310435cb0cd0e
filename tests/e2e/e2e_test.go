//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// Covered flows:
//   - Storefront browse → cart → cash checkout → admin sees the order
//   - Proof-of-payment checkout with a receipt upload (pending order)
//   - Idempotent checkout resubmission (same key, one order, stock once)
//   - Oversell rejection: stock never goes negative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"onyxshop/internal/config"
	"onyxshop/internal/infra"
	"onyxshop/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, headers map[string]string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func adminHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

func sessionHeaders(sessionID string) map[string]string {
	return map[string]string{"X-Session-ID": sessionID}
}

// checkoutForm builds the multipart settlement request; recibo may be nil.
func checkoutForm(t *testing.T, fields map[string]string, recibo []byte, reciboNombre, reciboTipo string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if recibo != nil {
		h := make(map[string][]string)
		h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="recibo"; filename=%q`, reciboNombre)}
		h["Content-Type"] = []string{reciboTipo}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(recibo)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doCheckout(t *testing.T, srv *httptest.Server, sessionID string, fields map[string]string, recibo []byte, reciboTipo string) *http.Response {
	t.Helper()
	body, contentType := checkoutForm(t, fields, recibo, "recibo.png", reciboTipo)
	req, err := http.NewRequest("POST", srv.URL+"/v1/checkout", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Session-ID", sessionID)
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string // admin JWT
	engine *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	// Start Postgres container
	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("onyxshop_test"),
		tcPostgres.WithUsername("onyxshop"),
		tcPostgres.WithPassword("onyxshop"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Start Redis container
	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:               8000,
		Env:                "test",
		JWTSecret:          "test-secret-key",
		JWTExpirationHours: 8,
		JWTRefreshHours:    24,
		DatabaseURL:        pgURL,
		RedisURL:           rdURL,
		StoreName:          "ONYX SHOP",
		OrderPrefix:        "CS",
		WhatsAppPhone:      "+5353910527",
		PhonePrefix:        "+53",
		MaxReceiptSizeMB:   5,
		WorkerPoolSize:     1,
		UploadStoragePath:  t.TempDir(),
		PublicBaseURL:      "http://localhost:8000",
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	storage, err := infra.NewDiscoStorage(cfg.UploadStoragePath, cfg.PublicBaseURL)
	require.NoError(t, err)

	// Seed admin user
	hash, err := bcrypt.GenerateFromPassword([]byte("onyxshop2026"), bcrypt.MinCost)
	require.NoError(t, err)
	err = db.Exec(`INSERT INTO admin_usuarios (username, password_hash, rol)
		VALUES ('admin', ?, 'admin')
		ON CONFLICT (username) DO NOTHING`, string(hash)).Error
	require.NoError(t, err)

	r := router.New(cfg, db, rdb, storage)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	loginResp := do(t, srv, "POST", "/v1/admin/auth/login",
		jsonBody(t, map[string]string{"username": "admin", "password": "onyxshop2026"}),
		nil,
	)
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var loginBody struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginResp, &loginBody)
	require.NotEmpty(t, loginBody.AccessToken)

	return &testEnv{
		server: srv,
		token:  loginBody.AccessToken,
		engine: r,
	}
}

// crearCatalogo seeds one category and one product via the admin API and
// returns the product id.
func crearCatalogo(t *testing.T, env *testEnv, nombre string, precio float64, stock int) string {
	t.Helper()

	catResp := do(t, env.server, "POST", "/v1/admin/categorias",
		jsonBody(t, map[string]any{"nombre": "Alimentos " + uuid.NewString()[:8]}),
		adminHeaders(env.token))
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		ID string `json:"id"`
	}
	decodeJSON(t, catResp, &cat)

	prodResp := do(t, env.server, "POST", "/v1/admin/productos",
		jsonBody(t, map[string]any{
			"nombre":       nombre,
			"precio":       precio,
			"costo":        precio / 2,
			"stock":        stock,
			"categoria_id": cat.ID,
		}),
		adminHeaders(env.token))
	require.Equal(t, http.StatusCreated, prodResp.StatusCode)
	var prod struct {
		ID string `json:"id"`
	}
	decodeJSON(t, prodResp, &prod)
	return prod.ID
}

func agregarAlCarrito(t *testing.T, env *testEnv, sessionID, productoID string, veces int) {
	t.Helper()
	for i := 0; i < veces; i++ {
		resp := do(t, env.server, "POST", "/v1/carrito/items",
			jsonBody(t, map[string]string{"producto_id": productoID}),
			sessionHeaders(sessionID))
		require.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()
	}
}

func stockActual(t *testing.T, env *testEnv, productoID string) int {
	t.Helper()
	resp := do(t, env.server, "GET", "/v1/admin/productos/"+productoID, nil, adminHeaders(env.token))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prod struct {
		Stock int `json:"stock"`
	}
	decodeJSON(t, resp, &prod)
	return prod.Stock
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CashCheckoutFlow(t *testing.T) {
	env := setupTestEnv(t)
	productoID := crearCatalogo(t, env, "Aceite de girasol 1L", 10, 20)
	sessionID := uuid.NewString()

	// Storefront shows the product
	tiendaResp := do(t, env.server, "GET", "/v1/tienda/productos", nil, nil)
	require.Equal(t, http.StatusOK, tiendaResp.StatusCode)
	var listado struct {
		Data []struct {
			ID          string `json:"id"`
			PrecioTexto string `json:"precio_texto"`
		} `json:"data"`
	}
	decodeJSON(t, tiendaResp, &listado)
	require.Len(t, listado.Data, 1)
	assert.Equal(t, "$10.00", listado.Data[0].PrecioTexto)

	// Two units in the cart
	agregarAlCarrito(t, env, sessionID, productoID, 2)
	carritoResp := do(t, env.server, "GET", "/v1/carrito", nil, sessionHeaders(sessionID))
	require.Equal(t, http.StatusOK, carritoResp.StatusCode)
	var carrito struct {
		Cantidad   int    `json:"cantidad"`
		TotalTexto string `json:"total_texto"`
	}
	decodeJSON(t, carritoResp, &carrito)
	assert.Equal(t, 2, carrito.Cantidad)
	assert.Equal(t, "$20.00", carrito.TotalTexto)

	// Cash settlement
	resp := doCheckout(t, env.server, sessionID, map[string]string{
		"nombre":    "Ana Pérez",
		"telefono":  "51234567",
		"direccion": "Calle 23 #456, Vedado",
		"moneda":    "$",
	}, nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pedido struct {
		Codigo      string `json:"codigo"`
		Estado      string `json:"estado"`
		TotalTexto  string `json:"total_texto"`
		WhatsAppURL string `json:"whatsapp_url"`
	}
	decodeJSON(t, resp, &pedido)
	assert.Equal(t, "completed", pedido.Estado)
	assert.Equal(t, "$20.00", pedido.TotalTexto)
	assert.Contains(t, pedido.Codigo, "CS-EF-")
	assert.Contains(t, pedido.WhatsAppURL, "wa.me")

	// Stock reserved, cart emptied
	assert.Equal(t, 18, stockActual(t, env, productoID))
	carritoResp = do(t, env.server, "GET", "/v1/carrito", nil, sessionHeaders(sessionID))
	require.Equal(t, http.StatusOK, carritoResp.StatusCode)
	decodeJSON(t, carritoResp, &carrito)
	assert.Zero(t, carrito.Cantidad)

	// Admin sees the order
	pedidosResp := do(t, env.server, "GET", "/v1/admin/pedidos?estado=all", nil, adminHeaders(env.token))
	require.Equal(t, http.StatusOK, pedidosResp.StatusCode)
	var pedidos struct {
		Data []struct {
			Codigo string `json:"codigo"`
		} `json:"data"`
	}
	decodeJSON(t, pedidosResp, &pedidos)
	require.Len(t, pedidos.Data, 1)
	assert.Equal(t, pedido.Codigo, pedidos.Data[0].Codigo)
}

func TestE2E_ProofOfPaymentCheckout(t *testing.T) {
	env := setupTestEnv(t)
	productoID := crearCatalogo(t, env, "Café molido 250g", 30, 5)

	// Register the Zelle settlement method
	metodoResp := do(t, env.server, "POST", "/v1/admin/metodos-pago",
		jsonBody(t, map[string]any{"nombre": "Zelle", "codigo": "Z", "modo": "percent", "valor": 5}),
		adminHeaders(env.token))
	require.Equal(t, http.StatusCreated, metodoResp.StatusCode)

	sessionID := uuid.NewString()
	agregarAlCarrito(t, env, sessionID, productoID, 1)

	campos := map[string]string{
		"nombre":    "Luis García",
		"telefono":  "63456789",
		"direccion": "Ave 41 #2203, Playa",
		"moneda":    "Z",
	}

	// Without a receipt the settlement is rejected
	resp := doCheckout(t, env.server, sessionID, campos, nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
	assert.Equal(t, 5, stockActual(t, env, productoID))

	// With a PNG receipt it lands as pending
	resp = doCheckout(t, env.server, sessionID, campos, []byte("fake-png-bytes"), "image/png")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var pedido struct {
		Codigo     string  `json:"codigo"`
		Estado     string  `json:"estado"`
		TotalTexto string  `json:"total_texto"`
		MetodoPago string  `json:"metodo_pago"`
		ReciboURL  *string `json:"recibo_url"`
	}
	decodeJSON(t, resp, &pedido)
	assert.Equal(t, "pending", pedido.Estado)
	assert.Equal(t, "ZELLE", pedido.MetodoPago)
	assert.Equal(t, "Z 31.50", pedido.TotalTexto) // 30 plus the 5% surcharge
	assert.Contains(t, pedido.Codigo, "CS-ZELLE-")
	require.NotNil(t, pedido.ReciboURL)
	assert.Contains(t, *pedido.ReciboURL, "orders/"+pedido.Codigo)

	assert.Equal(t, 4, stockActual(t, env, productoID))
}

func TestE2E_IdempotentCheckoutRetry(t *testing.T) {
	env := setupTestEnv(t)
	productoID := crearCatalogo(t, env, "Arroz 5kg", 15, 10)
	sessionID := uuid.NewString()
	agregarAlCarrito(t, env, sessionID, productoID, 1)

	campos := map[string]string{
		"nombre":             "María López",
		"telefono":           "54567890",
		"direccion":          "Calle Línea #10",
		"moneda":             "$",
		"clave_idempotencia": uuid.NewString(),
	}

	resp := doCheckout(t, env.server, sessionID, campos, nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var primero struct {
		PedidoID string `json:"pedido_id"`
		Codigo   string `json:"codigo"`
	}
	decodeJSON(t, resp, &primero)

	// The client resubmits the same settlement after a network timeout
	resp = doCheckout(t, env.server, sessionID, campos, nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var segundo struct {
		PedidoID string `json:"pedido_id"`
		Codigo   string `json:"codigo"`
	}
	decodeJSON(t, resp, &segundo)

	assert.Equal(t, primero.PedidoID, segundo.PedidoID)
	assert.Equal(t, primero.Codigo, segundo.Codigo)
	assert.Equal(t, 9, stockActual(t, env, productoID))
}

func TestE2E_OversellRejected(t *testing.T) {
	env := setupTestEnv(t)
	productoID := crearCatalogo(t, env, "Última unidad", 8, 1)

	// First buyer takes the last unit
	primera := uuid.NewString()
	agregarAlCarrito(t, env, primera, productoID, 1)

	// Second buyer managed to cart it too before the first settled
	segunda := uuid.NewString()
	agregarAlCarrito(t, env, segunda, productoID, 1)

	campos := map[string]string{
		"nombre":    "Cliente Uno",
		"telefono":  "51110000",
		"direccion": "Calle 1 #100",
		"moneda":    "$",
	}
	resp := doCheckout(t, env.server, primera, campos, nil, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	campos["nombre"] = "Cliente Dos"
	resp = doCheckout(t, env.server, segunda, campos, nil, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(body), "stock")

	// Never negative, and only one order exists
	assert.Equal(t, 0, stockActual(t, env, productoID))
	pedidosResp := do(t, env.server, "GET", "/v1/admin/pedidos?estado=all", nil, adminHeaders(env.token))
	require.Equal(t, http.StatusOK, pedidosResp.StatusCode)
	var pedidos struct {
		Total int `json:"total"`
	}
	decodeJSON(t, pedidosResp, &pedidos)
	assert.Equal(t, 1, pedidos.Total)
}
