// Package integration provides integration testing for the invoicing backend API.
// This file exercises the client and invoice endpoints against a real database.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	billingapp "github.com/invoicing/backend/internal/application/billing"
	"github.com/invoicing/backend/internal/infrastructure/persistence"
	"github.com/invoicing/backend/internal/interfaces/http/handler"
	"github.com/invoicing/backend/internal/interfaces/http/middleware"
	"github.com/invoicing/backend/internal/interfaces/http/router"
)

// TestServer wraps the test database and HTTP engine for API testing
type TestServer struct {
	DB     *TestDB
	Engine *gin.Engine
}

// NewTestServer wires real repositories, services and handlers against a
// containerized database.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()

	testDB := NewTestDB(t)

	clientRepo := persistence.NewGormClientRepository(testDB.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(testDB.DB)

	clientService := billingapp.NewClientService(clientRepo, nil)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, clientRepo, nil)

	clientHandler := handler.NewClientHandler(clientService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	billingRoutes := router.NewDomainGroup("billing", "")
	billingRoutes.POST("/clients", clientHandler.Create)
	billingRoutes.GET("/clients", clientHandler.List)
	billingRoutes.GET("/clients/:id", clientHandler.GetByID)
	billingRoutes.POST("/invoices", invoiceHandler.Create)
	billingRoutes.GET("/invoices/:numero", invoiceHandler.GetByNumber)
	billingRoutes.POST("/invoices/:numero/anular", invoiceHandler.Void)

	r.Register(billingRoutes)
	r.Setup()

	return &TestServer{DB: testDB, Engine: engine}
}

// Request performs an HTTP request against the in-process engine.
func (ts *TestServer) Request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	ts.Engine.ServeHTTP(w, req)
	return w
}

// APIResponse mirrors the standard response envelope.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) APIResponse {
	t.Helper()
	var resp APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestClientAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)

	var createdClientID string

	t.Run("Register client", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"ruc":          "20123456789",
			"razon_social": "Comercial Andina SAC",
			"direccion":    "Av. Arequipa 1234, Lima",
			"email":        "facturacion@andina.pe",
		}

		w := ts.Request(http.MethodPost, "/api/v1/clients", reqBody)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Cliente registrado", data["mensaje"])
		createdClientID = data["id"].(string)
		require.NotEmpty(t, createdClientID)
		_, err := uuid.Parse(createdClientID)
		assert.NoError(t, err)
	})

	t.Run("Duplicate RUC is rejected", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"ruc":          "20123456789",
			"razon_social": "Otra Empresa SAC",
		}

		w := ts.Request(http.MethodPost, "/api/v1/clients", reqBody)

		assert.Equal(t, http.StatusConflict, w.Code)

		resp := decodeBody(t, w)
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("Invalid RUC is rejected", func(t *testing.T) {
		reqBody := map[string]interface{}{
			"ruc":          "123",
			"razon_social": "Empresa Corta SAC",
		}

		w := ts.Request(http.MethodPost, "/api/v1/clients", reqBody)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		resp := decodeBody(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_RUC", resp.Error.Code)
	})

	t.Run("Get client by ID", func(t *testing.T) {
		require.NotEmpty(t, createdClientID)

		w := ts.Request(http.MethodGet, "/api/v1/clients/"+createdClientID, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "20123456789", data["ruc"])
		assert.Equal(t, "Comercial Andina SAC", data["razon_social"])
		assert.Equal(t, "Av. Arequipa 1234, Lima", data["direccion"])
	})

	t.Run("Get client not found", func(t *testing.T) {
		w := ts.Request(http.MethodGet, "/api/v1/clients/"+uuid.NewString(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeBody(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("List clients filters by RUC", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := ts.Request(http.MethodPost, "/api/v1/clients", map[string]interface{}{
				"ruc":          fmt.Sprintf("2055500000%d", i),
				"razon_social": fmt.Sprintf("Filial %d SAC", i),
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := ts.Request(http.MethodGet, "/api/v1/clients?ruc=20555000001", nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		list := resp.Data.([]interface{})
		require.Len(t, list, 1)
		first := list[0].(map[string]interface{})
		assert.Equal(t, "20555000001", first["ruc"])
	})
}

func TestInvoiceAPI(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ts := NewTestServer(t)

	w := ts.Request(http.MethodPost, "/api/v1/clients", map[string]interface{}{
		"ruc":          "20777888999",
		"razon_social": "Distribuidora Pacifico SAC",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	clientID := decodeBody(t, w).Data.(map[string]interface{})["id"].(string)

	invoiceBody := map[string]interface{}{
		"cliente_id": clientID,
		"total":      200,
		"items": []map[string]interface{}{
			{"descripcion": "Cemento x bolsa", "cantidad": 2, "precio_unitario": 100},
		},
	}

	var invoiceNumber string

	t.Run("Generate invoice", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/v1/invoices", invoiceBody)

		assert.Equal(t, http.StatusCreated, w.Code)

		resp := decodeBody(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Factura generada", data["mensaje"])
		invoiceNumber = data["numero_factura"].(string)
		assert.Regexp(t, regexp.MustCompile(`^F\d{8}-[0-9a-f]{6}$`), invoiceNumber)
	})

	t.Run("Generate invoice for unknown client", func(t *testing.T) {
		body := map[string]interface{}{
			"cliente_id": uuid.NewString(),
			"total":      50,
			"items": []map[string]interface{}{
				{"descripcion": "Servicio", "cantidad": 1, "precio_unitario": 50},
			},
		}

		w := ts.Request(http.MethodPost, "/api/v1/invoices", body)

		assert.Equal(t, http.StatusNotFound, w.Code)

		resp := decodeBody(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})

	t.Run("Get invoice by number with items and client", func(t *testing.T) {
		require.NotEmpty(t, invoiceNumber)

		w := ts.Request(http.MethodGet, "/api/v1/invoices/"+invoiceNumber, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, invoiceNumber, data["numero_factura"])
		assert.Equal(t, "GENERADA", data["estado"])

		igv, err := decimal.NewFromString(data["igv"].(string))
		require.NoError(t, err)
		assert.True(t, igv.Equal(decimal.NewFromInt(36)), "igv should be 18%% of 200, got %s", igv)

		total, err := decimal.NewFromString(data["total"].(string))
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(200)))

		cliente := data["cliente"].(map[string]interface{})
		assert.Equal(t, "20777888999", cliente["ruc"])

		items := data["items"].([]interface{})
		require.Len(t, items, 1)
		item := items[0].(map[string]interface{})
		assert.Equal(t, "Cemento x bolsa", item["descripcion"])
		assert.Equal(t, float64(2), item["cantidad"])

		subtotal, err := decimal.NewFromString(item["subtotal"].(string))
		require.NoError(t, err)
		assert.True(t, subtotal.Equal(decimal.NewFromInt(200)), "subtotal should be cantidad x precio_unitario, got %s", subtotal)
	})

	t.Run("Void invoice is idempotent", func(t *testing.T) {
		require.NotEmpty(t, invoiceNumber)

		w := ts.Request(http.MethodPost, "/api/v1/invoices/"+invoiceNumber+"/anular", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		resp := decodeBody(t, w)
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "Factura anulada", data["mensaje"])
		assert.Equal(t, "ANULADA", data["estado"])

		// second void leaves the invoice in the same state
		w = ts.Request(http.MethodPost, "/api/v1/invoices/"+invoiceNumber+"/anular", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		resp = decodeBody(t, w)
		data = resp.Data.(map[string]interface{})
		assert.Equal(t, "Factura anulada", data["mensaje"])
		assert.Equal(t, "ANULADA", data["estado"])
	})

	t.Run("Void unknown invoice", func(t *testing.T) {
		w := ts.Request(http.MethodPost, "/api/v1/invoices/F20240101-abcdef/anular", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
