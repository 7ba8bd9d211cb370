package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsupply/stock-api/internal/application/stock"
	"github.com/medsupply/stock-api/internal/application/usecase"
	"github.com/medsupply/stock-api/internal/domain/entity"
	apphttp "github.com/medsupply/stock-api/internal/interfaces/http"
	"github.com/medsupply/stock-api/internal/testutil"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testWarehouseID = "11111111-1111-1111-1111-111111111111"
	testProductID   = "22222222-2222-2222-2222-222222222222"
)

// buildTestApp wires the full router over an in-memory store seeded
// with one country, one warehouse and one product.
func buildTestApp(t *testing.T) (*fiber.App, *testutil.Store) {
	t.Helper()
	store := testutil.NewStore()
	store.AddCountry(entity.Country{ID: "SA", Name: "Saudi Arabia", Code: "SA"})
	store.AddWarehouse(entity.Warehouse{ID: testWarehouseID, Name: "Riyadh Main", Location: "Riyadh", CountryID: "SA"})
	store.AddProduct(entity.Product{ID: testProductID, Name: "Nitrile Gloves", Category: "Disposables", Status: entity.ProductStatusActive})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CountryUC:   usecase.NewCountryUseCase(store.CountryRepo()),
		WarehouseUC: usecase.NewWarehouseUseCase(store.WarehouseRepo(), store.CountryRepo(), store.StockRepo()),
		ProductUC:   usecase.NewProductUseCase(store.ProductRepo(), store.StockRepo()),
		StockUC:     stock.NewUseCase(store.TxRunner(), store.StockRepo()),
	})
	return app, store
}

// doJSON sends a request with an optional JSON body and decodes the
// response into a generic map.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Stock endpoints
// ──────────────────────────────────────────────────────────────────────────────

func TestStockCreate_ReturnsEnvelopeAndRow(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stocks", map[string]any{
		"warehouse_id": testWarehouseID,
		"product_id":   testProductID,
		"quantity":     5000,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	row, ok := body["stock"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 5000, row["quantity"])
	product := row["product"].(map[string]any)
	assert.Equal(t, "Nitrile Gloves", product["name"])
	warehouse := row["warehouse"].(map[string]any)
	assert.Equal(t, "Riyadh Main", warehouse["name"])
	assert.Equal(t, "Saudi Arabia", warehouse["country"])
}

func TestStockCreate_UnknownWarehouseIs404Envelope(t *testing.T) {
	app, store := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stocks", map[string]any{
		"warehouse_id": "does-not-exist",
		"product_id":   testProductID,
		"quantity":     5,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"])
	assert.Empty(t, store.StockRows())
}

func TestStockCreate_DuplicatePairIs409(t *testing.T) {
	app, _ := buildTestApp(t)

	in := map[string]any{"warehouse_id": testWarehouseID, "product_id": testProductID, "quantity": 10}
	resp, _ := doJSON(t, app, http.MethodPost, "/api/stocks", in)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stocks", in)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "already exists")
}

func TestStockCreate_MalformedBodyIs400(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/stocks", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestStockUpdateAndList_RoundTrip(t *testing.T) {
	app, _ := buildTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/stocks", map[string]any{
		"warehouse_id": testWarehouseID, "product_id": testProductID, "quantity": 100,
	})
	id := body["stock"].(map[string]any)["id"].(string)

	resp, body := doJSON(t, app, http.MethodPut, "/api/stocks/"+id, map[string]any{"quantity": 30})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 30, body["stock"].(map[string]any)["quantity"])

	resp, body = doJSON(t, app, http.MethodGet, "/api/stocks?product_id="+testProductID, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	items := body["items"].([]any)
	require.Len(t, items, 1)
	assert.EqualValues(t, 30, items[0].(map[string]any)["quantity"])
}

func TestStockDelete_EnvelopeAndNotFound(t *testing.T) {
	app, _ := buildTestApp(t)

	_, body := doJSON(t, app, http.MethodPost, "/api/stocks", map[string]any{
		"warehouse_id": testWarehouseID, "product_id": testProductID, "quantity": 1,
	})
	id := body["stock"].(map[string]any)["id"].(string)

	resp, body := doJSON(t, app, http.MethodDelete, "/api/stocks/"+id, nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doJSON(t, app, http.MethodDelete, "/api/stocks/"+id, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, body["success"])
}
