package dto

import "time"

// CreateStockRequest input to stock a product into a warehouse.
// A missing quantity is treated as zero; negative input is clamped to
// zero rather than rejected.
type CreateStockRequest struct {
	WarehouseID string `json:"warehouse_id"`
	ProductID   string `json:"product_id"`
	Quantity    int64  `json:"quantity"`
}

// UpdateStockRequest replaces the stored quantity (absolute set, never
// an increment).
type UpdateStockRequest struct {
	Quantity int64 `json:"quantity"`
}

// StockProductSummary product fields nested in a stock response.
type StockProductSummary struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

// StockWarehouseSummary warehouse fields nested in a stock response.
type StockWarehouseSummary struct {
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Country  string `json:"country,omitempty"`
}

// StockResponse output for a stock row, joined with product and
// warehouse summaries so callers need no follow-up lookups.
type StockResponse struct {
	ID          string                `json:"id"`
	WarehouseID string                `json:"warehouse_id"`
	ProductID   string                `json:"product_id"`
	Quantity    int64                 `json:"quantity"`
	Product     StockProductSummary   `json:"product"`
	Warehouse   StockWarehouseSummary `json:"warehouse"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

// StockEnvelope wraps a single stock row in the mutation envelope.
type StockEnvelope struct {
	Success bool           `json:"success"`
	Stock   *StockResponse `json:"stock"`
}

// StockListResponse lists stock rows in insertion order.
type StockListResponse struct {
	Items []StockResponse `json:"items"`
	Total int             `json:"total"`
}
