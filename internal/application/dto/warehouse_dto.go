package dto

import "time"

// CreateWarehouseRequest input to create a warehouse.
type CreateWarehouseRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	CountryID string `json:"country_id"`
}

// UpdateWarehouseRequest partial update; nil fields are left unchanged.
type UpdateWarehouseRequest struct {
	Name      *string `json:"name"`
	Location  *string `json:"location"`
	CountryID *string `json:"country_id"`
}

// WarehouseStockRow is a stock row nested in a warehouse response,
// joined with its product summary.
type WarehouseStockRow struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	ProductCategory string    `json:"product_category,omitempty"`
	Quantity        int64     `json:"quantity"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WarehouseResponse output for a warehouse. StockCount is computed from
// the stocks table on every read.
type WarehouseResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Location    string              `json:"location,omitempty"`
	CountryID   string              `json:"country_id"`
	CountryName string              `json:"country_name"`
	CountryCode string              `json:"country_code,omitempty"`
	StockCount  int                 `json:"stock_count"`
	Stocks      []WarehouseStockRow `json:"stocks"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// WarehouseEnvelope wraps a single warehouse in the mutation envelope.
type WarehouseEnvelope struct {
	Success   bool               `json:"success"`
	Warehouse *WarehouseResponse `json:"warehouse"`
}

// WarehouseListResponse lists warehouses in insertion order.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}
