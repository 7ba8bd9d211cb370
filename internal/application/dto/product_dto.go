package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest input to create a product. Price defaults to 0
// when absent. No stock row is created here.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description"`
}

// UpdateProductRequest partial update; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Description *string          `json:"description"`
	Status      *string          `json:"status"`
}

// ProductResponse output for a product.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductEnvelope wraps a single product in the mutation envelope.
type ProductEnvelope struct {
	Success bool             `json:"success"`
	Product *ProductResponse `json:"product"`
}

// ProductListResponse lists products in insertion order.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
