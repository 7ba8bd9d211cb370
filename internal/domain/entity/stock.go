package entity

import "time"

// Stock associates one product with one warehouse and a quantity.
// At most one row exists per (WarehouseID, ProductID) pair; the stocks
// table carries the authoritative unique constraint. Quantity is a
// whole-unit count and never negative.
type Stock struct {
	ID          string
	WarehouseID string
	ProductID   string
	Quantity    int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
