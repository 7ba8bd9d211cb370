package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product status values.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product is a catalog item. It exists independently of any warehouse;
// per-warehouse quantities live in Stock. Category is a free-text label,
// not a foreign key.
type Product struct {
	ID          string
	Name        string
	Category    string
	Price       decimal.Decimal
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
