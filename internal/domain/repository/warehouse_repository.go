package repository

import (
	"context"

	"github.com/medsupply/stock-api/internal/domain/entity"
)

// WarehouseWithCountry is a warehouse joined with its country summary and
// the stock-row count computed fresh from the stocks table.
type WarehouseWithCountry struct {
	Warehouse   entity.Warehouse
	CountryName string
	CountryCode string
	StockCount  int
}

// WarehouseRepository defines the persistence port for Warehouse.
type WarehouseRepository interface {
	Create(ctx context.Context, warehouse *entity.Warehouse) error
	GetByID(ctx context.Context, id string) (*entity.Warehouse, error)
	GetWithCountry(ctx context.Context, id string) (*WarehouseWithCountry, error)
	Update(ctx context.Context, warehouse *entity.Warehouse) error
	// List returns warehouses in insertion order, optionally filtered by
	// country. countryID empty means no filter.
	List(ctx context.Context, countryID string) ([]WarehouseWithCountry, error)
	Delete(ctx context.Context, id string) error
}
