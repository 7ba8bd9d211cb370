package repository

import (
	"context"

	"github.com/medsupply/stock-api/internal/domain/entity"
)

// StockDetail is a stock row joined with enough product and warehouse
// summary data for display without follow-up lookups.
type StockDetail struct {
	Stock             entity.Stock
	ProductName       string
	ProductCategory   string
	WarehouseName     string
	WarehouseLocation string
	CountryName       string
}

// StockFilter narrows List results. Empty fields mean no filter.
type StockFilter struct {
	ProductID   string
	WarehouseID string
}

// StockRepository defines the persistence port for the stock ledger.
// Create must surface a unique-constraint violation on the
// (warehouse_id, product_id) pair as domain.ErrDuplicateStock so racing
// creates resolve deterministically.
type StockRepository interface {
	Create(ctx context.Context, stock *entity.Stock) error
	GetByID(ctx context.Context, id string) (*entity.Stock, error)
	GetByPair(ctx context.Context, warehouseID, productID string) (*entity.Stock, error)
	GetDetail(ctx context.Context, id string) (*StockDetail, error)
	Update(ctx context.Context, stock *entity.Stock) error
	List(ctx context.Context, filter StockFilter) ([]StockDetail, error)
	Delete(ctx context.Context, id string) error
	CountByWarehouse(ctx context.Context, warehouseID string) (int, error)
	CountByProduct(ctx context.Context, productID string) (int, error)
}
