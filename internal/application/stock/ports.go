package stock

import (
	"context"

	"github.com/medsupply/stock-api/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction, handing it
// repositories bound to that transaction. The stock create path runs
// through it so existence checks and the insert commit atomically.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error) error
}
