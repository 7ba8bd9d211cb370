package stock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

// UseCase orchestrates stock mutations across warehouses and products:
// referenced entities must exist, at most one row may exist per
// (warehouse, product) pair, and quantities are never negative.
//
// The in-transaction duplicate check is only the fast path; the unique
// constraint on the stocks table is the authoritative guard, so two
// racing creates resolve to exactly one row and one conflict.
type UseCase struct {
	txRunner  TxRunner
	stockRepo repository.StockRepository
}

// NewUseCase builds the orchestrator.
func NewUseCase(txRunner TxRunner, stockRepo repository.StockRepository) *UseCase {
	return &UseCase{txRunner: txRunner, stockRepo: stockRepo}
}

// clampQuantity applies the permissive default: missing input parses as
// zero and negative input is clamped to zero, never stored.
func clampQuantity(q int64) int64 {
	if q < 0 {
		return 0
	}
	return q
}

// Create stocks a product into a warehouse. Fails with not-found for an
// unknown warehouse or product and with a conflict when the pair is
// already stocked; no row is written in either case.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateStockRequest) (*dto.StockResponse, error) {
	if in.WarehouseID == "" {
		return nil, fmt.Errorf("warehouse_id is required: %w", domain.ErrInvalidInput)
	}
	if in.ProductID == "" {
		return nil, fmt.Errorf("product_id is required: %w", domain.ErrInvalidInput)
	}

	now := time.Now()
	row := &entity.Stock{
		ID:          uuid.New().String(),
		WarehouseID: in.WarehouseID,
		ProductID:   in.ProductID,
		Quantity:    clampQuantity(in.Quantity),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		warehouseRepo repository.WarehouseRepository,
		productRepo repository.ProductRepository,
	) error {
		warehouse, err := warehouseRepo.GetByID(ctx, in.WarehouseID)
		if err != nil {
			return err
		}
		if warehouse == nil {
			return fmt.Errorf("warehouse %q: %w", in.WarehouseID, domain.ErrNotFound)
		}
		product, err := productRepo.GetByID(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("product %q: %w", in.ProductID, domain.ErrNotFound)
		}
		existing, err := stockRepo.GetByPair(ctx, in.WarehouseID, in.ProductID)
		if err != nil {
			return err
		}
		if existing != nil {
			return domain.ErrDuplicateStock
		}
		return stockRepo.Create(ctx, row)
	})
	if err != nil {
		return nil, err
	}

	detail, err := uc.stockRepo.GetDetail(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("stock %q: %w", row.ID, domain.ErrNotFound)
	}
	out := toStockResponse(*detail)
	return &out, nil
}

// Update replaces the stored quantity. Absolute set, never an
// increment; the same clamp rule as create applies.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateStockRequest) (*dto.StockResponse, error) {
	row, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("stock %q: %w", id, domain.ErrNotFound)
	}
	row.Quantity = clampQuantity(in.Quantity)
	row.UpdatedAt = time.Now()
	if err := uc.stockRepo.Update(ctx, row); err != nil {
		return nil, err
	}
	detail, err := uc.stockRepo.GetDetail(ctx, id)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, fmt.Errorf("stock %q: %w", id, domain.ErrNotFound)
	}
	out := toStockResponse(*detail)
	return &out, nil
}

// Delete removes a stock row. The warehouse and product themselves are
// untouched.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	row, err := uc.stockRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if row == nil {
		return fmt.Errorf("stock %q: %w", id, domain.ErrNotFound)
	}
	return uc.stockRepo.Delete(ctx, id)
}

// List returns stock rows in insertion order, optionally filtered by
// product, each joined with product and warehouse summaries.
func (uc *UseCase) List(ctx context.Context, productID string) (*dto.StockListResponse, error) {
	list, err := uc.stockRepo.List(ctx, repository.StockFilter{ProductID: productID})
	if err != nil {
		return nil, err
	}
	items := make([]dto.StockResponse, 0, len(list))
	for _, d := range list {
		items = append(items, toStockResponse(d))
	}
	return &dto.StockListResponse{Items: items, Total: len(items)}, nil
}

func toStockResponse(d repository.StockDetail) dto.StockResponse {
	return dto.StockResponse{
		ID:          d.Stock.ID,
		WarehouseID: d.Stock.WarehouseID,
		ProductID:   d.Stock.ProductID,
		Quantity:    d.Stock.Quantity,
		Product: dto.StockProductSummary{
			Name:     d.ProductName,
			Category: d.ProductCategory,
		},
		Warehouse: dto.StockWarehouseSummary{
			Name:     d.WarehouseName,
			Location: d.WarehouseLocation,
			Country:  d.CountryName,
		},
		CreatedAt: d.Stock.CreatedAt,
		UpdatedAt: d.Stock.UpdatedAt,
	}
}
