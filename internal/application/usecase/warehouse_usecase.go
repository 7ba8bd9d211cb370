package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

// WarehouseUseCase CRUD over warehouses. Reads join the country summary
// and nest the warehouse's stock rows; the stock count is always
// recomputed from the ledger, never cached.
type WarehouseUseCase struct {
	repo        repository.WarehouseRepository
	countryRepo repository.CountryRepository
	stockRepo   repository.StockRepository
}

// NewWarehouseUseCase builds the use case.
func NewWarehouseUseCase(
	repo repository.WarehouseRepository,
	countryRepo repository.CountryRepository,
	stockRepo repository.StockRepository,
) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo, countryRepo: countryRepo, stockRepo: stockRepo}
}

// Create validates and persists a new warehouse. Name must be non-blank
// and the country must exist.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}
	if in.CountryID == "" {
		return nil, fmt.Errorf("country_id is required: %w", domain.ErrInvalidInput)
	}
	country, err := uc.countryRepo.GetByID(ctx, in.CountryID)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, fmt.Errorf("country %q: %w", in.CountryID, domain.ErrNotFound)
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      name,
		Location:  strings.TrimSpace(in.Location),
		CountryID: in.CountryID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, warehouse); err != nil {
		return nil, err
	}
	return &dto.WarehouseResponse{
		ID:          warehouse.ID,
		Name:        warehouse.Name,
		Location:    warehouse.Location,
		CountryID:   warehouse.CountryID,
		CountryName: country.Name,
		CountryCode: country.Code,
		StockCount:  0,
		Stocks:      []dto.WarehouseStockRow{},
		CreatedAt:   warehouse.CreatedAt,
		UpdatedAt:   warehouse.UpdatedAt,
	}, nil
}

// GetByID returns one warehouse with country, stock rows and fresh count.
func (uc *WarehouseUseCase) GetByID(ctx context.Context, id string) (*dto.WarehouseResponse, error) {
	row, err := uc.repo.GetWithCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("warehouse %q: %w", id, domain.ErrNotFound)
	}
	stocks, err := uc.stockRepo.List(ctx, repository.StockFilter{WarehouseID: id})
	if err != nil {
		return nil, err
	}
	out := toWarehouseResponse(*row, stocks)
	return &out, nil
}

// Update applies a partial update. Supplied fields get the same
// validation as on create; nil fields are left unchanged.
func (uc *WarehouseUseCase) Update(ctx context.Context, id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, fmt.Errorf("warehouse %q: %w", id, domain.ErrNotFound)
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("name must not be blank: %w", domain.ErrInvalidInput)
		}
		warehouse.Name = name
	}
	if in.Location != nil {
		warehouse.Location = strings.TrimSpace(*in.Location)
	}
	if in.CountryID != nil {
		if *in.CountryID == "" {
			return nil, fmt.Errorf("country_id must not be empty: %w", domain.ErrInvalidInput)
		}
		country, err := uc.countryRepo.GetByID(ctx, *in.CountryID)
		if err != nil {
			return nil, err
		}
		if country == nil {
			return nil, fmt.Errorf("country %q: %w", *in.CountryID, domain.ErrNotFound)
		}
		warehouse.CountryID = *in.CountryID
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, warehouse); err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// List returns warehouses in insertion order, optionally filtered by
// country, each with its nested stock rows.
func (uc *WarehouseUseCase) List(ctx context.Context, countryID string) (*dto.WarehouseListResponse, error) {
	list, err := uc.repo.List(ctx, countryID)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.stockRepo.List(ctx, repository.StockFilter{})
	if err != nil {
		return nil, err
	}
	byWarehouse := make(map[string][]repository.StockDetail, len(list))
	for _, s := range stocks {
		byWarehouse[s.Stock.WarehouseID] = append(byWarehouse[s.Stock.WarehouseID], s)
	}
	items := make([]dto.WarehouseResponse, 0, len(list))
	for _, row := range list {
		items = append(items, toWarehouseResponse(row, byWarehouse[row.Warehouse.ID]))
	}
	return &dto.WarehouseListResponse{Items: items, Total: len(items)}, nil
}

// Delete removes a warehouse. Blocked with a conflict while stock rows
// still reference it; the cascade alternative would silently destroy
// ledger rows.
func (uc *WarehouseUseCase) Delete(ctx context.Context, id string) error {
	warehouse, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return fmt.Errorf("warehouse %q: %w", id, domain.ErrNotFound)
	}
	count, err := uc.stockRepo.CountByWarehouse(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrWarehouseHasStock
	}
	return uc.repo.Delete(ctx, id)
}

func toWarehouseResponse(row repository.WarehouseWithCountry, stocks []repository.StockDetail) dto.WarehouseResponse {
	rows := make([]dto.WarehouseStockRow, 0, len(stocks))
	for _, s := range stocks {
		rows = append(rows, dto.WarehouseStockRow{
			ID:              s.Stock.ID,
			ProductID:       s.Stock.ProductID,
			ProductName:     s.ProductName,
			ProductCategory: s.ProductCategory,
			Quantity:        s.Stock.Quantity,
			UpdatedAt:       s.Stock.UpdatedAt,
		})
	}
	return dto.WarehouseResponse{
		ID:          row.Warehouse.ID,
		Name:        row.Warehouse.Name,
		Location:    row.Warehouse.Location,
		CountryID:   row.Warehouse.CountryID,
		CountryName: row.CountryName,
		CountryCode: row.CountryCode,
		StockCount:  row.StockCount,
		Stocks:      rows,
		CreatedAt:   row.Warehouse.CreatedAt,
		UpdatedAt:   row.Warehouse.UpdatedAt,
	}
}
