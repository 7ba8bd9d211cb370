package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo PostgreSQL adapter for the stock ledger (usable with a pool
// or tx). The UNIQUE (warehouse_id, product_id) constraint on the
// stocks table backs the one-row-per-pair invariant.
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the adapter. Accepts a pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Create inserts a stock row. A racing insert on the same pair loses
// the unique constraint and surfaces as domain.ErrDuplicateStock; an
// FK violation means the warehouse or product vanished concurrently.
func (r *StockRepo) Create(ctx context.Context, stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, warehouse_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		stock.ID, stock.WarehouseID, stock.ProductID, stock.Quantity,
		stock.CreatedAt, stock.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateStock
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("warehouse or product: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID returns one stock row, or nil when absent.
func (r *StockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, created_at, updated_at
		FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.WarehouseID, &s.ProductID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetByPair returns the row for a (warehouse, product) pair, or nil.
func (r *StockRepo) GetByPair(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	query := `
		SELECT id, warehouse_id, product_id, quantity, created_at, updated_at
		FROM stocks WHERE warehouse_id = $1 AND product_id = $2`
	var s entity.Stock
	err := r.q.QueryRow(ctx, query, warehouseID, productID).Scan(
		&s.ID, &s.WarehouseID, &s.ProductID, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock by pair: %w", err)
	}
	return &s, nil
}

const stockJoinQuery = `
	SELECT s.id, s.warehouse_id, s.product_id, s.quantity, s.created_at, s.updated_at,
	       p.name, p.category, w.name, w.location, c.name
	FROM stocks s
	JOIN products p ON p.id = s.product_id
	JOIN warehouses w ON w.id = s.warehouse_id
	JOIN countries c ON c.id = w.country_id`

// GetDetail returns one stock row joined with its product and warehouse
// summaries, or nil when absent.
func (r *StockRepo) GetDetail(ctx context.Context, id string) (*repository.StockDetail, error) {
	query := stockJoinQuery + ` WHERE s.id = $1`
	var d repository.StockDetail
	err := r.q.QueryRow(ctx, query, id).Scan(
		&d.Stock.ID, &d.Stock.WarehouseID, &d.Stock.ProductID, &d.Stock.Quantity,
		&d.Stock.CreatedAt, &d.Stock.UpdatedAt,
		&d.ProductName, &d.ProductCategory, &d.WarehouseName, &d.WarehouseLocation, &d.CountryName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock detail: %w", err)
	}
	return &d, nil
}

// Update replaces the stored quantity (absolute set).
func (r *StockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	query := `UPDATE stocks SET quantity = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, stock.ID, stock.Quantity, stock.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	return nil
}

// List returns stock rows in insertion order with product and warehouse
// summaries, filtered by product and/or warehouse when set.
func (r *StockRepo) List(ctx context.Context, filter repository.StockFilter) ([]repository.StockDetail, error) {
	query := stockJoinQuery
	args := []any{}
	switch {
	case filter.ProductID != "" && filter.WarehouseID != "":
		query += ` WHERE s.product_id = $1 AND s.warehouse_id = $2`
		args = append(args, filter.ProductID, filter.WarehouseID)
	case filter.ProductID != "":
		query += ` WHERE s.product_id = $1`
		args = append(args, filter.ProductID)
	case filter.WarehouseID != "":
		query += ` WHERE s.warehouse_id = $1`
		args = append(args, filter.WarehouseID)
	}
	query += ` ORDER BY s.created_at, s.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []repository.StockDetail
	for rows.Next() {
		var d repository.StockDetail
		if err := rows.Scan(
			&d.Stock.ID, &d.Stock.WarehouseID, &d.Stock.ProductID, &d.Stock.Quantity,
			&d.Stock.CreatedAt, &d.Stock.UpdatedAt,
			&d.ProductName, &d.ProductCategory, &d.WarehouseName, &d.WarehouseLocation, &d.CountryName,
		); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Delete removes a stock row. No cascades.
func (r *StockRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	return nil
}

// CountByWarehouse returns the number of stock rows for a warehouse.
func (r *StockRepo) CountByWarehouse(ctx context.Context, warehouseID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stocks WHERE warehouse_id = $1`, warehouseID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stocks by warehouse: %w", err)
	}
	return count, nil
}

// CountByProduct returns the number of stock rows for a product.
func (r *StockRepo) CountByProduct(ctx context.Context, productID string) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM stocks WHERE product_id = $1`, productID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count stocks by product: %w", err)
	}
	return count, nil
}
