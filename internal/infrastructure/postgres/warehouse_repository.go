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

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo PostgreSQL adapter for the WarehouseRepository port
// (usable with a pool or tx).
type WarehouseRepo struct {
	q Querier
}

// NewWarehouseRepository builds the adapter. Accepts a pool or tx (Querier).
func NewWarehouseRepository(q Querier) *WarehouseRepo {
	return &WarehouseRepo{q: q}
}

// Create persists a new warehouse.
func (r *WarehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		INSERT INTO warehouses (id, name, location, country_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.CountryID,
		warehouse.CreatedAt, warehouse.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("country %q: %w", warehouse.CountryID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert warehouse: %w", err)
	}
	return nil
}

// GetByID returns one warehouse, or nil when absent.
func (r *WarehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	query := `
		SELECT id, name, location, country_id, created_at, updated_at
		FROM warehouses WHERE id = $1`
	var w entity.Warehouse
	err := r.q.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Location, &w.CountryID, &w.CreatedAt, &w.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse: %w", err)
	}
	return &w, nil
}

// GetWithCountry returns one warehouse joined with its country and the
// stock count computed fresh from the stocks table.
func (r *WarehouseRepo) GetWithCountry(ctx context.Context, id string) (*repository.WarehouseWithCountry, error) {
	query := warehouseJoinQuery + ` WHERE w.id = $1 GROUP BY w.id, c.name, c.code`
	var row repository.WarehouseWithCountry
	err := r.q.QueryRow(ctx, query, id).Scan(
		&row.Warehouse.ID, &row.Warehouse.Name, &row.Warehouse.Location,
		&row.Warehouse.CountryID, &row.Warehouse.CreatedAt, &row.Warehouse.UpdatedAt,
		&row.CountryName, &row.CountryCode, &row.StockCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get warehouse with country: %w", err)
	}
	return &row, nil
}

// Update persists name/location/country changes.
func (r *WarehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	query := `
		UPDATE warehouses SET name = $2, location = $3, country_id = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		warehouse.ID, warehouse.Name, warehouse.Location, warehouse.CountryID, warehouse.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("country %q: %w", warehouse.CountryID, domain.ErrNotFound)
		}
		return fmt.Errorf("update warehouse: %w", err)
	}
	return nil
}

const warehouseJoinQuery = `
	SELECT w.id, w.name, w.location, w.country_id, w.created_at, w.updated_at,
	       c.name, c.code, COUNT(s.id)
	FROM warehouses w
	JOIN countries c ON c.id = w.country_id
	LEFT JOIN stocks s ON s.warehouse_id = w.id`

// List returns warehouses in insertion order, optionally filtered by
// country, each joined with its country and fresh stock count.
func (r *WarehouseRepo) List(ctx context.Context, countryID string) ([]repository.WarehouseWithCountry, error) {
	query := warehouseJoinQuery
	args := []any{}
	if countryID != "" {
		query += ` WHERE w.country_id = $1`
		args = append(args, countryID)
	}
	query += ` GROUP BY w.id, c.name, c.code ORDER BY w.created_at, w.id`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}
	defer rows.Close()
	var list []repository.WarehouseWithCountry
	for rows.Next() {
		var row repository.WarehouseWithCountry
		if err := rows.Scan(
			&row.Warehouse.ID, &row.Warehouse.Name, &row.Warehouse.Location,
			&row.Warehouse.CountryID, &row.Warehouse.CreatedAt, &row.Warehouse.UpdatedAt,
			&row.CountryName, &row.CountryCode, &row.StockCount,
		); err != nil {
			return nil, fmt.Errorf("scan warehouse: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// Delete removes a warehouse. The RESTRICT foreign key on stocks is the
// authoritative guard against deleting a warehouse with ledger rows.
func (r *WarehouseRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrWarehouseHasStock
		}
		return fmt.Errorf("delete warehouse: %w", err)
	}
	return nil
}
