package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

var _ repository.CountryRepository = (*CountryRepo)(nil)

// CountryRepo read-only adapter for reference countries.
type CountryRepo struct {
	q Querier
}

// NewCountryRepository builds the adapter. Accepts a pool or tx (Querier).
func NewCountryRepository(q Querier) *CountryRepo {
	return &CountryRepo{q: q}
}

// List returns all countries with the warehouse count computed by join.
func (r *CountryRepo) List(ctx context.Context) ([]repository.CountryWithStats, error) {
	query := `
		SELECT c.id, c.name, c.code, COUNT(w.id)
		FROM countries c
		LEFT JOIN warehouses w ON w.country_id = c.id
		GROUP BY c.id, c.name, c.code
		ORDER BY c.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	var list []repository.CountryWithStats
	for rows.Next() {
		var row repository.CountryWithStats
		if err := rows.Scan(&row.Country.ID, &row.Country.Name, &row.Country.Code, &row.WarehouseCount); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// GetByID returns one country, or nil when absent.
func (r *CountryRepo) GetByID(ctx context.Context, id string) (*entity.Country, error) {
	query := `SELECT id, name, code FROM countries WHERE id = $1`
	var c entity.Country
	err := r.q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return &c, nil
}
