package repository

import (
	"context"

	"github.com/medsupply/stock-api/internal/domain/entity"
)

// CountryWithStats is a country joined with its derived warehouse count.
type CountryWithStats struct {
	Country        entity.Country
	WarehouseCount int
}

// CountryRepository is the read-only port for reference data.
type CountryRepository interface {
	List(ctx context.Context) ([]CountryWithStats, error)
	GetByID(ctx context.Context, id string) (*entity.Country, error)
}
