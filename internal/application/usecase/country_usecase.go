package usecase

import (
	"context"

	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

// CountryUseCase read-only access to reference countries.
type CountryUseCase struct {
	repo repository.CountryRepository
}

// NewCountryUseCase builds the use case.
func NewCountryUseCase(repo repository.CountryRepository) *CountryUseCase {
	return &CountryUseCase{repo: repo}
}

// List returns all countries with their derived warehouse counts.
func (uc *CountryUseCase) List(ctx context.Context) (*dto.CountryListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CountryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CountryResponse{
			ID:             c.Country.ID,
			Name:           c.Country.Name,
			Code:           c.Country.Code,
			WarehouseCount: c.WarehouseCount,
		})
	}
	return &dto.CountryListResponse{Items: items, Total: len(items)}, nil
}
