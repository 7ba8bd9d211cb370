package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/application/usecase"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/testutil"
)

func newProductUC(store *testutil.Store) *usecase.ProductUseCase {
	return usecase.NewProductUseCase(store.ProductRepo(), store.StockRepo())
}

func TestProductCreate_DefaultsAndStatus(t *testing.T) {
	store := testutil.NewStore()
	uc := newProductUC(store)

	out, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Nitrile Gloves"})
	require.NoError(t, err)
	assert.True(t, out.Price.IsZero(), "price defaults to 0 when absent")
	assert.Equal(t, entity.ProductStatusActive, out.Status)
	assert.Empty(t, store.StockRows(), "creating a product never creates stock")
}

func TestProductCreate_RejectsBlankName(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductCreate_RejectsNegativePrice(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	price := decimal.NewFromInt(-5)
	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Gloves", Price: &price})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_PartialIncludingStatus(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	price := decimal.RequireFromString("12.50")
	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name: "Nitrile Gloves", Category: "Disposables", Price: &price,
	})
	require.NoError(t, err)

	inactive := entity.ProductStatusInactive
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Status: &inactive})
	require.NoError(t, err)
	assert.Equal(t, entity.ProductStatusInactive, out.Status)
	assert.Equal(t, "Nitrile Gloves", out.Name, "unsupplied fields stay unchanged")
	assert.True(t, out.Price.Equal(price))

	bogus := "archived"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUpdate_UnknownIDIsNotFound(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	name := "x"
	_, err := uc.Update(context.Background(), "missing", dto.UpdateProductRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductList_ReturnsAll(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Gloves"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "Masks"})
	require.NoError(t, err)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list.Items, 2)
	assert.Equal(t, 2, list.Total)
}

func TestProductDelete_BlockedWhileStockExists(t *testing.T) {
	store := testutil.NewStore()
	store.AddCountry(entity.Country{ID: "SA", Name: "Saudi Arabia"})
	store.AddWarehouse(entity.Warehouse{ID: "w1", Name: "Riyadh Main", CountryID: "SA"})
	uc := newProductUC(store)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Gloves"})
	require.NoError(t, err)
	store.AddStock(entity.Stock{ID: "s1", WarehouseID: "w1", ProductID: created.ID, Quantity: 1})

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestProductDelete_SucceedsWithoutStock(t *testing.T) {
	uc := newProductUC(testutil.NewStore())

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Gloves"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	_, err = uc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
