package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medsupply/stock-api/internal/application/dto"
	"github.com/medsupply/stock-api/internal/application/usecase"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/testutil"
)

func newWarehouseUC(store *testutil.Store) *usecase.WarehouseUseCase {
	return usecase.NewWarehouseUseCase(store.WarehouseRepo(), store.CountryRepo(), store.StockRepo())
}

func storeWithCountries() *testutil.Store {
	store := testutil.NewStore()
	store.AddCountry(entity.Country{ID: "SA", Name: "Saudi Arabia", Code: "SA"})
	store.AddCountry(entity.Country{ID: "AE", Name: "United Arab Emirates", Code: "AE"})
	return store
}

func TestWarehouseCreate_Succeeds(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	out, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Riyadh Main", Location: "Industrial City 2", CountryID: "SA",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Riyadh Main", out.Name)
	assert.Equal(t, "Saudi Arabia", out.CountryName)
	assert.Equal(t, 0, out.StockCount, "a new warehouse starts with no stock")
	assert.Empty(t, out.Stocks)
}

func TestWarehouseCreate_RejectsBlankName(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "", CountryID: "SA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "   ", CountryID: "SA"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "whitespace-only names are blank")
}

func TestWarehouseCreate_RejectsMissingOrUnknownCountry(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	_, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main", CountryID: "XX"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUpdate_PartialFieldsOnly(t *testing.T) {
	store := storeWithCountries()
	uc := newWarehouseUC(store)

	created, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{
		Name: "Riyadh Main", Location: "Old Site", CountryID: "SA",
	})
	require.NoError(t, err)

	newName := "Riyadh Central"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateWarehouseRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Riyadh Central", out.Name)
	assert.Equal(t, "Old Site", out.Location, "unsupplied fields stay unchanged")
	assert.Equal(t, "SA", out.CountryID)

	newCountry := "AE"
	out, err = uc.Update(context.Background(), created.ID, dto.UpdateWarehouseRequest{CountryID: &newCountry})
	require.NoError(t, err)
	assert.Equal(t, "United Arab Emirates", out.CountryName)
}

func TestWarehouseUpdate_ValidatesSuppliedFields(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	created, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main", CountryID: "SA"})
	require.NoError(t, err)

	blank := "  "
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateWarehouseRequest{Name: &blank})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	unknown := "XX"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateWarehouseRequest{CountryID: &unknown})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseUpdate_UnknownIDIsNotFound(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	name := "x"
	_, err := uc.Update(context.Background(), "missing", dto.UpdateWarehouseRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWarehouseList_FiltersByCountryAndCountsStockFresh(t *testing.T) {
	store := storeWithCountries()
	uc := newWarehouseUC(store)

	riyadh, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main", CountryID: "SA"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Dubai Hub", CountryID: "AE"})
	require.NoError(t, err)

	store.AddProduct(entity.Product{ID: "p1", Name: "Nitrile Gloves", Category: "Disposables", Status: entity.ProductStatusActive})
	store.AddStock(entity.Stock{ID: "s1", WarehouseID: riyadh.ID, ProductID: "p1", Quantity: 5000, UpdatedAt: time.Now()})

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all.Items, 2)

	sa, err := uc.List(context.Background(), "SA")
	require.NoError(t, err)
	require.Len(t, sa.Items, 1)
	assert.Equal(t, 1, sa.Items[0].StockCount, "stock count is recomputed from the ledger")
	require.Len(t, sa.Items[0].Stocks, 1)
	assert.Equal(t, "Nitrile Gloves", sa.Items[0].Stocks[0].ProductName)
	assert.EqualValues(t, 5000, sa.Items[0].Stocks[0].Quantity)

	// Repeated reads are idempotent.
	again, err := uc.List(context.Background(), "SA")
	require.NoError(t, err)
	assert.Equal(t, 1, again.Items[0].StockCount)
}

func TestWarehouseDelete_BlockedWhileStockExists(t *testing.T) {
	store := storeWithCountries()
	uc := newWarehouseUC(store)

	created, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main", CountryID: "SA"})
	require.NoError(t, err)
	store.AddProduct(entity.Product{ID: "p1", Name: "Nitrile Gloves", Status: entity.ProductStatusActive})
	store.AddStock(entity.Stock{ID: "s1", WarehouseID: created.ID, ProductID: "p1", Quantity: 1})

	err = uc.Delete(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrConflict)

	// Still listed.
	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, list.Items, 1)
}

func TestWarehouseDelete_SucceedsWhenEmpty(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	created, err := uc.Create(context.Background(), dto.CreateWarehouseRequest{Name: "Riyadh Main", CountryID: "SA"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	list, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestWarehouseDelete_UnknownIDIsNotFound(t *testing.T) {
	uc := newWarehouseUC(storeWithCountries())

	err := uc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
