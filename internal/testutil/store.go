// Package testutil provides an in-memory implementation of the
// persistence ports so use cases and handlers can be tested without a
// database. It mirrors the storage-level invariants the real schema
// enforces: the unique (warehouse_id, product_id) pair and the RESTRICT
// foreign keys from stocks.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/medsupply/stock-api/internal/application/stock"
	"github.com/medsupply/stock-api/internal/domain"
	"github.com/medsupply/stock-api/internal/domain/entity"
	"github.com/medsupply/stock-api/internal/domain/repository"
)

// Store holds all tables in insertion order behind one mutex.
type Store struct {
	mu         sync.Mutex
	countries  []entity.Country
	warehouses []entity.Warehouse
	products   []entity.Product
	stocks     []entity.Stock

	// Err, when set, is returned by every operation to simulate a
	// storage failure.
	Err error
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{}
}

// Seed helpers.

func (s *Store) AddCountry(c entity.Country) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.countries = append(s.countries, c)
}

func (s *Store) AddWarehouse(w entity.Warehouse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warehouses = append(s.warehouses, w)
}

func (s *Store) AddProduct(p entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
}

func (s *Store) AddStock(st entity.Stock) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stocks = append(s.stocks, st)
}

// StockRows returns a snapshot of the stocks table.
func (s *Store) StockRows() []entity.Stock {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Stock, len(s.stocks))
	copy(out, s.stocks)
	return out
}

// Port accessors.

func (s *Store) CountryRepo() repository.CountryRepository     { return &countryRepo{s} }
func (s *Store) WarehouseRepo() repository.WarehouseRepository { return &warehouseRepo{s} }
func (s *Store) ProductRepo() repository.ProductRepository     { return &productRepo{s} }
func (s *Store) StockRepo() repository.StockRepository         { return &stockRepo{s} }

// TxRunner returns a runner that hands the store's own repos to the
// callback; the store's single mutex per operation stands in for the
// database transaction.
func (s *Store) TxRunner() stock.TxRunner { return &txRunner{s} }

type txRunner struct{ s *Store }

func (r *txRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockRepository,
	warehouseRepo repository.WarehouseRepository,
	productRepo repository.ProductRepository,
) error) error {
	if r.s.Err != nil {
		return r.s.Err
	}
	return fn(r.s.StockRepo(), r.s.WarehouseRepo(), r.s.ProductRepo())
}

// countryRepo

type countryRepo struct{ s *Store }

func (r *countryRepo) List(ctx context.Context) ([]repository.CountryWithStats, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]repository.CountryWithStats, 0, len(r.s.countries))
	for _, c := range r.s.countries {
		count := 0
		for _, w := range r.s.warehouses {
			if w.CountryID == c.ID {
				count++
			}
		}
		out = append(out, repository.CountryWithStats{Country: c, WarehouseCount: count})
	}
	return out, nil
}

func (r *countryRepo) GetByID(ctx context.Context, id string) (*entity.Country, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, c := range r.s.countries {
		if c.ID == id {
			out := c
			return &out, nil
		}
	}
	return nil, nil
}

// warehouseRepo

type warehouseRepo struct{ s *Store }

func (r *warehouseRepo) Create(ctx context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	found := false
	for _, c := range r.s.countries {
		if c.ID == warehouse.CountryID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("country %q: %w", warehouse.CountryID, domain.ErrNotFound)
	}
	r.s.warehouses = append(r.s.warehouses, *warehouse)
	return nil
}

func (r *warehouseRepo) GetByID(ctx context.Context, id string) (*entity.Warehouse, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, w := range r.s.warehouses {
		if w.ID == id {
			out := w
			return &out, nil
		}
	}
	return nil, nil
}

func (r *warehouseRepo) GetWithCountry(ctx context.Context, id string) (*repository.WarehouseWithCountry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, w := range r.s.warehouses {
		if w.ID == id {
			out := r.join(w)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *warehouseRepo) Update(ctx context.Context, warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, w := range r.s.warehouses {
		if w.ID == warehouse.ID {
			r.s.warehouses[i] = *warehouse
			return nil
		}
	}
	return nil
}

func (r *warehouseRepo) List(ctx context.Context, countryID string) ([]repository.WarehouseWithCountry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []repository.WarehouseWithCountry
	for _, w := range r.s.warehouses {
		if countryID != "" && w.CountryID != countryID {
			continue
		}
		out = append(out, r.join(w))
	}
	return out, nil
}

func (r *warehouseRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, st := range r.s.stocks {
		if st.WarehouseID == id {
			return domain.ErrWarehouseHasStock
		}
	}
	for i, w := range r.s.warehouses {
		if w.ID == id {
			r.s.warehouses = append(r.s.warehouses[:i], r.s.warehouses[i+1:]...)
			return nil
		}
	}
	return nil
}

// join must be called with the store lock held.
func (r *warehouseRepo) join(w entity.Warehouse) repository.WarehouseWithCountry {
	row := repository.WarehouseWithCountry{Warehouse: w}
	for _, c := range r.s.countries {
		if c.ID == w.CountryID {
			row.CountryName = c.Name
			row.CountryCode = c.Code
			break
		}
	}
	for _, st := range r.s.stocks {
		if st.WarehouseID == w.ID {
			row.StockCount++
		}
	}
	return row
}

// productRepo

type productRepo struct{ s *Store }

func (r *productRepo) Create(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	r.s.products = append(r.s.products, *product)
	return nil
}

func (r *productRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, p := range r.s.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, nil
}

func (r *productRepo) Update(ctx context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, p := range r.s.products {
		if p.ID == product.ID {
			r.s.products[i] = *product
			return nil
		}
	}
	return nil
}

func (r *productRepo) List(ctx context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	out := make([]*entity.Product, 0, len(r.s.products))
	for i := range r.s.products {
		p := r.s.products[i]
		out = append(out, &p)
	}
	return out, nil
}

func (r *productRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, st := range r.s.stocks {
		if st.ProductID == id {
			return domain.ErrProductHasStock
		}
	}
	for i, p := range r.s.products {
		if p.ID == id {
			r.s.products = append(r.s.products[:i], r.s.products[i+1:]...)
			return nil
		}
	}
	return nil
}

// stockRepo

type stockRepo struct{ s *Store }

func (r *stockRepo) Create(ctx context.Context, st *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for _, existing := range r.s.stocks {
		if existing.WarehouseID == st.WarehouseID && existing.ProductID == st.ProductID {
			return domain.ErrDuplicateStock
		}
	}
	wFound, pFound := false, false
	for _, w := range r.s.warehouses {
		if w.ID == st.WarehouseID {
			wFound = true
			break
		}
	}
	for _, p := range r.s.products {
		if p.ID == st.ProductID {
			pFound = true
			break
		}
	}
	if !wFound || !pFound {
		return fmt.Errorf("warehouse or product: %w", domain.ErrNotFound)
	}
	r.s.stocks = append(r.s.stocks, *st)
	return nil
}

func (r *stockRepo) GetByID(ctx context.Context, id string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, st := range r.s.stocks {
		if st.ID == id {
			out := st
			return &out, nil
		}
	}
	return nil, nil
}

func (r *stockRepo) GetByPair(ctx context.Context, warehouseID, productID string) (*entity.Stock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, st := range r.s.stocks {
		if st.WarehouseID == warehouseID && st.ProductID == productID {
			out := st
			return &out, nil
		}
	}
	return nil, nil
}

func (r *stockRepo) GetDetail(ctx context.Context, id string) (*repository.StockDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, st := range r.s.stocks {
		if st.ID == id {
			out := r.join(st)
			return &out, nil
		}
	}
	return nil, nil
}

func (r *stockRepo) Update(ctx context.Context, stock *entity.Stock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, st := range r.s.stocks {
		if st.ID == stock.ID {
			r.s.stocks[i] = *stock
			return nil
		}
	}
	return nil
}

func (r *stockRepo) List(ctx context.Context, filter repository.StockFilter) ([]repository.StockDetail, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	var out []repository.StockDetail
	for _, st := range r.s.stocks {
		if filter.ProductID != "" && st.ProductID != filter.ProductID {
			continue
		}
		if filter.WarehouseID != "" && st.WarehouseID != filter.WarehouseID {
			continue
		}
		out = append(out, r.join(st))
	}
	return out, nil
}

func (r *stockRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, st := range r.s.stocks {
		if st.ID == id {
			r.s.stocks = append(r.s.stocks[:i], r.s.stocks[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stockRepo) CountByWarehouse(ctx context.Context, warehouseID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	count := 0
	for _, st := range r.s.stocks {
		if st.WarehouseID == warehouseID {
			count++
		}
	}
	return count, nil
}

func (r *stockRepo) CountByProduct(ctx context.Context, productID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	count := 0
	for _, st := range r.s.stocks {
		if st.ProductID == productID {
			count++
		}
	}
	return count, nil
}

// join must be called with the store lock held.
func (r *stockRepo) join(st entity.Stock) repository.StockDetail {
	d := repository.StockDetail{Stock: st}
	for _, p := range r.s.products {
		if p.ID == st.ProductID {
			d.ProductName = p.Name
			d.ProductCategory = p.Category
			break
		}
	}
	for _, w := range r.s.warehouses {
		if w.ID == st.WarehouseID {
			d.WarehouseName = w.Name
			d.WarehouseLocation = w.Location
			for _, c := range r.s.countries {
				if c.ID == w.CountryID {
					d.CountryName = c.Name
					break
				}
			}
			break
		}
	}
	return d
}
