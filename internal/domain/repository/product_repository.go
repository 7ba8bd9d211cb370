package repository

import (
	"context"

	"github.com/medsupply/stock-api/internal/domain/entity"
)

// ProductRepository defines the persistence port for Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// List returns all products in insertion order.
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
