package store

import "context"

// Repository defines data access methods for the store profile,
// products and stock movements.
type Repository interface {
	GetStore(ctx context.Context) (Store, error)
	UpdateStore(ctx context.Context, s Store) error

	CreateProduct(ctx context.Context, p Product) (Product, error)
	GetProductByID(ctx context.Context, id string) (Product, error)
	GetProductBySKU(ctx context.Context, sku string) (Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, int64, error)
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateMovement(ctx context.Context, m StockMovement) (StockMovement, error)
	ListMovements(ctx context.Context, productID string, limit int) ([]StockMovement, error)
}
