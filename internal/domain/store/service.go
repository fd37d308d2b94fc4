package store

import "context"

type Service interface {
	GetStore(ctx context.Context) (StoreResponse, error)
	UpdateStore(ctx context.Context, req UpdateStoreRequest) (StoreResponse, error)

	CreateProduct(ctx context.Context, req CreateProductRequest) (ProductResponse, error)
	GetProduct(ctx context.Context, id string) (ProductResponse, error)
	ListProducts(ctx context.Context, filter ProductFilter) (ListProductResponse, error)
	UpdateProduct(ctx context.Context, req UpdateProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error

	RecordMovement(ctx context.Context, req StockMovementRequest) (ProductResponse, error)
	ListMovements(ctx context.Context, productID string, limit int) ([]MovementResponse, error)
}
