package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/store"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
	"github.com/pertashop/backoffice-go/internal/repository/postgresql"
)

type StoreServiceImpl struct {
	store.Repository
	db *database.DB
}

func NewStoreService(db *database.DB, repo store.Repository) store.Service {
	return &StoreServiceImpl{Repository: repo, db: db}
}

func toStoreResponse(s store.Store) store.StoreResponse {
	return store.StoreResponse{
		ID:        s.ID,
		Name:      s.Name,
		Address:   s.Address,
		Phone:     s.Phone,
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

func toProductResponse(p store.Product) store.ProductResponse {
	return store.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		SKU:           p.SKU,
		Unit:          p.Unit,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		StockQty:      p.StockQty,
		MinStockQty:   p.MinStockQty,
		LowStock:      p.StockQty.LessThanOrEqual(p.MinStockQty),
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     p.UpdatedAt.Format(time.RFC3339),
	}
}

func toMovementResponse(m store.StockMovement) store.MovementResponse {
	return store.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Note:        m.Note,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// GetStore implements store.Service.
func (s *StoreServiceImpl) GetStore(ctx context.Context) (store.StoreResponse, error) {
	st, err := s.Repository.GetStore(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}
	return toStoreResponse(st), nil
}

// UpdateStore implements store.Service.
func (s *StoreServiceImpl) UpdateStore(ctx context.Context, req store.UpdateStoreRequest) (store.StoreResponse, error) {
	if err := req.Validate(); err != nil {
		return store.StoreResponse{}, err
	}

	st, err := s.Repository.GetStore(ctx)
	if err != nil {
		return store.StoreResponse{}, err
	}

	if req.Name != nil {
		st.Name = *req.Name
	}
	if req.Address != nil {
		st.Address = req.Address
	}
	if req.Phone != nil {
		st.Phone = req.Phone
	}

	if err := s.Repository.UpdateStore(ctx, st); err != nil {
		return store.StoreResponse{}, err
	}

	return toStoreResponse(st), nil
}

// CreateProduct implements store.Service.
func (s *StoreServiceImpl) CreateProduct(ctx context.Context, req store.CreateProductRequest) (store.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return store.ProductResponse{}, err
	}

	created, err := s.Repository.CreateProduct(ctx, store.Product{
		Name:          req.Name,
		SKU:           req.SKU,
		Unit:          req.Unit,
		PurchasePrice: req.PurchasePrice,
		SellingPrice:  req.SellingPrice,
		StockQty:      req.StockQty,
		MinStockQty:   req.MinStockQty,
		IsActive:      true,
	})
	if err != nil {
		return store.ProductResponse{}, err
	}

	return toProductResponse(created), nil
}

// GetProduct implements store.Service.
func (s *StoreServiceImpl) GetProduct(ctx context.Context, id string) (store.ProductResponse, error) {
	p, err := s.Repository.GetProductByID(ctx, id)
	if err != nil {
		return store.ProductResponse{}, err
	}
	return toProductResponse(p), nil
}

// ListProducts implements store.Service.
func (s *StoreServiceImpl) ListProducts(ctx context.Context, filter store.ProductFilter) (store.ListProductResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	products, total, err := s.Repository.ListProducts(ctx, filter)
	if err != nil {
		return store.ListProductResponse{}, err
	}

	data := make([]store.ProductResponse, 0, len(products))
	for _, p := range products {
		data = append(data, toProductResponse(p))
	}

	return store.ListProductResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// UpdateProduct implements store.Service. Stock is never patched here;
// it only moves through RecordMovement.
func (s *StoreServiceImpl) UpdateProduct(ctx context.Context, req store.UpdateProductRequest) (store.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return store.ProductResponse{}, err
	}

	p, err := s.Repository.GetProductByID(ctx, req.ID)
	if err != nil {
		return store.ProductResponse{}, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.SKU != nil {
		p.SKU = req.SKU
	}
	if req.Unit != nil {
		p.Unit = *req.Unit
	}
	if req.PurchasePrice != nil {
		p.PurchasePrice = *req.PurchasePrice
	}
	if req.SellingPrice != nil {
		p.SellingPrice = *req.SellingPrice
	}
	if req.MinStockQty != nil {
		p.MinStockQty = *req.MinStockQty
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.Repository.UpdateProduct(ctx, p); err != nil {
		return store.ProductResponse{}, err
	}

	return toProductResponse(p), nil
}

// DeleteProduct implements store.Service.
func (s *StoreServiceImpl) DeleteProduct(ctx context.Context, id string) error {
	return s.Repository.DeleteProduct(ctx, id)
}

// RecordMovement implements store.Service. Restocks add, sales subtract,
// adjustments apply their signed quantity. The stock level can never go
// below zero.
func (s *StoreServiceImpl) RecordMovement(ctx context.Context, req store.StockMovementRequest) (store.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return store.ProductResponse{}, err
	}

	p, err := s.Repository.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return store.ProductResponse{}, err
	}

	delta := req.Quantity
	if req.Type == store.MovementSale {
		delta = delta.Neg()
	}

	newQty := p.StockQty.Add(delta)
	if newQty.IsNegative() {
		return store.ProductResponse{}, store.ErrInsufficientStock
	}
	p.StockQty = newQty

	var createdBy *string
	if _, claims, err := jwtauth.FromContext(ctx); err == nil {
		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			createdBy = &userID
		}
	}

	// The stock update and the movement row must land together.
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.Repository.UpdateProduct(txCtx, p); err != nil {
			return err
		}

		if _, err := s.Repository.CreateMovement(txCtx, store.StockMovement{
			ProductID: req.ProductID,
			Type:      req.Type,
			Quantity:  req.Quantity,
			Note:      req.Note,
			CreatedBy: createdBy,
		}); err != nil {
			return fmt.Errorf("failed to record movement: %w", err)
		}
		return nil
	})
	if err != nil {
		return store.ProductResponse{}, err
	}

	return toProductResponse(p), nil
}

// ListMovements implements store.Service.
func (s *StoreServiceImpl) ListMovements(ctx context.Context, productID string, limit int) ([]store.MovementResponse, error) {
	movements, err := s.Repository.ListMovements(ctx, productID, limit)
	if err != nil {
		return nil, err
	}

	data := make([]store.MovementResponse, 0, len(movements))
	for _, m := range movements {
		data = append(data, toMovementResponse(m))
	}

	return data, nil
}
