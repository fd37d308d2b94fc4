package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pertashop/backoffice-go/internal/domain/store"
	"github.com/pertashop/backoffice-go/internal/pkg/database"
)

type storeRepository struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.Repository {
	return &storeRepository{db: db}
}

// GetStore implements store.Repository. The stores table holds a single
// row for the store profile.
func (s *storeRepository) GetStore(ctx context.Context) (store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, address, phone, created_at, updated_at
		FROM stores
		ORDER BY created_at ASC
		LIMIT 1
	`

	var st store.Store
	err := q.QueryRow(ctx, query).Scan(&st.ID, &st.Name, &st.Address, &st.Phone, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return st, nil
}

// UpdateStore implements store.Repository.
func (s *storeRepository) UpdateStore(ctx context.Context, st store.Store) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE stores
		SET name = $2, address = $3, phone = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, st.ID, st.Name, st.Address, st.Phone)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

const productColumns = `
	id, name, sku, unit, purchase_price, selling_price,
	stock_qty, min_stock_qty, is_active, created_at, updated_at
`

func scanProduct(row pgx.Row) (store.Product, error) {
	var p store.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.SKU, &p.Unit, &p.PurchasePrice, &p.SellingPrice,
		&p.StockQty, &p.MinStockQty, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

// CreateProduct implements store.Repository.
func (s *storeRepository) CreateProduct(ctx context.Context, p store.Product) (store.Product, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO products (name, sku, unit, purchase_price, selling_price, stock_qty, min_stock_qty, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Name, p.SKU, p.Unit, p.PurchasePrice, p.SellingPrice, p.StockQty, p.MinStockQty, p.IsActive,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return store.Product{}, store.ErrProductAlreadyExists
		}
		return store.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	return p, nil
}

// GetProductByID implements store.Repository.
func (s *storeRepository) GetProductByID(ctx context.Context, id string) (store.Product, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Product{}, store.ErrProductNotFound
		}
		return store.Product{}, fmt.Errorf("failed to get product: %w", err)
	}

	return p, nil
}

// GetProductBySKU implements store.Repository.
func (s *storeRepository) GetProductBySKU(ctx context.Context, sku string) (store.Product, error) {
	q := GetQuerier(ctx, s.db)

	query := `SELECT ` + productColumns + ` FROM products WHERE sku = $1`

	p, err := scanProduct(q.QueryRow(ctx, query, sku))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Product{}, store.ErrProductNotFound
		}
		return store.Product{}, fmt.Errorf("failed to get product by sku: %w", err)
	}

	return p, nil
}

// ListProducts implements store.Repository.
func (s *storeRepository) ListProducts(ctx context.Context, filter store.ProductFilter) ([]store.Product, int64, error) {
	q := GetQuerier(ctx, s.db)

	where := "WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Search != nil {
		where += fmt.Sprintf(" AND (name ILIKE $%d OR sku ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}
	if filter.IsActive != nil {
		where += fmt.Sprintf(" AND is_active = $%d", argPos)
		args = append(args, *filter.IsActive)
		argPos++
	}
	if filter.LowStock {
		where += " AND stock_qty <= min_stock_qty"
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM products ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `SELECT ` + productColumns + ` FROM products ` + where + ` ORDER BY name ASC`
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argPos, argPos+1)
		args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var result []store.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}

	return result, total, nil
}

// UpdateProduct implements store.Repository.
func (s *storeRepository) UpdateProduct(ctx context.Context, p store.Product) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE products
		SET name = $2, sku = $3, unit = $4, purchase_price = $5, selling_price = $6,
			stock_qty = $7, min_stock_qty = $8, is_active = $9, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		p.ID, p.Name, p.SKU, p.Unit, p.PurchasePrice, p.SellingPrice,
		p.StockQty, p.MinStockQty, p.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrProductAlreadyExists
		}
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrProductNotFound
	}

	return nil
}

// DeleteProduct implements store.Repository.
func (s *storeRepository) DeleteProduct(ctx context.Context, id string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrProductNotFound
	}

	return nil
}

// CreateMovement implements store.Repository.
func (s *storeRepository) CreateMovement(ctx context.Context, m store.StockMovement) (store.StockMovement, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stock_movements (product_id, type, quantity, note, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, m.ProductID, m.Type, m.Quantity, m.Note, m.CreatedBy).
		Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return store.StockMovement{}, fmt.Errorf("failed to create stock movement: %w", err)
	}

	return m, nil
}

// ListMovements implements store.Repository.
func (s *storeRepository) ListMovements(ctx context.Context, productID string, limit int) ([]store.StockMovement, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT m.id, m.product_id, m.type, m.quantity, m.note, m.created_by, m.created_at, p.name
		FROM stock_movements m
		JOIN products p ON p.id = m.product_id
		WHERE m.product_id = $1
		ORDER BY m.created_at DESC
	`
	args := []interface{}{productID}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock movements: %w", err)
	}
	defer rows.Close()

	var result []store.StockMovement
	for rows.Next() {
		var m store.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.Type, &m.Quantity, &m.Note, &m.CreatedBy, &m.CreatedAt, &m.ProductName); err != nil {
			return nil, fmt.Errorf("failed to scan stock movement: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock movements: %w", err)
	}

	return result, nil
}
