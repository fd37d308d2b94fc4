package store

import (
	"github.com/pertashop/backoffice-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type UpdateStoreRequest struct {
	Name    *string `json:"name,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}

func (r *UpdateStoreRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateProductRequest struct {
	Name          string          `json:"name"`
	SKU           *string         `json:"sku,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQty      decimal.Decimal `json:"stock_qty"`
	MinStockQty   decimal.Decimal `json:"min_stock_qty"`
}

func (r *CreateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "is required"})
	}
	if r.PurchasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "purchase_price", Message: "must be non-negative"})
	}
	if r.SellingPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "selling_price", Message: "must be non-negative"})
	}
	if r.StockQty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "stock_qty", Message: "must be non-negative"})
	}
	if r.MinStockQty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_stock_qty", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateProductRequest struct {
	ID            string
	Name          *string          `json:"name,omitempty"`
	SKU           *string          `json:"sku,omitempty"`
	Unit          *string          `json:"unit,omitempty"`
	PurchasePrice *decimal.Decimal `json:"purchase_price,omitempty"`
	SellingPrice  *decimal.Decimal `json:"selling_price,omitempty"`
	MinStockQty   *decimal.Decimal `json:"min_stock_qty,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

func (r *UpdateProductRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "cannot be empty"})
	}
	if r.Unit != nil && validator.IsEmpty(*r.Unit) {
		errs = append(errs, validator.ValidationError{Field: "unit", Message: "cannot be empty"})
	}
	if r.PurchasePrice != nil && r.PurchasePrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "purchase_price", Message: "must be non-negative"})
	}
	if r.SellingPrice != nil && r.SellingPrice.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "selling_price", Message: "must be non-negative"})
	}
	if r.MinStockQty != nil && r.MinStockQty.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "min_stock_qty", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StockMovementRequest struct {
	ProductID string            `json:"-"`
	Type      StockMovementType `json:"type"`
	Quantity  decimal.Decimal   `json:"quantity"`
	Note      *string           `json:"note,omitempty"`
}

func (r *StockMovementRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Type), []string{string(MovementRestock), string(MovementSale), string(MovementAdjustment)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of: restock, sale, adjustment"})
	}
	if r.Quantity.IsZero() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must not be zero"})
	}
	// Only adjustments may be negative.
	if r.Type != MovementAdjustment && r.Quantity.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "quantity", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StoreResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   *string `json:"address,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	UpdatedAt string  `json:"updated_at"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	SKU           *string         `json:"sku,omitempty"`
	Unit          string          `json:"unit"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	StockQty      decimal.Decimal `json:"stock_qty"`
	MinStockQty   decimal.Decimal `json:"min_stock_qty"`
	LowStock      bool            `json:"low_stock"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

type MovementResponse struct {
	ID          string            `json:"id"`
	ProductID   string            `json:"product_id"`
	ProductName *string           `json:"product_name,omitempty"`
	Type        StockMovementType `json:"type"`
	Quantity    decimal.Decimal   `json:"quantity"`
	Note        *string           `json:"note,omitempty"`
	CreatedBy   *string           `json:"created_by,omitempty"`
	CreatedAt   string            `json:"created_at"`
}

type ProductFilter struct {
	Search   *string
	IsActive *bool
	LowStock bool
	Page     int
	Limit    int
}

type ListProductResponse struct {
	Data       []ProductResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}
