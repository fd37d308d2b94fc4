package store

import (
	"time"

	"github.com/shopspring/decimal"
)

// Store holds the single store profile.
type Store struct {
	ID        string
	Name      string
	Address   *string
	Phone     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Product is one inventory item. StockQty may carry fractions for
// goods sold by volume.
type Product struct {
	ID            string
	Name          string
	SKU           *string
	Unit          string
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	StockQty      decimal.Decimal
	MinStockQty   decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// StockMovementType enum
type StockMovementType string

const (
	MovementRestock    StockMovementType = "restock"
	MovementSale       StockMovementType = "sale"
	MovementAdjustment StockMovementType = "adjustment"
)

// StockMovement records one change to a product's stock level.
type StockMovement struct {
	ID        string
	ProductID string
	Type      StockMovementType
	Quantity  decimal.Decimal
	Note      *string
	CreatedBy *string
	CreatedAt time.Time

	// Joined fields
	ProductName *string
}
