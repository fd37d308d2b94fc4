package deposit

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item is one expense or income entry attached to a daily deposit.
type Item struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Deposit is one day's setoran record: fuel meter readings, the derived
// deposit amounts and the expense/income items booked against it.
//
// Every calculated column (liters, gross, cash, totals) is rederived
// from the raw inputs on each mutation.
type Deposit struct {
	ID            string
	StaffName     string
	Date          time.Time
	ClockIn       string
	ClockOut      string
	MeterStart    decimal.Decimal
	MeterEnd      decimal.Decimal
	TotalLiters   decimal.Decimal
	GrossAmount   decimal.Decimal
	QRISAmount    decimal.Decimal
	CashAmount    decimal.Decimal
	Expenses      []Item
	TotalExpenses decimal.Decimal
	Income        []Item
	TotalIncome   decimal.Decimal
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
