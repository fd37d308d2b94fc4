package deposit

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Standard pump price used across these tests.
var price = dec("11500")

func TestCalculate(t *testing.T) {
	calc := Calculate(
		dec("1000"), dec("1050.5"), dec("100000"), price,
		[]Item{{ID: "1", Description: "es batu", Amount: dec("20000")}},
		[]Item{{ID: "2", Description: "jual oli", Amount: dec("45000")}},
	)

	assert.True(t, calc.TotalLiters.Equal(dec("50.5")), "liters = %s", calc.TotalLiters)
	assert.True(t, calc.GrossAmount.Equal(dec("580750")), "gross = %s", calc.GrossAmount)
	assert.True(t, calc.CashAmount.Equal(dec("480750")), "cash = %s", calc.CashAmount)
	assert.True(t, calc.TotalExpenses.Equal(dec("20000")))
	assert.True(t, calc.TotalIncome.Equal(dec("45000")))
	// total = cash + income - expenses
	assert.True(t, calc.TotalAmount.Equal(dec("505750")), "total = %s", calc.TotalAmount)
}

func TestCalculateClampsMeterRollback(t *testing.T) {
	calc := Calculate(dec("1050"), dec("1000"), decimal.Zero, price, nil, nil)
	assert.True(t, calc.TotalLiters.IsZero())
	assert.True(t, calc.GrossAmount.IsZero())
	assert.True(t, calc.TotalAmount.IsZero())
}

func TestCalculateQRISAboveGrossClampsCash(t *testing.T) {
	// 10 liters = 115000 gross, fully covered by QRIS and then some.
	calc := Calculate(dec("0"), dec("10"), dec("150000"), price, nil, nil)
	assert.True(t, calc.CashAmount.IsZero())
	assert.True(t, calc.TotalAmount.IsZero())
}

func TestCalculateSkipsInvalidItems(t *testing.T) {
	calc := Calculate(
		dec("0"), dec("10"), decimal.Zero, price,
		[]Item{
			{ID: "1", Description: "  ", Amount: dec("5000")},
			{ID: "2", Description: "valid", Amount: dec("-100")},
			{ID: "3", Description: "listrik", Amount: dec("30000")},
		},
		nil,
	)
	assert.True(t, calc.TotalExpenses.Equal(dec("30000")), "expenses = %s", calc.TotalExpenses)
}

func TestCalculateCanGoNegative(t *testing.T) {
	// Expenses exceeding the day's cash produce a negative carry.
	calc := Calculate(
		dec("0"), dec("1"), decimal.Zero, price,
		[]Item{{ID: "1", Description: "servis pompa", Amount: dec("100000")}},
		nil,
	)
	assert.True(t, calc.TotalAmount.Equal(dec("-88500")), "total = %s", calc.TotalAmount)
}
