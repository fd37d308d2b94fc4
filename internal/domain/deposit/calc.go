package deposit

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Calculation holds the derived figures for one deposit day.
type Calculation struct {
	TotalLiters   decimal.Decimal `json:"total_liters"`
	GrossAmount   decimal.Decimal `json:"gross_amount"`
	CashAmount    decimal.Decimal `json:"cash_amount"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalIncome   decimal.Decimal `json:"total_income"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// Calculate derives every deposit figure from the raw inputs:
//
//	liters = max(0, meterEnd - meterStart)
//	gross  = liters x pricePerLiter
//	cash   = max(0, gross - qris)
//	total  = cash + income - expenses
//
// Items with a blank description or non-positive amount are ignored in
// the sums; input validation should have rejected them already.
func Calculate(meterStart, meterEnd, qris, pricePerLiter decimal.Decimal, expenses, income []Item) Calculation {
	liters := meterEnd.Sub(meterStart)
	if liters.IsNegative() {
		liters = decimal.Zero
	}

	gross := liters.Mul(pricePerLiter)

	cash := gross.Sub(qris)
	if cash.IsNegative() {
		cash = decimal.Zero
	}

	totalExpenses := sumItems(expenses)
	totalIncome := sumItems(income)

	return Calculation{
		TotalLiters:   liters,
		GrossAmount:   gross,
		CashAmount:    cash,
		TotalExpenses: totalExpenses,
		TotalIncome:   totalIncome,
		TotalAmount:   cash.Add(totalIncome).Sub(totalExpenses),
	}
}

func sumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		if strings.TrimSpace(item.Description) == "" || !item.Amount.IsPositive() {
			continue
		}
		total = total.Add(item.Amount)
	}
	return total
}
