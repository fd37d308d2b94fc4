package receivable

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func due(asOf time.Time, daysAgo int) *time.Time {
	d := asOf.AddDate(0, 0, -daysAgo)
	return &d
}

func TestComputeAging(t *testing.T) {
	asOf := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	entries := []Receivable{
		{Outstanding: dec("100000"), DueDate: due(asOf, -5), Status: StatusOutstanding},  // not yet due
		{Outstanding: dec("200000"), DueDate: due(asOf, 10), Status: StatusOutstanding},  // 10 days late
		{Outstanding: dec("300000"), DueDate: due(asOf, 45), Status: StatusOutstanding},  // 45 days late
		{Outstanding: dec("400000"), DueDate: due(asOf, 75), Status: StatusOutstanding},  // 75 days late
		{Outstanding: dec("500000"), DueDate: due(asOf, 200), Status: StatusOutstanding}, // ancient
		{Outstanding: dec("999999"), DueDate: due(asOf, 200), Status: StatusPaid},        // paid, skipped
		{Outstanding: dec("50000"), Status: StatusOutstanding},                           // no due date
	}

	s := ComputeAging(entries, asOf)

	assert.True(t, s.Current.Equal(dec("150000")), "current = %s", s.Current)
	assert.True(t, s.Bucket30.Equal(dec("200000")))
	assert.True(t, s.Bucket60.Equal(dec("300000")))
	assert.True(t, s.Bucket90.Equal(dec("400000")))
	assert.True(t, s.Bucket120.Equal(dec("500000")))
}

func TestComputeAgingEmpty(t *testing.T) {
	s := ComputeAging(nil, time.Now())
	assert.True(t, s.Current.IsZero())
	assert.True(t, s.Bucket120.IsZero())
}
