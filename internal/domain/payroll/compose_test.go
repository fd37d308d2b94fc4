package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCompose(t *testing.T) {
	r := Compose(
		dec("5000000"),
		120,
		dec("15000"),
		[]LineItem{{Name: "X", Amount: dec("100000")}},
		[]LineItem{{Name: "Y", Amount: dec("50000")}},
	)

	// 120 min = 2 h, 2 x 15000 x 1.5 = 45000.
	assert.True(t, r.OvertimePay.Equal(dec("45000")), "overtime pay = %s", r.OvertimePay)
	assert.True(t, r.TotalBonus.Equal(dec("100000")))
	assert.True(t, r.TotalDeduction.Equal(dec("50000")))
	assert.True(t, r.TotalAmount.Equal(dec("5095000")), "total = %s", r.TotalAmount)
	assert.Equal(t, StatusPending, r.Status)
}

func TestComposeWithoutExtras(t *testing.T) {
	r := Compose(dec("3000000"), 0, dec("10000"), nil, nil)
	assert.True(t, r.OvertimePay.IsZero())
	assert.True(t, r.TotalAmount.Equal(dec("3000000")))
}

func TestComposeNegativeTotalIsAllowed(t *testing.T) {
	r := Compose(
		dec("1000000"),
		0,
		decimal.Zero,
		nil,
		[]LineItem{{Name: "cash advance", Amount: dec("1500000")}},
	)
	assert.True(t, r.TotalAmount.Equal(dec("-500000")), "total = %s", r.TotalAmount)
}

func TestRecomputeAfterEdit(t *testing.T) {
	r := Compose(dec("5000000"), 60, dec("20000"), nil, nil)
	require.True(t, r.TotalAmount.Equal(dec("5030000")))

	r.Bonuses = []LineItem{{Name: "THR", Amount: dec("250000")}}
	r.OvertimeMinutes = 90
	r.Recompute()

	assert.True(t, r.OvertimePay.Equal(dec("45000")))
	assert.True(t, r.TotalAmount.Equal(dec("5295000")), "total = %s", r.TotalAmount)
}

func TestMarkPaid(t *testing.T) {
	r := Compose(dec("2000000"), 0, decimal.Zero, nil, nil)
	now := time.Date(2025, 3, 31, 17, 0, 0, 0, time.UTC)

	err := r.MarkPaid("user-1", now)
	require.NoError(t, err)
	assert.Equal(t, StatusPaid, r.Status)
	require.NotNil(t, r.PaidAt)
	assert.Equal(t, now, *r.PaidAt)
	require.NotNil(t, r.PaidBy)
	assert.Equal(t, "user-1", *r.PaidBy)
}

func TestMarkPaidTwiceIsConflict(t *testing.T) {
	r := Compose(dec("2000000"), 0, decimal.Zero, nil, nil)
	now := time.Now()

	require.NoError(t, r.MarkPaid("user-1", now))
	err := r.MarkPaid("user-2", now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrRecordAlreadyPaid)

	// First payment metadata is untouched.
	assert.Equal(t, "user-1", *r.PaidBy)
}
