package overtime

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFromMinutes(t *testing.T) {
	s := FromMinutes(90, dec("20000"))
	assert.Equal(t, 90, s.TotalMinutes)
	assert.True(t, s.TotalHours.Equal(dec("1.5")), "hours = %s", s.TotalHours)
	assert.True(t, s.Pay.Equal(dec("45000")), "pay = %s", s.Pay)
}

func TestFromMinutesWithoutRate(t *testing.T) {
	s := FromMinutes(125, decimal.Zero)
	assert.Equal(t, 125, s.TotalMinutes)
	assert.True(t, s.TotalHours.Equal(dec("2.08")), "hours = %s", s.TotalHours)
	assert.True(t, s.Pay.IsZero())
}

func TestFromMinutesClampsNegative(t *testing.T) {
	s := FromMinutes(-5, dec("15000"))
	assert.Equal(t, 0, s.TotalMinutes)
	assert.True(t, s.TotalHours.IsZero())
	assert.True(t, s.Pay.IsZero())
}

func TestFromHours(t *testing.T) {
	s := FromHours(dec("1.5"), dec("20000"))
	assert.Equal(t, 90, s.TotalMinutes)
	assert.True(t, s.TotalHours.Equal(dec("1.5")))
	assert.True(t, s.Pay.Equal(dec("45000")), "pay = %s", s.Pay)
}

func TestFromHoursRoundsBeforeDerivingMinutes(t *testing.T) {
	// 1.234 rounds to 1.23 hours first, then 1.23*60 = 73.8 -> 74 min.
	s := FromHours(dec("1.234"), decimal.Zero)
	assert.True(t, s.TotalHours.Equal(dec("1.23")))
	assert.Equal(t, 74, s.TotalMinutes)
}

func TestFromHoursClampsNegative(t *testing.T) {
	s := FromHours(dec("-2"), dec("10000"))
	assert.Equal(t, 0, s.TotalMinutes)
	assert.True(t, s.Pay.IsZero())
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{45, "45 menit"},
		{60, "1 jam"},
		{125, "2 jam 5 menit"},
		{0, "0 menit"},
		{-10, "0 menit"},
		{120, "2 jam"},
		{61, "1 jam 1 menit"},
	}
	for _, c := range cases {
		got := FormatDuration(c.minutes)
		if got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}
