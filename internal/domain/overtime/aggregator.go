package overtime

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// premium is the fixed overtime multiplier (standard 1.5x premium).
var premium = decimal.RequireFromString("1.5")

var sixty = decimal.NewFromInt(60)

// Summary is the canonical overtime representation: a normalized
// {minutes, hours} pair with an optional priced amount.
type Summary struct {
	TotalMinutes int             `json:"total_minutes"`
	TotalHours   decimal.Decimal `json:"total_hours"`
	Pay          decimal.Decimal `json:"overtime_pay"`
}

// FromMinutes normalizes raw overtime minutes. Negative input clamps to
// zero. Hours are rounded to 2 decimals; when hourlyRate is positive the
// pay is hours x rate x 1.5, rounded to 2 decimals.
func FromMinutes(minutes int, hourlyRate decimal.Decimal) Summary {
	if minutes < 0 {
		minutes = 0
	}
	hours := decimal.NewFromInt(int64(minutes)).Div(sixty).Round(2)
	s := Summary{
		TotalMinutes: minutes,
		TotalHours:   hours,
		Pay:          decimal.Zero,
	}
	if hourlyRate.IsPositive() {
		s.Pay = hours.Mul(hourlyRate).Mul(premium).Round(2)
	}
	return s
}

// FromHours normalizes overtime entered as decimal hours. The hours are
// rounded to 2 decimals first, minutes derived from the rounded value.
// This path rounds independently of FromMinutes; the two are not
// guaranteed to round-trip bit-identically and both are pinned by tests.
func FromHours(hours decimal.Decimal, hourlyRate decimal.Decimal) Summary {
	if hours.IsNegative() {
		hours = decimal.Zero
	}
	hours = hours.Round(2)
	minutes := int(hours.Mul(sixty).Round(0).IntPart())
	s := Summary{
		TotalMinutes: minutes,
		TotalHours:   hours,
		Pay:          decimal.Zero,
	}
	if hourlyRate.IsPositive() {
		s.Pay = hours.Mul(hourlyRate).Mul(premium).Round(2)
	}
	return s
}

// FormatDuration renders a minute count in the user-facing Indonesian
// form: "45 menit", "1 jam", "2 jam 5 menit".
func FormatDuration(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%d menit", rest)
	case rest == 0:
		return fmt.Sprintf("%d jam", hours)
	default:
		return fmt.Sprintf("%d jam %d menit", hours, rest)
	}
}
