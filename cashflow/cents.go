package cashflow

import (
	"time"

	"github.com/shopspring/decimal"
)

// CashflowCents mirrors the Bloomberg-style cashflow feed where coupon and
// principal are stored as integer minor units (e.g., cents for EUR).
type CashflowCents struct {
	Date           time.Time
	CouponCents    int64
	PrincipalCents int64
}

// ToCents collapses a leg into per-date minor-unit rows, rounding each
// amount half-up at the cent via decimal arithmetic so the rows sum to the
// same total regardless of float accumulation order.
func ToCents(leg Leg) []CashflowCents {
	byDate := map[time.Time]*CashflowCents{}
	var order []time.Time

	for _, cf := range leg {
		row, ok := byDate[cf.Date()]
		if !ok {
			row = &CashflowCents{Date: cf.Date()}
			byDate[cf.Date()] = row
			order = append(order, cf.Date())
		}
		cents := decimal.NewFromFloat(cf.Amount()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
		switch cf.(type) {
		case FixedRateCoupon:
			row.CouponCents += cents
		case Redemption:
			row.PrincipalCents += cents
		}
	}

	out := make([]CashflowCents, 0, len(order))
	for _, d := range order {
		out = append(out, *byDate[d])
	}
	return out
}
