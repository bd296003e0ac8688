package cashflow

import (
	"fmt"

	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/schedule"
)

// FixedRateLegInput defines a fixed-rate coupon leg.
//
// Notionals and CouponRates are per accrual period. When either sequence
// is shorter than the schedule's period count, its last entry repeats for
// the remaining periods.
type FixedRateLegInput struct {
	Schedule          *schedule.Schedule
	Notionals         []float64
	CouponRates       []float64
	DayCount          string
	PaymentConvention calendar.Convention
}

// FixedRateLeg builds the coupon cash flows for a schedule: one coupon per
// adjacent date pair, accruing the period's notional at its rate, paid on
// the period end date adjusted by the payment convention.
func FixedRateLeg(in FixedRateLegInput) (Leg, error) {
	if in.Schedule == nil {
		return nil, fmt.Errorf("FixedRateLeg: Schedule is required")
	}
	if len(in.Notionals) == 0 {
		return nil, fmt.Errorf("FixedRateLeg: Notionals are required")
	}
	if len(in.CouponRates) == 0 {
		return nil, fmt.Errorf("FixedRateLeg: CouponRates are required")
	}
	if in.PaymentConvention == "" {
		in.PaymentConvention = calendar.Unadjusted
	}

	dates := in.Schedule.Dates()
	cal := in.Schedule.Calendar()

	leg := make(Leg, 0, len(dates)-1)
	for i := 0; i+1 < len(dates); i++ {
		payDate, err := calendar.Apply(cal, in.PaymentConvention, dates[i+1])
		if err != nil {
			return nil, fmt.Errorf("FixedRateLeg: %w", err)
		}
		leg = append(leg, FixedRateCoupon{
			PaymentDate:  payDate,
			AccrualStart: dates[i],
			AccrualEnd:   dates[i+1],
			Nominal:      pick(in.Notionals, i),
			Rate:         pick(in.CouponRates, i),
			DayCount:     in.DayCount,
		})
	}
	return leg, nil
}

// AppendRedemptions attaches one principal repayment per redemption
// percentage to the leg. Redemption i pays pct/100 × initialNotional on
// the i-th coupon payment date; percentages past the coupon count are
// dropped.
func AppendRedemptions(leg Leg, redemptions []float64, initialNotional float64) Leg {
	coupons := make([]FixedRateCoupon, 0, len(leg))
	for _, cf := range leg {
		if c, ok := cf.(FixedRateCoupon); ok {
			coupons = append(coupons, c)
		}
	}

	out := leg
	for i, pct := range redemptions {
		if i >= len(coupons) {
			break
		}
		amount := pct / 100.0 * initialNotional
		if amount == 0 {
			continue
		}
		out = append(out, Redemption{
			PaymentDate: coupons[i].PaymentDate,
			Amt:         amount,
		})
	}
	return out
}

// pick returns s[i], repeating the last entry when i runs past the end.
func pick(s []float64, i int) float64 {
	if i < len(s) {
		return s[i]
	}
	return s[len(s)-1]
}
