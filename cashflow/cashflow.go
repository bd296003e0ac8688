package cashflow

import (
	"errors"
	"fmt"
	"time"

	"github.com/zuoliang/QuantLib/utils"
)

var (
	// ErrNotFixedRateCoupon is returned when a leg accessor requires a
	// fixed-rate coupon but finds another cash-flow kind.
	ErrNotFixedRateCoupon = errors.New("cash flow is not a fixed rate coupon")
)

// CashFlow is a dated monetary amount. Concrete kinds are FixedRateCoupon
// (interest) and Redemption (principal repayment); callers distinguish
// them with a type switch.
type CashFlow interface {
	Date() time.Time
	Amount() float64
}

// Leg is a bond's cash-flow sequence, ordered by payment date with
// redemptions following the coupon they retire.
type Leg []CashFlow

// FixedRateCoupon is an interest payment accrued on a notional at a fixed
// annual rate over [AccrualStart, AccrualEnd).
type FixedRateCoupon struct {
	PaymentDate  time.Time
	AccrualStart time.Time
	AccrualEnd   time.Time
	Nominal      float64
	Rate         float64
	DayCount     string
}

func (c FixedRateCoupon) Date() time.Time { return c.PaymentDate }

func (c FixedRateCoupon) Amount() float64 {
	return c.Nominal * c.Rate * utils.YearFraction(c.AccrualStart, c.AccrualEnd, c.DayCount)
}

// Accrued returns the interest accrued from AccrualStart up to asOf,
// clamped to the accrual period.
func (c FixedRateCoupon) Accrued(asOf time.Time) float64 {
	if !asOf.After(c.AccrualStart) {
		return 0
	}
	if asOf.After(c.AccrualEnd) {
		asOf = c.AccrualEnd
	}
	return c.Nominal * c.Rate * utils.YearFraction(c.AccrualStart, asOf, c.DayCount)
}

// Redemption is a principal repayment.
type Redemption struct {
	PaymentDate time.Time
	Amt         float64
}

func (r Redemption) Date() time.Time { return r.PaymentDate }
func (r Redemption) Amount() float64 { return r.Amt }

// InitialNotional extracts the starting face value from an already-built
// leg. The leg is polymorphic over cash-flow kinds; the first entry must
// be a fixed-rate coupon.
func InitialNotional(leg Leg) (float64, error) {
	if len(leg) == 0 {
		return 0, fmt.Errorf("InitialNotional: empty leg")
	}
	coupon, ok := leg[0].(FixedRateCoupon)
	if !ok {
		return 0, fmt.Errorf("InitialNotional: %w", ErrNotFixedRateCoupon)
	}
	return coupon.Nominal, nil
}
