package bond

import (
	"errors"
	"time"

	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/cashflow"
	"github.com/zuoliang/QuantLib/period"
)

var (
	// ErrIncompatibleFrequency is returned when the sinking frequency does
	// not divide the bond tenor an integer number of times.
	ErrIncompatibleFrequency = errors.New("bond frequency incompatible with maturity tenor")

	// ErrEmptyCashFlows is returned when bond construction yields no cash
	// flows at all.
	ErrEmptyCashFlows = errors.New("bond with no cashflows")
)

// AmortizingFixedRateBond is a fixed-rate bond whose outstanding principal
// declines over its life. The cash-flow leg combines the coupon stream
// with the periodic principal redemptions and is fixed at construction.
type AmortizingFixedRateBond struct {
	settlementDays int
	cal            calendar.CalendarID
	issueDate      time.Time
	maturityDate   time.Time
	frequency      period.Frequency
	dayCount       string
	cashflows      cashflow.Leg
}

func (b *AmortizingFixedRateBond) SettlementDays() int             { return b.settlementDays }
func (b *AmortizingFixedRateBond) Calendar() calendar.CalendarID   { return b.cal }
func (b *AmortizingFixedRateBond) IssueDate() time.Time            { return b.issueDate }
func (b *AmortizingFixedRateBond) MaturityDate() time.Time         { return b.maturityDate }
func (b *AmortizingFixedRateBond) Frequency() period.Frequency     { return b.frequency }
func (b *AmortizingFixedRateBond) DayCount() string                { return b.dayCount }
func (b *AmortizingFixedRateBond) Cashflows() cashflow.Leg         { return b.cashflows }

// SettlementDate returns the settlement date for a trade on evalDate.
func (b *AmortizingFixedRateBond) SettlementDate(evalDate time.Time) time.Time {
	return calendar.AddBusinessDays(b.cal, evalDate, b.settlementDays)
}

// Redemptions returns only the principal repayment cash flows.
func (b *AmortizingFixedRateBond) Redemptions() cashflow.Leg {
	var out cashflow.Leg
	for _, cf := range b.cashflows {
		if _, ok := cf.(cashflow.Redemption); ok {
			out = append(out, cf)
		}
	}
	return out
}

// NotionalAt returns the outstanding notional on the given date: the
// nominal of the coupon accruing over it, or zero past the last accrual.
func (b *AmortizingFixedRateBond) NotionalAt(date time.Time) float64 {
	for _, cf := range b.cashflows {
		c, ok := cf.(cashflow.FixedRateCoupon)
		if !ok {
			continue
		}
		if !date.Before(c.AccrualStart) && date.Before(c.AccrualEnd) {
			return c.Nominal
		}
	}
	return 0
}
