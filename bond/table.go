package bond

import (
	"time"

	"github.com/zuoliang/QuantLib/cashflow"
)

// AmortizationRow is one period of a bond's debt-service table.
type AmortizationRow struct {
	Period      int
	PaymentDate time.Time

	// Notional outstanding over the period.
	Notional float64

	Interest  float64
	Principal float64
}

func (r AmortizationRow) Total() float64 {
	return r.Interest + r.Principal
}

// AmortizationTable lays the cash-flow leg out as one row per coupon
// period, pairing each coupon with the principal repaid on its payment
// date.
func (b *AmortizingFixedRateBond) AmortizationTable() []AmortizationRow {
	principalByDate := map[time.Time]float64{}
	for _, cf := range b.cashflows {
		if r, ok := cf.(cashflow.Redemption); ok {
			principalByDate[r.PaymentDate] += r.Amt
		}
	}

	var rows []AmortizationRow
	for _, cf := range b.cashflows {
		c, ok := cf.(cashflow.FixedRateCoupon)
		if !ok {
			continue
		}
		rows = append(rows, AmortizationRow{
			Period:      len(rows) + 1,
			PaymentDate: c.PaymentDate,
			Notional:    c.Nominal,
			Interest:    c.Amount(),
			Principal:   principalByDate[c.PaymentDate],
		})
	}
	return rows
}
