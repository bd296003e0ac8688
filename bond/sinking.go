package bond

import (
	"fmt"
	"math"

	"github.com/zuoliang/QuantLib/period"
)

// SinkingNotionals computes the outstanding notional at each period
// boundary of a sinking-fund bond paying level debt service: combined
// coupon plus principal is held constant across periods under compound
// interest at the coupon rate.
//
// The returned sequence has nPeriods+1 entries; entry 0 is the initial
// notional and the last entry is hard-set to zero so maturity carries no
// floating-point residue. A zero coupon collapses the closed form to
// equal principal installments.
func SinkingNotionals(tenor period.Period, freq period.Frequency, couponRate, initialNotional float64) ([]float64, error) {
	if initialNotional <= 0 {
		return nil, fmt.Errorf("SinkingNotionals: initial notional must be positive, got %v", initialNotional)
	}
	if couponRate < 0 {
		return nil, fmt.Errorf("SinkingNotionals: coupon rate must be non-negative, got %v", couponRate)
	}

	freqPeriod, err := freq.Period()
	if err != nil {
		return nil, fmt.Errorf("SinkingNotionals: %w", err)
	}
	nPeriods, ok, err := period.SubPeriods(freqPeriod, tenor)
	if err != nil {
		return nil, fmt.Errorf("SinkingNotionals: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("SinkingNotionals: %s into %s: %w", freqPeriod, tenor, ErrIncompatibleFrequency)
	}

	notionals := make([]float64, nPeriods+1)
	notionals[0] = initialNotional
	notionals[nPeriods] = 0

	// Single-period bonds repay everything at maturity.
	if nPeriods <= 1 {
		return notionals, nil
	}

	coupon := couponRate / float64(freq)
	if coupon == 0 {
		for i := 1; i < nPeriods; i++ {
			notionals[i] = initialNotional * (1 - float64(i)/float64(nPeriods))
		}
		return notionals, nil
	}

	// Level debt service: with per-period rate c over n periods, the
	// balance after period i is N·((1+c)^i − ((1+c)^i − 1)/(1 − (1+c)^−n)).
	compoundedInterest := 1.0
	totalValue := math.Pow(1.0+coupon, float64(nPeriods))
	for i := 0; i < nPeriods-1; i++ {
		compoundedInterest *= 1.0 + coupon
		notionals[i+1] = initialNotional * (compoundedInterest - (compoundedInterest-1.0)/(1.0-1.0/totalValue))
	}
	return notionals, nil
}

// SinkingRedemptions converts adjacent notional deltas into per-period
// redemption amounts as percentages of the original face value. The
// percentages telescope to 100 over the full sequence.
func SinkingRedemptions(notionals []float64, initialNotional float64) []float64 {
	if len(notionals) < 2 {
		return nil
	}
	redemptions := make([]float64, len(notionals)-1)
	for i := range redemptions {
		redemptions[i] = (notionals[i] - notionals[i+1]) / initialNotional * 100
	}
	return redemptions
}
