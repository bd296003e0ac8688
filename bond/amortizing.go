package bond

import (
	"fmt"
	"time"

	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/cashflow"
	"github.com/zuoliang/QuantLib/period"
	"github.com/zuoliang/QuantLib/schedule"
)

// AmortizingBondInput defines an amortizing bond from an explicitly
// supplied per-period notional/coupon/redemption structure.
type AmortizingBondInput struct {
	SettlementDays    int
	Notionals         []float64
	Schedule          *schedule.Schedule
	Coupons           []float64
	DayCount          string
	PaymentConvention calendar.Convention

	// Redemptions are percentages of the original face value
	// (Notionals[0]), one per period.
	Redemptions []float64

	IssueDate time.Time
}

// NewAmortizingFixedRateBond builds a bond from an explicit amortization
// structure. The maturity is the schedule's end date; the coupon leg is
// built from the notionals and coupon rates, then the redemption cash
// flows are appended.
func NewAmortizingFixedRateBond(in AmortizingBondInput) (*AmortizingFixedRateBond, error) {
	if in.Schedule == nil {
		return nil, fmt.Errorf("NewAmortizingFixedRateBond: Schedule is required")
	}

	var leg cashflow.Leg
	if len(in.Notionals) > 0 && len(in.Coupons) > 0 {
		var err error
		leg, err = cashflow.FixedRateLeg(cashflow.FixedRateLegInput{
			Schedule:          in.Schedule,
			Notionals:         in.Notionals,
			CouponRates:       in.Coupons,
			DayCount:          in.DayCount,
			PaymentConvention: in.PaymentConvention,
		})
		if err != nil {
			return nil, fmt.Errorf("NewAmortizingFixedRateBond: %w", err)
		}
		leg = cashflow.AppendRedemptions(leg, in.Redemptions, in.Notionals[0])
	}

	if len(leg) == 0 {
		return nil, fmt.Errorf("NewAmortizingFixedRateBond: %w", ErrEmptyCashFlows)
	}

	return &AmortizingFixedRateBond{
		settlementDays: in.SettlementDays,
		cal:            in.Schedule.Calendar(),
		issueDate:      in.IssueDate,
		maturityDate:   in.Schedule.EndDate(),
		frequency:      period.FrequencyOf(in.Schedule.Step()),
		dayCount:       in.DayCount,
		cashflows:      leg,
	}, nil
}

// SinkingFundInput defines an amortizing bond whose notional path is
// auto-generated from a single coupon rate under level debt service.
type SinkingFundInput struct {
	SettlementDays    int
	Calendar          calendar.CalendarID
	InitialFaceAmount float64
	StartDate         time.Time
	BondTenor         period.Period
	SinkingFrequency  period.Frequency
	CouponRate        float64
	DayCount          string
	PaymentConvention calendar.Convention
	IssueDate         time.Time
}

// NewSinkingFundBond builds a sinking-fund bond: payment dates are
// generated backward from start + tenor, the notional sequence keeps
// total debt service level, and each period's principal repayment is the
// notional decrement.
func NewSinkingFundBond(in SinkingFundInput) (*AmortizingFixedRateBond, error) {
	if in.StartDate.IsZero() {
		return nil, fmt.Errorf("NewSinkingFundBond: StartDate is required")
	}

	notionals, err := SinkingNotionals(in.BondTenor, in.SinkingFrequency, in.CouponRate, in.InitialFaceAmount)
	if err != nil {
		return nil, fmt.Errorf("NewSinkingFundBond: %w", err)
	}

	sched, err := schedule.Sinking(in.StartDate, in.BondTenor, in.SinkingFrequency, in.Calendar)
	if err != nil {
		return nil, fmt.Errorf("NewSinkingFundBond: %w", err)
	}

	b, err := NewAmortizingFixedRateBond(AmortizingBondInput{
		SettlementDays:    in.SettlementDays,
		Notionals:         notionals,
		Schedule:          sched,
		Coupons:           []float64{in.CouponRate},
		DayCount:          in.DayCount,
		PaymentConvention: in.PaymentConvention,
		Redemptions:       SinkingRedemptions(notionals, in.InitialFaceAmount),
		IssueDate:         in.IssueDate,
	})
	if err != nil {
		return nil, fmt.Errorf("NewSinkingFundBond: %w", err)
	}
	b.frequency = in.SinkingFrequency
	return b, nil
}
