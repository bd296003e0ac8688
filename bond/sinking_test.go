package bond_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zuoliang/QuantLib/bond"
	"github.com/zuoliang/QuantLib/period"
)

func TestSinkingNotionalsSemiannual5Y(t *testing.T) {
	t.Parallel()

	notionals, err := bond.SinkingNotionals(period.New(5, period.Years), period.Semiannual, 0.05, 1_000_000)
	if err != nil {
		t.Fatalf("SinkingNotionals error: %v", err)
	}

	if len(notionals) != 11 {
		t.Fatalf("expected 11 entries, got %d", len(notionals))
	}
	if notionals[0] != 1_000_000 {
		t.Fatalf("first notional = %.6f", notionals[0])
	}
	if notionals[10] != 0 {
		t.Fatalf("last notional = %.6f", notionals[10])
	}
	for i := 0; i+1 < len(notionals); i++ {
		if notionals[i+1] >= notionals[i] {
			t.Fatalf("notionals not strictly decreasing at %d: %.6f -> %.6f", i, notionals[i], notionals[i+1])
		}
	}
}

func TestSinkingNotionalsLevelDebtService(t *testing.T) {
	t.Parallel()

	const (
		face   = 1_000_000.0
		rate   = 0.06
		perCpn = rate / 4
	)
	notionals, err := bond.SinkingNotionals(period.New(2, period.Years), period.Quarterly, rate, face)
	if err != nil {
		t.Fatalf("SinkingNotionals error: %v", err)
	}

	// Coupon plus principal must be the same payment every period.
	first := perCpn*notionals[0] + (notionals[0] - notionals[1])
	for i := 1; i+1 < len(notionals); i++ {
		payment := perCpn*notionals[i] + (notionals[i] - notionals[i+1])
		if math.Abs(payment-first) > 1e-6 {
			t.Fatalf("payment %d = %.8f, want %.8f", i, payment, first)
		}
	}
}

func TestSinkingNotionalsZeroCoupon(t *testing.T) {
	t.Parallel()

	notionals, err := bond.SinkingNotionals(period.New(1, period.Years), period.Quarterly, 0, 1000)
	if err != nil {
		t.Fatalf("SinkingNotionals error: %v", err)
	}

	redemptions := bond.SinkingRedemptions(notionals, 1000)
	if len(redemptions) != 4 {
		t.Fatalf("expected 4 redemptions, got %d", len(redemptions))
	}
	for i, r := range redemptions {
		if math.Abs(r-25) > 1e-8 {
			t.Fatalf("redemption %d = %.10f, want 25", i, r)
		}
	}
}

func TestSinkingNotionalsSinglePeriod(t *testing.T) {
	t.Parallel()

	notionals, err := bond.SinkingNotionals(period.New(6, period.Months), period.Semiannual, 0.04, 500)
	if err != nil {
		t.Fatalf("SinkingNotionals error: %v", err)
	}
	if len(notionals) != 2 || notionals[0] != 500 || notionals[1] != 0 {
		t.Fatalf("single-period notionals = %v", notionals)
	}
}

func TestSinkingNotionalsMonthly1Y(t *testing.T) {
	t.Parallel()

	notionals, err := bond.SinkingNotionals(period.New(1, period.Years), period.Monthly, 0.05, 1_000_000)
	if err != nil {
		t.Fatalf("SinkingNotionals error: %v", err)
	}
	if len(notionals) != 13 {
		t.Fatalf("expected 13 entries (12 periods), got %d", len(notionals))
	}
}

func TestSinkingNotionalsIncompatibleFrequency(t *testing.T) {
	t.Parallel()

	_, err := bond.SinkingNotionals(period.New(18, period.Months), period.Annual, 0.05, 1000)
	if !errors.Is(err, bond.ErrIncompatibleFrequency) {
		t.Fatalf("expected ErrIncompatibleFrequency, got %v", err)
	}
}

func TestSinkingNotionalsValidation(t *testing.T) {
	t.Parallel()

	if _, err := bond.SinkingNotionals(period.New(5, period.Years), period.Semiannual, 0.05, 0); err == nil {
		t.Fatal("expected error for zero face amount")
	}
	if _, err := bond.SinkingNotionals(period.New(5, period.Years), period.Semiannual, -0.01, 1000); err == nil {
		t.Fatal("expected error for negative coupon")
	}
}

func TestSinkingRedemptionsSumTo100(t *testing.T) {
	t.Parallel()

	for _, coupon := range []float64{0, 0.03, 0.12} {
		notionals, err := bond.SinkingNotionals(period.New(5, period.Years), period.Semiannual, coupon, 250_000)
		if err != nil {
			t.Fatalf("SinkingNotionals error: %v", err)
		}

		redemptions := bond.SinkingRedemptions(notionals, 250_000)
		if len(redemptions) != 10 {
			t.Fatalf("expected 10 redemptions, got %d", len(redemptions))
		}
		sum := 0.0
		for _, r := range redemptions {
			if r < 0 {
				t.Fatalf("negative redemption %.10f at coupon %v", r, coupon)
			}
			sum += r
		}
		if math.Abs(sum-100) > 1e-8 {
			t.Fatalf("redemptions sum = %.12f, want 100 (coupon %v)", sum, coupon)
		}
	}
}
