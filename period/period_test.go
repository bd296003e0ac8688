package period_test

import (
	"errors"
	"testing"

	"github.com/zuoliang/QuantLib/period"
)

func TestDayRange(t *testing.T) {
	t.Parallel()

	cases := []struct {
		p        period.Period
		min, max int
	}{
		{period.New(10, period.Days), 10, 10},
		{period.New(2, period.Weeks), 14, 14},
		{period.New(3, period.Months), 84, 93},
		{period.New(5, period.Years), 1825, 1830},
	}
	for _, c := range cases {
		min, max, err := period.DayRange(c.p)
		if err != nil {
			t.Fatalf("DayRange(%s) error: %v", c.p, err)
		}
		if min != c.min || max != c.max {
			t.Fatalf("DayRange(%s) = (%d, %d), want (%d, %d)", c.p, min, max, c.min, c.max)
		}
	}
}

func TestDayRangeUnsupportedUnit(t *testing.T) {
	t.Parallel()

	_, _, err := period.DayRange(period.New(1, period.Unit(42)))
	if !errors.Is(err, period.ErrUnsupportedUnit) {
		t.Fatalf("expected ErrUnsupportedUnit, got %v", err)
	}
}

func TestSubPeriodsExactMultiples(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sub, super period.Period
		want       int
	}{
		{period.New(6, period.Months), period.New(1, period.Years), 2},
		{period.New(6, period.Months), period.New(5, period.Years), 10},
		{period.New(1, period.Months), period.New(1, period.Years), 12},
		{period.New(3, period.Months), period.New(18, period.Months), 6},
		{period.New(2, period.Years), period.New(10, period.Years), 5},
		{period.New(1, period.Weeks), period.New(4, period.Weeks), 4},
		{period.New(7, period.Days), period.New(2, period.Weeks), 2},
	}
	for _, c := range cases {
		count, ok, err := period.SubPeriods(c.sub, c.super)
		if err != nil {
			t.Fatalf("SubPeriods(%s, %s) error: %v", c.sub, c.super, err)
		}
		if !ok {
			t.Fatalf("SubPeriods(%s, %s): expected compatible", c.sub, c.super)
		}
		if count != c.want {
			t.Fatalf("SubPeriods(%s, %s) = %d, want %d", c.sub, c.super, count, c.want)
		}
	}
}

func TestSubPeriodsIncompatible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		sub, super period.Period
	}{
		{period.New(4, period.Months), period.New(1, period.Years)},
		{period.New(1, period.Years), period.New(18, period.Months)},
		{period.New(1, period.Weeks), period.New(1, period.Months)},
		{period.New(1, period.Years), period.New(6, period.Months)},
	}
	for _, c := range cases {
		_, ok, err := period.SubPeriods(c.sub, c.super)
		if err != nil {
			t.Fatalf("SubPeriods(%s, %s) error: %v", c.sub, c.super, err)
		}
		if ok {
			t.Fatalf("SubPeriods(%s, %s): expected incompatible", c.sub, c.super)
		}
	}
}

func TestNormalizedEquality(t *testing.T) {
	t.Parallel()

	if !period.New(12, period.Months).Equal(period.New(1, period.Years)) {
		t.Fatal("12M should equal 1Y")
	}
	if !period.New(14, period.Days).Equal(period.New(2, period.Weeks)) {
		t.Fatal("14D should equal 2W")
	}
	if period.New(1, period.Months).Equal(period.New(30, period.Days)) {
		t.Fatal("1M should not equal 30D")
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := period.Parse("18M")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if p != period.New(18, period.Months) {
		t.Fatalf("Parse(18M) = %s", p)
	}
	if _, err := period.Parse("semiannual"); err == nil {
		t.Fatal("expected error for junk tenor")
	}
}

func TestFrequencyPeriodRoundTrip(t *testing.T) {
	t.Parallel()

	for _, f := range []period.Frequency{
		period.Annual, period.Semiannual, period.Quarterly,
		period.Bimonthly, period.Monthly, period.Weekly,
	} {
		p, err := f.Period()
		if err != nil {
			t.Fatalf("Period(%s) error: %v", f, err)
		}
		if got := period.FrequencyOf(p); got != f {
			t.Fatalf("FrequencyOf(%s) = %s, want %s", p, got, f)
		}
	}

	if _, err := period.Once.Period(); err == nil {
		t.Fatal("expected error converting Once to a period")
	}
	if got := period.FrequencyOf(period.New(5, period.Months)); got != period.Once {
		t.Fatalf("FrequencyOf(5M) = %s, want Once", got)
	}
}
