package utils_test

import (
	"math"
	"testing"
	"time"

	"github.com/zuoliang/QuantLib/utils"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestYearFraction(t *testing.T) {
	t.Parallel()

	start := date(2025, 1, 15)
	end := date(2025, 7, 15)

	if got := utils.YearFraction(start, end, utils.Dc30360); math.Abs(got-0.5) > 1e-12 {
		t.Fatalf("30/360 = %.12f, want 0.5", got)
	}
	if got := utils.YearFraction(start, end, utils.Act360); math.Abs(got-181.0/360.0) > 1e-12 {
		t.Fatalf("ACT/360 = %.12f", got)
	}
	if got := utils.YearFraction(start, end, utils.Act365F); math.Abs(got-181.0/365.0) > 1e-12 {
		t.Fatalf("ACT/365F = %.12f", got)
	}
}

func TestYearFractionActAct(t *testing.T) {
	t.Parallel()

	// Spans a leap year boundary: 2023-07-01..2024-07-01.
	got := utils.YearFraction(date(2023, 7, 1), date(2024, 7, 1), utils.ActAct)
	want := 184.0/365.0 + 182.0/366.0
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("ACT/ACT = %.12f, want %.12f", got, want)
	}

	if got := utils.YearFraction(date(2025, 1, 1), date(2025, 1, 1), utils.ActAct); got != 0 {
		t.Fatalf("degenerate ACT/ACT = %.12f", got)
	}
}

func TestAddMonth(t *testing.T) {
	t.Parallel()

	// EDATE semantics: month-end clamps instead of spilling over.
	if got := utils.AddMonth(date(2025, 1, 31), 1); !got.Equal(date(2025, 2, 28)) {
		t.Fatalf("AddMonth(2025-01-31, 1) = %s", got.Format("2006-01-02"))
	}
	if got := utils.AddMonth(date(2025, 1, 15), 6); !got.Equal(date(2025, 7, 15)) {
		t.Fatalf("AddMonth(2025-01-15, 6) = %s", got.Format("2006-01-02"))
	}
}
