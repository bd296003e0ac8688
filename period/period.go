package period

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrUnsupportedUnit is returned when a day-range is requested for a
	// unit outside {Days, Weeks, Months, Years}.
	ErrUnsupportedUnit = errors.New("unsupported time unit")
)

// Unit is a calendar time unit.
type Unit int

const (
	Days Unit = iota
	Weeks
	Months
	Years
)

func (u Unit) String() string {
	switch u {
	case Days:
		return "D"
	case Weeks:
		return "W"
	case Months:
		return "M"
	case Years:
		return "Y"
	default:
		return fmt.Sprintf("Unit(%d)", int(u))
	}
}

// Period is an immutable (length, unit) pair, e.g. 6M or 5Y.
type Period struct {
	Length int
	Unit   Unit
}

// New constructs a Period.
func New(length int, unit Unit) Period {
	return Period{Length: length, Unit: unit}
}

// Parse converts tenor strings like "1W", "3M", "10Y", "30D" to a Period.
func Parse(tenor string) (Period, error) {
	s := strings.TrimSpace(strings.ToUpper(tenor))
	if len(s) < 2 {
		return Period{}, fmt.Errorf("Parse: invalid tenor %q", tenor)
	}

	var unit Unit
	switch s[len(s)-1] {
	case 'D':
		unit = Days
	case 'W':
		unit = Weeks
	case 'M':
		unit = Months
	case 'Y':
		unit = Years
	default:
		return Period{}, fmt.Errorf("Parse: invalid tenor unit in %q", tenor)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return Period{}, fmt.Errorf("Parse: invalid tenor length in %q: %w", tenor, err)
	}
	return Period{Length: n, Unit: unit}, nil
}

func (p Period) String() string {
	return fmt.Sprintf("%d%s", p.Length, p.Unit)
}

// Normalized rewrites the period in the largest unit that preserves its
// exact length: 12k months become k years, 7k days become k weeks.
// Weeks and months are never interconvertible.
func (p Period) Normalized() Period {
	if p.Length == 0 {
		return p
	}
	switch p.Unit {
	case Months:
		if p.Length%12 == 0 {
			return Period{Length: p.Length / 12, Unit: Years}
		}
	case Days:
		if p.Length%7 == 0 {
			return Period{Length: p.Length / 7, Unit: Weeks}
		}
	}
	return p
}

// Equal reports whether two periods denote the same normalized span.
func (p Period) Equal(q Period) bool {
	return p.Normalized() == q.Normalized()
}

// Mul scales the period length by n under a fixed unit.
func (p Period) Mul(n int) Period {
	return Period{Length: p.Length * n, Unit: p.Unit}
}

// mulChecked scales the period, rejecting degenerate multipliers. A false
// result marks an invalid candidate, not an error.
func (p Period) mulChecked(n int) (Period, bool) {
	if n <= 0 || p.Length <= 0 {
		return Period{}, false
	}
	return p.Mul(n), true
}

// DayRange returns the approximate [min, max] day span of a period. Month
// lengths vary between 28 and 31 days and years between 365 and 366, so
// the range is a coarse bracket, not calendar arithmetic.
func DayRange(p Period) (minDays, maxDays int, err error) {
	switch p.Unit {
	case Days:
		return p.Length, p.Length, nil
	case Weeks:
		return 7 * p.Length, 7 * p.Length, nil
	case Months:
		return 28 * p.Length, 31 * p.Length, nil
	case Years:
		return 365 * p.Length, 366 * p.Length, nil
	default:
		return 0, 0, fmt.Errorf("DayRange: %w (%d)", ErrUnsupportedUnit, int(p.Unit))
	}
}

// SubPeriods reports how many times sub fits exactly into super.
//
// The day ranges of both periods bracket the feasible integer ratios;
// each candidate count is tested by exact normalized equality of
// sub × count against super. Cross-unit pairs that never tile exactly
// (e.g. 4M into 1Y, or weeks into months) come back ok == false, which
// the caller decides is fatal or not. The error return fires only for
// unsupported units.
func SubPeriods(sub, super Period) (count int, ok bool, err error) {
	superMin, superMax, err := DayRange(super)
	if err != nil {
		return 0, false, err
	}
	subMin, subMax, err := DayRange(sub)
	if err != nil {
		return 0, false, err
	}

	minRatio := float64(superMin) / float64(subMax)
	maxRatio := float64(superMax) / float64(subMin)
	lo := int(math.Floor(minRatio))
	hi := int(math.Ceil(maxRatio))

	for n := lo; n <= hi; n++ {
		scaled, valid := sub.mulChecked(n)
		if !valid {
			continue
		}
		if scaled.Equal(super) {
			return n, true, nil
		}
	}
	return 0, false, nil
}
