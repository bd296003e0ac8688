package schedule

import (
	"fmt"
	"time"

	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/period"
	"github.com/zuoliang/QuantLib/utils"
)

// Rule selects the date-generation direction.
type Rule string

const (
	// Forward rolls from the start date toward maturity.
	Forward Rule = "FORWARD"
	// Backward rolls from maturity toward the start date, anchoring the
	// regular dates to maturity and leaving any stub at the front.
	Backward Rule = "BACKWARD"
)

// Schedule is an ordered sequence of payment dates between a start and a
// maturity date.
type Schedule struct {
	dates []time.Time
	cal   calendar.CalendarID
	step  period.Period
}

func (s *Schedule) Dates() []time.Time          { return s.dates }
func (s *Schedule) Len() int                    { return len(s.dates) }
func (s *Schedule) StartDate() time.Time        { return s.dates[0] }
func (s *Schedule) EndDate() time.Time          { return s.dates[len(s.dates)-1] }
func (s *Schedule) Calendar() calendar.CalendarID { return s.cal }
func (s *Schedule) Step() period.Period         { return s.step }

// GenerateInput defines a schedule to build.
type GenerateInput struct {
	Start time.Time
	End   time.Time
	Step  period.Period

	Calendar calendar.CalendarID

	// Convention adjusts interior dates; TerminationConvention adjusts the
	// final (maturity) date.
	Convention            calendar.Convention
	TerminationConvention calendar.Convention

	Rule       Rule
	EndOfMonth bool
}

// Generate builds the payment date sequence for the input.
//
// Regular dates are laid out unadjusted, anchored to the start (Forward)
// or the end (Backward) so repeated stepping cannot drift, then business
// day conventions are applied. A period that does not tile the span
// exactly produces one short stub period at the unanchored end.
func Generate(in GenerateInput) (*Schedule, error) {
	if in.Start.IsZero() || in.End.IsZero() {
		return nil, fmt.Errorf("Generate: start and end dates are required")
	}
	if !in.End.After(in.Start) {
		return nil, fmt.Errorf("Generate: end %s not after start %s",
			in.End.Format("2006-01-02"), in.Start.Format("2006-01-02"))
	}
	if in.Step.Length <= 0 {
		return nil, fmt.Errorf("Generate: step %s must be positive", in.Step)
	}
	if in.Rule == "" {
		in.Rule = Backward
	}
	if in.Convention == "" {
		in.Convention = calendar.Unadjusted
	}
	if in.TerminationConvention == "" {
		in.TerminationConvention = in.Convention
	}

	var dates []time.Time
	switch in.Rule {
	case Backward:
		dates = append(dates, in.End)
		for k := 1; ; k++ {
			d := addPeriodScaled(in.End, in.Step, -k, in.EndOfMonth)
			if !d.After(in.Start) {
				break
			}
			dates = append(dates, d)
		}
		dates = append(dates, in.Start)
		reverse(dates)
	case Forward:
		dates = append(dates, in.Start)
		for k := 1; ; k++ {
			d := addPeriodScaled(in.Start, in.Step, k, in.EndOfMonth)
			if !d.Before(in.End) {
				break
			}
			dates = append(dates, d)
		}
		dates = append(dates, in.End)
	default:
		return nil, fmt.Errorf("Generate: unknown rule %q", in.Rule)
	}

	for i, d := range dates {
		conv := in.Convention
		if i == len(dates)-1 {
			conv = in.TerminationConvention
		}
		adj, err := calendar.Apply(in.Calendar, conv, d)
		if err != nil {
			return nil, fmt.Errorf("Generate: %w", err)
		}
		dates[i] = adj
	}

	return &Schedule{dates: dates, cal: in.Calendar, step: in.Step}, nil
}

// Sinking builds the payment dates of a sinking-fund bond: maturity at
// start + tenor, stepped by the frequency period, generated backward from
// maturity, both conventions unadjusted, no end-of-month roll.
func Sinking(start time.Time, tenor period.Period, freq period.Frequency, cal calendar.CalendarID) (*Schedule, error) {
	step, err := freq.Period()
	if err != nil {
		return nil, fmt.Errorf("Sinking: %w", err)
	}
	return Generate(GenerateInput{
		Start:                 start,
		End:                   AddPeriod(start, tenor),
		Step:                  step,
		Calendar:              cal,
		Convention:            calendar.Unadjusted,
		TerminationConvention: calendar.Unadjusted,
		Rule:                  Backward,
		EndOfMonth:            false,
	})
}

// AddPeriod advances a date by a calendar period.
func AddPeriod(t time.Time, p period.Period) time.Time {
	return addPeriodScaled(t, p, 1, false)
}

// addPeriodScaled advances t by n×p from the anchor date in one jump.
func addPeriodScaled(t time.Time, p period.Period, n int, eom bool) time.Time {
	switch p.Unit {
	case period.Days:
		return t.AddDate(0, 0, n*p.Length)
	case period.Weeks:
		return t.AddDate(0, 0, 7*n*p.Length)
	case period.Months:
		if eom {
			return utils.AddMonth(t, n*p.Length)
		}
		return t.AddDate(0, n*p.Length, 0)
	case period.Years:
		return t.AddDate(n*p.Length, 0, 0)
	default:
		return t
	}
}

func reverse(dates []time.Time) {
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
}
