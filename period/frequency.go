package period

import "fmt"

// Frequency enumerates payment frequencies as events per year.
type Frequency int

const (
	Once       Frequency = 0
	Annual     Frequency = 1
	Semiannual Frequency = 2
	Quarterly  Frequency = 4
	Bimonthly  Frequency = 6
	Monthly    Frequency = 12
	Weekly     Frequency = 52
)

func (f Frequency) String() string {
	switch f {
	case Once:
		return "Once"
	case Annual:
		return "Annual"
	case Semiannual:
		return "Semiannual"
	case Quarterly:
		return "Quarterly"
	case Bimonthly:
		return "Bimonthly"
	case Monthly:
		return "Monthly"
	case Weekly:
		return "Weekly"
	default:
		return fmt.Sprintf("Frequency(%d)", int(f))
	}
}

// Period converts the frequency to its equivalent time period
// (Semiannual ↔ 6M, Weekly ↔ 1W, ...).
func (f Frequency) Period() (Period, error) {
	switch f {
	case Annual:
		return Period{Length: 1, Unit: Years}, nil
	case Semiannual:
		return Period{Length: 6, Unit: Months}, nil
	case Quarterly:
		return Period{Length: 3, Unit: Months}, nil
	case Bimonthly:
		return Period{Length: 2, Unit: Months}, nil
	case Monthly:
		return Period{Length: 1, Unit: Months}, nil
	case Weekly:
		return Period{Length: 1, Unit: Weeks}, nil
	default:
		return Period{}, fmt.Errorf("Period: no period equivalent for frequency %s", f)
	}
}

// FrequencyOf maps a period back to its payment frequency (6M →
// Semiannual). Periods with no per-year equivalent come back as Once.
func FrequencyOf(p Period) Frequency {
	switch p.Normalized() {
	case Period{Length: 1, Unit: Years}:
		return Annual
	case Period{Length: 6, Unit: Months}:
		return Semiannual
	case Period{Length: 3, Unit: Months}:
		return Quarterly
	case Period{Length: 2, Unit: Months}:
		return Bimonthly
	case Period{Length: 1, Unit: Months}:
		return Monthly
	case Period{Length: 1, Unit: Weeks}:
		return Weekly
	default:
		return Once
	}
}

// ParseFrequency maps common frequency names ("semiannual", "quarterly")
// to the enum. Used by the command-line tools.
func ParseFrequency(name string) (Frequency, error) {
	switch name {
	case "annual":
		return Annual, nil
	case "semiannual":
		return Semiannual, nil
	case "quarterly":
		return Quarterly, nil
	case "bimonthly":
		return Bimonthly, nil
	case "monthly":
		return Monthly, nil
	case "weekly":
		return Weekly, nil
	default:
		return Once, fmt.Errorf("ParseFrequency: unknown frequency %q", name)
	}
}
