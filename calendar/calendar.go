package calendar

import (
	"fmt"
	"time"
)

// CalendarID identifies a holiday calendar.
type CalendarID string

const (
	TARGET CalendarID = "TARGET"
	US     CalendarID = "US"
	KR     CalendarID = "KR"

	// NullCalendar treats every weekday as a business day and carries no
	// holidays. Used when dates must stay unadjusted.
	NullCalendar CalendarID = "NULL"
)

// Convention is a business-day roll convention.
type Convention string

const (
	Unadjusted        Convention = "UNADJUSTED"
	Following         Convention = "FOLLOWING"
	ModifiedFollowing Convention = "MODIFIED_FOLLOWING"
	Preceding         Convention = "PRECEDING"
)

var holidaySets = map[CalendarID]map[string]struct{}{}

func init() {
	Register(TARGET, targetHolidayList)
}

// Register installs holiday dates (YYYY-MM-DD) for a calendar, replacing
// any previously registered set. Feeds in marketdata/holidays call this
// after loading from a backing store.
func Register(cal CalendarID, dates []string) {
	set := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	holidaySets[cal] = set
}

func isHoliday(cal CalendarID, t time.Time) bool {
	set, ok := holidaySets[cal]
	if !ok {
		return false
	}
	_, ok = set[t.Format("2006-01-02")]
	return ok
}

// IsBusinessDay checks weekends and the registered holiday set.
func IsBusinessDay(cal CalendarID, t time.Time) bool {
	if t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return false
	}
	return !isHoliday(cal, t)
}

// Adjust applies Modified Following.
func Adjust(cal CalendarID, t time.Time) time.Time {
	origMonth := t.Month()
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	if t.Month() != origMonth {
		t = t.AddDate(0, 0, -1)
		for !IsBusinessDay(cal, t) {
			t = t.AddDate(0, 0, -1)
		}
	}
	return t
}

// AdjustFollowing applies a simple Following convention (no month preservation).
func AdjustFollowing(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, 1)
	}
	return t
}

// AdjustPreceding rolls backward to the prior business day.
func AdjustPreceding(cal CalendarID, t time.Time) time.Time {
	for !IsBusinessDay(cal, t) {
		t = t.AddDate(0, 0, -1)
	}
	return t
}

// Apply adjusts a date under the given convention.
func Apply(cal CalendarID, conv Convention, t time.Time) (time.Time, error) {
	switch conv {
	case Unadjusted:
		return t, nil
	case Following:
		return AdjustFollowing(cal, t), nil
	case ModifiedFollowing:
		return Adjust(cal, t), nil
	case Preceding:
		return AdjustPreceding(cal, t), nil
	default:
		return time.Time{}, fmt.Errorf("Apply: unknown convention %q", conv)
	}
}

// AddBusinessDays advances n business days (n can be negative).
func AddBusinessDays(cal CalendarID, t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
	}
	for n != 0 {
		t = t.AddDate(0, 0, step)
		if IsBusinessDay(cal, t) {
			n -= step
		}
	}
	return t
}

// LastBusinessDayOfMonth returns the last business day of the month containing t.
func LastBusinessDayOfMonth(cal CalendarID, t time.Time) time.Time {
	nextMonth := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, time.UTC)
	return AddBusinessDays(cal, nextMonth, -1)
}

// IsEndOfMonth checks if t is the last business day of its month.
func IsEndOfMonth(cal CalendarID, t time.Time) bool {
	return t.Equal(LastBusinessDayOfMonth(cal, t))
}
