package holidays

import (
	"context"

	"github.com/zuoliang/QuantLib/calendar"
)

// Feed supplies holiday dates (YYYY-MM-DD) for a calendar.
type Feed interface {
	Holidays(ctx context.Context, cal calendar.CalendarID) ([]string, error)
}

// MapFeed is a static map-backed implementation for development/testing.
type MapFeed struct {
	sets map[calendar.CalendarID][]string
}

func NewMapFeed(sets map[calendar.CalendarID][]string) *MapFeed {
	return &MapFeed{sets: sets}
}

func (m *MapFeed) Holidays(_ context.Context, cal calendar.CalendarID) ([]string, error) {
	return m.sets[cal], nil
}

// Install loads a calendar's holidays from the feed and registers them,
// replacing the bundled set.
func Install(ctx context.Context, feed Feed, cal calendar.CalendarID) error {
	dates, err := feed.Holidays(ctx, cal)
	if err != nil {
		return err
	}
	calendar.Register(cal, dates)
	return nil
}
