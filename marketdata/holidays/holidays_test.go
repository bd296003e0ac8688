package holidays_test

import (
	"context"
	"testing"
	"time"

	"github.com/zuoliang/QuantLib/calendar"
	"github.com/zuoliang/QuantLib/marketdata/holidays"
)

func TestMapFeedInstall(t *testing.T) {
	const cal = calendar.CalendarID("FEEDTEST")

	feed := holidays.NewMapFeed(map[calendar.CalendarID][]string{
		cal: {"2025-08-15"},
	})
	if err := holidays.Install(context.Background(), feed, cal); err != nil {
		t.Fatalf("Install error: %v", err)
	}

	holiday := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	if calendar.IsBusinessDay(cal, holiday) {
		t.Fatal("installed holiday should not be a business day")
	}
}

func TestMapFeedUnknownCalendar(t *testing.T) {
	feed := holidays.NewMapFeed(nil)
	dates, err := feed.Holidays(context.Background(), calendar.US)
	if err != nil {
		t.Fatalf("Holidays error: %v", err)
	}
	if len(dates) != 0 {
		t.Fatalf("expected no dates, got %v", dates)
	}
}
