package holidays

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/zuoliang/QuantLib/calendar"
)

// PostgresFeed reads holiday dates from a Postgres table:
//
//	CREATE TABLE holidays (calendar text NOT NULL, holiday_date date NOT NULL);
type PostgresFeed struct {
	db *sql.DB
}

// OpenPostgres connects with a lib/pq DSN and verifies the connection.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresFeed, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("OpenPostgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("OpenPostgres: ping: %w", err)
	}
	return &PostgresFeed{db: db}, nil
}

// NewPostgresFeed wraps an existing connection pool.
func NewPostgresFeed(db *sql.DB) *PostgresFeed {
	return &PostgresFeed{db: db}
}

func (f *PostgresFeed) Close() error {
	return f.db.Close()
}

func (f *PostgresFeed) Holidays(ctx context.Context, cal calendar.CalendarID) ([]string, error) {
	rows, err := f.db.QueryContext(ctx,
		`SELECT to_char(holiday_date, 'YYYY-MM-DD') FROM holidays WHERE calendar = $1 ORDER BY holiday_date`,
		string(cal))
	if err != nil {
		return nil, fmt.Errorf("Holidays: query %s: %w", cal, err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("Holidays: scan: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Holidays: rows: %w", err)
	}
	return dates, nil
}
