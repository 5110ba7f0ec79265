package storage

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	pq "github.com/lib/pq"
)

// DailyRentalRow is one raw row of the daily rentals table.
// Season is kept as text so the loader applies the same parsing rules it
// uses for CSV input.
type DailyRentalRow struct {
	Day    time.Time
	Season string
	Count  int64
}

// RentalsRepository defines the read-only contract for the rentals table.
type RentalsRepository interface {
	ListDailyRentals(ctx context.Context) ([]DailyRentalRow, error)
	Ping(ctx context.Context) error
}

type rentalsRepository struct {
	db    *sql.DB
	table string
}

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)

// NewRentalsRepository returns a repository reading from table
// (optionally schema-qualified, e.g. "public.daily_rentals").
func NewRentalsRepository(db *sql.DB, table string) (RentalsRepository, error) {
	if !tableNamePattern.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &rentalsRepository{db: db, table: table}, nil
}

// ListDailyRentals returns every row ordered by day.
func (r *rentalsRepository) ListDailyRentals(ctx context.Context) ([]DailyRentalRow, error) {
	query := fmt.Sprintf(`SELECT dteday, season::text, cnt FROM %s ORDER BY dteday`, quoteTable(r.table))

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []DailyRentalRow
	for rows.Next() {
		var (
			row    DailyRentalRow
			season sql.NullString
			count  sql.NullInt64
		)
		if err := rows.Scan(&row.Day, &season, &count); err != nil {
			return nil, err
		}
		if !season.Valid || !count.Valid {
			return nil, fmt.Errorf("row %s: season and cnt must not be NULL", row.Day.Format(time.DateOnly))
		}
		row.Season = season.String
		row.Count = count.Int64
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Ping verifies the database is reachable.
func (r *rentalsRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// quoteTable quotes each dot-separated part of a validated table name.
func quoteTable(name string) string {
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			return pq.QuoteIdentifier(name[:i]) + "." + pq.QuoteIdentifier(name[i+1:])
		}
	}
	return pq.QuoteIdentifier(name)
}
