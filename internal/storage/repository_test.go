package storage

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

func newMockRepo(t *testing.T) (*rentalsRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &rentalsRepository{db: db, table: "daily_rentals"}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func TestNewRentalsRepository_TableName(t *testing.T) {
	cases := []struct {
		table   string
		wantErr bool
	}{
		{table: "daily_rentals"},
		{table: "public.daily_rentals"},
		{table: "", wantErr: true},
		{table: "rentals; DROP TABLE x", wantErr: true},
		{table: "a.b.c", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			_, err := NewRentalsRepository(nil, tc.table)
			if (err != nil) != tc.wantErr {
				t.Fatalf("table %q: err=%v wantErr=%v", tc.table, err, tc.wantErr)
			}
		})
	}
}

func TestQuoteTable(t *testing.T) {
	if got := quoteTable("daily_rentals"); got != `"daily_rentals"` {
		t.Fatalf("got %s", got)
	}
	if got := quoteTable("public.daily_rentals"); got != `"public"."daily_rentals"` {
		t.Fatalf("got %s", got)
	}
}

func TestListDailyRentals_SQLMock(t *testing.T) {
	selectRegex := regexp.QuoteMeta(`SELECT dteday, season::text, cnt FROM "daily_rentals" ORDER BY dteday`)
	d1 := time.Date(2011, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2011, 1, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		wantLen  int
		wantErr  bool
	}{
		{
			name:    "two rows",
			rows:    sqlmock.NewRows([]string{"dteday", "season", "cnt"}).AddRow(d1, "Winter", int64(985)).AddRow(d2, "1", int64(801)),
			wantLen: 2,
		},
		{
			name:    "no rows",
			rows:    sqlmock.NewRows([]string{"dteday", "season", "cnt"}),
			wantLen: 0,
		},
		{
			name:    "null count",
			rows:    sqlmock.NewRows([]string{"dteday", "season", "cnt"}).AddRow(d1, "Winter", nil),
			wantErr: true,
		},
		{
			name:     "query error",
			queryErr: dummyErr{},
			wantErr:  true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, done := newMockRepo(t)
			defer done()

			exp := mock.ExpectQuery(selectRegex)
			if tc.queryErr != nil {
				exp.WillReturnError(tc.queryErr)
			} else {
				exp.WillReturnRows(tc.rows)
			}

			out, err := repo.ListDailyRentals(context.Background())
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", out)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected err: %v", err)
				}
				if len(out) != tc.wantLen {
					t.Fatalf("want %d rows got %d", tc.wantLen, len(out))
				}
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("unmet expectations: %v", err)
			}
		})
	}
}

func TestListDailyRentals_ValuesMapped(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	d1 := time.Date(2012, 7, 4, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT dteday`).
		WillReturnRows(sqlmock.NewRows([]string{"dteday", "season", "cnt"}).AddRow(d1, "Fall", int64(7403)))

	out, err := repo.ListDailyRentals(context.Background())
	if err != nil || len(out) != 1 {
		t.Fatalf("out=%+v err=%v", out, err)
	}
	if !out[0].Day.Equal(d1) || out[0].Season != "Fall" || out[0].Count != 7403 {
		t.Fatalf("unexpected row: %+v", out[0])
	}
}

func TestPing_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectPing()
	if err := repo.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
	mock.ExpectPing().WillReturnError(dummyErr{})
	if err := repo.Ping(context.Background()); err == nil {
		t.Fatalf("expected ping error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
