package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/bikepulse/internal/storage"
)

// RawRow is one unparsed record as read from a source.
// Line is the 1-based position in the source (header counts as line 1 for CSV).
type RawRow struct {
	Line   int
	Date   string
	Season string
	Count  string
}

// Source provides raw rental rows.
type Source interface {
	Name() string
	Rows(ctx context.Context) ([]RawRow, error)
}

// Accepted header names per column, compared case-insensitively.
var (
	dateHeaders   = []string{"dteday", "date"}
	seasonHeaders = []string{"season"}
	countHeaders  = []string{"cnt", "count"}
)

// FileSource reads rows from a comma-separated file with a header line.
// Columns are located by name; extra columns (instant, yr, mnth, temp...)
// are ignored.
type FileSource struct {
	Path string
}

// NewFileSource returns a FileSource for path.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) Name() string { return s.Path }

// Rows opens the file and reads all rows.
func (s *FileSource) Rows(ctx context.Context) ([]RawRow, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file %s not found", s.Path)
		}
		return nil, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readCSV(ctx, f)
}

// readCSV validates the header and streams the rows into RawRow values.
// It fails on:
//   - missing date/season/count columns
//   - rows whose column count differs from the header
//   - unrecoverable I/O errors or context cancellation
func readCSV(ctx context.Context, r io.Reader) ([]RawRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // checked explicitly for a better message
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	dateIdx, err := columnIndex(header, dateHeaders)
	if err != nil {
		return nil, err
	}
	seasonIdx, err := columnIndex(header, seasonHeaders)
	if err != nil {
		return nil, err
	}
	countIdx, err := columnIndex(header, countHeaders)
	if err != nil {
		return nil, err
	}

	var rows []RawRow
	lineNumber := 1 // header already read

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(header) {
			return nil, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(header), len(rec))
		}

		rows = append(rows, RawRow{
			Line:   lineNumber,
			Date:   rec[dateIdx],
			Season: rec[seasonIdx],
			Count:  rec[countIdx],
		})
	}

	return rows, nil
}

// columnIndex finds the first header matching one of names.
func columnIndex(header []string, names []string) (int, error) {
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		for _, n := range names {
			if h == n {
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("missing column %q", names[0])
}

// PostgresSource reads rows from a read-only table through the storage layer.
type PostgresSource struct {
	repo  storage.RentalsRepository
	table string
}

// NewPostgresSource returns a source backed by repo; table is only used
// for naming in logs and errors.
func NewPostgresSource(repo storage.RentalsRepository, table string) *PostgresSource {
	return &PostgresSource{repo: repo, table: table}
}

func (s *PostgresSource) Name() string { return "postgres:" + s.table }

// Rows lists the table and renders each row in the same textual form the
// CSV source produces, so both go through one normalization path.
func (s *PostgresSource) Rows(ctx context.Context) ([]RawRow, error) {
	list, err := s.repo.ListDailyRentals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily rentals: %w", err)
	}
	rows := make([]RawRow, 0, len(list))
	for i, r := range list {
		rows = append(rows, RawRow{
			Line:   i + 1,
			Date:   r.Day.Format(time.DateOnly),
			Season: r.Season,
			Count:  strconv.FormatInt(r.Count, 10),
		})
	}
	return rows, nil
}
