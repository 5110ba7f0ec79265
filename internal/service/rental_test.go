package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guttosm/bikepulse/internal/domain/models"
)

type stubProvider struct {
	ds    *models.Dataset
	err   error
	calls int
}

func (s *stubProvider) Load(context.Context) (*models.Dataset, error) {
	s.calls++
	return s.ds, s.err
}
func (s *stubProvider) SourceName() string { return "stub" }

func ptr(t time.Time) *time.Time { return &t }

func TestRentalService_Summarize_TableDriven(t *testing.T) {
	cases := []struct {
		name      string
		provider  *stubProvider
		start     *time.Time
		end       *time.Time
		wantErr   error
		wantEmpty bool
		wantSum   int64
		wantRange models.DateRange
	}{
		{
			name:      "defaults to full span",
			provider:  &stubProvider{ds: exampleDataset()},
			wantSum:   300,
			wantRange: rng(day(2024, 1, 1), day(2024, 2, 15)),
		},
		{
			name:      "explicit start only",
			provider:  &stubProvider{ds: exampleDataset()},
			start:     ptr(day(2024, 2, 1)),
			wantSum:   200,
			wantRange: rng(day(2024, 2, 1), day(2024, 2, 15)),
		},
		{
			name:      "explicit end only",
			provider:  &stubProvider{ds: exampleDataset()},
			end:       ptr(day(2024, 1, 31)),
			wantSum:   100,
			wantRange: rng(day(2024, 1, 1), day(2024, 1, 31)),
		},
		{
			name:      "empty result",
			provider:  &stubProvider{ds: exampleDataset()},
			start:     ptr(day(2024, 3, 1)),
			end:       ptr(day(2024, 3, 31)),
			wantEmpty: true,
			wantRange: rng(day(2024, 3, 1), day(2024, 3, 31)),
		},
		{
			name:     "start after default end",
			provider: &stubProvider{ds: exampleDataset()},
			start:    ptr(day(2024, 3, 1)),
			wantErr:  models.ErrInvalidRange,
		},
		{
			name:     "inverted range",
			provider: &stubProvider{ds: exampleDataset()},
			start:    ptr(day(2024, 2, 15)),
			end:      ptr(day(2024, 1, 1)),
			wantErr:  models.ErrInvalidRange,
		},
		{
			name:     "load failure",
			provider: &stubProvider{err: models.ErrDataUnavailable},
			wantErr:  models.ErrDataUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewRentalService(tc.provider)
			out, err := svc.Summarize(context.Background(), tc.start, tc.end)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) || out != nil {
					t.Fatalf("want %v, got out=%+v err=%v", tc.wantErr, out, err)
				}
				return
			}
			if err != nil || out == nil {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
			if out.Empty != tc.wantEmpty {
				t.Fatalf("empty=%v want %v", out.Empty, tc.wantEmpty)
			}
			if !tc.wantEmpty && out.Summary.Sum != tc.wantSum {
				t.Fatalf("sum=%d want %d", out.Summary.Sum, tc.wantSum)
			}
			if !out.Range.Start.Equal(tc.wantRange.Start) || !out.Range.End.Equal(tc.wantRange.End) {
				t.Fatalf("range=%+v want %+v", out.Range, tc.wantRange)
			}
			if tc.provider.calls != 1 {
				t.Fatalf("dataset loaded %d times per query, want 1", tc.provider.calls)
			}
		})
	}
}

func TestRentalService_Bounds(t *testing.T) {
	svc := NewRentalService(&stubProvider{ds: exampleDataset()})
	r, n, err := svc.Bounds(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if n != 2 || !r.Start.Equal(day(2024, 1, 1)) || !r.End.Equal(day(2024, 2, 15)) {
		t.Fatalf("unexpected bounds: %+v n=%d", r, n)
	}
	if svc.SourceName() != "stub" {
		t.Fatalf("source=%q", svc.SourceName())
	}

	failing := NewRentalService(&stubProvider{err: models.ErrDataUnavailable})
	if _, _, err := failing.Bounds(context.Background()); !errors.Is(err, models.ErrDataUnavailable) {
		t.Fatalf("want ErrDataUnavailable, got %v", err)
	}
}
