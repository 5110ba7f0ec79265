package service

import (
	"context"
	"time"

	"github.com/guttosm/bikepulse/internal/domain/models"
)

// DatasetProvider returns the shared, immutable dataset.
// *dataset.Loader satisfies it.
type DatasetProvider interface {
	Load(ctx context.Context) (*models.Dataset, error)
	SourceName() string
}

// RentalService defines the queries served to the presentation layer.
type RentalService interface {
	// Bounds returns the dataset span and its record count.
	Bounds(ctx context.Context) (models.DateRange, int, error)
	// Summarize aggregates the inclusive range [start, end]. A nil bound
	// defaults to the corresponding end of the dataset span.
	Summarize(ctx context.Context, start *time.Time, end *time.Time) (*models.AggregateResult, error)
	// SourceName identifies where the dataset is read from.
	SourceName() string
}

type rentalService struct {
	provider DatasetProvider
}

func NewRentalService(provider DatasetProvider) RentalService {
	return &rentalService{provider: provider}
}

func (s *rentalService) SourceName() string {
	return s.provider.SourceName()
}

func (s *rentalService) Bounds(ctx context.Context) (models.DateRange, int, error) {
	ds, err := s.provider.Load(ctx)
	if err != nil {
		return models.DateRange{}, 0, err
	}
	r, err := FullRange(ds)
	if err != nil {
		return models.DateRange{}, 0, err
	}
	return r, ds.Len(), nil
}

func (s *rentalService) Summarize(ctx context.Context, start *time.Time, end *time.Time) (*models.AggregateResult, error) {
	// one shared dataset feeds both the default bounds and the aggregation
	ds, err := s.provider.Load(ctx)
	if err != nil {
		return nil, err
	}
	r, err := resolveRange(ds, start, end)
	if err != nil {
		return nil, err
	}
	return Aggregate(ds, r)
}
