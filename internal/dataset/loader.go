package dataset

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/bikepulse/internal/domain/models"
	"github.com/guttosm/bikepulse/internal/logger"
)

// Loader loads the rental dataset from its Source exactly once and serves
// the cached *models.Dataset afterwards.
//
// Concurrent first callers share a single parse (singleflight). A failed
// load is returned to every caller waiting on it and is not cached, so a
// later call reads the source again.
type Loader struct {
	src   Source
	group singleflight.Group

	mu sync.RWMutex
	ds *models.Dataset
}

// NewLoader returns a Loader bound to src.
func NewLoader(src Source) *Loader {
	return &Loader{src: src}
}

// SourceName returns the name of the underlying source.
func (l *Loader) SourceName() string {
	return l.src.Name()
}

// Loaded reports whether the dataset is already cached.
func (l *Loader) Loaded() bool {
	return l.cached() != nil
}

// Load returns the cached dataset, reading and parsing the source on first
// use. Errors wrap models.ErrDataUnavailable.
func (l *Loader) Load(ctx context.Context) (*models.Dataset, error) {
	if ds := l.cached(); ds != nil {
		return ds, nil
	}

	// The shared load must not be cut short by the first caller's deadline.
	loadCtx := context.WithoutCancel(ctx)

	v, err, _ := l.group.Do(l.src.Name(), func() (any, error) {
		if ds := l.cached(); ds != nil {
			return ds, nil
		}
		ds, err := l.load(loadCtx)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.ds = ds
		l.mu.Unlock()
		return ds, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*models.Dataset), nil
}

func (l *Loader) cached() *models.Dataset {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.ds
}

func (l *Loader) load(ctx context.Context) (*models.Dataset, error) {
	start := time.Now()
	name := l.src.Name()
	logger.L().Info().Str("source", name).Msg("dataset load start")

	rows, err := l.src.Rows(ctx)
	if err != nil {
		logger.L().Error().Str("source", name).Err(err).Msg("dataset read failed")
		return nil, fmt.Errorf("%w: source %s: %w", models.ErrDataUnavailable, name, err)
	}

	records, err := ParseRows(rows)
	if err != nil {
		logger.L().Error().Str("source", name).Err(err).Msg("dataset parse failed")
		return nil, fmt.Errorf("%w: source %s: %w", models.ErrDataUnavailable, name, err)
	}

	ds, err := models.NewDataset(records)
	if err != nil {
		logger.L().Error().Str("source", name).Err(err).Msg("dataset rejected")
		return nil, fmt.Errorf("source %s: %w", name, err)
	}
	bounds, _ := ds.Bounds()
	logger.L().Info().
		Str("source", name).
		Int("records", ds.Len()).
		Str("start", bounds.Start.Format(time.DateOnly)).
		Str("end", bounds.End.Format(time.DateOnly)).
		Dur("elapsed", time.Since(start)).
		Msg("dataset loaded")
	return ds, nil
}
