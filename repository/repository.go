// Package repository owns the single immutable snapshot of country records.
// The snapshot is read from a JSON document exactly once per Repository; all
// queries then run against the same in-memory sequence. After a successful
// load the snapshot is never mutated, so it may be read concurrently
// without locking.
package repository

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/paveg/atlas"
	"github.com/paveg/atlas/internal/errors"
)

// Repository loads and holds the country collection for the process
// lifetime. The zero value is not usable; construct with New.
type Repository struct {
	cfg    Config
	logger zerolog.Logger

	once      sync.Once
	countries []atlas.Country
	checksum  uint64
	err       error
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger attaches a logger for load diagnostics. Logging is disabled
// by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Repository) {
		r.logger = logger
	}
}

// New creates a Repository for the configured source. Nothing is read until
// the first Load call.
func New(cfg Config, opts ...Option) *Repository {
	r := &Repository{
		cfg:    cfg.WithDefaults(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads and decodes the source, at most once per Repository. Every
// subsequent call returns the cached snapshot (or the cached load error);
// the source is never re-read and a failed load is never retried.
func (r *Repository) Load(ctx context.Context) ([]atlas.Country, error) {
	r.once.Do(func() {
		r.countries, r.checksum, r.err = r.load(ctx)
	})
	return r.countries, r.err
}

// All returns the loaded snapshot: the same sequence on every call. Callers
// must treat it as read-only. All returns nil before the first successful
// Load.
func (r *Repository) All() []atlas.Country {
	return r.countries
}

// Len returns the number of loaded records.
func (r *Repository) Len() int {
	return len(r.countries)
}

// Checksum returns the xxhash64 digest of the raw source bytes, identifying
// the snapshot. It is zero before the first successful Load.
func (r *Repository) Checksum() uint64 {
	return r.checksum
}

func (r *Repository) load(ctx context.Context) ([]atlas.Country, uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, errors.NewLoadError(r.cfg.Path, "load canceled", err)
	}

	start := time.Now()
	data, err := os.ReadFile(r.cfg.Path)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.cfg.Path).Msg("source unreadable")
		return nil, 0, errors.NewLoadError(r.cfg.Path, "source unreadable", err)
	}

	countries, err := atlas.DecodeCountries(data)
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.cfg.Path).Msg("source malformed")
		return nil, 0, errors.NewLoadError(r.cfg.Path, "source malformed", err)
	}

	if r.cfg.MaxRecords > 0 && len(countries) > r.cfg.MaxRecords {
		countries = countries[:r.cfg.MaxRecords]
	}

	checksum := xxhash.Sum64(data)
	r.logger.Info().
		Str("path", r.cfg.Path).
		Int("records", len(countries)).
		Uint64("checksum", checksum).
		Dur("elapsed", time.Since(start)).
		Msg("snapshot loaded")

	return countries, checksum, nil
}
