// Package tracker is the session lifecycle and time aggregation engine.
//
// Every operation runs in a single store transaction: a mutation of the
// session log and the recompute of the person's total either both commit or
// both roll back.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/protomem/timeclock/internal/model"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type Service struct {
	store  Store
	clock  Clock
	logger *slog.Logger
}

type Option func(*Service)

func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

func New(logger *slog.Logger, store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		clock:  SystemClock{},
		logger: logger.With("module", "tracker"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// now is the clock reading used for stored timestamps: local zone, whole
// seconds.
func (s *Service) now() time.Time {
	return s.clock.Now().In(time.Local).Truncate(time.Second)
}

func (s *Service) run(ctx context.Context, op string, person model.ID, fn func(ctx context.Context, tx Tx) error) error {
	began := time.Now()

	err := asStoreError(s.store.WithinTx(ctx, fn))
	observe(op, began, err)

	logger := s.logger.With("operation", op, "personId", person)
	switch {
	case err == nil:
		logger.Debug("operation done", "took", time.Since(began))
	case errors.Is(err, model.ErrStore):
		logger.Error("operation failed", "error", err)
	default:
		logger.Debug("operation rejected", "error", err)
	}

	return err
}

// asStoreError tags every error that is not a domain outcome as a store
// failure.
func asStoreError(err error) error {
	if err == nil || model.IsDomain(err) || errors.Is(err, model.ErrStore) {
		return err
	}
	return fmt.Errorf("%w: %w", model.ErrStore, err)
}

func recomputeError(err error) error {
	if model.IsDomain(err) {
		return err
	}
	return fmt.Errorf("%w: %w: %w", model.ErrStore, model.ErrRecompute, err)
}
