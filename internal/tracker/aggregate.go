package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/protomem/timeclock/internal/model"
)

// Aggregate is worked time split into whole days and a clock remainder.
type Aggregate struct {
	TotalSeconds int64
	Days         int
	Hours        int
	Minutes      int
	Seconds      int
}

// Summarize adds up the closed sessions. Open sessions do not count.
func Summarize(sessions []model.Session) Aggregate {
	var total int64
	for _, session := range sessions {
		if d := session.Duration(); d > 0 {
			total += d
		}
	}
	return SplitSeconds(total)
}

func SplitSeconds(total int64) Aggregate {
	if total < 0 {
		total = 0
	}

	hours := total / 3600
	return Aggregate{
		TotalSeconds: total,
		Days:         int(hours / 24),
		Hours:        int(hours % 24),
		Minutes:      int(total % 3600 / 60),
		Seconds:      int(total % 60),
	}
}

// Clock renders the remainder as HH:MM:SS.
func (a Aggregate) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", a.Hours, a.Minutes, a.Seconds)
}

// Recompute rebuilds the person's total from the session log.
func (s *Service) Recompute(ctx context.Context, person model.ID) (model.TotalTime, error) {
	var total model.TotalTime
	err := s.run(ctx, opRecompute, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockPerson(ctx, person); err != nil {
			return err
		}

		var err error
		total, err = s.recompute(ctx, tx, person)
		return err
	})
	return total, err
}

// recompute must run after the session log write it follows, inside the same
// transaction.
func (s *Service) recompute(ctx context.Context, tx Tx, person model.ID) (model.TotalTime, error) {
	sessions, err := tx.QuerySessions(ctx, person, false)
	if err != nil {
		return model.TotalTime{}, recomputeError(err)
	}

	total, err := tx.GetTotalTime(ctx, person)
	switch {
	case errors.Is(err, model.ErrNotFound):
		total = model.NewTotalTime(person)
	case err != nil:
		return model.TotalTime{}, recomputeError(err)
	}

	agg := Summarize(sessions)
	total.SumTime = agg.Clock()
	total.DaysWorked = agg.Days

	if err := tx.UpsertTotalTime(ctx, total); err != nil {
		return model.TotalTime{}, recomputeError(err)
	}

	s.logger.Debug("total recomputed",
		"personId", person, "countSessions", len(sessions),
		"totalSeconds", agg.TotalSeconds, "sumTime", total.SumTime, "daysWorked", total.DaysWorked)

	return total, nil
}
