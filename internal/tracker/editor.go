package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/protomem/timeclock/internal/model"
)

// SessionPatch carries replacement timestamps in model.TimeLayout.
type SessionPatch struct {
	Start *string `json:"dateTimeStart"`
	Stop  *string `json:"dateTimeStop"`
}

func (p SessionPatch) Empty() bool {
	return p.Start == nil && p.Stop == nil
}

// ParseTimestamp reads a wire timestamp in the server's local zone. Only the
// exact model.TimeLayout form is accepted: no padding, no fractional seconds.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(model.TimeLayout, s, time.Local)
	if err != nil || t.Format(model.TimeLayout) != s {
		return time.Time{}, model.NewDetailedError("timestamp", model.ErrValidation,
			fmt.Sprintf("invalid timestamp format %q, want YYYY-MM-DD HH:MM:SS", s))
	}
	return t, nil
}

func (p SessionPatch) parse() (start, stop *time.Time, err error) {
	if p.Empty() {
		return nil, nil, model.NewDetailedError("session", model.ErrValidation, "no fields to update")
	}

	if p.Start != nil {
		t, err := ParseTimestamp(*p.Start)
		if err != nil {
			return nil, nil, err
		}
		start = &t
	}
	if p.Stop != nil {
		t, err := ParseTimestamp(*p.Stop)
		if err != nil {
			return nil, nil, err
		}
		stop = &t
	}

	return start, stop, nil
}

func validSessionID(id model.ID) error {
	if id == 0 {
		return model.NewDetailedError("session", model.ErrValidation, "invalid session id")
	}
	return nil
}

type EditResult struct {
	Session model.Session   `json:"session"`
	Summary model.TotalTime `json:"summary"`
}

// EditSession replaces the start and/or stop time of one of the person's
// sessions and refreshes their total. Input is validated before the store is
// touched.
func (s *Service) EditSession(ctx context.Context, person, session model.ID, patch SessionPatch) (EditResult, error) {
	if err := validSessionID(session); err != nil {
		observe(opEdit, time.Now(), err)
		return EditResult{}, err
	}

	start, stop, err := patch.parse()
	if err != nil {
		observe(opEdit, time.Now(), err)
		return EditResult{}, err
	}

	var res EditResult
	err = s.run(ctx, opEdit, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockPerson(ctx, person); err != nil {
			return err
		}

		current, err := tx.GetSession(ctx, person, session)
		if err != nil {
			return err
		}

		if start != nil {
			current.Start = *start
		}
		if stop != nil {
			current.Stop = stop
		}
		if current.Stop != nil && current.Stop.Before(current.Start) {
			return model.NewDetailedError("session", model.ErrValidation, "stop before start")
		}

		n, err := tx.UpdateSession(ctx, person, session, start, stop)
		if err != nil {
			return err
		}
		if n == 0 {
			return model.NewError("session", model.ErrNotFound)
		}

		summary, err := s.recompute(ctx, tx, person)
		if err != nil {
			return err
		}

		res = EditResult{Session: current, Summary: summary}
		return nil
	})
	if err != nil {
		return EditResult{}, err
	}

	return res, nil
}

// DeleteSession removes one of the person's closed sessions and refreshes
// their total. Open sessions cannot be deleted and report ErrNotFound.
func (s *Service) DeleteSession(ctx context.Context, person, session model.ID) (model.TotalTime, error) {
	if err := validSessionID(session); err != nil {
		observe(opDelete, time.Now(), err)
		return model.TotalTime{}, err
	}

	var summary model.TotalTime
	err := s.run(ctx, opDelete, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockPerson(ctx, person); err != nil {
			return err
		}

		n, err := tx.DeleteClosedSession(ctx, person, session)
		if err != nil {
			return err
		}
		if n == 0 {
			return model.NewDetailedError("session", model.ErrNotFound,
				fmt.Sprintf("no closed session %d", session))
		}

		summary, err = s.recompute(ctx, tx, person)
		return err
	})
	if err != nil {
		return model.TotalTime{}, err
	}

	return summary, nil
}
