package tracker

import (
	"context"
	"errors"
	"fmt"

	"github.com/protomem/timeclock/internal/model"
)

// StartSession opens a session for the person. It fails with ErrConflict when
// one is already open and with ErrNotFound for an unknown person.
func (s *Service) StartSession(ctx context.Context, person model.ID) (model.Session, error) {
	var session model.Session
	err := s.run(ctx, opStart, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.LockPerson(ctx, person); err != nil {
			return err
		}

		open, err := tx.GetOpenSession(ctx, person)
		switch {
		case err == nil:
			return model.NewDetailedError("session", model.ErrConflict,
				fmt.Sprintf("session already open (id %d)", open.ID))
		case !errors.Is(err, model.ErrNotFound):
			return err
		}

		start := s.now()
		id, err := tx.InsertSession(ctx, person, start)
		if err != nil {
			return err
		}

		session = model.Session{ID: id, PersonID: person, Start: start}
		return nil
	})
	if err != nil {
		return model.Session{}, err
	}

	s.logger.Info("session started", "personId", person, "sessionId", session.ID)

	return session, nil
}

type StopResult struct {
	Session    model.Session   `json:"session"`
	PersonName string          `json:"personName"`
	Summary    model.TotalTime `json:"summary"`
}

// StopSession closes the person's open session and refreshes their total. It
// fails with ErrNotFound when nothing is open.
func (s *Service) StopSession(ctx context.Context, person model.ID) (StopResult, error) {
	var res StopResult
	err := s.run(ctx, opStop, person, func(ctx context.Context, tx Tx) error {
		owner, err := tx.LockPerson(ctx, person)
		if err != nil {
			return err
		}

		open, err := tx.GetOpenSession(ctx, person)
		if err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewDetailedError("session", model.ErrNotFound, "no open session")
			}
			return err
		}

		stop := s.now()
		if stop.Before(open.Start) {
			stop = open.Start
		}

		n, err := tx.UpdateSession(ctx, person, open.ID, nil, &stop)
		if err != nil {
			return err
		}
		if n == 0 {
			return model.NewDetailedError("session", model.ErrNotFound, "no open session")
		}
		open.Stop = &stop

		summary, err := s.recompute(ctx, tx, person)
		if err != nil {
			return err
		}

		res = StopResult{
			Session:    open,
			PersonName: owner.DisplayName(),
			Summary:    summary,
		}
		return nil
	})
	if err != nil {
		return StopResult{}, err
	}

	s.logger.Info("session stopped",
		"personId", person, "sessionId", res.Session.ID, "durationSeconds", res.Session.Duration())

	return res, nil
}

// OpenSession returns the person's open session, if any.
func (s *Service) OpenSession(ctx context.Context, person model.ID) (model.Session, error) {
	var open model.Session
	err := s.run(ctx, opListSessions, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetPerson(ctx, person); err != nil {
			return err
		}

		var err error
		open, err = tx.GetOpenSession(ctx, person)
		return err
	})
	return open, err
}

func (s *Service) ListPersonSessions(ctx context.Context, person model.ID) ([]model.Session, error) {
	var sessions []model.Session
	err := s.run(ctx, opListSessions, person, func(ctx context.Context, tx Tx) error {
		if _, err := tx.GetPerson(ctx, person); err != nil {
			return err
		}

		var err error
		sessions, err = tx.QuerySessions(ctx, person, false)
		return err
	})
	return sessions, err
}

func (s *Service) ListAllSessions(ctx context.Context) ([]model.SessionEntry, error) {
	var entries []model.SessionEntry
	err := s.run(ctx, opListSessions, 0, func(ctx context.Context, tx Tx) error {
		var err error
		entries, err = tx.ListSessions(ctx)
		return err
	})
	return entries, err
}
