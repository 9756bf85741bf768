package database

import (
	"context"
	"log/slog"
	"time"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/tracker"
)

var _ tracker.Store = (*TimeRecordStore)(nil)

// TimeRecordStore exposes the persons, sessions and total_time tables to the
// tracker, one transaction per unit of work.
type TimeRecordStore struct {
	Logger *slog.Logger
	db     *DB
}

func NewTimeRecordStore(logger *slog.Logger, db *DB) *TimeRecordStore {
	return &TimeRecordStore{
		Logger: logger,
		db:     db,
	}
}

func (s *TimeRecordStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx tracker.Tx) error) error {
	return s.db.InTx(ctx, func(ctx context.Context, conn *Conn) error {
		return fn(ctx, &records{
			persons:  NewPersonDAO(s.Logger, conn),
			sessions: NewSessionDAO(s.Logger, conn),
			totals:   NewTotalTimeDAO(s.Logger, conn),
		})
	})
}

type records struct {
	persons  *PersonDAO
	sessions *SessionDAO
	totals   *TotalTimeDAO
}

func (r *records) LockPerson(ctx context.Context, id model.ID) (model.Person, error) {
	return r.persons.GetForUpdate(ctx, id)
}

func (r *records) GetPerson(ctx context.Context, id model.ID) (model.Person, error) {
	return r.persons.Get(ctx, id)
}

func (r *records) FindPersons(ctx context.Context, filter tracker.PersonFilter) ([]model.Person, error) {
	return r.persons.Find(ctx, FindPersonFilter{Name: filter.Name}, FindOptions{})
}

func (r *records) InsertPerson(ctx context.Context, input tracker.PersonInput) (model.ID, error) {
	return r.persons.Insert(ctx, InsertPersonDTO{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		TagNum:    input.TagNum,
		Email:     input.Email,
		Role:      input.Role,
	})
}

func (r *records) UpdatePerson(ctx context.Context, id model.ID, patch tracker.PersonPatch) error {
	return r.persons.Update(ctx, id, UpdatePersonDTO{
		FirstName: patch.FirstName,
		LastName:  patch.LastName,
		Email:     patch.Email,
		Role:      patch.Role,
	})
}

func (r *records) DeletePerson(ctx context.Context, id model.ID) error {
	return r.persons.Delete(ctx, id)
}

func (r *records) InsertSession(ctx context.Context, person model.ID, start time.Time) (model.ID, error) {
	return r.sessions.Insert(ctx, InsertSessionDTO{Person: person, Start: start})
}

func (r *records) GetSession(ctx context.Context, person, session model.ID) (model.Session, error) {
	return r.sessions.Get(ctx, person, session)
}

func (r *records) GetOpenSession(ctx context.Context, person model.ID) (model.Session, error) {
	return r.sessions.GetOpen(ctx, person)
}

func (r *records) QuerySessions(ctx context.Context, person model.ID, openOnly bool) ([]model.Session, error) {
	return r.sessions.Find(ctx, FindSessionFilter{Person: &person, OpenOnly: openOnly})
}

func (r *records) ListSessions(ctx context.Context) ([]model.SessionEntry, error) {
	return r.sessions.FindWithPersons(ctx)
}

func (r *records) UpdateSession(ctx context.Context, person, session model.ID, start, stop *time.Time) (int64, error) {
	return r.sessions.Update(ctx, person, session, UpdateSessionDTO{Start: start, Stop: stop})
}

func (r *records) DeleteClosedSession(ctx context.Context, person, session model.ID) (int64, error) {
	return r.sessions.DeleteClosed(ctx, person, session)
}

func (r *records) DeleteSessions(ctx context.Context, person model.ID) error {
	_, err := r.sessions.DeleteByPerson(ctx, person)
	return err
}

func (r *records) GetTotalTime(ctx context.Context, person model.ID) (model.TotalTime, error) {
	return r.totals.Get(ctx, person)
}

func (r *records) UpsertTotalTime(ctx context.Context, total model.TotalTime) error {
	return r.totals.Upsert(ctx, total)
}

func (r *records) DeleteTotalTime(ctx context.Context, person model.ID) error {
	return r.totals.Delete(ctx, person)
}

func (r *records) ListTotalTimes(ctx context.Context) ([]model.PersonTotalTime, error) {
	return r.totals.FindWithPersons(ctx)
}
