package tracker

import (
	"context"
	"time"

	"github.com/protomem/timeclock/internal/model"
)

// Store is the time record store: person roster, session log and per-person
// totals. Every call on a Tx runs inside the transaction opened by WithinTx.
type Store interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// LockPerson loads a person and holds it until the transaction ends, so
	// that operations on the same person are serialised.
	LockPerson(ctx context.Context, id model.ID) (model.Person, error)
	GetPerson(ctx context.Context, id model.ID) (model.Person, error)
	FindPersons(ctx context.Context, filter PersonFilter) ([]model.Person, error)
	InsertPerson(ctx context.Context, input PersonInput) (model.ID, error)
	UpdatePerson(ctx context.Context, id model.ID, patch PersonPatch) error
	DeletePerson(ctx context.Context, id model.ID) error

	InsertSession(ctx context.Context, person model.ID, start time.Time) (model.ID, error)
	GetSession(ctx context.Context, person, session model.ID) (model.Session, error)
	GetOpenSession(ctx context.Context, person model.ID) (model.Session, error)
	QuerySessions(ctx context.Context, person model.ID, openOnly bool) ([]model.Session, error)
	ListSessions(ctx context.Context) ([]model.SessionEntry, error)
	// UpdateSession returns the number of rows it changed.
	UpdateSession(ctx context.Context, person, session model.ID, start, stop *time.Time) (int64, error)
	// DeleteClosedSession removes a session only if it has a stop time and
	// returns the number of rows it removed.
	DeleteClosedSession(ctx context.Context, person, session model.ID) (int64, error)
	DeleteSessions(ctx context.Context, person model.ID) error

	GetTotalTime(ctx context.Context, person model.ID) (model.TotalTime, error)
	UpsertTotalTime(ctx context.Context, total model.TotalTime) error
	DeleteTotalTime(ctx context.Context, person model.ID) error
	ListTotalTimes(ctx context.Context) ([]model.PersonTotalTime, error)
}

type PersonInput struct {
	FirstName string
	LastName  string
	TagNum    string
	Email     string
	Role      model.Role
}

type PersonPatch struct {
	FirstName *string
	LastName  *string
	Email     *string
	Role      *model.Role
}

func (p PersonPatch) Empty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil && p.Role == nil
}

type PersonFilter struct {
	// Name matches either the first or the last name.
	Name *string
}
