package tracker_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/protomem/timeclock/internal/database"
	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/stretchr/testify/require"
)

var _t0 = time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	db      *database.DB
	store   *database.TimeRecordStore
	clock   *fakeClock
	service *tracker.Service
	logger  *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	return newFixtureWith(t, database.Options{
		Dialect:     database.DialectSQLite,
		DSN:         filepath.Join(t.TempDir(), "timeclock.db"),
		Automigrate: true,
		Timeout:     5 * time.Second,
	})
}

func newFixtureWith(t *testing.T, opts database.Options) *fixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := database.New(logger, opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := database.NewTimeRecordStore(logger, db)
	clock := newFakeClock(_t0)

	return &fixture{
		db:      db,
		store:   store,
		clock:   clock,
		service: tracker.New(logger, store, tracker.WithClock(clock)),
		logger:  logger,
	}
}

func (f *fixture) person(t *testing.T, tag string) model.Person {
	t.Helper()

	person, err := f.service.CreatePerson(context.Background(), tracker.PersonInput{
		FirstName: "Ada",
		LastName:  "Lovelace",
		TagNum:    tag,
		Email:     tag + "@example.com",
	})
	require.NoError(t, err)
	return person
}

// work records one closed session of length d starting at the current clock.
func (f *fixture) work(t *testing.T, person model.ID, d time.Duration) tracker.StopResult {
	t.Helper()

	ctx := context.Background()
	_, err := f.service.StartSession(ctx, person)
	require.NoError(t, err)

	f.clock.Advance(d)

	res, err := f.service.StopSession(ctx, person)
	require.NoError(t, err)
	return res
}

func (f *fixture) sessions(t *testing.T, person model.ID) []model.Session {
	t.Helper()

	sessions, err := f.service.ListPersonSessions(context.Background(), person)
	require.NoError(t, err)
	return sessions
}

func countOpen(sessions []model.Session) int {
	n := 0
	for _, s := range sessions {
		if s.Open() {
			n++
		}
	}
	return n
}

func ptr[T any](v T) *T {
	return &v
}

// failingStore hands out transactions whose total time upsert always fails.
type failingStore struct {
	tracker.Store
	err error
}

func (s failingStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx tracker.Tx) error) error {
	return s.Store.WithinTx(ctx, func(ctx context.Context, tx tracker.Tx) error {
		return fn(ctx, failingTx{Tx: tx, err: s.err})
	})
}

type failingTx struct {
	tracker.Tx
	err error
}

func (tx failingTx) UpsertTotalTime(context.Context, model.TotalTime) error {
	return tx.err
}
