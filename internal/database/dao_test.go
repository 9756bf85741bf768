package database

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/protomem/timeclock/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func insertPerson(t *testing.T, conn *Conn, tag string) model.ID {
	t.Helper()

	id, err := NewPersonDAO(_testLogger, conn).Insert(context.Background(), InsertPersonDTO{
		FirstName: "Ada",
		LastName:  "Lovelace",
		TagNum:    tag,
		Email:     tag + "@example.com",
		Role:      model.RoleUser,
	})
	require.NoError(t, err)
	return id
}

func TestPersonDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	dao := NewPersonDAO(_testLogger, db.Executor())

	id := insertPerson(t, db.Executor(), "T-1")

	person, err := dao.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", person.FirstName)
	assert.Equal(t, model.RoleUser, person.Role)
	assert.False(t, person.CreatedAt.IsZero())

	_, err = dao.Insert(ctx, InsertPersonDTO{
		FirstName: "Copy", LastName: "Cat", TagNum: "T-1", Email: "other@example.com", Role: model.RoleUser,
	})
	require.ErrorIs(t, err, model.ErrExists)

	role := model.RoleAdmin
	require.NoError(t, dao.Update(ctx, id, UpdatePersonDTO{Role: &role}))
	person, err = dao.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, person.Role)

	require.ErrorIs(t, dao.Update(ctx, id+1, UpdatePersonDTO{Role: &role}), model.ErrNotFound)

	name := "Lovelace"
	found, err := dao.Find(ctx, FindPersonFilter{Name: &name}, FindOptions{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, found, 1)

	require.NoError(t, dao.Delete(ctx, id))
	_, err = dao.Get(ctx, id)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionDAO(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	conn := db.Executor()
	dao := NewSessionDAO(_testLogger, conn)

	person := insertPerson(t, conn, "T-1")
	start := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)

	id, err := dao.Insert(ctx, InsertSessionDTO{Person: person, Start: start})
	require.NoError(t, err)

	_, err = dao.Insert(ctx, InsertSessionDTO{Person: person, Start: start.Add(time.Minute)})
	require.ErrorIs(t, err, model.ErrConflict, "second open session must hit the partial unique index")

	_, err = dao.Insert(ctx, InsertSessionDTO{Person: person + 100, Start: start})
	require.ErrorIs(t, err, model.ErrNotFound)

	open, err := dao.GetOpen(ctx, person)
	require.NoError(t, err)
	assert.Equal(t, id, open.ID)
	assert.True(t, open.Start.Equal(start))
	assert.Equal(t, time.Local, open.Start.Location())

	n, err := dao.DeleteClosed(ctx, person, id)
	require.NoError(t, err)
	assert.Zero(t, n)

	stop := start.Add(time.Hour)
	n, err = dao.Update(ctx, person, id, UpdateSessionDTO{Stop: &stop})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = dao.GetOpen(ctx, person)
	require.ErrorIs(t, err, model.ErrNotFound)

	closed, err := dao.Find(ctx, FindSessionFilter{Person: &person, ClosedOnly: true})
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, int64(3600), closed[0].Duration())

	entries, err := dao.FindWithPersons(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Ada", entries[0].FirstName)

	n, err = dao.DeleteClosed(ctx, person, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestTotalTimeDAO_UpsertKeepsBreakTime(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	conn := db.Executor()
	dao := NewTotalTimeDAO(_testLogger, conn)

	person := insertPerson(t, conn, "T-1")

	_, err := dao.Get(ctx, person)
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, dao.Upsert(ctx, model.TotalTime{
		PersonID: person, SumTime: "01:00:00", DaysWorked: 0, BreakTime: "00:15:00",
	}))
	require.NoError(t, dao.Upsert(ctx, model.TotalTime{
		PersonID: person, SumTime: "02:00:00", DaysWorked: 1,
	}))

	total, err := dao.Get(ctx, person)
	require.NoError(t, err)
	assert.Equal(t, model.TotalTime{
		PersonID: person, SumTime: "02:00:00", DaysWorked: 1, BreakTime: "00:15:00",
	}, total)

	err = dao.Upsert(ctx, model.NewTotalTime(person+100))
	require.ErrorIs(t, err, model.ErrNotFound)

	insertPerson(t, conn, "T-2")
	totals, err := dao.FindWithPersons(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, model.ZeroClock, totals[1].SumTime)

	require.NoError(t, dao.Delete(ctx, person))
	_, err = dao.Get(ctx, person)
	require.ErrorIs(t, err, model.ErrNotFound)
}
