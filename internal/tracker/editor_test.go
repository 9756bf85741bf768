package tracker_test

import (
	"context"
	"testing"
	"time"

	"github.com/protomem/timeclock/internal/model"
	"github.com/protomem/timeclock/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	res := f.work(t, p.ID, time.Hour)
	require.Equal(t, "01:00:00", res.Summary.SumTime)

	edited, err := f.service.EditSession(ctx, p.ID, res.Session.ID, tracker.SessionPatch{
		Stop: ptr(_t0.Add(2*time.Hour + 30*time.Minute).Format(model.TimeLayout)),
	})
	require.NoError(t, err)

	assert.Equal(t, "02:30:00", edited.Summary.SumTime)
	assert.True(t, edited.Session.Start.Equal(_t0))
	require.NotNil(t, edited.Session.Stop)
	assert.Equal(t, int64(9000), edited.Session.Duration())

	sessions := f.sessions(t, p.ID)
	require.Len(t, sessions, 1)
	assert.Equal(t, int64(9000), sessions[0].Duration())
}

func TestEditSession_BothBounds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	res := f.work(t, p.ID, time.Hour)

	edited, err := f.service.EditSession(ctx, p.ID, res.Session.ID, tracker.SessionPatch{
		Start: ptr("2024-04-30 08:00:00"),
		Stop:  ptr("2024-05-01 09:00:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "01:00:00", edited.Summary.SumTime)
	assert.Equal(t, 1, edited.Summary.DaysWorked)
}

func TestEditSession_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		patch tracker.SessionPatch
	}{
		{
			name:  "malformed start",
			patch: tracker.SessionPatch{Start: ptr("not-a-date")},
		},
		{
			name:  "malformed stop",
			patch: tracker.SessionPatch{Stop: ptr("2024-05-01T10:00:00Z")},
		},
		{
			name:  "fractional seconds",
			patch: tracker.SessionPatch{Start: ptr("2024-05-01 09:00:00.5")},
		},
		{
			name:  "single digit hour",
			patch: tracker.SessionPatch{Start: ptr("2024-05-01 9:00:00")},
		},
		{
			name:  "padded",
			patch: tracker.SessionPatch{Stop: ptr(" 2024-05-01 10:00:00")},
		},
		{
			name:  "no fields",
			patch: tracker.SessionPatch{},
		},
		{
			name:  "stop before start",
			patch: tracker.SessionPatch{Stop: ptr("2024-05-01 08:00:00")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			ctx := context.Background()
			p := f.person(t, "T-1")

			res := f.work(t, p.ID, time.Hour)

			_, err := f.service.EditSession(ctx, p.ID, res.Session.ID, tt.patch)
			require.ErrorIs(t, err, model.ErrValidation)

			sessions := f.sessions(t, p.ID)
			require.Len(t, sessions, 1)
			assert.True(t, sessions[0].Start.Equal(res.Session.Start))
			assert.True(t, sessions[0].Stop.Equal(*res.Session.Stop))

			summary, err := f.service.GetSummary(ctx, p.ID)
			require.NoError(t, err)
			assert.Equal(t, res.Summary, summary)
		})
	}
}

func TestEditSession_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ada := f.person(t, "T-1")
	bob := f.person(t, "T-2")

	res := f.work(t, ada.ID, time.Hour)

	_, err := f.service.EditSession(ctx, ada.ID, res.Session.ID+100, tracker.SessionPatch{
		Stop: ptr("2024-05-01 11:00:00"),
	})
	require.ErrorIs(t, err, model.ErrNotFound)

	// sessions are scoped to their owner
	_, err = f.service.EditSession(ctx, bob.ID, res.Session.ID, tracker.SessionPatch{
		Stop: ptr("2024-05-01 11:00:00"),
	})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	first := f.work(t, p.ID, time.Hour)
	f.clock.Advance(time.Hour)
	second := f.work(t, p.ID, 30*time.Minute)
	require.Equal(t, "01:30:00", second.Summary.SumTime)

	summary, err := f.service.DeleteSession(ctx, p.ID, first.Session.ID)
	require.NoError(t, err)
	assert.Equal(t, "00:30:00", summary.SumTime)

	sessions := f.sessions(t, p.ID)
	require.Len(t, sessions, 1)
	assert.Equal(t, second.Session.ID, sessions[0].ID)
}

func TestDeleteSession_Unknown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	res := f.work(t, p.ID, time.Hour)

	_, err := f.service.DeleteSession(ctx, p.ID, res.Session.ID+1)
	require.ErrorIs(t, err, model.ErrNotFound)

	_, err = f.service.DeleteSession(ctx, p.ID, 0)
	require.ErrorIs(t, err, model.ErrValidation)

	summary, err := f.service.GetSummary(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, res.Summary, summary)
	assert.Len(t, f.sessions(t, p.ID), 1)
}

func TestDeleteSession_Open(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	session, err := f.service.StartSession(ctx, p.ID)
	require.NoError(t, err)

	_, err = f.service.DeleteSession(ctx, p.ID, session.ID)
	require.ErrorIs(t, err, model.ErrNotFound)

	assert.Equal(t, 1, countOpen(f.sessions(t, p.ID)))
}

func TestParseTimestamp(t *testing.T) {
	got, err := tracker.ParseTimestamp("2024-05-01 09:00:00")
	require.NoError(t, err)
	assert.True(t, got.Equal(_t0))
	assert.Equal(t, time.Local, got.Location())

	malformed := []string{
		"",
		"01.05.2024 09:00",
		"2024-05-01T09:00:00",
		"2024-05-01 9:00:00",
		"2024-5-1 09:00:00",
		"2024-05-01 09:00:00.5",
		" 2024-05-01 09:00:00 ",
		"2024-05-01 09:00:00\n",
		"2024-05-01 09:00:00+02:00",
	}
	for _, s := range malformed {
		_, err := tracker.ParseTimestamp(s)
		assert.ErrorIs(t, err, model.ErrValidation, "%q", s)
	}
}
