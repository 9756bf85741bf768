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

func TestSplitSeconds(t *testing.T) {
	tests := []struct {
		total     int64
		wantDays  int
		wantClock string
	}{
		{total: 0, wantDays: 0, wantClock: "00:00:00"},
		{total: 59, wantDays: 0, wantClock: "00:00:59"},
		{total: 3661, wantDays: 0, wantClock: "01:01:01"},
		{total: 86399, wantDays: 0, wantClock: "23:59:59"},
		{total: 86400, wantDays: 1, wantClock: "00:00:00"},
		{total: 90000, wantDays: 1, wantClock: "01:00:00"},
		{total: 3*86400 + 7322, wantDays: 3, wantClock: "02:02:02"},
		{total: -10, wantDays: 0, wantClock: "00:00:00"},
	}

	for _, tt := range tests {
		agg := tracker.SplitSeconds(tt.total)
		assert.Equal(t, tt.wantDays, agg.Days, "total %d", tt.total)
		assert.Equal(t, tt.wantClock, agg.Clock(), "total %d", tt.total)
	}
}

func TestSummarize(t *testing.T) {
	stop := func(d time.Duration) *time.Time {
		s := _t0.Add(d)
		return &s
	}

	sessions := []model.Session{
		{Start: _t0, Stop: stop(time.Hour)},
		{Start: _t0, Stop: stop(30 * time.Minute)},
		{Start: _t0},                         // open
		{Start: _t0, Stop: stop(-time.Hour)}, // inverted, ignored
	}

	agg := tracker.Summarize(sessions)
	assert.Equal(t, int64(5400), agg.TotalSeconds)
	assert.Equal(t, "01:30:00", agg.Clock())
}

func TestRecompute_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.person(t, "T-1")

	stopped := f.work(t, p.ID, 25*time.Hour+61*time.Second)
	f.clock.Advance(time.Hour)
	_, err := f.service.StartSession(ctx, p.ID)
	require.NoError(t, err)

	first, err := f.service.Recompute(ctx, p.ID)
	require.NoError(t, err)
	second, err := f.service.Recompute(ctx, p.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, stopped.Summary, first)
	assert.Equal(t, "01:01:01", first.SumTime)
	assert.Equal(t, 1, first.DaysWorked)
}

func TestRecompute_UnknownPerson(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Recompute(context.Background(), 77)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestRecompute_Failure(t *testing.T) {
	f := newFixture(t)
	p := f.person(t, "T-1")

	broken := tracker.New(f.logger, failingStore{Store: f.store, err: assert.AnError})

	_, err := broken.Recompute(context.Background(), p.ID)
	require.ErrorIs(t, err, model.ErrStore)
	require.ErrorIs(t, err, model.ErrRecompute)
	require.ErrorIs(t, err, assert.AnError)
}
