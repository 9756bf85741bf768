package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Dialect:     DialectSQLite,
		DSN:         filepath.Join(t.TempDir(), "test.db"),
		Automigrate: true,
		Timeout:     5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestParseDialect(t *testing.T) {
	tests := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{in: "postgres", want: DialectPostgres},
		{in: " PGX ", want: DialectPostgres},
		{in: "postgresql", want: DialectPostgres},
		{in: "sqlite", want: DialectSQLite},
		{in: "sqlite3", want: DialectSQLite},
		{in: "mysql", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseDialect(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	assert.Equal(t, squirrel.Dollar, DialectPostgres.placeholder())
	assert.Equal(t, squirrel.Question, DialectSQLite.placeholder())
}

func TestConnectionStrings(t *testing.T) {
	assert.Equal(t, "u:p@host:5432/db?sslmode=disable", postgresURL("postgres://u:p@host:5432/db"))
	assert.Equal(t, "u:p@host/db?x=1&sslmode=disable", postgresURL("u:p@host/db?x=1"))
	assert.Equal(t, "u:p@host/db?sslmode=require", postgresURL("u:p@host/db?sslmode=require"))

	assert.Equal(t, "postgres://u:p@host/db", connString(DialectPostgres, "u:p@host/db"))
	assert.Equal(t, "postgres://u:p@host/db", migrateURL(DialectPostgres, "u:p@host/db"))

	lite := connString(DialectSQLite, "/var/lib/timeclock.db")
	assert.Contains(t, lite, "file:/var/lib/timeclock.db?")
	assert.Contains(t, lite, "_pragma=foreign_keys(1)")
	assert.Contains(t, lite, "_txlock=immediate")
	assert.Equal(t, "sqlite:///var/lib/timeclock.db", migrateURL(DialectSQLite, "/var/lib/timeclock.db"))

	withQuery := connString(DialectSQLite, "/var/lib/timeclock.db?mode=rwc")
	assert.True(t, strings.HasPrefix(withQuery, "file:/var/lib/timeclock.db?mode=rwc&_pragma=foreign_keys(1)&"), withQuery)
	assert.Equal(t, 1, strings.Count(withQuery, "?"))
}

func TestNew_SQLiteDSNWithQuery(t *testing.T) {
	db, err := New(slog.New(slog.NewTextHandler(io.Discard, nil)), Options{
		Dialect: DialectSQLite,
		DSN:     filepath.Join(t.TempDir(), "query.db") + "?mode=rwc",
		Timeout: 5 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var fk int
	require.NoError(t, db.GetContext(context.Background(), &fk, "PRAGMA foreign_keys"))
	assert.Equal(t, 1, fk)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Migrate())

	var tables []string
	err := db.SelectContext(context.Background(), &tables,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('persons', 'sessions', 'total_time') ORDER BY name")
	require.NoError(t, err)
	assert.Equal(t, []string{"persons", "sessions", "total_time"}, tables)
}

func TestInTx_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := db.InTx(ctx, func(ctx context.Context, conn *Conn) error {
		_, err := NewPersonDAO(slog.Default(), conn).Insert(ctx, InsertPersonDTO{
			FirstName: "Ada", LastName: "Lovelace", TagNum: "T-1", Email: "ada@example.com", Role: 4,
		})
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	persons, err := NewPersonDAO(slog.Default(), db.Executor()).Find(ctx, FindPersonFilter{}, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestInTx_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = db.InTx(ctx, func(ctx context.Context, conn *Conn) error {
			_, err := NewPersonDAO(slog.Default(), conn).Insert(ctx, InsertPersonDTO{
				FirstName: "Ada", LastName: "Lovelace", TagNum: "T-1", Email: "ada@example.com", Role: 4,
			})
			require.NoError(t, err)
			panic("boom")
		})
	})

	persons, err := NewPersonDAO(slog.Default(), db.Executor()).Find(ctx, FindPersonFilter{}, FindOptions{})
	require.NoError(t, err)
	assert.Empty(t, persons)
}

func TestInTx_RetriesTransientOnce(t *testing.T) {
	db := newTestDB(t)

	attempts := 0
	err := db.InTx(context.Background(), func(context.Context, *Conn) error {
		attempts++
		return errBadConn
	})
	require.Error(t, err)
	assert.Equal(t, _maxAttempts, attempts)

	attempts = 0
	err = db.InTx(context.Background(), func(context.Context, *Conn) error {
		attempts++
		return errors.New("permanent")
	})
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
