package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v5"
	"github.com/protomem/timeclock/assets"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	_defaultTimeout = 3 * time.Second
	_retryDelay     = 100 * time.Millisecond
	_maxAttempts    = 2
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectPostgres, "pgx", "postgresql":
		return DialectPostgres, nil
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("database: unsupported driver %q", s)
	}
}

func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

func (d Dialect) placeholder() squirrel.PlaceholderFormat {
	if d == DialectPostgres {
		return squirrel.Dollar
	}
	return squirrel.Question
}

type Options struct {
	Dialect     Dialect
	DSN         string
	Automigrate bool

	// Timeout bounds a single transaction attempt.
	Timeout time.Duration
}

type DB struct {
	*sqlx.DB
	Builder squirrel.StatementBuilderType
	Dialect Dialect

	logger  *slog.Logger
	dsn     string
	timeout time.Duration
}

// Conn is what DAOs run their statements against: either the pool or an
// open transaction.
type Conn struct {
	sqlx.ExtContext
	Builder squirrel.StatementBuilderType
	Dialect Dialect
}

func New(logger *slog.Logger, opts Options) (*DB, error) {
	if opts.Timeout <= 0 {
		opts.Timeout = _defaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.Timeout)
	defer cancel()

	dsn := opts.DSN
	if opts.Dialect == DialectPostgres {
		dsn = postgresURL(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, opts.Dialect.driverName(), connString(opts.Dialect, dsn))
	if err != nil {
		return nil, err
	}

	switch opts.Dialect {
	case DialectPostgres:
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxIdleTime(5 * time.Minute)
		db.SetConnMaxLifetime(2 * time.Hour)
	case DialectSQLite:
		// single writer; one connection also serialises every transaction
		db.SetMaxOpenConns(1)
	}

	wrapped := &DB{
		DB:      db,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(opts.Dialect.placeholder()),
		Dialect: opts.Dialect,
		logger:  logger.With("module", "database", "dialect", string(opts.Dialect)),
		dsn:     dsn,
		timeout: opts.Timeout,
	}

	if opts.Automigrate {
		if err := wrapped.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return wrapped, nil
}

func (db *DB) Migrate() error {
	iofsDriver, err := iofs.New(assets.EmbeddedFiles, "migrations/"+string(db.Dialect))
	if err != nil {
		return err
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", iofsDriver, migrateURL(db.Dialect, db.dsn))
	if err != nil {
		return err
	}
	defer migrator.Close()

	err = migrator.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		db.logger.Debug("migrations up to date")
	case err != nil:
		return err
	default:
		version, _, _ := migrator.Version()
		db.logger.Info("migrations applied", "version", version)
	}

	return nil
}

// Executor returns a handle bound to the pool, outside of any transaction.
func (db *DB) Executor() *Conn {
	return &Conn{
		ExtContext: db.DB,
		Builder:    db.Builder,
		Dialect:    db.Dialect,
	}
}

// InTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise, including on panic. An attempt that
// fails with a transient connection error is retried once; fn must therefore
// be safe to run again.
func (db *DB) InTx(ctx context.Context, fn func(ctx context.Context, conn *Conn) error) error {
	attempt := func() (struct{}, error) {
		err := db.inTxOnce(ctx, fn)
		if err != nil && !IsTransient(err) {
			return struct{}{}, backoff.Permanent(err)
		}
		return struct{}{}, err
	}

	_, err := backoff.Retry(ctx, attempt,
		backoff.WithBackOff(backoff.NewConstantBackOff(_retryDelay)),
		backoff.WithMaxTries(_maxAttempts),
		backoff.WithNotify(func(err error, next time.Duration) {
			db.logger.Warn("transient store failure, retrying", "error", err, "after", next)
		}),
	)

	return err
}

func (db *DB) inTxOnce(ctx context.Context, fn func(ctx context.Context, conn *Conn) error) (err error) {
	ctx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	conn := &Conn{
		ExtContext: tx,
		Builder:    db.Builder,
		Dialect:    db.Dialect,
	}

	if err = fn(ctx, conn); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			db.logger.Warn("rollback failed", "error", rbErr)
		}
		return err
	}

	return tx.Commit()
}

func postgresURL(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "postgres://")
	if !strings.Contains(dsn, "sslmode=") {
		if strings.Contains(dsn, "?") {
			dsn += "&sslmode=disable"
		} else {
			dsn += "?sslmode=disable" // disable SSL
		}
	}
	return dsn
}

func connString(d Dialect, dsn string) string {
	if d == DialectPostgres {
		return "postgres://" + dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return "file:" + dsn + sep +
		"_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_txlock=immediate" +
		"&_time_format=sqlite"
}

func migrateURL(d Dialect, dsn string) string {
	if d == DialectPostgres {
		return "postgres://" + dsn
	}
	return "sqlite://" + dsn
}

func (c *Conn) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, c.ExtContext, dest, query, args...)
}

// wallClock pins a scanned timestamp to the local zone. Postgres TIMESTAMP
// columns come back labelled UTC while holding local wall-clock values.
func (c *Conn) wallClock(t time.Time) time.Time {
	if c.Dialect == DialectPostgres {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
	}
	return t.In(time.Local)
}
