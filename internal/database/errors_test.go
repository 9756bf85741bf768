package database

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

var errBadConn = fmt.Errorf("begin: %w", driver.ErrBadConn)

func TestErrorClassifiers(t *testing.T) {
	unique := &pgconn.PgError{Code: pgerrcode.UniqueViolation}
	fk := &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}
	deadlock := &pgconn.PgError{Code: pgerrcode.DeadlockDetected}
	serialization := &pgconn.PgError{Code: pgerrcode.SerializationFailure}
	connection := &pgconn.PgError{Code: pgerrcode.ConnectionFailure}

	assert.True(t, IsNoRows(fmt.Errorf("get: %w", sql.ErrNoRows)))
	assert.False(t, IsNoRows(errors.New("other")))

	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(fk))

	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsForeignKeyViolation(unique))

	assert.True(t, IsTransient(errBadConn))
	assert.True(t, IsTransient(deadlock))
	assert.True(t, IsTransient(serialization))
	assert.True(t, IsTransient(connection))
	assert.False(t, IsTransient(unique))
	assert.False(t, IsTransient(errors.New("syntax error")))
	assert.False(t, IsTransient(nil))
}
