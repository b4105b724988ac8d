package database

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert membership: %w", &pgconn.PgError{Code: "23505"})
	lock := fmt.Errorf("select for update: %w", &pgconn.PgError{Code: "55P03"})

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(lock))
	assert.True(t, IsLockTimeout(lock))
	assert.False(t, IsLockTimeout(unique))
	assert.False(t, IsUniqueViolation(errors.New("connection reset")))
	assert.False(t, IsLockTimeout(nil))

	assert.True(t, IsIntegrityViolation(unique))
	assert.True(t, IsIntegrityViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, IsIntegrityViolation(lock))
}

func TestLockTimeoutStatement(t *testing.T) {
	assert.Equal(t, "SET LOCAL lock_timeout = '5000ms'", LockTimeoutStatement(5*time.Second))
	assert.Equal(t, "SET LOCAL lock_timeout = '250ms'", LockTimeoutStatement(250*time.Millisecond))
}
