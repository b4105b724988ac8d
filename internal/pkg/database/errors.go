package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgconn"
)

// Postgres SQLSTATE codes the repositories react to
const (
	codeUniqueViolation  = "23505"
	codeLockNotAvailable = "55P03"
)

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsLockTimeout reports whether err is a lock_timeout expiry
func IsLockTimeout(err error) bool {
	return hasCode(err, codeLockNotAvailable)
}

// IsIntegrityViolation reports whether err is any integrity constraint violation (SQLSTATE class 23)
func IsIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && len(pgErr.Code) == 5 && pgErr.Code[:2] == "23"
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// LockTimeoutStatement bounds how long the current transaction waits on row locks.
// SET does not take bind parameters, so the value is rendered as integer milliseconds.
func LockTimeoutStatement(d time.Duration) string {
	return fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", d.Milliseconds())
}
