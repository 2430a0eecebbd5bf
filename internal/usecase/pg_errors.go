package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// isUniqueViolation reports whether err is a Postgres unique violation
// whose constraint name contains fragment (empty matches any).
func isUniqueViolation(err error, fragment string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgUniqueViolation {
		return false
	}
	return fragment == "" || strings.Contains(pgErr.ConstraintName, fragment)
}

// isExclusionViolation reports whether err is a Postgres exclusion
// constraint violation. The appointments table carries an exclusion
// constraint over (specialist, occupied time range) that backs up the
// in-transaction availability check against concurrent bookings.
func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}
