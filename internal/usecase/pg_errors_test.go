package usecase

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	emailErr := &pgconn.PgError{Code: "23505", ConstraintName: "uni_users_email"}

	assert.True(t, isUniqueViolation(emailErr, "email"))
	assert.True(t, isUniqueViolation(emailErr, ""))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", emailErr), "email"))
	assert.False(t, isUniqueViolation(emailErr, "national_id"))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "23P01"}, "email"))
	assert.False(t, isUniqueViolation(errors.New("plain error"), "email"))
	assert.False(t, isUniqueViolation(nil, "email"))
}

func TestIsExclusionViolation(t *testing.T) {
	exclErr := &pgconn.PgError{Code: "23P01", ConstraintName: "excl_appointments_specialist_window"}

	assert.True(t, isExclusionViolation(exclErr))
	assert.True(t, isExclusionViolation(fmt.Errorf("commit: %w", exclErr)))
	assert.False(t, isExclusionViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isExclusionViolation(errors.New("plain error")))
	assert.False(t, isExclusionViolation(nil))
}
