package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryKindAndMessage(t *testing.T) {
	tests := []struct {
		err  *Error
		kind Kind
		msg  string
	}{
		{NotFound("client with id %d not found", 7), KindNotFound, "client with id 7 not found"},
		{InvalidArgument("invalid date"), KindInvalidArgument, "invalid date"},
		{InvalidState("service %q is not active", "Manicure"), KindInvalidState, `service "Manicure" is not active`},
		{Conflict("slot taken"), KindConflict, "slot taken"},
		{Unauthorized("invalid email or password"), KindUnauthorized, "invalid email or password"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.kind, tt.err.Kind)
		assert.Equal(t, tt.msg, tt.err.Error())
	}
}

func TestInternalWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.Equal(t, KindInternal, err.Kind)
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("wrapped: %w", Conflict("slot taken"))))
	assert.Equal(t, KindInternal, KindOf(errors.New("plain error")))
}

func TestIsKind(t *testing.T) {
	err := Conflict("slot taken")

	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsKind(err, KindNotFound))
	assert.True(t, IsKind(errors.New("plain"), KindInternal))
}
