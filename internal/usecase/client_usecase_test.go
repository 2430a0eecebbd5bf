package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNationalIDValue(t *testing.T) {
	t.Run("present id is kept", func(t *testing.T) {
		got := nationalIDValue("V-12345678")
		require.NotNil(t, got)
		assert.Equal(t, "V-12345678", *got)
	})

	t.Run("blank id maps to NULL", func(t *testing.T) {
		assert.Nil(t, nationalIDValue(""))
	})

	t.Run("two clients without an id do not share a value", func(t *testing.T) {
		// The unique index on national_id must only bind clients that
		// actually have one; blank ids become NULL and never collide.
		first := nationalIDValue("")
		second := nationalIDValue("")
		assert.Nil(t, first)
		assert.Nil(t, second)
	})
}
