package validator

import (
	"testing"

	"serveeny_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Category(t *testing.T) {
	v := New()

	t.Run("known category passes", func(t *testing.T) {
		err := v.Validate(&dto.ProviderListQuery{Category: "plumbing"})
		assert.NoError(t, err)
	})

	t.Run("empty category passes", func(t *testing.T) {
		err := v.Validate(&dto.ProviderListQuery{})
		assert.NoError(t, err)
	})

	t.Run("unknown category fails with field message", func(t *testing.T) {
		err := v.Validate(&dto.ProviderListQuery{Category: "astrology"})
		require.Error(t, err)

		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "Unknown service category", vErr.Errors["category"])
	})
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	type payload struct {
		DisplayName string `json:"displayName" validate:"required"`
	}

	err := v.Validate(&payload{})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// Клиент видит json-имя поля, а не имя поля структуры
	assert.Contains(t, vErr.Errors, "displayName")
	assert.Equal(t, "This field is required", vErr.Errors["displayName"])
}
