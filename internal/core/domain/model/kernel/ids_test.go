package kernel_test

import (
	"testing"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiers_Validate(t *testing.T) {
	require.NoError(t, kernel.ProductID(42).Validate())
	require.NoError(t, kernel.OrderID(1).Validate())
	require.NoError(t, kernel.Quantity(3).Validate())

	require.ErrorIs(t, kernel.ProductID(0).Validate(), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, kernel.OrderID(-5).Validate(), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, kernel.Quantity(0).Validate(), errs.ErrValueIsOutOfRange)
}

func TestQuantity_Normalize(t *testing.T) {
	assert.Equal(t, kernel.Quantity(1), kernel.Quantity(0).Normalize())
	assert.Equal(t, kernel.Quantity(1), kernel.Quantity(-4).Normalize())
	assert.Equal(t, kernel.Quantity(3), kernel.Quantity(3).Normalize())
}

func TestAddress_Validate(t *testing.T) {
	t.Run("complete address", func(t *testing.T) {
		a := kernel.Address{Street1: "1 Main St", City: "Austin", Zip: "78701", Country: "US"}

		require.NoError(t, a.Validate())
	})

	t.Run("missing fields are all reported", func(t *testing.T) {
		err := kernel.Address{Name: "Jo"}.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, field := range []string{"street1", "city", "zip", "country"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}
