package guard_test

import (
	"errors"
	"testing"

	"shipdesk/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expected := errors.New("Rate must be created via NewRate")

		// When
		err := g.Validate(expected)

		// Then
		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard inside a value object.
func TestConstructorGuardEmbedded(t *testing.T) {
	errBoxNotConstructed := errors.New("box must be created via newBox")

	type box struct {
		templateID string
		guard      guard.ConstructorGuard
	}

	newBox := func(templateID string) (box, error) {
		if templateID == "" {
			return box{}, errors.New("template id is required")
		}
		return box{templateID: templateID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_sets_guard", func(t *testing.T) {
		b, err := newBox("USPS_SmallFlatRateBox")

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBoxNotConstructed))
	})

	t.Run("zero_value_fails", func(t *testing.T) {
		var b box

		assert.Equal(t, errBoxNotConstructed, b.guard.Validate(errBoxNotConstructed))
	})

	t.Run("copies_keep_guard", func(t *testing.T) {
		b, _ := newBox("USPS_SoftPack")
		c := b

		require.NoError(t, c.guard.Validate(errBoxNotConstructed))
	})
}
