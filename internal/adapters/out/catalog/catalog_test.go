package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shipdesk/internal/adapters/out/catalog"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTemplateSource struct{ mock.Mock }

func (m *MockTemplateSource) Fetch(ctx context.Context, carrier string) ([]packaging.FlatRateTemplate, error) {
	args := m.Called(ctx, carrier)
	templates, _ := args.Get(0).([]packaging.FlatRateTemplate)
	return templates, args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func liveTemplate(t *testing.T, id string) packaging.FlatRateTemplate {
	t.Helper()
	tpl, err := packaging.NewFlatRateTemplate(packaging.FlatRateTemplateParams{
		ID: id, DisplayName: id, Carrier: "usps", Length: 10, Width: 8, Height: 2, MaxWeight: 70,
	})
	require.NoError(t, err)
	return tpl
}

func TestStaticUSPS(t *testing.T) {
	c := catalog.StaticUSPS()

	assert.Equal(t, 17, c.Len())
	first := c.Templates()[0]
	assert.Equal(t, "USPS_FlatRateEnvelope", first.ID())
	assert.InDelta(t, 12.5, first.Length(), 1e-9)
	assert.InDelta(t, 9.5, first.Width(), 1e-9)
	assert.InDelta(t, 0.75, first.Height(), 1e-9)
	assert.InDelta(t, 70, first.MaxWeight(), 1e-9)
	assert.Equal(t, "lb", first.MassUnit())
	assert.Equal(t, "in", first.DistanceUnit())

	box, err := c.Find("USPS_MediumFlatRateBox2")
	require.NoError(t, err)
	assert.InDelta(t, 15, box.MaxWeight(), 1e-9)

	b1, err := c.Find("USPS_RegionalRateBoxB1")
	require.NoError(t, err)
	assert.Equal(t, "Priority Mail Regional Rate Box® - B1", b1.DisplayName())
}

func TestCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("serves static table before any refresh", func(t *testing.T) {
		c, err := catalog.NewCatalog(&MockTemplateSource{}, "USPS", discardLogger())
		require.NoError(t, err)

		got, err := c.List(ctx, "usps")
		require.NoError(t, err)
		assert.Equal(t, 17, got.Len())
	})

	t.Run("serves live catalog after refresh", func(t *testing.T) {
		source := &MockTemplateSource{}
		source.On("Fetch", ctx, "usps").Return([]packaging.FlatRateTemplate{
			liveTemplate(t, "USPS_A"), liveTemplate(t, "USPS_B"), liveTemplate(t, "USPS_A"),
		}, nil).Once()
		c, err := catalog.NewCatalog(source, "usps", discardLogger())
		require.NoError(t, err)

		require.NoError(t, c.Refresh(ctx))

		got, err := c.List(ctx, "usps")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Len())
		assert.True(t, got.Contains("USPS_B"))
		source.AssertExpectations(t)
	})

	t.Run("falls back to static table when live source fails", func(t *testing.T) {
		source := &MockTemplateSource{}
		source.On("Fetch", ctx, "usps").Return(nil, errs.NewProviderError("templates", "down"))
		c, err := catalog.NewCatalog(source, "usps", discardLogger())
		require.NoError(t, err)

		require.ErrorIs(t, c.Refresh(ctx), errs.ErrProviderFailed)

		got, err := c.List(ctx, "usps")
		require.NoError(t, err)
		assert.Equal(t, 17, got.Len())
	})

	t.Run("failed refresh keeps previous live catalog", func(t *testing.T) {
		source := &MockTemplateSource{}
		source.On("Fetch", ctx, "usps").
			Return([]packaging.FlatRateTemplate{liveTemplate(t, "USPS_A")}, nil).Once()
		source.On("Fetch", ctx, "usps").Return(nil, errors.New("timeout")).Once()
		c, err := catalog.NewCatalog(source, "usps", discardLogger())
		require.NoError(t, err)

		require.NoError(t, c.Refresh(ctx))
		require.Error(t, c.Refresh(ctx))

		got, err := c.List(ctx, "usps")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("empty live result restores static table", func(t *testing.T) {
		source := &MockTemplateSource{}
		source.On("Fetch", ctx, "usps").
			Return([]packaging.FlatRateTemplate{liveTemplate(t, "USPS_A")}, nil).Once()
		source.On("Fetch", ctx, "usps").Return([]packaging.FlatRateTemplate{}, nil).Once()
		c, err := catalog.NewCatalog(source, "usps", discardLogger())
		require.NoError(t, err)

		require.NoError(t, c.Refresh(ctx))
		require.NoError(t, c.Refresh(ctx))

		got, err := c.List(ctx, "usps")
		require.NoError(t, err)
		assert.Equal(t, 17, got.Len())
	})

	t.Run("unknown carrier gets empty catalog", func(t *testing.T) {
		c, err := catalog.NewCatalog(nil, "usps", discardLogger())
		require.NoError(t, err)
		require.NoError(t, c.Refresh(ctx))

		got, err := c.List(ctx, "fedex")
		require.NoError(t, err)
		assert.True(t, got.IsEmpty())
	})

	t.Run("carrier is required", func(t *testing.T) {
		_, err := catalog.NewCatalog(nil, " ", discardLogger())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		c, err := catalog.NewCatalog(nil, "usps", nil)
		require.NoError(t, err)
		_, err = c.List(ctx, "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
