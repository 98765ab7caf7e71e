package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"shipdesk/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRefresher struct{ mock.Mock }

func (m *MockRefresher) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogRefreshJob(t *testing.T) {
	t.Run("refreshes once on start", func(t *testing.T) {
		refresher := &MockRefresher{}
		refresher.On("Refresh", mock.Anything).Return(nil).Once()
		reg := prometheus.NewRegistry()

		job := NewCatalogRefreshJob(refresher, "0 0 0 1 1 *", metrics.NewJobMetrics(reg), discardLogger())
		require.NoError(t, job.Start())
		job.Stop()

		refresher.AssertExpectations(t)
		count, err := testutil.GatherAndCount(reg, "job_success_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("refresh failure does not stop the job", func(t *testing.T) {
		refresher := &MockRefresher{}
		refresher.On("Refresh", mock.Anything).Return(errors.New("provider down")).Once()
		reg := prometheus.NewRegistry()

		job := NewCatalogRefreshJob(refresher, "", metrics.NewJobMetrics(reg), discardLogger())
		require.NoError(t, job.Start())
		job.Stop()

		assert.Equal(t, DefaultCatalogRefreshSpec, job.spec)
		count, err := testutil.GatherAndCount(reg, "job_failure_total")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("invalid schedule", func(t *testing.T) {
		refresher := &MockRefresher{}

		job := NewCatalogRefreshJob(refresher, "every now and then", nil, discardLogger())
		require.Error(t, job.Start())
		refresher.AssertNotCalled(t, "Refresh", mock.Anything)
	})
}

func TestJobManager(t *testing.T) {
	refresher := &MockRefresher{}
	refresher.On("Refresh", mock.Anything).Return(nil)

	manager := NewJobManager(NewCatalogRefreshJob(refresher, "", nil, discardLogger()))
	require.NoError(t, manager.StartAll())
	manager.StopAll()

	refresher.AssertNumberOfCalls(t, "Refresh", 1)
}
