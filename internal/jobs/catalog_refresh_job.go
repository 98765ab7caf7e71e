package jobs

import (
	"context"
	"log/slog"
	"time"

	"shipdesk/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const (
	// DefaultCatalogRefreshSpec runs every 15 minutes (seconds-enabled cron).
	DefaultCatalogRefreshSpec = "0 */15 * * * *"

	catalogRefreshJobName = "catalog_refresh"
	catalogRefreshTimeout = time.Minute
)

// CatalogRefresher reloads the live flat-rate catalog.
type CatalogRefresher interface {
	Refresh(ctx context.Context) error
}

// CatalogRefreshJob keeps the live flat-rate catalog current. It runs once on
// Start and then on its cron schedule.
type CatalogRefreshJob struct {
	refresher CatalogRefresher
	spec      string
	cron      *cron.Cron
	metrics   *metrics.JobMetrics
	logger    *slog.Logger
}

func NewCatalogRefreshJob(
	refresher CatalogRefresher,
	spec string,
	jobMetrics *metrics.JobMetrics,
	logger *slog.Logger,
) *CatalogRefreshJob {
	if spec == "" {
		spec = DefaultCatalogRefreshSpec
	}
	return &CatalogRefreshJob{
		refresher: refresher,
		spec:      spec,
		cron:      cron.New(cron.WithSeconds()),
		metrics:   jobMetrics,
		logger:    logger.With("component", "catalog_refresh_job"),
	}
}

func (j *CatalogRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, j.run); err != nil {
		return err
	}

	j.run()
	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Catalog refresh job started", "schedule", j.spec)
	return nil
}

// Stop waits for a running refresh to finish.
func (j *CatalogRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Catalog refresh job stopped")
}

func (j *CatalogRefreshJob) run() {
	ctx, cancel := context.WithTimeout(context.Background(), catalogRefreshTimeout)
	defer cancel()

	started := time.Now()
	err := j.refresher.Refresh(ctx)
	j.metrics.Observe(catalogRefreshJobName, time.Since(started), err)
	if err != nil {
		j.logger.ErrorContext(ctx, "Catalog refresh job failed", "error", err)
	}
}
