package jobs

import (
	"fmt"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	catalogRefreshJob *CatalogRefreshJob
}

func NewJobManager(catalogRefreshJob *CatalogRefreshJob) *JobManager {
	return &JobManager{
		catalogRefreshJob: catalogRefreshJob,
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.catalogRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start catalog refresh job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.catalogRefreshJob.Stop()
}
