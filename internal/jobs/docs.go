// Package jobs provides scheduled background tasks for the shipping desk.
//
// Jobs use github.com/robfig/cron/v3 with seconds-enabled specs.
//
// # Available Jobs
//
// CatalogRefreshJob reloads the carrier's flat-rate templates from the
// provider, once at start and then every 15 minutes by default
// (CATALOG_REFRESH_SPEC overrides the schedule). A failed refresh is logged
// and counted; the catalog keeps serving what it had.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(jobs.NewCatalogRefreshJob(catalog, spec, jobMetrics, logger))
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
package jobs
