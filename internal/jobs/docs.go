// Package jobs provides scheduled background tasks for the routing service.
//
// Jobs use github.com/robfig/cron/v3 with the six-field (seconds) format.
//
// # Available Jobs
//
// ZoneCoverageJob partitions the configured service area into sectors and
// publishes the number of couriers per sector to a ports.ZoneCoverageObserver.
// The scan reuses CreateZonesQueryHandler, so it sees exactly what the
// zones endpoint reports.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(createZonesHandler, jobs.ZoneCoverageConfig{
//		Query:    query,
//		Schedule: "*/30 * * * * *",
//	}, collector, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed scan is logged and keeps the previously published numbers.
package jobs
