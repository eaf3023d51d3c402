package jobs

import (
	"context"
	"log/slog"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultZoneCoverageSchedule runs the scan every thirty seconds.
const DefaultZoneCoverageSchedule = "*/30 * * * * *"

// ZoneCoverageJob periodically partitions the service area and publishes how
// many couriers each zone holds.
type ZoneCoverageJob struct {
	handler  queries.CreateZonesQueryHandler
	query    queries.CreateZonesQuery
	observer ports.ZoneCoverageObserver
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewZoneCoverageJob creates the job. An empty schedule selects
// DefaultZoneCoverageSchedule; schedules use the six-field cron format with seconds.
func NewZoneCoverageJob(
	handler queries.CreateZonesQueryHandler,
	query queries.CreateZonesQuery,
	observer ports.ZoneCoverageObserver,
	schedule string,
	logger *slog.Logger,
) *ZoneCoverageJob {
	if schedule == "" {
		schedule = DefaultZoneCoverageSchedule
	}
	return &ZoneCoverageJob{
		handler:  handler,
		query:    query,
		observer: observer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "zone_coverage_job"),
	}
}

// Start registers the scan and starts the scheduler.
func (j *ZoneCoverageJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Zone coverage job started", "schedule", j.schedule)
	return nil
}

// Run performs one scan. Failures are logged and leave the last published
// numbers in place.
func (j *ZoneCoverageJob) Run(ctx context.Context) {
	resp, err := j.handler.Handle(ctx, j.query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Zone coverage job failed", "error", err)
		return
	}

	j.observer.ResetZoneCoverage()
	for _, z := range resp.Zones {
		j.observer.ObserveZoneCoverage(z.Zone.ID(), z.Zone.Index(), len(z.CourierIDs))
	}
	j.observer.ObserveUncovered(resp.Uncovered)

	j.logger.DebugContext(ctx, "Zone coverage updated", "zones", len(resp.Zones), "uncovered", resp.Uncovered)
}

// Stop stops the scheduler; a scan in progress finishes on its own.
func (j *ZoneCoverageJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Zone coverage job stopped")
}
