package jobs

import (
	"fmt"
	"log/slog"

	"routing/internal/core/application/usecases/queries"
	"routing/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	zoneCoverageJob *ZoneCoverageJob
}

// ZoneCoverageConfig selects the area scanned by the zone coverage job.
type ZoneCoverageConfig struct {
	Query    queries.CreateZonesQuery
	Schedule string
}

func NewJobManager(
	createZonesHandler queries.CreateZonesQueryHandler,
	coverage ZoneCoverageConfig,
	observer ports.ZoneCoverageObserver,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		zoneCoverageJob: NewZoneCoverageJob(createZonesHandler, coverage.Query, observer, coverage.Schedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.zoneCoverageJob.Start(); err != nil {
		return fmt.Errorf("failed to start zone coverage job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.zoneCoverageJob.Stop()
}
