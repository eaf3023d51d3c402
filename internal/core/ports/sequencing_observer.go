package ports

import (
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/core/domain/model/route"
)

// SequencingObserver receives telemetry about engine runs. Implementations
// must be safe for concurrent use and must not block.
type SequencingObserver interface {
	// ObserveSequencing records one run of the named operation
	// ("plan" or "apply") that took elapsed.
	ObserveSequencing(operation string, elapsed time.Duration, plan route.Plan)
}

// ZoneCoverageObserver receives the number of couriers found in each zone
// by the periodic coverage scan. ResetZoneCoverage is called before each
// scan reports its zones.
type ZoneCoverageObserver interface {
	ResetZoneCoverage()
	ObserveZoneCoverage(zoneID kernel.UUID, index int, couriers int)
	ObserveUncovered(couriers int)
}

// PersistenceObserver receives, after each successful commit, how many
// distinct aggregates of each kind the transaction wrote.
type PersistenceObserver interface {
	ObserveCommittedAggregates(kind string, count int)
}
