// Package ports defines the contracts between the application layer and
// infrastructure: persistence of courier positions and the sink for
// sequencing telemetry.
package ports

import (
	"context"

	"routing/internal/core/domain/model/courier"
	"routing/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates
// and their last known positions.
type CourierRepository interface {
	// Add persists a new courier aggregate.
	Add(ctx context.Context, courier *courier.Courier) error

	// Update persists a moved courier.
	Update(ctx context.Context, courier *courier.Courier) error

	// Get retrieves a courier by id. Returns an error wrapping
	// errs.ErrObjectNotFound when no such courier exists.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAll retrieves every courier ordered by name.
	GetAll(ctx context.Context) ([]*courier.Courier, error)

	// FindInBoundingBox retrieves the couriers whose last known position lies
	// inside box, edges included. Proximity queries use it as a coarse
	// pre-filter before ranking by great-circle distance.
	//
	// Example:
	//   box, _ := kernel.NewBoundingBox(sw, ne)
	//   candidates, err := repo.FindInBoundingBox(ctx, box)
	//   if err != nil {
	//       return fmt.Errorf("failed to load candidates: %w", err)
	//   }
	//   matches, err := services.Nearest(target, candidates, 5)
	FindInBoundingBox(ctx context.Context, box kernel.BoundingBox) ([]*courier.Courier, error)
}
