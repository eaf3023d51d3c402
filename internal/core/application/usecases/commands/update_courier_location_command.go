package commands

import (
	"errors"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand carries one position report from a courier.
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	location   kernel.Coordinate
	reportedAt time.Time

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(
	courierID kernel.UUID,
	location kernel.Coordinate,
	reportedAt time.Time,
) (UpdateCourierLocationCommand, error) {
	command := UpdateCourierLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setLocation(location),
		command.setReportedAt(reportedAt),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return command, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierLocationCommand) Location() kernel.Coordinate {
	return c.location
}

func (c UpdateCourierLocationCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *UpdateCourierLocationCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *UpdateCourierLocationCommand) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *UpdateCourierLocationCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return ErrReportedAtIsRequired
	}

	c.reportedAt = reportedAt
	return nil
}
