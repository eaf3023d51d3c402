package commands

import (
	"errors"
	"strings"
	"time"

	"routing/internal/core/domain/model/kernel"
	"routing/internal/pkg/errs"
	"routing/internal/pkg/guard"
)

var (
	ErrCreateCourierCommandIsNotConstructed = errors.New(
		"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
	)
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
	ErrSpeedIsInvalid       = errs.NewValueIsInvalidErrorWithCause("speedKmh", errors.New("must be greater than 0"))
	ErrReportedAtIsRequired = errs.NewValueIsRequiredError("reportedAt")
)

// CreateCourierCommand registers a courier at its first reported position.
//
// Example:
//
//	location, _ := kernel.NewCoordinate(55.7558, 37.6173)
//	cmd, err := NewCreateCourierCommand("John Doe", 25, location, time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create courier: %w", err)
//	}
//	fmt.Printf("Created courier with ID: %s", cmd.CourierID())
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID  kernel.UUID
	name       string
	speedKmh   float64
	location   kernel.Coordinate
	reportedAt time.Time

	guard guard.ConstructorGuard
}

// NewCreateCourierCommand creates a command to register a new courier and
// generates its id.
func NewCreateCourierCommand(
	name string,
	speedKmh float64,
	location kernel.Coordinate,
	reportedAt time.Time,
) (CreateCourierCommand, error) {
	command := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(kernel.NewUUID()),
		command.setName(name),
		command.setSpeed(speedKmh),
		command.setLocation(location),
		command.setReportedAt(reportedAt),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) SpeedKmh() float64 {
	return c.speedKmh
}

func (c CreateCourierCommand) Location() kernel.Coordinate {
	return c.location
}

func (c CreateCourierCommand) ReportedAt() time.Time {
	return c.reportedAt
}

func (c *CreateCourierCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *CreateCourierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCourierCommand) setSpeed(speedKmh float64) error {
	if !(speedKmh > 0) {
		return ErrSpeedIsInvalid
	}

	c.speedKmh = speedKmh
	return nil
}

func (c *CreateCourierCommand) setLocation(location kernel.Coordinate) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateCourierCommand) setReportedAt(reportedAt time.Time) error {
	if reportedAt.IsZero() {
		return ErrReportedAtIsRequired
	}

	c.reportedAt = reportedAt
	return nil
}
