package commands

import (
	"context"

	"routing/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler creates and persists new couriers.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	location, _ := kernel.NewCoordinate(40.7128, -74.0060)
//	cmd, _ := NewCreateCourierCommand("Express Courier", 40, location, time.Now())
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("courier registration failed: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the courier entity and persists it within a transaction.
// Any error rolls the transaction back.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	courierRepo := uow.CourierRepository()
	courierEntity, err := courier.NewCourier(
		cmd.CourierID(),
		cmd.Name(),
		cmd.SpeedKmh(),
		cmd.Location(),
		cmd.ReportedAt(),
	)
	if err != nil {
		return err
	}

	if err = courierRepo.Add(ctx, courierEntity); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
