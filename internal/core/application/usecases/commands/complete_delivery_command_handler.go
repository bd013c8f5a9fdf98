package commands

import (
	"context"
	"errors"
	"log/slog"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

var ErrOrderNotFoundOrNotOwned = errors.New("order not found or not assigned to this courier")

// CompleteDeliveryCommandHandler marks a delivery as finished.
// Loads the order, verifies ownership through the aggregate, and persists the
// Delivering -> Delivered transition.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
	logger     *slog.Logger
}

// NewCompleteDeliveryCommandHandler creates a handler for finishing deliveries.
func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory, logger *slog.Logger) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		logger:     logger,
	}
}

// Handle processes the complete-delivery command.
// Returns ErrOrderNotFoundOrNotOwned when the order does not exist, belongs
// to another courier, or is not currently Delivering. The three cases are
// deliberately indistinguishable to the caller.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	deliveredOrder, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFoundOrNotOwned
	}
	if err != nil {
		return err
	}

	if err = deliveredOrder.Complete(command.CourierID()); err != nil {
		if errors.Is(err, order.ErrOrderNotOwnedByCourier) || errors.Is(err, errs.ErrValueIsInvalid) {
			return ErrOrderNotFoundOrNotOwned
		}
		return err
	}

	if err = orderRepo.Update(ctx, deliveredOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.logger.InfoContext(ctx, "delivery completed",
		"order_id", command.OrderID().String(),
		"courier_id", command.CourierID().String(),
	)

	return nil
}
