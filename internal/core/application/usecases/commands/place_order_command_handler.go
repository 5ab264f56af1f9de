package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrActorIsNotAuthorized   = errors.New("actor is not authorized to place this order")
	ErrOrderPersistenceFailed = errors.New("order persistence failed")
)

// PlaceOrderCommandHandler is the order placement engine. It checks the
// placement preconditions in a fixed order, computes the exact total through
// the pricing service, transitions the order from Draft to Placed, and
// persists the result atomically.
//
// Precondition checks run in this order, first failure wins:
//  1. the order exists (ErrOrderNotFound)
//  2. the order is in Draft status (order.ErrOrderIsNotDraft)
//  3. the order has at least one item (order.ErrOrderHasNoItems)
//  4. the actor may manage the order (ErrActorIsNotAuthorized)
//
// Only after a successful commit does the handler run its side effects:
// the customer confirmation and the OrderPlaced event. Both are best effort;
// their failures are logged and never reported to the caller, because the
// placement itself is already durable.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	pricing    services.PricingService
	notifier   ports.NotificationSink
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates the placement engine.
// All collaborators are required; the logger receives post-commit hook failures.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingService,
	notifier ports.NotificationSink,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		pricing:    pricing,
		notifier:   notifier,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the placement command.
//
// Any error before the commit leaves the order unchanged: the transaction is
// rolled back and no notification or event is produced. Persistence failures
// during save or commit are wrapped in ErrOrderPersistenceFailed.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, command PlaceOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrOrderPersistenceFailed, err)
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, command.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.ValidatePlaceable(); err != nil {
		return err
	}

	if !command.Actor().CanManageOrderOf(aggregate.CustomerID()) {
		return ErrActorIsNotAuthorized
	}

	totalValue, err := h.pricing.Total(aggregate)
	if err != nil {
		return err
	}

	if err = aggregate.Place(totalValue); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return fmt.Errorf("%w: %w", ErrOrderPersistenceFailed, err)
	}

	if err = uow.Commit(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrOrderPersistenceFailed, err)
	}

	h.runPostPlacementHooks(ctx, aggregate)

	return nil
}

// runPostPlacementHooks fires the best-effort side effects of a durable
// placement: the customer confirmation first, then the integration event.
// Neither failure affects the outcome of Handle.
func (h PlaceOrderCommandHandler) runPostPlacementHooks(ctx context.Context, aggregate *order.Order) {
	if err := h.notifier.SendOrderConfirmation(ctx, aggregate); err != nil {
		h.logger.ErrorContext(ctx, "order confirmation failed",
			"orderID", aggregate.ID().String(), "error", err)
	}

	event := order.NewOrderPlacedEvent(aggregate.ID())
	if err := h.publisher.PublishOrderPlaced(ctx, event); err != nil {
		h.logger.ErrorContext(ctx, "order placed event publish failed",
			"orderID", aggregate.ID().String(), "eventID", event.EventID.String(), "error", err)
	}
}
