package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPlaceOrderRepository struct{ mock.Mock }

func (m *MockPlaceOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPlaceOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockPlaceOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPlaceUoW struct{ mock.Mock }

func (m *MockPlaceUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockPlaceUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockPlaceUoWFactory struct{ mock.Mock }

func (m *MockPlaceUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotificationSink struct{ mock.Mock }

func (m *MockNotificationSink) SendOrderConfirmation(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderPlaced(ctx context.Context, event order.OrderPlacedEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func testPricing(t *testing.T) services.PricingService {
	t.Helper()
	pricing, err := services.NewPricingService(decimal.RequireFromString("0.10"))
	require.NoError(t, err)
	return pricing
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// draftOrder builds a Draft order owned by customerID with two lines:
// 2 x 10.00 and 1 x 5.00, so the pre-discount total is 25.00.
func draftOrder(t *testing.T, orderID kernel.UUID, customerID kernel.UUID, isVIP bool) *order.Order {
	t.Helper()

	testOrder, err := order.NewOrder(orderID, customerID, isVIP)
	require.NoError(t, err)

	first, err := order.NewItem(kernel.NewUUID(), mustMoney(t, "10.00"), 2)
	require.NoError(t, err)
	second, err := order.NewItem(kernel.NewUUID(), mustMoney(t, "5.00"), 1)
	require.NoError(t, err)

	require.NoError(t, testOrder.AddItem(first))
	require.NoError(t, testOrder.AddItem(second))
	return testOrder
}

func newPlaceHandler(
	factory commands.OrderUoWFactory,
	notifier ports.NotificationSink,
	publisher ports.EventPublisher,
	t *testing.T,
) commands.PlaceOrderCommandHandler {
	t.Helper()
	return commands.NewPlaceOrderCommandHandler(factory, testPricing(t), notifier, publisher, testLogger())
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// Verify the persisted aggregate is Placed with the exact total 25.00
	updateCall := orderRepo.Calls[1]
	placed := updateCall.Arguments[1].(*order.Order)
	assert.Equal(t, order.Placed, placed.Status())
	require.NotNil(t, placed.TotalValue())
	assert.True(t, placed.TotalValue().IsEqual(mustMoney(t, "25.00")))

	// Verify the published event references the placed order
	publishCall := publisher.Calls[0]
	event := publishCall.Arguments[1].(order.OrderPlacedEvent)
	assert.Equal(t, orderID, event.OrderID)
	require.NoError(t, event.EventID.Validate())

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_VIPDiscount(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, true)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	// 25.00 less the 10% VIP discount is exactly 22.50
	updateCall := orderRepo.Calls[1]
	placed := updateCall.Arguments[1].(*order.Order)
	require.NotNil(t, placed.TotalValue())
	assert.True(t, placed.TotalValue().IsEqual(mustMoney(t, "22.50")))
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.PlaceOrderCommand{} // not constructed properly

	factory := new(MockPlaceUoWFactory)
	handler := newPlaceHandler(factory, new(MockNotificationSink), new(MockEventPublisher), t)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, kernel.NewUUID(), false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(nil, errs.ErrObjectNotFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)
	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderNotFound)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", ctx, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", ctx, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_OrderAlreadyPlaced(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)
	require.NoError(t, testOrder.Place(mustMoney(t, "25.00")))

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, new(MockNotificationSink), new(MockEventPublisher), t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderIsNotDraft)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder, err := order.NewOrder(orderID, customerID, false)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, new(MockNotificationSink), new(MockEventPublisher), t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderHasNoItems)
}

func TestPlaceOrderCommandHandler_Handle_NotAuthorized(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, kernel.NewUUID(), false)

	// Actor is neither the owner nor an administrator
	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, kernel.NewUUID(), false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, new(MockNotificationSink), new(MockEventPublisher), t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrActorIsNotAuthorized)
	orderRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	assert.Equal(t, order.Draft, testOrder.Status())
}

func TestPlaceOrderCommandHandler_Handle_AdministratorOverride(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, kernel.NewUUID(), false)

	// An administrator may place any customer's order
	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, kernel.NewUUID(), true))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Placed, testOrder.Status())
}

func TestPlaceOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)
	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderPersistenceFailed)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", ctx, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", ctx, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)
	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrOrderPersistenceFailed)
	notifier.AssertNotCalled(t, "SendOrderConfirmation", ctx, mock.Anything)
	publisher.AssertNotCalled(t, "PublishOrderPlaced", ctx, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NotificationFailureIsNotPropagated(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("smtp unavailable")).
			Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	// Placement is already durable, the failed confirmation must not surface
	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_PublishFailureIsNotPropagated(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	testOrder := draftOrder(t, orderID, customerID, false)

	cmd, err := commands.NewPlaceOrderCommand(orderID, mustActor(t, customerID, false))
	require.NoError(t, err)

	orderRepo := new(MockPlaceOrderRepository)
	uow := new(MockPlaceUoW)
	notifier := new(MockNotificationSink)
	publisher := new(MockEventPublisher)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).Return(testOrder, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("SendOrderConfirmation", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		publisher.On("PublishOrderPlaced", ctx, mock.AnythingOfType("order.OrderPlacedEvent")).
			Return(errors.New("broker unavailable")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPlaceUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := newPlaceHandler(factory, notifier, publisher, t)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}
