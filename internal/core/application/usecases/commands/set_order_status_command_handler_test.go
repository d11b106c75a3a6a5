package commands_test

import (
	"testing"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetOrderStatusCommand_UnknownStatusIsInvalidTransition(t *testing.T) {
	for _, raw := range []string{"", "shipped", "Pending", "unknown"} {
		t.Run(raw, func(t *testing.T) {
			_, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, kernel.NewUUID(), raw)

			require.ErrorIs(t, err, errs.ErrInvalidTransition)
		})
	}
}

// runSetStatus executes one status change against o and item with the
// expectations of a committed change.
func runSetStatus(t *testing.T, o *order.Order, item *inventory.Item, target string) {
	t.Helper()
	ctx := t.Context()
	f := newFixture()
	from := o.Status()
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), target)
	require.NoError(t, err)

	f.expectTransaction(true)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).Return(item, nil).Once()
	f.inventory.On("Update", mock.Anything, item).Return(nil).Once()
	f.orders.On("Update", mock.Anything, o).Return(nil).Once()
	f.expectActivity(activity.OrderStatusChanged)
	f.events.On("PublishStatusChanged", mock.Anything, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.From == from && e.To.String() == target
	})).Return(nil).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_CancelThenReactivateRoundTrip(t *testing.T) {
	item := testItem(t, "medium", 100, 5)
	o := testOrder(t, "medium", 5, order.Deliver)
	o.MarkStockDeducted()

	runSetStatus(t, o, item, "cancelled")
	assert.Equal(t, 10, item.Quantity())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.False(t, o.StockDeducted())

	runSetStatus(t, o, item, "pending")
	assert.Equal(t, 5, item.Quantity())
	assert.Equal(t, order.Pending, o.Status())
	assert.True(t, o.StockDeducted())
}

func TestSetOrderStatusCommandHandler_ReactivationWithInsufficientStock(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	item := testItem(t, "medium", 100, 2)
	o := testOrder(t, "medium", 5, order.Deliver)
	require.NoError(t, o.ChangeStatus(order.Cancelled))
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), "out_for_delivery")
	require.NoError(t, err)

	f.expectTransaction(false)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).Return(item, nil).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	assert.Equal(t, 2, item.Quantity())
	assert.Equal(t, order.Cancelled, o.Status())
	assert.False(t, o.StockDeducted())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.inventory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertNothingReported(t)
}

func TestSetOrderStatusCommandHandler_SameStatusIsNoOp(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	item := testItem(t, "medium", 100, 5)
	o := testOrder(t, "medium", 2, order.Deliver)
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), "pending")
	require.NoError(t, err)

	f.uow.On("Begin", mock.Anything).Return(nil).Twice()
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Twice()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).Return(item, nil).Twice()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	require.NoError(t, h.Handle(ctx, cmd), "second run")

	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, 5, item.Quantity())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertNothingReported(t)
}

func TestSetOrderStatusCommandHandler_ForwardMoveLeavesStockAlone(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	item := testItem(t, "small", 50, 8)
	o := testOrder(t, "small", 3, order.Deliver)
	o.MarkStockDeducted()
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), "completed")
	require.NoError(t, err)

	f.expectTransaction(true)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).Return(item, nil).Once()
	f.orders.On("Update", mock.Anything, o).Return(nil).Once()
	f.expectActivity(activity.OrderStatusChanged)
	f.events.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, 8, item.Quantity())
	assert.NotNil(t, o.DeliveryDate())
	f.inventory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_CancelWithoutInventoryItem(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	o := testOrder(t, "extra small", 4, order.PickUp)
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), "cancelled")
	require.NoError(t, err)

	f.expectTransaction(true)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).
		Return(nil, errs.NewObjectNotFoundError("size", "extra small")).Once()
	f.orders.On("Update", mock.Anything, o).Return(nil).Once()
	f.expectActivity(activity.OrderStatusChanged)
	f.events.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, o.Status())
	f.inventory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestSetOrderStatusCommandHandler_DisallowedMove(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	o := testOrder(t, "medium", 1, order.PickUp)
	require.NoError(t, o.ChangeStatus(order.Completed))
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, o.ID(), "pending")
	require.NoError(t, err)

	f.expectTransaction(false)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.inventory.On("FindBySize", mock.Anything, o.Size()).
		Return(nil, errs.NewObjectNotFoundError("size", "medium")).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Completed, o.Status())
	f.assertNothingReported(t)
}

func TestSetOrderStatusCommandHandler_EmployeeMustBeAssigned(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	o := testOrder(t, "medium", 1, order.Deliver)
	require.NoError(t, o.AssignRider(kernel.NewUUID()))
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Employee, o.ID(), "out_for_delivery")
	require.NoError(t, err)

	f.expectTransaction(false)
	f.orders.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderNotAssignedToActor)
	assert.Equal(t, order.Pending, o.Status())
	f.assertNothingReported(t)
}

func TestSetOrderStatusCommandHandler_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	id := kernel.NewUUID()
	cmd, err := commands.NewSetOrderStatusCommand(kernel.NewUUID(), user.Admin, id, "cancelled")
	require.NoError(t, err)

	f.expectTransaction(false)
	f.orders.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

	h := commands.NewSetOrderStatusCommandHandler(uowFactory{f.uow}, f.notifier)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	f.assertNothingReported(t)
}
