package commands_test

import (
	"errors"
	"testing"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T, size string, quantity int) commands.CreateOrderCommand {
	t.Helper()
	in := validOrderInput()
	in.Size = size
	in.Quantity = quantity
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), in)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_PricesFromInventoryAndDeductsStock(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	item := testItem(t, "medium", 120, 20)
	cmd := newCreateOrderCommand(t, "Medium", 5)

	var saved *order.Order
	f.expectTransaction(true)
	f.inventory.On("FindBySize", mock.Anything, cmd.Size()).Return(item, nil).Once()
	f.inventory.On("Update", mock.Anything, item).Return(nil).Once()
	f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
		Return(nil).Once()
	f.expectActivity(activity.OrderCreated)
	f.events.On("PublishStatusChanged", mock.Anything, mock.MatchedBy(func(e order.StatusChanged) bool {
		return e.From == order.Unknown && e.To == order.Pending && e.OrderID.IsEqual(cmd.OrderID())
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, saved)
	assert.True(t, decimal.NewFromInt(120).Equal(saved.Price()))
	assert.True(t, decimal.NewFromInt(600).Equal(saved.Total()))
	assert.Equal(t, order.Pending, saved.Status())
	assert.True(t, saved.StockDeducted())
	require.NotNil(t, saved.CreatedBy())
	assert.True(t, saved.CreatedBy().IsEqual(cmd.ActorID()))
	assert.Equal(t, 15, item.Quantity())
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_FallbackPriceWithoutInventory(t *testing.T) {
	tests := []struct {
		size  string
		total int64
	}{
		{size: "extra small", total: 40 * 3},
		{size: "Extra Large", total: 200 * 3},
		{size: "jumbo", total: 100 * 3},
	}

	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()
			cmd := newCreateOrderCommand(t, tt.size, 3)

			var saved *order.Order
			f.expectTransaction(true)
			f.inventory.On("FindBySize", mock.Anything, cmd.Size()).
				Return(nil, errs.NewObjectNotFoundError("size", cmd.Size().String())).Once()
			f.orders.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
				Run(func(args mock.Arguments) { saved = args.Get(1).(*order.Order) }).
				Return(nil).Once()
			f.expectActivity(activity.OrderCreated)
			f.events.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil).Once()

			h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
			require.NoError(t, h.Handle(ctx, cmd))

			require.NotNil(t, saved)
			assert.True(t, decimal.NewFromInt(tt.total).Equal(saved.Total()), saved.Total().String())
			assert.False(t, saved.StockDeducted())
			f.inventory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			f.assertExpectations(t)
		})
	}
}

func TestCreateOrderCommandHandler_Handle_InsufficientStockCreatesNothing(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	item := testItem(t, "large", 150, 2)
	cmd := newCreateOrderCommand(t, "large", 5)

	f.expectTransaction(false)
	f.inventory.On("FindBySize", mock.Anything, cmd.Size()).Return(item, nil).Once()

	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInsufficientStock)
	var stockErr *errs.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 5, stockErr.Requested)
	assert.Equal(t, 2, stockErr.Available)
	assert.Equal(t, 2, item.Quantity())
	f.orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.inventory.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertNothingReported(t)
}

func TestCreateOrderCommandHandler_Handle_NotifierFailuresAreSwallowed(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cmd := newCreateOrderCommand(t, "small", 1)

	f.expectTransaction(true)
	f.inventory.On("FindBySize", mock.Anything, cmd.Size()).
		Return(nil, errs.NewObjectNotFoundError("size", "small")).Once()
	f.orders.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	f.activity.On("Log", mock.Anything, mock.Anything).Return(errors.New("activity_logs is read-only")).Once()
	f.events.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	f.assertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cmd := newCreateOrderCommand(t, "small", 1)

	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil)
	f.uow.On("Commit", mock.Anything).Return(errors.New("commit error")).Once()
	f.inventory.On("FindBySize", mock.Anything, cmd.Size()).
		Return(nil, errs.NewObjectNotFoundError("size", "small")).Once()
	f.orders.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
	require.EqualError(t, h.Handle(ctx, cmd), "commit error")
	f.activity.AssertNotCalled(t, "Log", mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	cmd := newCreateOrderCommand(t, "small", 1)

	f.uow.On("Begin", mock.Anything).Return(errors.New("begin error")).Once()

	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)
	require.EqualError(t, h.Handle(ctx, cmd), "begin error")
	f.uow.AssertNotCalled(t, "Rollback", mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	f := newFixture()
	h := commands.NewCreateOrderCommandHandler(uowFactory{f.uow}, f.notifier)

	err := h.Handle(t.Context(), commands.CreateOrderCommand{})

	require.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	f.uow.AssertNotCalled(t, "Begin", mock.Anything)
}
