package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/domain/model/activity"
	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/core/domain/model/user"
	"icetube/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*inventory.Item)
	return item, args.Error(1)
}

func (m *MockInventoryRepository) FindBySize(ctx context.Context, size kernel.Size) (*inventory.Item, error) {
	args := m.Called(ctx, size)
	item, _ := args.Get(0).(*inventory.Item)
	return item, args.Error(1)
}

func (m *MockInventoryRepository) ListByStatus(
	ctx context.Context,
	statuses ...inventory.StockStatus,
) ([]*inventory.Item, error) {
	args := m.Called(ctx, statuses)
	items, _ := args.Get(0).([]*inventory.Item)
	return items, args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct {
	mock.Mock
	inventory *MockInventoryRepository
	orders    *MockOrderRepository
	users     *MockUserRepository
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	return m.inventory
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.orders
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.users
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW {
	return f.uow
}

type inventoryUoWFactory struct{ uow *MockUoW }

func (f inventoryUoWFactory) Create() commands.InventoryUoW {
	return f.uow
}

type userUoWFactory struct{ uow *MockUoW }

func (f userUoWFactory) Create() commands.UserUoW {
	return f.uow
}

type MockActivityLogger struct{ mock.Mock }

func (m *MockActivityLogger) Log(ctx context.Context, entry activity.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	return m.Called(ctx, event).Error(0)
}

// fixture wires one MockUoW, its repositories and the notifier mocks.
type fixture struct {
	uow       *MockUoW
	inventory *MockInventoryRepository
	orders    *MockOrderRepository
	users     *MockUserRepository
	activity  *MockActivityLogger
	events    *MockEventPublisher
	notifier  commands.Notifier
}

func newFixture() *fixture {
	f := &fixture{
		inventory: new(MockInventoryRepository),
		orders:    new(MockOrderRepository),
		users:     new(MockUserRepository),
		activity:  new(MockActivityLogger),
		events:    new(MockEventPublisher),
	}
	f.uow = &MockUoW{inventory: f.inventory, orders: f.orders, users: f.users}
	f.notifier = commands.NewNotifier(f.activity, f.events, slog.New(slog.NewTextHandler(io.Discard, nil)))
	return f
}

// expectTransaction sets up Begin and the deferred Rollback, plus Commit
// when the handler is expected to reach it.
func (f *fixture) expectTransaction(commit bool) {
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil)
	if commit {
		f.uow.On("Commit", mock.Anything).Return(nil).Once()
	}
}

func (f *fixture) expectActivity(action activity.Action) {
	f.activity.On("Log", mock.Anything, mock.MatchedBy(func(e activity.Entry) bool {
		return e.Action() == action
	})).Return(nil).Once()
}

func (f *fixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.uow.AssertExpectations(t)
	f.inventory.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.activity.AssertExpectations(t)
	f.events.AssertExpectations(t)
}

// assertNothingReported checks that a failed or no-op command left no trace.
func (f *fixture) assertNothingReported(t *testing.T) {
	t.Helper()
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.activity.AssertNotCalled(t, "Log", mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func testSize(t *testing.T, raw string) kernel.Size {
	t.Helper()
	size, err := kernel.NewSize(raw)
	require.NoError(t, err)
	return size
}

func testItem(t *testing.T, rawSize string, price int64, quantity int) *inventory.Item {
	t.Helper()
	item, err := inventory.NewItem(kernel.NewUUID(), "Ice Tube", testSize(t, rawSize), decimal.NewFromInt(price), quantity)
	require.NoError(t, err)
	return item
}

func testOrder(t *testing.T, rawSize string, quantity int, mode order.DeliveryMode) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Ana Reyes", "12 Mabini St", "0917 000 0000")
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customer, testSize(t, rawSize), quantity, mode, decimal.NewFromInt(100), nil)
	require.NoError(t, err)
	return o
}

func testUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Ben Cruz", "ben."+kernel.NewUUID().String()[:8]+"@icetube.ph", role)
	require.NoError(t, err)
	return u
}
