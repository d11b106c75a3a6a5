package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	apihttp "icetube/internal/adapters/in/http"
	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCommandHandler[C any] struct {
	mock.Mock
}

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	args := m.Called(ctx, cmd)
	return args.Error(0)
}

type MockQueryHandler[Q any, R any] struct {
	mock.Mock
}

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	result, _ := args.Get(0).(R)
	return result, args.Error(1)
}

type MockPhotoStore struct {
	mock.Mock
}

func (m *MockPhotoStore) Save(ctx context.Context, orderID kernel.UUID, filename string, content io.Reader) (string, error) {
	data, _ := io.ReadAll(content)
	args := m.Called(ctx, orderID, filename, string(data))
	return args.String(0), args.Error(1)
}

func (m *MockPhotoStore) Delete(ctx context.Context, ref string) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockInvalidator struct {
	mock.Mock
}

func (m *MockInvalidator) Invalidate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// api wires a router around mock handlers.
type api struct {
	echo *echo.Echo

	createItem  *MockCommandHandler[commands.CreateInventoryItemCommand]
	adjustStock *MockCommandHandler[commands.AdjustStockCommand]
	createOrder *MockCommandHandler[commands.CreateOrderCommand]
	setStatus   *MockCommandHandler[commands.SetOrderStatusCommand]
	assignRider *MockCommandHandler[commands.AssignRiderCommand]
	complete    *MockCommandHandler[commands.CompleteDeliveryCommand]
	createUser  *MockCommandHandler[commands.CreateUserCommand]

	listInventory     *MockQueryHandler[queries.ListInventoryQuery, []queries.InventoryItemView]
	getOrder          *MockQueryHandler[queries.GetOrderQuery, queries.OrderView]
	getUser           *MockQueryHandler[queries.GetUserQuery, queries.UserView]
	employeeDashboard *MockQueryHandler[queries.GetEmployeeDashboardQuery, queries.EmployeeDashboard]
	activityLogs      *MockQueryHandler[queries.ListActivityLogsQuery, []queries.ActivityLogView]

	photos      *MockPhotoStore
	invalidator *MockInvalidator
}

func newAPI() *api {
	a := &api{
		createItem:        new(MockCommandHandler[commands.CreateInventoryItemCommand]),
		adjustStock:       new(MockCommandHandler[commands.AdjustStockCommand]),
		createOrder:       new(MockCommandHandler[commands.CreateOrderCommand]),
		setStatus:         new(MockCommandHandler[commands.SetOrderStatusCommand]),
		assignRider:       new(MockCommandHandler[commands.AssignRiderCommand]),
		complete:          new(MockCommandHandler[commands.CompleteDeliveryCommand]),
		createUser:        new(MockCommandHandler[commands.CreateUserCommand]),
		listInventory:     new(MockQueryHandler[queries.ListInventoryQuery, []queries.InventoryItemView]),
		getOrder:          new(MockQueryHandler[queries.GetOrderQuery, queries.OrderView]),
		getUser:           new(MockQueryHandler[queries.GetUserQuery, queries.UserView]),
		employeeDashboard: new(MockQueryHandler[queries.GetEmployeeDashboardQuery, queries.EmployeeDashboard]),
		activityLogs:      new(MockQueryHandler[queries.ListActivityLogsQuery, []queries.ActivityLogView]),
		photos:            new(MockPhotoStore),
		invalidator:       new(MockInvalidator),
	}

	server := apihttp.NewServer(apihttp.Handlers{
		CreateInventoryItem: a.createItem,
		AdjustStock:         a.adjustStock,
		CreateOrder:         a.createOrder,
		SetOrderStatus:      a.setStatus,
		AssignRider:         a.assignRider,
		CompleteDelivery:    a.complete,
		CreateUser:          a.createUser,
		ListInventory:       a.listInventory,
		GetOrder:            a.getOrder,
		GetUser:             a.getUser,
		EmployeeDashboard:   a.employeeDashboard,
		ListActivityLogs:    a.activityLogs,
	}, a.photos, slog.New(slog.DiscardHandler), apihttp.WithDashboardInvalidator(a.invalidator))
	a.echo = apihttp.NewRouter(server)

	return a
}

// withUser registers an acting user with the given role and status.
func (a *api) withUser(role, status string) kernel.UUID {
	id := kernel.NewUUID()
	a.getUser.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetUserQuery) bool {
		return q.UserID().IsEqual(id)
	})).Return(queries.UserView{ID: id.Value(), Role: role, Status: status}, nil)
	return id
}

func (a *api) admin() kernel.UUID {
	a.invalidator.On("Invalidate", mock.Anything).Return(nil).Maybe()
	return a.withUser("admin", "active")
}

func (a *api) employee() kernel.UUID {
	a.invalidator.On("Invalidate", mock.Anything).Return(nil).Maybe()
	return a.withUser("employee", "active")
}

func (a *api) do(t *testing.T, method, target string, actor *kernel.UUID, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if actor != nil {
		req.Header.Set(apihttp.ActorHeader, actor.String())
	}

	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apihttp.Error {
	t.Helper()
	var body apihttp.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

