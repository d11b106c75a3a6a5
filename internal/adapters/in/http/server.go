// Package http exposes the back office over a JSON API under /api/v1.
// The acting user arrives in the X-User-ID header, set by an upstream auth
// proxy, and routes are gated by that user's role.
package http

import (
	"context"
	"io"
	"log/slog"

	"icetube/internal/core/application/usecases/commands"
	"icetube/internal/core/application/usecases/queries"
	"icetube/internal/core/domain/model/kernel"
)

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

type QueryHandler[Q any, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}

// PhotoStore keeps delivery photos and returns a reference stored on the order.
type PhotoStore interface {
	Save(ctx context.Context, orderID kernel.UUID, filename string, content io.Reader) (string, error)
	Delete(ctx context.Context, ref string) error
}

// DashboardInvalidator drops cached dashboards after a successful mutation.
type DashboardInvalidator interface {
	Invalidate(ctx context.Context) error
}

// Handlers groups every use case the API exposes.
type Handlers struct {
	CreateInventoryItem  CommandHandler[commands.CreateInventoryItemCommand]
	AdjustStock          CommandHandler[commands.AdjustStockCommand]
	SetStock             CommandHandler[commands.SetStockCommand]
	ChangeInventoryPrice CommandHandler[commands.ChangeInventoryPriceCommand]
	ArchiveInventoryItem CommandHandler[commands.ArchiveInventoryItemCommand]

	CreateOrder      CommandHandler[commands.CreateOrderCommand]
	SetOrderStatus   CommandHandler[commands.SetOrderStatusCommand]
	AssignRider      CommandHandler[commands.AssignRiderCommand]
	CompleteDelivery CommandHandler[commands.CompleteDeliveryCommand]
	ArchiveOrder     CommandHandler[commands.ArchiveOrderCommand]

	CreateUser       CommandHandler[commands.CreateUserCommand]
	ChangeUserStatus CommandHandler[commands.ChangeUserStatusCommand]

	ListInventory     QueryHandler[queries.ListInventoryQuery, []queries.InventoryItemView]
	ListOrders        QueryHandler[queries.ListOrdersQuery, []queries.OrderView]
	GetOrder          QueryHandler[queries.GetOrderQuery, queries.OrderView]
	ListUsers         QueryHandler[queries.ListUsersQuery, []queries.UserView]
	GetUser           QueryHandler[queries.GetUserQuery, queries.UserView]
	AdminDashboard    QueryHandler[queries.GetAdminDashboardQuery, queries.AdminDashboard]
	EmployeeDashboard QueryHandler[queries.GetEmployeeDashboardQuery, queries.EmployeeDashboard]
	ListActivityLogs  QueryHandler[queries.ListActivityLogsQuery, []queries.ActivityLogView]
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	h           Handlers
	photos      PhotoStore
	invalidator DashboardInvalidator
	logger      *slog.Logger
}

type ServerOption func(*Server)

// WithDashboardInvalidator clears cached dashboards after every successful
// write request.
func WithDashboardInvalidator(invalidator DashboardInvalidator) ServerOption {
	return func(s *Server) {
		s.invalidator = invalidator
	}
}

func NewServer(h Handlers, photos PhotoStore, logger *slog.Logger, opts ...ServerOption) *Server {
	s := &Server{
		h:      h,
		photos: photos,
		logger: logger.With("component", "http"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
