// Package commands contains the operations that change the state of the shop:
// inventory entries, orders and users. Every handler validates its command,
// runs inside one unit of work, commits, and only then reports the change
// through the Notifier.
package commands

import (
	"context"

	"icetube/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// InventoryUoW manages transactions for inventory-only operations.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// UserUoW manages transactions for user-only operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// UoW spans orders, inventory and users. Order commands use it because
	// a status change can move stock and a rider assignment reads users.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   item, err := uow.InventoryRepository().FindBySize(ctx, o.Size())
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		InventoryRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
