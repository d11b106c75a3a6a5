// Package queries reads the shop's state for lists and dashboards. Queries
// go straight to the database with SQL and never load aggregates.
package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderView is an order row as shown to users.
type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Address       string          `json:"address"`
	ContactNumber string          `json:"contact_number"`
	Size          string          `json:"size"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	DeliveryMode  string          `json:"delivery_mode"`
	OrderDate     time.Time       `json:"order_date"`
	DeliveryDate  *time.Time      `json:"delivery_date,omitempty"`
	RiderID       *uuid.UUID      `json:"rider_id,omitempty"`
	RiderName     *string         `json:"rider_name,omitempty"`
	DeliveryPhoto string          `json:"delivery_photo,omitempty"`
	ArchivedAt    *time.Time      `json:"archived_at,omitempty"`
}

// InventoryItemView is an inventory row as shown to admins.
type InventoryItemView struct {
	ID          uuid.UUID       `json:"id"`
	ProductName string          `json:"product_name"`
	Size        string          `json:"size"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type UserView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// orderColumns selects every OrderView column from orders o joined with the
// rider in users r.
const orderColumns = `
	o.id,
	o.customer_name,
	o.address,
	o.contact_number,
	o.size,
	o.quantity,
	o.price,
	o.total,
	o.status,
	o.delivery_mode,
	o.order_date,
	o.delivery_date,
	o.rider_id,
	r.name AS rider_name,
	o.delivery_photo,
	o.archived_at
FROM orders o
LEFT JOIN users r ON r.id = o.rider_id`
