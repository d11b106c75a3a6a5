package http

import (
	"github.com/shopspring/decimal"
)

type createInventoryItemRequest struct {
	ProductName string           `json:"product_name" validate:"required"`
	Size        string           `json:"size" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required,gte=0"`
}

type adjustStockRequest struct {
	Delta *int `json:"delta" validate:"required"`
}

type setStockRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0"`
}

type changePriceRequest struct {
	Price *decimal.Decimal `json:"price" validate:"required"`
}

type createOrderRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Size          string `json:"size" validate:"required"`
	Quantity      int    `json:"quantity" validate:"required,gte=1"`
	DeliveryMode  string `json:"delivery_mode" validate:"required,oneof=pick_up deliver"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type assignRiderRequest struct {
	RiderID string `json:"rider_id" validate:"required,uuid"`
}

type createUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=admin employee"`
}

type setUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

type createdResponse struct {
	ID string `json:"id"`
}
