// Package orderrepo persists order aggregates with GORM.
package orderrepo

import (
	"time"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table. Status and delivery mode
// are stored in their string form so reports can filter on them directly.
type OrderDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerName  string          `gorm:"not null"`
	Address       string          `gorm:"not null"`
	ContactNumber string          `gorm:"not null"`
	Size          string          `gorm:"type:varchar(64);not null;index"`
	Quantity      int             `gorm:"not null"`
	DeliveryMode  string          `gorm:"type:varchar(16);not null"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total         decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status        string          `gorm:"type:varchar(32);not null;index"`
	OrderDate     time.Time       `gorm:"not null;index"`
	DeliveryDate  *time.Time
	RiderID       *uuid.UUID `gorm:"type:uuid;index"`
	DeliveryPhoto string
	StockDeducted bool       `gorm:"not null"`
	CreatedBy     *uuid.UUID `gorm:"type:uuid"`
	ArchivedAt    *time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:            o.ID().Value(),
		CustomerName:  o.Customer().Name(),
		Address:       o.Customer().Address(),
		ContactNumber: o.Customer().ContactNumber(),
		Size:          o.Size().String(),
		Quantity:      o.Quantity(),
		DeliveryMode:  o.DeliveryMode().String(),
		Price:         o.Price(),
		Total:         o.Total(),
		Status:        o.Status().String(),
		OrderDate:     o.OrderDate(),
		DeliveryDate:  o.DeliveryDate(),
		RiderID:       rawID(o.Rider()),
		DeliveryPhoto: o.DeliveryPhoto(),
		StockDeducted: o.StockDeducted(),
		CreatedBy:     rawID(o.CreatedBy()),
		ArchivedAt:    o.ArchivedAt(),
		UpdatedAt:     o.UpdatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.Address, dto.ContactNumber)
	if err != nil {
		return nil, err
	}

	size, err := kernel.NewSize(dto.Size)
	if err != nil {
		return nil, err
	}

	mode, err := order.ParseDeliveryMode(dto.DeliveryMode)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	riderID, err := domainID(dto.RiderID)
	if err != nil {
		return nil, err
	}

	createdBy, err := domainID(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID:            id,
		Customer:      customer,
		Size:          size,
		Quantity:      dto.Quantity,
		DeliveryMode:  mode,
		Price:         dto.Price,
		Total:         dto.Total,
		Status:        status,
		OrderDate:     dto.OrderDate,
		DeliveryDate:  dto.DeliveryDate,
		RiderID:       riderID,
		DeliveryPhoto: dto.DeliveryPhoto,
		StockDeducted: dto.StockDeducted,
		CreatedBy:     createdBy,
		ArchivedAt:    dto.ArchivedAt,
		UpdatedAt:     dto.UpdatedAt,
	})
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Value()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFrom(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
