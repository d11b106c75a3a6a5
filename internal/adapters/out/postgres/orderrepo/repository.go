package orderrepo

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/core/domain/model/order"
	"icetube/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Option configures a GormOrderRepository.
type Option func(*GormOrderRepository)

// WithRowLocks makes reads take a FOR UPDATE lock. Only meaningful when db
// is a transaction.
func WithRowLocks() Option {
	return func(r *GormOrderRepository) {
		r.lockRows = true
	}
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker, opts ...Option) *GormOrderRepository {
	r := &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every column of an existing order, zero values included.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.query(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.lockRows {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
