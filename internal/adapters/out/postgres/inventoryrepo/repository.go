package inventoryrepo

import (
	"context"
	"errors"

	"icetube/internal/core/domain/model/inventory"
	"icetube/internal/core/domain/model/kernel"
	"icetube/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryRepository implements ports.InventoryRepository using GORM.
type GormInventoryRepository struct {
	db       *gorm.DB
	tracker  aggregateTracker
	lockRows bool
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Option configures a GormInventoryRepository.
type Option func(*GormInventoryRepository)

// WithRowLocks makes reads take a FOR UPDATE lock.
func WithRowLocks() Option {
	return func(r *GormInventoryRepository) {
		r.lockRows = true
	}
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker, opts ...Option) *GormInventoryRepository {
	r := &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *GormInventoryRepository) Add(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).Model(&InventoryItemDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventory item", item.ID().String())
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}

func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryItemDTO
	if err := r.query(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventory item", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindBySize matches the normalized size of non-archived items.
func (r *GormInventoryRepository) FindBySize(ctx context.Context, size kernel.Size) (*inventory.Item, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryItemDTO
	err := r.query(ctx).
		Where("size = ? AND archived_at IS NULL", size.String()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("size", size.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormInventoryRepository) ListByStatus(
	ctx context.Context,
	statuses ...inventory.StockStatus,
) ([]*inventory.Item, error) {
	if len(statuses) == 0 {
		return []*inventory.Item{}, nil
	}

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var dtos []InventoryItemDTO
	err := r.db.WithContext(ctx).
		Where("status IN ? AND archived_at IS NULL", names).
		Order("quantity, size").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	items := make([]*inventory.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

func (r *GormInventoryRepository) query(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.lockRows {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return db
}
