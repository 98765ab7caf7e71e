package orderrepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts an order together with its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&dto, "id = ?", int64(id)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", int64(id))
		}
		return nil, err
	}

	return toDomain(dto)
}

// PersistLabel attaches the label to the order aggregate and stores the two
// label columns.
func (r *GormOrderRepository) PersistLabel(ctx context.Context, id kernel.OrderID, trackingNumber, labelURL string) error {
	o, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = o.AttachLabel(trackingNumber, labelURL); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", int64(id)).Updates(map[string]any{
		"tracking_number": o.TrackingNumber(),
		"label_url":       o.LabelURL(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", int64(id))
	}

	r.tracker.TrackAggregate(o)
	return nil
}
