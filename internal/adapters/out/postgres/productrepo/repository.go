package productrepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetNativeDimensions returns false for incomplete dimensions and
// errs.ObjectNotFoundError for unknown products.
func (r *GormProductRepository) GetNativeDimensions(ctx context.Context, id kernel.ProductID) (kernel.Parcel, bool, error) {
	if err := id.Validate(); err != nil {
		return kernel.Parcel{}, false, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", int64(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return kernel.Parcel{}, false, errs.NewObjectNotFoundError("product", int64(id))
		}
		return kernel.Parcel{}, false, err
	}

	p, ok := dto.parcel()
	return p, ok, nil
}

// Save inserts or replaces a product row.
func (r *GormProductRepository) Save(ctx context.Context, dto ProductDTO) error {
	if err := kernel.ProductID(dto.ID).Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
