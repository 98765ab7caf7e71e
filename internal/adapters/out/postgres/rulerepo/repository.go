package rulerepo

import (
	"context"
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPackagingRuleRepository implements ports.PackagingRuleRepository.
type GormPackagingRuleRepository struct {
	db *gorm.DB
}

func NewGormPackagingRuleRepository(db *gorm.DB) *GormPackagingRuleRepository {
	return &GormPackagingRuleRepository{db: db}
}

// Get loads every rule of the product. Rows with a non-positive quantity or
// measure are skipped.
func (r *GormPackagingRuleRepository) Get(ctx context.Context, productID kernel.ProductID) (*packaging.RuleSet, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PackagingRuleDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ?", int64(productID)).
		Order("quantity").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	set := packaging.NewRuleSet()
	for _, dto := range dtos {
		parcel, parcelErr := kernel.NewParcel(dto.Length, dto.Width, dto.Height, dto.Weight)
		if parcelErr != nil {
			continue
		}
		if putErr := set.Put(kernel.Quantity(dto.Quantity), parcel); putErr != nil {
			continue
		}
	}

	return set, nil
}

// Put upserts the rule at (productID, quantity).
func (r *GormPackagingRuleRepository) Put(
	ctx context.Context,
	productID kernel.ProductID,
	quantity kernel.Quantity,
	parcel kernel.Parcel,
) error {
	if err := errors.Join(productID.Validate(), quantity.Validate(), parcel.Validate()); err != nil {
		return err
	}

	dto := fromDomain(productID, quantity, parcel)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "product_id"}, {Name: "quantity"}},
			DoUpdates: clause.AssignmentColumns([]string{"length", "width", "height", "weight", "updated_at"}),
		}).
		Create(&dto).Error
}
