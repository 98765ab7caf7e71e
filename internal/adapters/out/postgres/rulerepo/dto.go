// Package rulerepo stores packaging rules keyed by product and quantity.
package rulerepo

import (
	"time"

	"shipdesk/internal/core/domain/model/kernel"
)

type PackagingRuleDTO struct {
	ProductID int64 `gorm:"primaryKey;autoIncrement:false"`
	Quantity  int   `gorm:"primaryKey;autoIncrement:false"`
	Length    float64
	Width     float64
	Height    float64
	Weight    float64
	UpdatedAt time.Time
}

func (PackagingRuleDTO) TableName() string {
	return "packaging_rules"
}

func fromDomain(productID kernel.ProductID, quantity kernel.Quantity, p kernel.Parcel) PackagingRuleDTO {
	return PackagingRuleDTO{
		ProductID: int64(productID),
		Quantity:  int(quantity),
		Length:    p.Length(),
		Width:     p.Width(),
		Height:    p.Height(),
		Weight:    p.Weight(),
	}
}
