// Package productrepo reads product packaging attributes from the products
// table.
package productrepo

import (
	"shipdesk/internal/core/domain/model/kernel"
)

// ProductDTO holds the native shipping dimensions of a product. Any of them
// may be unset.
type ProductDTO struct {
	ID     int64 `gorm:"primaryKey;autoIncrement:false"`
	Name   string
	Length *float64
	Width  *float64
	Height *float64
	Weight *float64
}

func (ProductDTO) TableName() string {
	return "products"
}

// parcel reports false unless all four measures are present and positive.
func (dto ProductDTO) parcel() (kernel.Parcel, bool) {
	if dto.Length == nil || dto.Width == nil || dto.Height == nil || dto.Weight == nil {
		return kernel.Parcel{}, false
	}
	p, err := kernel.NewParcel(*dto.Length, *dto.Width, *dto.Height, *dto.Weight)
	if err != nil {
		return kernel.Parcel{}, false
	}
	return p, true
}
