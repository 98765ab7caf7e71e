package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
)

// ProductRepository exposes the product attributes packaging needs.
type ProductRepository interface {
	// GetNativeDimensions returns the product's recorded dimensions. The
	// boolean is false when any of the four values is missing or not positive.
	GetNativeDimensions(ctx context.Context, id kernel.ProductID) (kernel.Parcel, bool, error)
}
