package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
)

// PackagingRuleRepository persists per-product, per-quantity parcel rules.
type PackagingRuleRepository interface {
	// Get returns every valid rule of a product; the set may be empty.
	Get(ctx context.Context, productID kernel.ProductID) (*packaging.RuleSet, error)

	// Put upserts the rule at (productID, quantity). Last write wins.
	Put(ctx context.Context, productID kernel.ProductID, quantity kernel.Quantity, parcel kernel.Parcel) error
}
