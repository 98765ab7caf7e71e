// Package ports defines the contracts between the shipping desk core and its
// infrastructure: storage, the rate provider and the flat-rate catalog.
package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
)

// OrderRepository reads storefront orders and writes labels back onto them.
type OrderRepository interface {
	// Get returns the order with its lines and shipping address.
	// Unknown ids yield errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// PersistLabel stores the tracking number and label URL on the order.
	PersistLabel(ctx context.Context, id kernel.OrderID, trackingNumber, labelURL string) error
}
