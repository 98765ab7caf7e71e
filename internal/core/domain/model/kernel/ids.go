package kernel

import (
	"math"
	"strconv"

	"shipdesk/internal/pkg/errs"
)

// ProductID identifies a catalog product in the storefront.
type ProductID int64

func (id ProductID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("productId", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

func (id ProductID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// OrderID identifies a storefront order.
type OrderID int64

func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsOutOfRangeError("orderId", int64(id), 1, int64(math.MaxInt64))
	}
	return nil
}

func (id OrderID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// Quantity is an order-line item count; packaging rules are keyed by it.
type Quantity int

func (q Quantity) Validate() error {
	if q <= 0 {
		return errs.NewValueIsOutOfRangeError("quantity", int(q), 1, math.MaxInt)
	}
	return nil
}

// Normalize floors q at 1.
func (q Quantity) Normalize() Quantity {
	if q < 1 {
		return 1
	}
	return q
}
