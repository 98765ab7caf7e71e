package order

import (
	"errors"
	"slices"
	"strings"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the storefront order a label is bought for.
//
// Order follows these invariants:
//   - Must have a positive id
//   - Must have a shipping address with street, city, zip and country
//   - Lines reference distinct products with positive quantities
//   - Tracking number and label URL are set together
type Order struct {
	// id is the storefront order id
	id kernel.OrderID

	// shippingAddress is the rate destination
	shippingAddress kernel.Address

	// lines are the ordered products
	lines []Line

	// trackingNumber and labelURL are empty until a label is attached
	trackingNumber string
	labelURL       string

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates an Order with validation. Lines for the same product are
// merged by adding their quantities.
//
// Example:
//
//	line, _ := order.NewLine(42, 3)
//	o, err := order.NewOrder(1001, address, line)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(id kernel.OrderID, shippingAddress kernel.Address, lines ...Line) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setShippingAddress(shippingAddress),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage including any attached label.
func RestoreOrder(
	id kernel.OrderID,
	shippingAddress kernel.Address,
	lines []Line,
	trackingNumber, labelURL string,
) (*Order, error) {
	o, err := NewOrder(id, shippingAddress, lines...)
	if err != nil {
		return nil, err
	}
	if trackingNumber != "" || labelURL != "" {
		if err = o.AttachLabel(trackingNumber, labelURL); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by id.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

func (o *Order) ID() kernel.OrderID {
	return o.id
}

func (o *Order) ShippingAddress() kernel.Address {
	return o.shippingAddress
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

// ProductIDs returns the distinct products on the order in line order.
func (o *Order) ProductIDs() []kernel.ProductID {
	ids := make([]kernel.ProductID, 0, len(o.lines))
	for _, l := range o.lines {
		ids = append(ids, l.productID)
	}
	return ids
}

// QuantityOf returns the ordered quantity of a product.
func (o *Order) QuantityOf(productID kernel.ProductID) (kernel.Quantity, bool) {
	for _, l := range o.lines {
		if l.productID == productID {
			return l.quantity, true
		}
	}
	return 0, false
}

func (o *Order) TrackingNumber() string {
	return o.trackingNumber
}

func (o *Order) LabelURL() string {
	return o.labelURL
}

func (o *Order) HasLabel() bool {
	return o.trackingNumber != ""
}

// AttachLabel records the purchased label. A later purchase overwrites it.
func (o *Order) AttachLabel(trackingNumber, labelURL string) error {
	trackingNumber = strings.TrimSpace(trackingNumber)
	labelURL = strings.TrimSpace(labelURL)

	var errList []error
	if trackingNumber == "" {
		errList = append(errList, errs.NewValueIsRequiredError("trackingNumber"))
	}
	if labelURL == "" {
		errList = append(errList, errs.NewValueIsRequiredError("labelUrl"))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.trackingNumber = trackingNumber
	o.labelURL = labelURL
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setShippingAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("shippingAddress", err)
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setLines(lines []Line) error {
	merged := make([]Line, 0, len(lines))
	for _, l := range lines {
		if err := errors.Join(l.productID.Validate(), l.quantity.Validate()); err != nil {
			return err
		}
		i := slices.IndexFunc(merged, func(m Line) bool { return m.productID == l.productID })
		if i >= 0 {
			merged[i].quantity += l.quantity
			continue
		}
		merged = append(merged, l)
	}
	o.lines = merged
	return nil
}
