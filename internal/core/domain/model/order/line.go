package order

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
)

// Line is one product on an order.
type Line struct {
	productID kernel.ProductID
	quantity  kernel.Quantity
}

func NewLine(productID kernel.ProductID, quantity kernel.Quantity) (Line, error) {
	if err := errors.Join(productID.Validate(), quantity.Validate()); err != nil {
		return Line{}, err
	}
	return Line{productID: productID, quantity: quantity}, nil
}

func (l Line) ProductID() kernel.ProductID { return l.productID }
func (l Line) Quantity() kernel.Quantity   { return l.quantity }
