// Package orderrepo maps storefront orders onto the orders and order_lines
// tables.
package orderrepo

import (
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
)

type OrderDTO struct {
	ID              int64      `gorm:"primaryKey;autoIncrement:false"`
	ShippingAddress AddressDTO `gorm:"embedded;embeddedPrefix:ship_"`
	TrackingNumber  string
	LabelURL        string
	Lines           []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type AddressDTO struct {
	Name    string
	Company string
	Street1 string
	Street2 string
	City    string
	State   string
	Zip     string
	Country string
	Phone   string
	Email   string
}

type OrderLineDTO struct {
	ID        uint  `gorm:"primaryKey"`
	OrderID   int64 `gorm:"index"`
	ProductID int64 `gorm:"index"`
	Quantity  int
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	a := o.ShippingAddress()
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:   int64(o.ID()),
			ProductID: int64(l.ProductID()),
			Quantity:  int(l.Quantity()),
		})
	}

	return OrderDTO{
		ID: int64(o.ID()),
		ShippingAddress: AddressDTO{
			Name:    a.Name,
			Company: a.Company,
			Street1: a.Street1,
			Street2: a.Street2,
			City:    a.City,
			State:   a.State,
			Zip:     a.Zip,
			Country: a.Country,
			Phone:   a.Phone,
			Email:   a.Email,
		},
		TrackingNumber: o.TrackingNumber(),
		LabelURL:       o.LabelURL(),
		Lines:          lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, err := order.NewLine(kernel.ProductID(l.ProductID), kernel.Quantity(l.Quantity))
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	a := dto.ShippingAddress
	addr := kernel.Address{
		Name:    a.Name,
		Company: a.Company,
		Street1: a.Street1,
		Street2: a.Street2,
		City:    a.City,
		State:   a.State,
		Zip:     a.Zip,
		Country: a.Country,
		Phone:   a.Phone,
		Email:   a.Email,
	}

	return order.RestoreOrder(kernel.OrderID(dto.ID), addr, lines, dto.TrackingNumber, dto.LabelURL)
}
