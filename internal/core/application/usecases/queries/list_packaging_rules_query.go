package queries

import (
	"errors"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/guard"
)

var ErrListPackagingRulesQueryIsNotConstructed = errors.New(
	"ListPackagingRulesQuery must be created via NewListPackagingRulesQuery constructor",
)

// ListPackagingRulesQuery lists the stored rules of one product.
//
// Example:
//
//	query, _ := NewListPackagingRulesQuery(42)
//	rules, err := NewListPackagingRulesQueryHandler(db).Handle(ctx, query)
//	for _, r := range rules {
//	    fmt.Printf("%d pcs: %s\n", r.Quantity, r.Parcel)
//	}
type ListPackagingRulesQuery struct {
	productID kernel.ProductID

	guard guard.ConstructorGuard
}

func NewListPackagingRulesQuery(productID kernel.ProductID) (ListPackagingRulesQuery, error) {
	if err := productID.Validate(); err != nil {
		return ListPackagingRulesQuery{}, err
	}
	return ListPackagingRulesQuery{productID: productID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListPackagingRulesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagingRulesQueryIsNotConstructed)
}

func (q ListPackagingRulesQuery) ProductID() kernel.ProductID { return q.productID }

type ListPackagingRulesQueryResponse struct {
	ProductID kernel.ProductID
	Quantity  kernel.Quantity
	Parcel    kernel.Parcel
}
