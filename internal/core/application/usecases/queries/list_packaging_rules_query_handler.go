package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ListPackagingRulesQueryHandler reads packaging_rules directly. Rows that do
// not form a valid rule are skipped, the same way the resolver ignores them.
type ListPackagingRulesQueryHandler struct {
	db *gorm.DB
}

func NewListPackagingRulesQueryHandler(db *gorm.DB) ListPackagingRulesQueryHandler {
	return ListPackagingRulesQueryHandler{db: db}
}

func (h ListPackagingRulesQueryHandler) Handle(
	ctx context.Context,
	query ListPackagingRulesQuery,
) ([]ListPackagingRulesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rules := make([]ListPackagingRulesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			quantity,
			length,
			width,
			height,
			weight
		FROM packaging_rules
		WHERE product_id = ?
		ORDER BY quantity
	`, int64(query.ProductID())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var quantity int
		var length, width, height, weight float64

		if err = rows.Scan(&quantity, &length, &width, &height, &weight); err != nil {
			return nil, err
		}

		if kernel.Quantity(quantity).Validate() != nil {
			continue
		}
		parcel, parcelErr := kernel.NewParcel(length, width, height, weight)
		if parcelErr != nil {
			continue
		}

		rules = append(rules, ListPackagingRulesQueryResponse{
			ProductID: query.ProductID(),
			Quantity:  kernel.Quantity(quantity),
			Parcel:    parcel,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return rules, nil
}
