package queries

import (
	"context"

	"shipdesk/internal/core/ports"
)

// ListFlatRateTemplatesQueryHandler returns the catalog in catalog order.
type ListFlatRateTemplatesQueryHandler struct {
	catalog ports.FlatRateCatalog
}

func NewListFlatRateTemplatesQueryHandler(catalog ports.FlatRateCatalog) ListFlatRateTemplatesQueryHandler {
	return ListFlatRateTemplatesQueryHandler{catalog: catalog}
}

func (h ListFlatRateTemplatesQueryHandler) Handle(
	ctx context.Context,
	query ListFlatRateTemplatesQuery,
) ([]ListFlatRateTemplatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	catalog, err := h.catalog.List(ctx, query.Carrier())
	if err != nil {
		return nil, err
	}

	templates := make([]ListFlatRateTemplatesQueryResponse, 0, catalog.Len())
	for _, t := range catalog.Templates() {
		templates = append(templates, ListFlatRateTemplatesQueryResponse{
			ID:           t.ID(),
			DisplayName:  t.DisplayName(),
			Carrier:      t.Carrier(),
			Length:       t.Length(),
			Width:        t.Width(),
			Height:       t.Height(),
			MaxWeight:    t.MaxWeight(),
			MassUnit:     t.MassUnit(),
			DistanceUnit: t.DistanceUnit(),
		})
	}

	return templates, nil
}
