package ports

import (
	"context"

	"shipdesk/internal/core/domain/model/packaging"
)

// FlatRateCatalog serves the flat-rate templates of a carrier.
type FlatRateCatalog interface {
	List(ctx context.Context, carrier string) (packaging.Catalog, error)
}

// TemplateSource fetches templates live from the provider.
type TemplateSource interface {
	Fetch(ctx context.Context, carrier string) ([]packaging.FlatRateTemplate, error)
}
