// Package catalog serves carrier flat-rate templates: the last catalog fetched
// live from the provider, or a built-in table when there is none.
package catalog

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"
)

var _ ports.FlatRateCatalog = &Catalog{}

type Catalog struct {
	source  ports.TemplateSource
	carrier string
	static  packaging.Catalog
	logger  *slog.Logger

	mu   sync.RWMutex
	live map[string]packaging.Catalog
}

// NewCatalog builds a catalog refreshed from source for carrier. A nil source
// leaves only the built-in table.
func NewCatalog(source ports.TemplateSource, carrier string, logger *slog.Logger) (*Catalog, error) {
	carrier = strings.ToLower(strings.TrimSpace(carrier))
	if carrier == "" {
		return nil, errs.NewValueIsRequiredError("carrier")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Catalog{
		source:  source,
		carrier: carrier,
		static:  StaticUSPS(),
		logger:  logger.With("component", "catalog"),
		live:    make(map[string]packaging.Catalog),
	}, nil
}

// List returns the live catalog for carrier when one was fetched, the
// built-in table otherwise. Carriers without either get an empty catalog.
func (c *Catalog) List(_ context.Context, carrier string) (packaging.Catalog, error) {
	carrier = strings.ToLower(strings.TrimSpace(carrier))
	if carrier == "" {
		return packaging.Catalog{}, errs.NewValueIsRequiredError("carrier")
	}

	c.mu.RLock()
	live, ok := c.live[carrier]
	c.mu.RUnlock()
	if ok && !live.IsEmpty() {
		return live, nil
	}

	if carrier == StaticCarrier {
		return c.static, nil
	}
	return packaging.MustNewCatalog(), nil
}

// Refresh fetches the configured carrier's templates. A failed fetch keeps the
// previous live catalog; an empty one drops it so the built-in table is served.
func (c *Catalog) Refresh(ctx context.Context) error {
	if c.source == nil {
		return nil
	}

	templates, err := c.source.Fetch(ctx, c.carrier)
	if err != nil {
		c.logger.WarnContext(ctx, "live catalog refresh failed", "carrier", c.carrier, "error", err)
		return err
	}

	live, err := packaging.NewCatalog(dedupe(templates)...)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if live.IsEmpty() {
		delete(c.live, c.carrier)
		c.logger.InfoContext(ctx, "live catalog is empty, serving built-in table", "carrier", c.carrier)
		return nil
	}
	c.live[c.carrier] = live
	c.logger.InfoContext(ctx, "live catalog refreshed", "carrier", c.carrier, "templates", live.Len())
	return nil
}

func dedupe(templates []packaging.FlatRateTemplate) []packaging.FlatRateTemplate {
	seen := make(map[string]struct{}, len(templates))
	out := make([]packaging.FlatRateTemplate, 0, len(templates))
	for _, t := range templates {
		if _, ok := seen[t.ID()]; ok {
			continue
		}
		seen[t.ID()] = struct{}{}
		out = append(out, t)
	}
	return out
}
