package packaging

import (
	"fmt"

	"shipdesk/internal/pkg/errs"
)

// Catalog is an ordered, immutable set of flat-rate templates keyed by id.
type Catalog struct {
	templates []FlatRateTemplate
	index     map[string]int
}

// NewCatalog keeps the given order. Duplicate ids are rejected so live and
// fallback sources share one id namespace.
func NewCatalog(templates ...FlatRateTemplate) (Catalog, error) {
	c := Catalog{
		templates: make([]FlatRateTemplate, 0, len(templates)),
		index:     make(map[string]int, len(templates)),
	}

	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, dup := c.index[t.ID()]; dup {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
				"catalog",
				fmt.Errorf("duplicate template id %s", t.ID()),
			)
		}
		c.index[t.ID()] = len(c.templates)
		c.templates = append(c.templates, t)
	}

	return c, nil
}

// MustNewCatalog is NewCatalog for built-in tables.
func MustNewCatalog(templates ...FlatRateTemplate) Catalog {
	c, err := NewCatalog(templates...)
	if err != nil {
		panic(err)
	}
	return c
}

// Find returns the template for id. An empty id is a validation error and an
// unknown one is not found.
func (c Catalog) Find(id string) (FlatRateTemplate, error) {
	if id == "" {
		return FlatRateTemplate{}, errs.NewValueIsRequiredError("templateId")
	}
	i, ok := c.index[id]
	if !ok {
		return FlatRateTemplate{}, errs.NewObjectNotFoundError("template", id)
	}
	return c.templates[i], nil
}

func (c Catalog) Contains(id string) bool {
	_, ok := c.index[id]
	return ok
}

// Templates returns a copy in catalog order.
func (c Catalog) Templates() []FlatRateTemplate {
	out := make([]FlatRateTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

func (c Catalog) Len() int {
	return len(c.templates)
}

func (c Catalog) IsEmpty() bool {
	return len(c.templates) == 0
}
