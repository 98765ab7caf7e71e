package kernel

import (
	"errors"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// Address is a postal address used as rate origin or destination.
type Address struct {
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

// Validate requires the fields every carrier needs to rate a route.
func (a Address) Validate() error {
	return errors.Join(
		requireText("street1", a.Street1),
		requireText("city", a.City),
		requireText("zip", a.Zip),
		requireText("country", a.Country),
	)
}

func requireText(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
