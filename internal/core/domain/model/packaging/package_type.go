package packaging

import (
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"
)

// PackageType selects where parcel dimensions come from.
type PackageType int

const (
	// UnknownPackageType catches uninitialized values.
	UnknownPackageType PackageType = iota

	// Custom uses product dimensions, saved rules or the default parcel.
	Custom

	// FlatRate uses a carrier template with fixed dimensions.
	FlatRate
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		UnknownPackageType: "unknown",
		Custom:             "custom",
		FlatRate:           "flat_rate",
	}
}

// ParsePackageType maps the wire names "custom" and "flat_rate".
func ParsePackageType(s string) (PackageType, error) {
	for t, name := range getPackageTypeStrings() {
		if t != UnknownPackageType && name == strings.ToLower(strings.TrimSpace(s)) {
			return t, nil
		}
	}
	return UnknownPackageType, errs.NewValueIsInvalidErrorWithCause(
		"packageType",
		fmt.Errorf("%q is not a valid package type", s),
	)
}

func (t PackageType) Validate() error {
	if t != Custom && t != FlatRate {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageType",
			fmt.Errorf("%d is not a valid package type", t),
		)
	}
	return nil
}

func (t PackageType) String() string {
	if s, ok := getPackageTypeStrings()[t]; ok {
		return s
	}
	return "unknown"
}
