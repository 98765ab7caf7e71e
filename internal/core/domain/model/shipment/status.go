package shipment

import (
	"fmt"

	"shipdesk/internal/pkg/errs"
)

// Status is the state of the rate and label workflow.
//
// State transitions:
//
//	Idle ──> RatesRequested ──> RatesDisplayed ──> RateSelected ──> LabelRequested ──┬──> LabelIssued
//	  ^           │  ^                                  ^                            └──> LabelFailed
//	  │           └──┘ (no rates, provider error)       │                                   │
//	  │                                                 └──── selectRate ───────────────────┘
//	  └──── package or carrier change (any state except LabelRequested)
//
// A new quote cycle may start from any state except LabelRequested.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Idle is the state of a new session and of one whose package or
	// carriers changed.
	Idle

	// RatesRequested means a quote was sent and produced no rates yet.
	RatesRequested

	// RatesDisplayed means the last quote returned at least one rate.
	RatesDisplayed

	// RateSelected means the operator picked one of the displayed rates.
	RateSelected

	// LabelRequested means a purchase is in flight. Nothing may change the
	// session until the provider answers.
	LabelRequested

	// LabelIssued means the provider reported SUCCESS or QUEUED.
	LabelIssued

	// LabelFailed means the provider rejected the purchase or failed.
	LabelFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Idle:           "Idle",
		RatesRequested: "RatesRequested",
		RatesDisplayed: "RatesDisplayed",
		RateSelected:   "RateSelected",
		LabelRequested: "LabelRequested",
		LabelIssued:    "LabelIssued",
		LabelFailed:    "LabelFailed",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > LabelFailed {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus is the inverse of String for valid statuses.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Reset returns Idle. It fails only while a purchase is in flight.
func (s Status) Reset(operation string) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == LabelRequested {
		return Unknown, errs.NewStateIsInvalidError(operation, s.String(), "label purchase in progress")
	}
	return Idle, nil
}

// RequestRates starts a new quote cycle.
func (s Status) RequestRates() (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if s == LabelRequested {
		return Unknown, errs.NewStateIsInvalidError("request rates", s.String(), "label purchase in progress")
	}
	return RatesRequested, nil
}

// DisplayRates records a non-empty quote.
func (s Status) DisplayRates() (Status, error) {
	if s != RatesRequested {
		return Unknown, errs.NewStateIsInvalidError("display rates", s.String(), "no quote in progress")
	}
	return RatesDisplayed, nil
}

// SelectRate is allowed whenever rates from the last quote are on screen,
// including after a failed or issued label.
func (s Status) SelectRate() (Status, error) {
	switch s {
	case RatesDisplayed, RateSelected, LabelFailed, LabelIssued:
		return RateSelected, nil
	default:
		return Unknown, errs.NewStateIsInvalidError("select rate", s.String(), "no rates displayed")
	}
}

// RequestLabel is allowed only from RateSelected.
func (s Status) RequestLabel() (Status, error) {
	if s != RateSelected {
		return Unknown, errs.NewStateIsInvalidError("purchase label", s.String(), "no rate selected")
	}
	return LabelRequested, nil
}

// CompleteLabel ends an in-flight purchase as issued or failed.
func (s Status) CompleteLabel(issued bool) (Status, error) {
	if s != LabelRequested {
		return Unknown, errs.NewStateIsInvalidError("complete label", s.String(), "no label purchase in progress")
	}
	if issued {
		return LabelIssued, nil
	}
	return LabelFailed, nil
}
