package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrVersionIsInvalid  = errors.New("version is invalid")
	ErrStateIsInvalid    = errors.New("state is invalid")
	ErrProviderFailed    = errors.New("provider request failed")
	ErrNotAuthorized     = errors.New("not authorized")
	ErrLabelNotRecorded  = errors.New("label not recorded")
)

// IsValidation reports whether err belongs to the validation family
// (required, invalid or out of range values).
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %s)", msg, sanitize(cause.Error()))
}

func sanitize(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "\n", " ")), " ")
}

// ObjectNotFoundError is returned when a lookup by identifier yields nothing.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: %s %v", ErrObjectNotFound, e.ParamName, e.ID)
	return withCause(msg, e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError is returned when a value fails a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a numeric value falls outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %v, max value is %v",
		ErrValueIsOutOfRange, e.ParamName, sanitize(fmt.Sprint(e.Value)), e.Min, e.Max)
	return withCause(msg, e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError is returned when a mandatory value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// VersionIsInvalidError is returned on optimistic concurrency conflicts.
type VersionIsInvalidError struct {
	ParamName string
	Expected  uint64
	Actual    uint64
}

func NewVersionIsInvalidError(paramName string, expected, actual uint64) *VersionIsInvalidError {
	return &VersionIsInvalidError{ParamName: paramName, Expected: expected, Actual: actual}
}

func (e *VersionIsInvalidError) Error() string {
	return fmt.Sprintf("%s: %s expected version %d, got %d", ErrVersionIsInvalid, e.ParamName, e.Expected, e.Actual)
}

func (e *VersionIsInvalidError) Unwrap() error {
	return ErrVersionIsInvalid
}

// StateIsInvalidError is returned when an operation is invoked from a state
// that forbids it.
type StateIsInvalidError struct {
	Operation string
	State     string
	Reason    string
}

func NewStateIsInvalidError(operation, state, reason string) *StateIsInvalidError {
	return &StateIsInvalidError{Operation: operation, State: state, Reason: reason}
}

func (e *StateIsInvalidError) Error() string {
	msg := fmt.Sprintf("%s: cannot %s in %s", ErrStateIsInvalid, e.Operation, e.State)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *StateIsInvalidError) Unwrap() error {
	return ErrStateIsInvalid
}

// ProviderError carries the remote service's message text for a failed
// quote, purchase or catalog request.
type ProviderError struct {
	Operation string
	Messages  []string
	Cause     error
}

func NewProviderError(operation string, messages ...string) *ProviderError {
	return &ProviderError{Operation: operation, Messages: messages}
}

func NewProviderErrorWithCause(operation string, cause error, messages ...string) *ProviderError {
	return &ProviderError{Operation: operation, Messages: messages, Cause: cause}
}

// Message returns the provider text joined for display, or a generic marker
// when the provider sent none.
func (e *ProviderError) Message() string {
	if len(e.Messages) == 0 {
		return "unknown provider error"
	}
	return strings.Join(e.Messages, ", ")
}

func (e *ProviderError) Error() string {
	return withCause(fmt.Sprintf("%s: %s: %s", ErrProviderFailed, e.Operation, e.Message()), e.Cause)
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderFailed
}

// AuthorizationError is returned when the caller lacks permission for an action.
type AuthorizationError struct {
	Action string
	Cause  error
}

func NewAuthorizationError(action string, cause error) *AuthorizationError {
	return &AuthorizationError{Action: action, Cause: cause}
}

func (e *AuthorizationError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrNotAuthorized, e.Action), e.Cause)
}

func (e *AuthorizationError) Unwrap() error {
	return ErrNotAuthorized
}

// LabelNotRecordedError is returned when a label was bought but could not be
// written onto the order. The label details are kept so the operator can
// record them by hand.
type LabelNotRecordedError struct {
	OrderID        any
	TrackingNumber string
	LabelURL       string
	Cause          error
}

func NewLabelNotRecordedError(orderID any, trackingNumber, labelURL string, cause error) *LabelNotRecordedError {
	return &LabelNotRecordedError{OrderID: orderID, TrackingNumber: trackingNumber, LabelURL: labelURL, Cause: cause}
}

func (e *LabelNotRecordedError) Error() string {
	msg := fmt.Sprintf("%s: order %v tracking %s", ErrLabelNotRecorded, e.OrderID, e.TrackingNumber)
	return withCause(msg, e.Cause)
}

func (e *LabelNotRecordedError) Unwrap() error {
	return ErrLabelNotRecorded
}
