package shipment

import (
	"errors"
	"slices"
	"strings"

	"shipdesk/internal/pkg/guard"
)

var ErrLabelTransactionIsNotConstructed = errors.New(
	"LabelTransaction must be created via NewLabelTransaction constructor",
)

// TransactionStatus is the provider's verdict on a label purchase.
type TransactionStatus string

const (
	TransactionSuccess TransactionStatus = "SUCCESS"
	TransactionQueued  TransactionStatus = "QUEUED"
	TransactionError   TransactionStatus = "ERROR"
	TransactionUnknown TransactionStatus = "UNKNOWN"
)

// ParseTransactionStatus maps provider text case-insensitively; anything
// unrecognised is TransactionUnknown.
func ParseTransactionStatus(s string) TransactionStatus {
	switch st := TransactionStatus(strings.ToUpper(strings.TrimSpace(s))); st {
	case TransactionSuccess, TransactionQueued, TransactionError:
		return st
	default:
		return TransactionUnknown
	}
}

// IsSuccessful is true for SUCCESS and QUEUED.
func (s TransactionStatus) IsSuccessful() bool {
	return s == TransactionSuccess || s == TransactionQueued
}

// LabelTransaction records one label purchase.
type LabelTransaction struct {
	status         TransactionStatus
	trackingNumber string
	labelURL       string
	messages       []string

	guard guard.ConstructorGuard
}

func NewLabelTransaction(
	status TransactionStatus,
	trackingNumber, labelURL string,
	messages ...string,
) LabelTransaction {
	return LabelTransaction{
		status:         status,
		trackingNumber: trackingNumber,
		labelURL:       labelURL,
		messages:       slices.Clone(messages),
		guard:          guard.NewConstructorGuard(),
	}
}

func (t LabelTransaction) Validate() error {
	return t.guard.Validate(ErrLabelTransactionIsNotConstructed)
}

func (t LabelTransaction) Status() TransactionStatus { return t.status }
func (t LabelTransaction) TrackingNumber() string    { return t.trackingNumber }
func (t LabelTransaction) LabelURL() string          { return t.labelURL }
func (t LabelTransaction) Messages() []string        { return slices.Clone(t.messages) }

func (t LabelTransaction) IsSuccessful() bool {
	return t.status.IsSuccessful()
}

// Message joins the provider messages for display.
func (t LabelTransaction) Message() string {
	return strings.Join(t.messages, ", ")
}
