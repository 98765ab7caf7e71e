package shipment

import (
	"errors"
	"fmt"
	"slices"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/pkg/errs"
)

var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the aggregate root of one order-editing workflow. It owns the
// state machine, the package being quoted, the carrier selection, the rule
// store loaded for the order's products and the results of the last quote and
// purchase.
//
// Invariants:
//   - rates and the selected rate always belong to the current package and
//     carrier selection
//   - a selected rate is one of the rates of the last quote
//   - while LabelRequested nothing but the purchase outcome may change the
//     session
type Session struct {
	id          kernel.UUID
	orderID     kernel.OrderID
	status      Status
	packageType packaging.PackageType
	pkg         *packaging.Package
	carriers    CarrierSelection
	rules       *packaging.RuleStore

	rates        []Rate
	selectedRate *Rate
	transaction  *LabelTransaction
	messages     []string

	version       uint64
	isConstructed bool
}

// NewSession starts an Idle session with the Custom package type and all
// carriers selected.
func NewSession(id kernel.UUID, orderID kernel.OrderID, rules *packaging.RuleStore) (*Session, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if rules == nil {
		rules = packaging.NewRuleStore()
	}

	return &Session{
		id:            id,
		orderID:       orderID,
		status:        Idle,
		packageType:   packaging.Custom,
		carriers:      AllCarriers(),
		rules:         rules,
		isConstructed: true,
	}, nil
}

// SessionState is the full, detached state of a session. It is used to store
// sessions and to render read models.
type SessionState struct {
	ID           kernel.UUID
	OrderID      kernel.OrderID
	Status       Status
	PackageType  packaging.PackageType
	Package      *packaging.Package
	Carriers     CarrierSelection
	Rules        *packaging.RuleStore
	Rates        []Rate
	SelectedRate *Rate
	Transaction  *LabelTransaction
	Messages     []string
	Version      uint64
}

// RestoreSession rebuilds a session from stored state.
func RestoreSession(st SessionState) (*Session, error) {
	if err := errors.Join(
		st.ID.Validate(),
		st.OrderID.Validate(),
		st.Status.Validate(),
		st.PackageType.Validate(),
		st.Carriers.Validate(),
	); err != nil {
		return nil, err
	}

	if st.Package != nil && st.Package.Type() != st.PackageType {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"package",
			fmt.Errorf("package type %s does not match session type %s", st.Package.Type(), st.PackageType),
		)
	}

	needsRate := st.Status == RateSelected || st.Status == LabelRequested
	if needsRate && st.SelectedRate == nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"selectedRate",
			fmt.Errorf("%s requires a selected rate", st.Status),
		)
	}

	s := &Session{
		id:            st.ID,
		orderID:       st.OrderID,
		status:        st.Status,
		packageType:   st.PackageType,
		carriers:      st.Carriers,
		rules:         st.Rules.Clone(),
		rates:         slices.Clone(st.Rates),
		messages:      slices.Clone(st.Messages),
		version:       st.Version,
		isConstructed: true,
	}
	if st.Package != nil {
		p := *st.Package
		s.pkg = &p
	}
	if st.SelectedRate != nil {
		r := *st.SelectedRate
		s.selectedRate = &r
	}
	if st.Transaction != nil {
		t := *st.Transaction
		s.transaction = &t
	}
	return s, nil
}

// State returns a deep copy of the session state.
func (s *Session) State() SessionState {
	st := SessionState{
		ID:          s.id,
		OrderID:     s.orderID,
		Status:      s.status,
		PackageType: s.packageType,
		Carriers:    s.carriers,
		Rules:       s.rules.Clone(),
		Rates:       slices.Clone(s.rates),
		Messages:    slices.Clone(s.messages),
		Version:     s.version,
	}
	if s.pkg != nil {
		p := *s.pkg
		st.Package = &p
	}
	if s.selectedRate != nil {
		r := *s.selectedRate
		st.SelectedRate = &r
	}
	if s.transaction != nil {
		t := *s.transaction
		st.Transaction = &t
	}
	return st
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

func (s *Session) ID() kernel.UUID                    { return s.id }
func (s *Session) OrderID() kernel.OrderID            { return s.orderID }
func (s *Session) Status() Status                     { return s.status }
func (s *Session) PackageType() packaging.PackageType { return s.packageType }
func (s *Session) Carriers() CarrierSelection         { return s.carriers }
func (s *Session) Rates() []Rate                      { return slices.Clone(s.rates) }
func (s *Session) Messages() []string                 { return slices.Clone(s.messages) }
func (s *Session) Version() uint64                    { return s.version }

// Rules is the live rule store; resolving reads it directly.
func (s *Session) Rules() *packaging.RuleStore { return s.rules }

func (s *Session) Package() (packaging.Package, bool) {
	if s.pkg == nil {
		return packaging.Package{}, false
	}
	return *s.pkg, true
}

func (s *Session) SelectedRate() (Rate, bool) {
	if s.selectedRate == nil {
		return Rate{}, false
	}
	return *s.selectedRate, true
}

func (s *Session) Transaction() (LabelTransaction, bool) {
	if s.transaction == nil {
		return LabelTransaction{}, false
	}
	return *s.transaction, true
}

// AdvanceVersion is called by the session store after a successful write.
func (s *Session) AdvanceVersion() {
	s.version++
}

// ChangePackage replaces the package. A different value resets the session
// to Idle and drops rates and the selected rate.
func (s *Session) ChangePackage(p packaging.Package) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.refuseInFlight("change package"); err != nil {
		return err
	}
	if s.pkg != nil && s.pkg.IsEqual(p) {
		return nil
	}
	if err := s.reset("change package"); err != nil {
		return err
	}
	s.pkg = &p
	s.packageType = p.Type()
	return nil
}

// ChangeCarrierSelection replaces the carrier selection with the same reset
// semantics as ChangePackage.
func (s *Session) ChangeCarrierSelection(c CarrierSelection) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.refuseInFlight("change carriers"); err != nil {
		return err
	}
	if s.carriers.IsEqual(c) {
		return nil
	}
	if err := s.reset("change carriers"); err != nil {
		return err
	}
	s.carriers = c
	return nil
}

// refuseInFlight fails while a label purchase awaits the provider, even for
// changes that would leave the session as it is.
func (s *Session) refuseInFlight(operation string) error {
	if s.status == LabelRequested {
		return errs.NewStateIsInvalidError(operation, s.status.String(), "label purchase in progress")
	}
	return nil
}

func (s *Session) reset(operation string) error {
	status, err := s.status.Reset(operation)
	if err != nil {
		return err
	}
	s.status = status
	s.rates = nil
	s.selectedRate = nil
	s.messages = nil
	return nil
}

// BeginRateRequest starts a quote cycle for the current package and carriers.
func (s *Session) BeginRateRequest() error {
	if s.pkg == nil {
		return errs.NewValueIsRequiredError("package")
	}
	status, err := s.status.RequestRates()
	if err != nil {
		return err
	}
	s.status = status
	s.rates = nil
	s.selectedRate = nil
	s.messages = nil
	return nil
}

// CompleteRateRequest stores a quote. NoRates keeps the session in
// RatesRequested so the caller can retry.
func (s *Session) CompleteRateRequest(result QuoteResult) error {
	if s.status != RatesRequested {
		return errs.NewStateIsInvalidError("complete rate request", s.status.String(), "no quote in progress")
	}
	s.messages = slices.Clone(result.Messages)
	if result.Outcome == NoRates || len(result.Rates) == 0 {
		return nil
	}

	status, err := s.status.DisplayRates()
	if err != nil {
		return err
	}
	s.status = status
	s.rates = slices.Clone(result.Rates)
	return nil
}

// FailRateRequest records provider messages; the session stays in
// RatesRequested.
func (s *Session) FailRateRequest(messages ...string) error {
	if s.status != RatesRequested {
		return errs.NewStateIsInvalidError("fail rate request", s.status.String(), "no quote in progress")
	}
	s.messages = slices.Clone(messages)
	return nil
}

// SelectRate picks a rate of the last quote by provider id.
func (s *Session) SelectRate(providerID string) (Rate, error) {
	if providerID == "" {
		return Rate{}, errs.NewValueIsRequiredError("rateId")
	}
	status, err := s.status.SelectRate()
	if err != nil {
		return Rate{}, err
	}

	i := slices.IndexFunc(s.rates, func(r Rate) bool { return r.ProviderID() == providerID })
	if i < 0 {
		return Rate{}, errs.NewObjectNotFoundError("rate", providerID)
	}

	rate := s.rates[i]
	s.status = status
	s.selectedRate = &rate
	return rate, nil
}

// BeginPurchase moves to LabelRequested and returns the rate to buy.
func (s *Session) BeginPurchase() (Rate, error) {
	status, err := s.status.RequestLabel()
	if err != nil {
		return Rate{}, err
	}
	if s.selectedRate == nil {
		return Rate{}, errs.NewStateIsInvalidError("purchase label", s.status.String(), "no rate selected")
	}
	s.status = status
	s.transaction = nil
	return *s.selectedRate, nil
}

// CompletePurchase records the provider transaction. SUCCESS and QUEUED issue
// the label; anything else fails it.
func (s *Session) CompletePurchase(tx LabelTransaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	status, err := s.status.CompleteLabel(tx.IsSuccessful())
	if err != nil {
		return err
	}
	s.status = status
	s.transaction = &tx
	s.messages = tx.Messages()
	return nil
}

// FailPurchase ends an in-flight purchase after a provider or transport error.
func (s *Session) FailPurchase(messages ...string) error {
	status, err := s.status.CompleteLabel(false)
	if err != nil {
		return err
	}
	tx := NewLabelTransaction(TransactionError, "", "", messages...)
	s.status = status
	s.transaction = &tx
	s.messages = slices.Clone(messages)
	return nil
}

// ValidateSaveRule checks that the current package is a Custom one and the
// rule itself is well formed. Nothing is changed.
func (s *Session) ValidateSaveRule(productID kernel.ProductID, quantity kernel.Quantity, parcel kernel.Parcel) error {
	if err := errors.Join(productID.Validate(), quantity.Validate(), parcel.Validate()); err != nil {
		return err
	}
	if err := s.refuseInFlight("save packaging rule"); err != nil {
		return err
	}
	if s.packageType != packaging.Custom {
		return errs.NewStateIsInvalidError(
			"save packaging rule",
			s.packageType.String(),
			"flat-rate dimensions are not product attributes",
		)
	}
	return nil
}

// SaveRule updates the session rule store after the rule was persisted.
func (s *Session) SaveRule(productID kernel.ProductID, quantity kernel.Quantity, parcel kernel.Parcel) error {
	if err := s.ValidateSaveRule(productID, quantity, parcel); err != nil {
		return err
	}
	return s.rules.Put(productID, quantity, parcel)
}
