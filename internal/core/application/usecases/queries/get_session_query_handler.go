package queries

import (
	"context"

	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
)

// GetSessionQueryHandler renders a session read model from the session store.
type GetSessionQueryHandler struct {
	sessions ports.SessionRepository
}

func NewGetSessionQueryHandler(sessions ports.SessionRepository) GetSessionQueryHandler {
	return GetSessionQueryHandler{sessions: sessions}
}

func (h GetSessionQueryHandler) Handle(ctx context.Context, query GetSessionQuery) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	session, err := h.sessions.Get(ctx, query.SessionID())
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	return NewSessionView(session), nil
}

// NewSessionView maps a session onto its read model. Command endpoints use it
// to answer with the state they produced.
func NewSessionView(session *shipment.Session) GetSessionQueryResponse {
	resp := GetSessionQueryResponse{
		ID:          session.ID(),
		OrderID:     session.OrderID(),
		Status:      session.Status().String(),
		PackageType: session.PackageType().String(),
		Carriers: CarriersView{
			All:        session.Carriers().IsAll(),
			AccountIDs: session.Carriers().AccountIDs(),
		},
		Rates:    make([]RateView, 0, len(session.Rates())),
		Messages: session.Messages(),
		Version:  session.Version(),
	}

	if pkg, ok := session.Package(); ok {
		view := newPackageView(pkg)
		resp.Package = &view
	}

	for _, r := range session.Rates() {
		resp.Rates = append(resp.Rates, newRateView(r))
	}

	if r, ok := session.SelectedRate(); ok {
		resp.SelectedRateID = r.ProviderID()
	}

	if tx, ok := session.Transaction(); ok {
		resp.Transaction = &TransactionView{
			Status:         string(tx.Status()),
			TrackingNumber: tx.TrackingNumber(),
			LabelURL:       tx.LabelURL(),
			Messages:       tx.Messages(),
		}
	}

	return resp
}

func newPackageView(pkg packaging.Package) PackageView {
	p := pkg.Parcel()
	return PackageView{
		Type:       pkg.Type().String(),
		TemplateID: pkg.TemplateID(),
		Length:     p.Length(),
		Width:      p.Width(),
		Height:     p.Height(),
		Weight:     p.Weight(),
	}
}

func newRateView(r shipment.Rate) RateView {
	return RateView{
		ID:               r.ProviderID(),
		CarrierName:      r.CarrierName(),
		ServiceLevelName: r.ServiceLevelName(),
		Amount:           r.Amount(),
		Currency:         r.Currency(),
		EstimatedDays:    r.EstimatedDays(),
	}
}
