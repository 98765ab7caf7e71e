package http

import (
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Error struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type PackageInput struct {
	PackageType string  `json:"packageType" validate:"required,oneof=custom flat_rate"`
	TemplateID  string  `json:"templateId"  validate:"required_if=PackageType flat_rate"`
	Length      float64 `json:"length"      validate:"required_if=PackageType custom,gte=0"`
	Width       float64 `json:"width"       validate:"required_if=PackageType custom,gte=0"`
	Height      float64 `json:"height"      validate:"required_if=PackageType custom,gte=0"`
	Weight      float64 `json:"weight"      validate:"gt=0"`
}

type CarriersInput struct {
	All        bool     `json:"all"`
	AccountIDs []string `json:"accountIds" validate:"required_unless=All true,dive,required"`
}

type ResolveRequest struct {
	ProductID   int64  `json:"productId"   validate:"required,gt=0"`
	Quantity    int    `json:"quantity"`
	PackageType string `json:"packageType" validate:"required,oneof=custom flat_rate"`
	TemplateID  string `json:"templateId"  validate:"required_if=PackageType flat_rate"`
}

type RatesRequest struct {
	Package  PackageInput  `json:"package"`
	Carriers CarriersInput `json:"carriers"`
}

type PackagingRuleInput struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Quantity  int     `json:"quantity"  validate:"required,gt=0"`
	Length    float64 `json:"length"    validate:"gt=0"`
	Width     float64 `json:"width"     validate:"gt=0"`
	Height    float64 `json:"height"    validate:"gt=0"`
	Weight    float64 `json:"weight"    validate:"gt=0"`
}

type Package struct {
	PackageType string  `json:"packageType"`
	TemplateID  string  `json:"templateId,omitempty"`
	Length      float64 `json:"length"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
}

type Carriers struct {
	All        bool     `json:"all"`
	AccountIDs []string `json:"accountIds,omitempty"`
}

type Rate struct {
	ID            string `json:"id"`
	Carrier       string `json:"carrier"`
	ServiceLevel  string `json:"serviceLevel"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
	EstimatedDays int    `json:"estimatedDays,omitempty"`
}

type Transaction struct {
	Status         string   `json:"status"`
	TrackingNumber string   `json:"trackingNumber,omitempty"`
	LabelURL       string   `json:"labelUrl,omitempty"`
	Messages       []string `json:"messages,omitempty"`
}

type Session struct {
	ID             openapi_types.UUID `json:"id"`
	OrderID        int64              `json:"orderId"`
	Status         string             `json:"status"`
	Package        *Package           `json:"package,omitempty"`
	Carriers       Carriers           `json:"carriers"`
	Rates          []Rate             `json:"rates"`
	SelectedRateID string             `json:"selectedRateId,omitempty"`
	Transaction    *Transaction       `json:"transaction,omitempty"`
	Messages       []string           `json:"messages,omitempty"`
	Version        uint64             `json:"version"`
}

type Resolution struct {
	Package  Package `json:"package"`
	Source   string  `json:"source"`
	Quantity int     `json:"quantity"`
}

type Quote struct {
	Outcome  string   `json:"outcome"`
	Rates    []Rate   `json:"rates"`
	Messages []string `json:"messages,omitempty"`
}

type PackagingRule struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Length    float64 `json:"length"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Weight    float64 `json:"weight"`
}

type FlatRateTemplate struct {
	ID           string  `json:"id"`
	DisplayName  string  `json:"displayName"`
	Carrier      string  `json:"carrier"`
	Length       float64 `json:"length"`
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	MaxWeight    float64 `json:"maxWeight"`
	MassUnit     string  `json:"massUnit"`
	DistanceUnit string  `json:"distanceUnit"`
}

func toPackage(p packaging.Package) Package {
	parcel := p.Parcel()
	return Package{
		PackageType: p.Type().String(),
		TemplateID:  p.TemplateID(),
		Length:      parcel.Length(),
		Width:       parcel.Width(),
		Height:      parcel.Height(),
		Weight:      parcel.Weight(),
	}
}

func toRate(r shipment.Rate) Rate {
	return Rate{
		ID:            r.ProviderID(),
		Carrier:       r.CarrierName(),
		ServiceLevel:  r.ServiceLevelName(),
		Amount:        r.Amount().StringFixed(2),
		Currency:      r.Currency(),
		EstimatedDays: r.EstimatedDays(),
	}
}

func toRates(rates []shipment.Rate) []Rate {
	out := make([]Rate, 0, len(rates))
	for _, r := range rates {
		out = append(out, toRate(r))
	}
	return out
}

func toTransaction(tx shipment.LabelTransaction) Transaction {
	return Transaction{
		Status:         string(tx.Status()),
		TrackingNumber: tx.TrackingNumber(),
		LabelURL:       tx.LabelURL(),
		Messages:       tx.Messages(),
	}
}

func toSession(v queries.GetSessionQueryResponse) (Session, error) {
	id, err := uuidFromKernel(v.ID)
	if err != nil {
		return Session{}, err
	}

	session := Session{
		ID:             id,
		OrderID:        int64(v.OrderID),
		Status:         v.Status,
		Carriers:       Carriers{All: v.Carriers.All, AccountIDs: v.Carriers.AccountIDs},
		Rates:          make([]Rate, 0, len(v.Rates)),
		SelectedRateID: v.SelectedRateID,
		Messages:       v.Messages,
		Version:        v.Version,
	}
	if v.Package != nil {
		session.Package = &Package{
			PackageType: v.Package.Type,
			TemplateID:  v.Package.TemplateID,
			Length:      v.Package.Length,
			Width:       v.Package.Width,
			Height:      v.Package.Height,
			Weight:      v.Package.Weight,
		}
	}
	for _, r := range v.Rates {
		session.Rates = append(session.Rates, Rate{
			ID:            r.ID,
			Carrier:       r.CarrierName,
			ServiceLevel:  r.ServiceLevelName,
			Amount:        r.Amount.StringFixed(2),
			Currency:      r.Currency,
			EstimatedDays: r.EstimatedDays,
		})
	}
	if v.Transaction != nil {
		session.Transaction = &Transaction{
			Status:         v.Transaction.Status,
			TrackingNumber: v.Transaction.TrackingNumber,
			LabelURL:       v.Transaction.LabelURL,
			Messages:       v.Transaction.Messages,
		}
	}
	return session, nil
}
