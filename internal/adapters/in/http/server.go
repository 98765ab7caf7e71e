package http

import (
	"context"
	"errors"
	"net/http"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/application/usecases/queries"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/domain/services"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handler contracts the server depends on; the command and query handlers
// satisfy them.
type (
	StartSessionHandler interface {
		Handle(ctx context.Context, cmd commands.StartSessionCommand) (kernel.UUID, error)
	}
	ResolvePackageHandler interface {
		Handle(ctx context.Context, cmd commands.ResolvePackageCommand) (services.Resolution, error)
	}
	ChangePackageHandler interface {
		Handle(ctx context.Context, cmd commands.ChangePackageCommand) (packaging.Package, error)
	}
	ChangeCarriersHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeCarriersCommand) error
	}
	RequestRatesHandler interface {
		Handle(ctx context.Context, cmd commands.RequestRatesCommand) (shipment.QuoteResult, error)
	}
	SelectRateHandler interface {
		Handle(ctx context.Context, cmd commands.SelectRateCommand) (shipment.Rate, error)
	}
	PurchaseLabelHandler interface {
		Handle(ctx context.Context, cmd commands.PurchaseLabelCommand) (shipment.LabelTransaction, error)
	}
	SavePackagingRuleHandler interface {
		Handle(ctx context.Context, cmd commands.SavePackagingRuleCommand) error
	}
	GetSessionHandler interface {
		Handle(ctx context.Context, query queries.GetSessionQuery) (queries.GetSessionQueryResponse, error)
	}
	ListPackagingRulesHandler interface {
		Handle(ctx context.Context, query queries.ListPackagingRulesQuery) ([]queries.ListPackagingRulesQueryResponse, error)
	}
	ListFlatRateTemplatesHandler interface {
		Handle(ctx context.Context, query queries.ListFlatRateTemplatesQuery) ([]queries.ListFlatRateTemplatesQueryResponse, error)
	}
)

// Server implements ServerInterface on top of the use case handlers.
type Server struct {
	// Command handlers
	startSessionHandler      StartSessionHandler
	resolvePackageHandler    ResolvePackageHandler
	changePackageHandler     ChangePackageHandler
	changeCarriersHandler    ChangeCarriersHandler
	requestRatesHandler      RequestRatesHandler
	selectRateHandler        SelectRateHandler
	purchaseLabelHandler     PurchaseLabelHandler
	savePackagingRuleHandler SavePackagingRuleHandler

	// Query handlers
	getSessionHandler            GetSessionHandler
	listPackagingRulesHandler    ListPackagingRulesHandler
	listFlatRateTemplatesHandler ListFlatRateTemplatesHandler

	defaultCarrier string
}

var _ ServerInterface = &Server{}

// NewServer creates the HTTP server. defaultCarrier answers catalog requests
// that name no carrier.
func NewServer(
	startSessionHandler StartSessionHandler,
	resolvePackageHandler ResolvePackageHandler,
	changePackageHandler ChangePackageHandler,
	changeCarriersHandler ChangeCarriersHandler,
	requestRatesHandler RequestRatesHandler,
	selectRateHandler SelectRateHandler,
	purchaseLabelHandler PurchaseLabelHandler,
	savePackagingRuleHandler SavePackagingRuleHandler,
	getSessionHandler GetSessionHandler,
	listPackagingRulesHandler ListPackagingRulesHandler,
	listFlatRateTemplatesHandler ListFlatRateTemplatesHandler,
	defaultCarrier string,
) *Server {
	return &Server{
		startSessionHandler:          startSessionHandler,
		resolvePackageHandler:        resolvePackageHandler,
		changePackageHandler:         changePackageHandler,
		changeCarriersHandler:        changeCarriersHandler,
		requestRatesHandler:          requestRatesHandler,
		selectRateHandler:            selectRateHandler,
		purchaseLabelHandler:         purchaseLabelHandler,
		savePackagingRuleHandler:     savePackagingRuleHandler,
		getSessionHandler:            getSessionHandler,
		listPackagingRulesHandler:    listPackagingRulesHandler,
		listFlatRateTemplatesHandler: listFlatRateTemplatesHandler,
		defaultCarrier:               defaultCarrier,
	}
}

// StartSession handles POST /api/v1/orders/{orderId}/sessions.
func (s *Server) StartSession(ctx echo.Context, orderID int64) error {
	cmd, err := commands.NewStartSessionCommand(kernel.OrderID(orderID))
	if err != nil {
		return err
	}

	sessionID, err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}

	session, err := s.loadSession(ctx.Request().Context(), sessionID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, session)
}

// GetSession handles GET /api/v1/sessions/{sessionId}.
func (s *Server) GetSession(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}

	session, err := s.loadSession(ctx.Request().Context(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, session)
}

// ResolvePackage handles POST /api/v1/sessions/{sessionId}/package/resolve.
func (s *Server) ResolvePackage(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body ResolveRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}
	packageType, err := packaging.ParsePackageType(body.PackageType)
	if err != nil {
		return err
	}

	cmd, err := commands.NewResolvePackageCommand(
		id,
		kernel.ProductID(body.ProductID),
		kernel.Quantity(body.Quantity),
		packageType,
		body.TemplateID,
	)
	if err != nil {
		return err
	}

	res, err := s.resolvePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Resolution{
		Package:  toPackage(res.Package),
		Source:   string(res.Source),
		Quantity: int(res.Quantity),
	})
}

// ChangePackage handles PUT /api/v1/sessions/{sessionId}/package.
func (s *Server) ChangePackage(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body PackageInput
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}
	spec, err := toPackageSpec(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangePackageCommand(id, spec)
	if err != nil {
		return err
	}

	pkg, err := s.changePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toPackage(pkg))
}

// ChangeCarriers handles PUT /api/v1/sessions/{sessionId}/carriers.
func (s *Server) ChangeCarriers(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body CarriersInput
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}
	carriers, err := toCarrierSelection(body)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeCarriersCommand(id, carriers)
	if err != nil {
		return err
	}

	if err = s.changeCarriersHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// RequestRates handles POST /api/v1/sessions/{sessionId}/rates.
func (s *Server) RequestRates(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body RatesRequest
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}
	spec, specErr := toPackageSpec(body.Package)
	carriers, carriersErr := toCarrierSelection(body.Carriers)
	if err = errors.Join(specErr, carriersErr); err != nil {
		return err
	}

	cmd, err := commands.NewRequestRatesCommand(id, spec, carriers)
	if err != nil {
		return err
	}

	result, err := s.requestRatesHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, Quote{
		Outcome:  result.Outcome.String(),
		Rates:    toRates(result.Rates),
		Messages: result.Messages,
	})
}

// SelectRate handles POST /api/v1/sessions/{sessionId}/rates/{rateId}/select.
func (s *Server) SelectRate(ctx echo.Context, sessionID openapi_types.UUID, rateID string) error {
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSelectRateCommand(id, rateID)
	if err != nil {
		return err
	}

	rate, err := s.selectRateHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toRate(rate))
}

// PurchaseLabel handles POST /api/v1/sessions/{sessionId}/label.
func (s *Server) PurchaseLabel(ctx echo.Context, sessionID openapi_types.UUID) error {
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewPurchaseLabelCommand(id)
	if err != nil {
		return err
	}

	tx, err := s.purchaseLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, toTransaction(tx))
}

// SavePackagingRule handles POST /api/v1/sessions/{sessionId}/packaging-rules.
func (s *Server) SavePackagingRule(ctx echo.Context, sessionID openapi_types.UUID) error {
	var body PackagingRuleInput
	if err := bindBody(ctx, &body); err != nil {
		return err
	}
	id, err := kernelUUID(sessionID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewSavePackagingRuleCommand(
		id,
		kernel.ProductID(body.ProductID),
		kernel.Quantity(body.Quantity),
		body.Length, body.Width, body.Height, body.Weight,
	)
	if err != nil {
		return err
	}

	if err = s.savePackagingRuleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ListPackagingRules handles GET /api/v1/products/{productId}/packaging-rules.
func (s *Server) ListPackagingRules(ctx echo.Context, productID int64) error {
	query, err := queries.NewListPackagingRulesQuery(kernel.ProductID(productID))
	if err != nil {
		return err
	}

	rules, err := s.listPackagingRulesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]PackagingRule, len(rules))
	for i, r := range rules {
		response[i] = PackagingRule{
			ProductID: int64(r.ProductID),
			Quantity:  int(r.Quantity),
			Length:    r.Parcel.Length(),
			Width:     r.Parcel.Width(),
			Height:    r.Parcel.Height(),
			Weight:    r.Parcel.Weight(),
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// ListFlatRateTemplates handles GET /api/v1/flat-rate-templates.
func (s *Server) ListFlatRateTemplates(ctx echo.Context, params ListFlatRateTemplatesParams) error {
	carrier := s.defaultCarrier
	if params.Carrier != nil && *params.Carrier != "" {
		carrier = *params.Carrier
	}

	query, err := queries.NewListFlatRateTemplatesQuery(carrier)
	if err != nil {
		return err
	}

	templates, err := s.listFlatRateTemplatesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]FlatRateTemplate, len(templates))
	for i, t := range templates {
		response[i] = FlatRateTemplate{
			ID:           t.ID,
			DisplayName:  t.DisplayName,
			Carrier:      t.Carrier,
			Length:       t.Length,
			Width:        t.Width,
			Height:       t.Height,
			MaxWeight:    t.MaxWeight,
			MassUnit:     t.MassUnit,
			DistanceUnit: t.DistanceUnit,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) loadSession(ctx context.Context, id kernel.UUID) (Session, error) {
	query, err := queries.NewGetSessionQuery(id)
	if err != nil {
		return Session{}, err
	}
	view, err := s.getSessionHandler.Handle(ctx, query)
	if err != nil {
		return Session{}, err
	}
	return toSession(view)
}

func bindBody(ctx echo.Context, dest any) error {
	if err := ctx.Bind(dest); err != nil {
		return err
	}
	return ctx.Validate(dest)
}

func toPackageSpec(in PackageInput) (commands.PackageSpec, error) {
	packageType, err := packaging.ParsePackageType(in.PackageType)
	if err != nil {
		return commands.PackageSpec{}, err
	}
	return commands.NewPackageSpec(packageType, in.TemplateID, in.Length, in.Width, in.Height, in.Weight)
}

func toCarrierSelection(in CarriersInput) (shipment.CarrierSelection, error) {
	if in.All {
		return shipment.AllCarriers(), nil
	}
	return shipment.CustomCarriers(in.AccountIDs...)
}
