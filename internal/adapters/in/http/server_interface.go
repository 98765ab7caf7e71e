package http

import (
	"fmt"

	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListFlatRateTemplatesParams holds the query of GET /flat-rate-templates.
type ListFlatRateTemplatesParams struct {
	Carrier *string `form:"carrier,omitempty" json:"carrier,omitempty"`
}

// ServerInterface lists one method per operation of openapi.yaml.
type ServerInterface interface {
	// (POST /orders/{orderId}/sessions)
	StartSession(ctx echo.Context, orderID int64) error
	// (GET /sessions/{sessionId})
	GetSession(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /sessions/{sessionId}/package/resolve)
	ResolvePackage(ctx echo.Context, sessionID openapi_types.UUID) error
	// (PUT /sessions/{sessionId}/package)
	ChangePackage(ctx echo.Context, sessionID openapi_types.UUID) error
	// (PUT /sessions/{sessionId}/carriers)
	ChangeCarriers(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /sessions/{sessionId}/rates)
	RequestRates(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /sessions/{sessionId}/rates/{rateId}/select)
	SelectRate(ctx echo.Context, sessionID openapi_types.UUID, rateID string) error
	// (POST /sessions/{sessionId}/label)
	PurchaseLabel(ctx echo.Context, sessionID openapi_types.UUID) error
	// (POST /sessions/{sessionId}/packaging-rules)
	SavePackagingRule(ctx echo.Context, sessionID openapi_types.UUID) error
	// (GET /products/{productId}/packaging-rules)
	ListPackagingRules(ctx echo.Context, productID int64) error
	// (GET /flat-rate-templates)
	ListFlatRateTemplates(ctx echo.Context, params ListFlatRateTemplatesParams) error
}

// ServerInterfaceWrapper converts echo contexts to typed parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) StartSession(ctx echo.Context) error {
	var orderID int64
	if err := bindPath("orderId", ctx.Param("orderId"), &orderID); err != nil {
		return err
	}
	return w.Handler.StartSession(ctx, orderID)
}

func (w *ServerInterfaceWrapper) GetSession(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetSession(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) ResolvePackage(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ResolvePackage(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) ChangePackage(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangePackage(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) ChangeCarriers(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ChangeCarriers(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) RequestRates(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.RequestRates(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) SelectRate(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	var rateID string
	if err = bindPath("rateId", ctx.Param("rateId"), &rateID); err != nil {
		return err
	}
	return w.Handler.SelectRate(ctx, sessionID, rateID)
}

func (w *ServerInterfaceWrapper) PurchaseLabel(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.PurchaseLabel(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) SavePackagingRule(ctx echo.Context) error {
	sessionID, err := bindSessionID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.SavePackagingRule(ctx, sessionID)
}

func (w *ServerInterfaceWrapper) ListPackagingRules(ctx echo.Context) error {
	var productID int64
	if err := bindPath("productId", ctx.Param("productId"), &productID); err != nil {
		return err
	}
	return w.Handler.ListPackagingRules(ctx, productID)
}

func (w *ServerInterfaceWrapper) ListFlatRateTemplates(ctx echo.Context) error {
	var params ListFlatRateTemplatesParams
	if err := runtime.BindQueryParameter("form", true, false, "carrier", ctx.QueryParams(), &params.Carrier); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("carrier", err)
	}
	return w.Handler.ListFlatRateTemplates(ctx, params)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL mounts every operation under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders/:orderId/sessions", w.StartSession)
	router.GET(baseURL+"/sessions/:sessionId", w.GetSession)
	router.POST(baseURL+"/sessions/:sessionId/package/resolve", w.ResolvePackage)
	router.PUT(baseURL+"/sessions/:sessionId/package", w.ChangePackage)
	router.PUT(baseURL+"/sessions/:sessionId/carriers", w.ChangeCarriers)
	router.POST(baseURL+"/sessions/:sessionId/rates", w.RequestRates)
	router.POST(baseURL+"/sessions/:sessionId/rates/:rateId/select", w.SelectRate)
	router.POST(baseURL+"/sessions/:sessionId/label", w.PurchaseLabel)
	router.POST(baseURL+"/sessions/:sessionId/packaging-rules", w.SavePackagingRule)
	router.GET(baseURL+"/products/:productId/packaging-rules", w.ListPackagingRules)
	router.GET(baseURL+"/flat-rate-templates", w.ListFlatRateTemplates)
}

func bindPath(name, value string, dest any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, value, dest, runtime.BindStyledParameterOptions{
		ParamLocation: runtime.ParamLocationPath,
		Explode:       false,
		Required:      true,
	})
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return nil
}

func bindSessionID(ctx echo.Context) (openapi_types.UUID, error) {
	var sessionID openapi_types.UUID
	if err := bindPath("sessionId", ctx.Param("sessionId"), &sessionID); err != nil {
		return openapi_types.UUID{}, err
	}
	return sessionID, nil
}

func kernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromString(id.String())
}

func uuidFromKernel(id kernel.UUID) (openapi_types.UUID, error) {
	parsed, err := uuid.Parse(id.String())
	if err != nil {
		return openapi_types.UUID{}, fmt.Errorf("session id %q: %w", id, err)
	}
	return parsed, nil
}

