package http

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"shipdesk/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

const APIKeyHeader = "X-API-Key"

// APIKeyAuth rejects requests whose X-API-Key differs from key. An empty key
// disables the check.
func APIKeyAuth(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if key == "" {
				return next(ctx)
			}
			got := ctx.Request().Header.Get(APIKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				return errs.NewAuthorizationError(
					strings.ToLower(ctx.Request().Method)+" "+ctx.Path(),
					errors.New("missing or invalid "+APIKeyHeader),
				)
			}
			return next(ctx)
		}
	}
}

// OapiRequestValidator validates requests against doc. Paths the document
// does not describe pass through untouched.
func OapiRequestValidator(doc *openapi3.T) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("build openapi router: %w", err)
	}
	options := &openapi3filter.Options{
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		MultiError:         true,
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
					return next(ctx)
				}
				return errs.NewValueIsInvalidErrorWithCause("request", err)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options:    options,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return requestValidationError(err)
			}
			return next(ctx)
		}
	}, nil
}

func requestValidationError(err error) error {
	var multi openapi3.MultiError
	if !errors.As(err, &multi) {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	errList := make([]error, 0, len(multi))
	for _, e := range multi {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(requestErrorField(e), e))
	}
	return errors.Join(errList...)
}

func requestErrorField(err error) string {
	var reqErr *openapi3filter.RequestError
	if errors.As(err, &reqErr) && reqErr.Parameter != nil {
		return reqErr.Parameter.Name
	}
	return "body"
}
