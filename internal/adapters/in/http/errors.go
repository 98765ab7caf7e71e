package http

import (
	"errors"
	"log/slog"
	"net/http"

	"shipdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error kinds of errs onto HTTP statuses.
func statusFor(err error) int {
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrProviderFailed):
		return http.StatusBadGateway
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorBody renders err for the operator. Provider failures show the
// provider's own text; joined errors are listed one per detail. A label that
// was paid for but not saved keeps its tracking number and URL in the details.
func NewErrorBody(err error) Error {
	code := statusFor(err)
	body := Error{Code: code, Message: err.Error()}

	var httpErr *echo.HTTPError
	var providerErr *errs.ProviderError
	var notRecorded *errs.LabelNotRecordedError
	switch {
	case errors.As(err, &notRecorded):
		body.Message = "label purchased but not saved on order"
		body.Details = []string{
			"trackingNumber: " + notRecorded.TrackingNumber,
			"labelUrl: " + notRecorded.LabelURL,
		}
		return body
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			body.Message = msg
		} else {
			body.Message = http.StatusText(code)
		}
	case errors.As(err, &providerErr):
		body.Message = providerErr.Message()
	case code == http.StatusInternalServerError:
		body.Message = "internal error"
		return body
	}

	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			body.Details = append(body.Details, e.Error())
		}
		if code == http.StatusBadRequest {
			body.Message = "validation failed"
		}
	}
	return body
}

// ErrorHandler writes every handler error as an Error body.
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := NewErrorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "request failed",
				"method", ctx.Request().Method, "path", ctx.Path(), "status", body.Code, "error", err)
		}

		if writeErr := ctx.JSON(body.Code, body); writeErr != nil {
			logger.ErrorContext(ctx.Request().Context(), "failed to write error response", "error", writeErr)
		}
	}
}
