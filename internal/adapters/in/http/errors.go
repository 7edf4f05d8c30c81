package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"kitchen/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error returned by a handler as an Error body:
//
//	ObjectNotFoundError                                     404
//	ValueIsInvalid, ValueIsOutOfRange, ValueIsRequired      400
//	StoreUnavailableError                                   503
//	*echo.HTTPError                                         its own code
//	anything else                                           500
func ErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		code, message := classify(err)
		attrs := []any{
			"method", ctx.Request().Method,
			"route", ctx.Path(),
			"status", code,
			"error", err,
		}
		if p, ok := PrincipalFrom(ctx); ok {
			attrs = append(attrs, "user_id", p.UserID)
		}
		if code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed", attrs...)
		} else {
			logger.DebugContext(ctx.Request().Context(), "Request rejected", attrs...)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(code)
		} else {
			writeErr = ctx.JSON(code, Error{Code: code, Message: message})
		}
		if writeErr != nil {
			logger.WarnContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Store unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
