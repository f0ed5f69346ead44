package http

import (
	"errors"
	"net/http"

	"kitchenpos/internal/generated/servers"
	"kitchenpos/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps the error kinds of internal/pkg/errs to HTTP statuses.
// Anything unclassified is a 500.
func statusFor(err error) int {
	switch {
	case errs.IsInvalidArgument(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Set(internalErrorKey, err)
		message = http.StatusText(code)
	}

	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}

// internalErrorKey carries the cause of a 500 to the request logger.
const internalErrorKey = "internal_error"

// errorHandler renders errors that escape the handlers, e.g. unknown routes
// or unparsable path parameters, in the same body shape as handler errors.
func errorHandler() echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			message, ok := httpErr.Message.(string)
			if !ok {
				message = http.StatusText(httpErr.Code)
			}
			_ = ctx.JSON(httpErr.Code, servers.Error{Code: httpErr.Code, Message: message})
			return
		}

		_ = respondError(ctx, err)
	}
}
