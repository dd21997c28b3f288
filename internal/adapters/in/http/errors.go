package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"wholesale/internal/adapters/in/http/api"
	"wholesale/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewErrorHandler maps error kinds to status codes and writes api.Error.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	logger = logger.With("component", "http_errors")

	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		body := errorBody(err)
		if body.Code >= http.StatusInternalServerError {
			logger.ErrorContext(ctx.Request().Context(), "Request failed",
				"method", ctx.Request().Method,
				"path", ctx.Path(),
				"status", body.Code,
				"error", err,
			)
		}

		var writeErr error
		if ctx.Request().Method == http.MethodHead {
			writeErr = ctx.NoContent(body.Code)
		} else {
			writeErr = ctx.JSON(body.Code, body)
		}
		if writeErr != nil {
			logger.WarnContext(ctx.Request().Context(), "Failed to write error response", "error", writeErr)
		}
	}
}

func errorBody(err error) api.Error {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return api.Error{Code: httpErr.Code, Message: fmt.Sprint(httpErr.Message)}
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return api.Error{Code: http.StatusBadRequest, Message: describeValidation(validationErrs)}
	}

	switch {
	case errs.IsValidation(err):
		return api.Error{Code: http.StatusBadRequest, Message: err.Error()}
	case errors.Is(err, errs.ErrObjectNotFound):
		return api.Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrConstraintViolation):
		return api.Error{Code: http.StatusConflict, Message: "Request conflicts with existing data"}
	case errors.Is(err, errs.ErrCommitFailed):
		return api.Error{
			Code:          http.StatusInternalServerError,
			Message:       "Commit failed, the change may or may not have been applied",
			CommitUnknown: true,
		}
	case errs.IsRetryable(err), errors.Is(err, context.DeadlineExceeded):
		return api.Error{
			Code:      http.StatusServiceUnavailable,
			Message:   "Storage is temporarily unavailable",
			Retryable: true,
		}
	default:
		return api.Error{Code: http.StatusInternalServerError, Message: "Internal server error"}
	}
}

func describeValidation(ve validator.ValidationErrors) string {
	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s", field, fe.Tag(), fe.Param()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: failed %s", field, fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}
