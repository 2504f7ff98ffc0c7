package http

import (
	"errors"
	"net/http"

	"orderlink/internal/core/domain/model/order"
	"orderlink/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ErrorResponse is the error payload every endpoint returns.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates core errors into HTTP responses: domain validation
// failures are the client's fault, illegal transitions are conflicts, missing
// rows are 404, and storage trouble is a 503 the client may retry.
func respondError(ctx echo.Context, err error) error {
	status := statusForError(err)

	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("uri", ctx.Request().RequestURI),
			zap.Error(err),
		)
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusForError(err error) int {
	var (
		requiredErr   *errs.ValueIsRequiredError
		invalidErr    *errs.ValueIsInvalidError
		outOfRangeErr *errs.ValueIsOutOfRangeError
		notFoundErr   *errs.ObjectNotFoundError
		storageErr    *errs.StorageUnavailableError
	)

	switch {
	case errors.As(err, &requiredErr),
		errors.As(err, &invalidErr),
		errors.As(err, &outOfRangeErr):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storageErr),
		errors.Is(err, errs.ErrTrackingIDTaken):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
