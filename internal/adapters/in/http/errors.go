package http

import (
	"errors"
	"net/http"

	"sparrow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps domain errors onto the uniform error payload. Version
// conflicts are reported as conflicts: the caller raced another writer and
// should re-read before retrying.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrVersionConflict), errors.Is(err, errs.ErrConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrDependencyUnavailable):
		// Never leak backend details to the caller.
		return ctx.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "dependency_unavailable",
			Message: "service temporarily unavailable",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal",
			Message: "internal server error",
		})
	}
}

func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_failed",
		Message: message,
	})
}
