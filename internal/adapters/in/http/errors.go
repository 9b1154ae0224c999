package http

import (
	"errors"
	"net/http"

	"github.com/VishnuPunati/product-catalog-service/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a domain error to an HTTP status and writes the uniform
// error body. Validation failures map to 400, missing objects to 404,
// uniqueness conflicts to 409, everything else to 500 with a generic message
// so store internals never leak to clients.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrUniqueViolation):
		return writeError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return writeError(ctx, http.StatusBadRequest, err.Error())
	default:
		ctx.Logger().Errorf("request failed: %v", err)
		return writeError(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
