package web

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/labstack/echo/v4"

	"github.com/SelinElifGur/enfeksiyon/internal/platform/db"
)

// Error maps a service error onto the HTTP taxonomy: validation failures
// are 400, missing records 404, national-id collisions 409, and anything
// left (storage failures) 500.
func Error(err error) *echo.HTTPError {
	var verr validation.Errors
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, db.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, db.ErrDuplicate):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
