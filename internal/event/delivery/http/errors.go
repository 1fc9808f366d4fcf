package http

import (
	"errors"
	"net/http"

	"calendar-tool-service/internal/event"
	pkgErrors "calendar-tool-service/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The use case message is already caller-facing and is kept as the detail.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, event.ErrServiceMisconfigured):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, err.Error())
	case errors.Is(err, event.ErrInvalidDuration):
		return pkgErrors.NewValidationError(validationFailed, []pkgErrors.FieldError{
			{Field: "durationMinutes", Message: err.Error()},
		})
	case errors.Is(err, event.ErrInvalidTimezone),
		errors.Is(err, event.ErrEventInPast):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, event.ErrUpstreamAuthFailure),
		errors.Is(err, event.ErrUpstreamEventCreateFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
