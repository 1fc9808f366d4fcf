package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"calendar-tool-service/pkg/datemath"
	pkgErrors "calendar-tool-service/pkg/errors"
)

const validationFailed = "Request validation failed"

// processCreateReq binds and validates the create-event body. Every failure
// is returned as a 422 listing the offending fields.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindError(err)
	}

	start, err := datemath.ParseTimestamp(req.Start)
	if err != nil {
		return req, pkgErrors.NewValidationError(validationFailed, []pkgErrors.FieldError{
			{Field: "start", Message: "must be an ISO-8601 date-time"},
		})
	}
	req.start = start

	return req, nil
}

func bindError(err error) error {
	var (
		vErrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)

	switch {
	case errors.As(err, &vErrs):
		fields := make([]pkgErrors.FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, pkgErrors.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
		}
		return pkgErrors.NewValidationError(validationFailed, fields)
	case errors.As(err, &typeErr):
		return pkgErrors.NewValidationError(validationFailed, []pkgErrors.FieldError{
			{Field: typeErr.Field, Message: fmt.Sprintf("must be of type %s", typeErr.Type.Kind())},
		})
	case errors.Is(err, io.EOF):
		return pkgErrors.NewValidationError("Request body is required", nil)
	case errors.As(err, &synErr), errors.Is(err, io.ErrUnexpectedEOF):
		return pkgErrors.NewValidationError("Request body is not valid JSON", nil)
	default:
		return pkgErrors.NewValidationError(err.Error(), nil)
	}
}

func fieldMessage(fe validator.FieldError) string {
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required":
		return "field required"
	case "min":
		return fmt.Sprintf("must be at least %s%s", fe.Param(), unit)
	case "max":
		return fmt.Sprintf("must be at most %s%s", fe.Param(), unit)
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
