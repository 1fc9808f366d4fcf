package errors

import "net/http"

// HTTPError is an error that already knows the status it should be rendered with.
type HTTPError struct {
	Code    int
	Message string
	// Fields lists per-field validation problems, if any.
	Fields []FieldError
}

// FieldError describes one invalid request field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

// NewValidationError returns a 422 HTTPError carrying the offending fields.
func NewValidationError(message string, fields []FieldError) *HTTPError {
	return &HTTPError{
		Code:    http.StatusUnprocessableEntity,
		Message: message,
		Fields:  fields,
	}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
)
