package response

import pkgErrors "calendar-tool-service/pkg/errors"

// ErrResp is the body of every error response.
type ErrResp struct {
	Detail string                 `json:"detail"`
	Errors []pkgErrors.FieldError `json:"errors,omitempty"`
}

// HealthResp is the body of the liveness endpoints.
type HealthResp struct {
	OK bool `json:"ok"`
}
