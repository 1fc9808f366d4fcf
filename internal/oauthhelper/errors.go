package oauthhelper

import "errors"

var (
	ErrAuthorizationStateMismatch = errors.New("authorization state mismatch")
	ErrMissingAuthorizationCode   = errors.New("missing authorization code")
	ErrTokenExchangeFailed        = errors.New("token exchange failed")
)

// Operator-facing messages for the errors above.
const (
	msgStateMismatch  = "State mismatch. Abort."
	msgMissingCode    = "Missing code. Params: %v"
	msgExchangeFailed = "Token exchange failed:"
)
