package googleauth

import (
	"fmt"
	"time"
)

// Config holds the OAuth client settings.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string   // only needed for the authorization-code flow
	Scopes       []string // only needed for the authorization-code flow
	AuthURL      string   // defaults to Google's
	TokenURL     string   // defaults to Google's
	Timeout      time.Duration
}

// ProviderError is a non-success answer from the token endpoint.
// Body is the provider's response, unmodified.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("token endpoint returned %d: %s", e.StatusCode, e.Body)
}
