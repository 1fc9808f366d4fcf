package oauthhelper

import (
	"context"

	"golang.org/x/oauth2"
)

// Exchanger is the authorization-code half of the OAuth client.
type Exchanger interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
}
