package googleauth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Client talks to the provider's OAuth endpoints.
type Client struct {
	oauth      *oauth2.Config
	httpClient *http.Client
}

// New builds a Client. Empty endpoint URLs fall back to Google's.
func New(cfg Config) *Client {
	endpoint := google.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}
	// Google takes client credentials in the form body.
	endpoint.AuthStyle = oauth2.AuthStyleInParams

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
}

// AuthCodeURL returns the consent URL. access_type=offline and prompt=consent
// are always set so the provider reissues a refresh token.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", promptConsent),
	)
}

// Exchange trades an authorization code for tokens.
func (c *Client) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return nil, providerError(err)
	}
	return tok, nil
}

// AccessToken performs one refresh_token grant and returns the new access
// token. Nothing is cached; every call hits the token endpoint.
func (c *Client) AccessToken(ctx context.Context, refreshToken string) (string, error) {
	src := c.oauth.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	tok, err := src.Token()
	if err != nil {
		return "", providerError(err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token endpoint response has no access_token")
	}
	return tok.AccessToken, nil
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

func providerError(err error) error {
	var rErr *oauth2.RetrieveError
	if errors.As(err, &rErr) && rErr.Response != nil {
		return &ProviderError{StatusCode: rErr.Response.StatusCode, Body: string(rErr.Body)}
	}
	return err
}
