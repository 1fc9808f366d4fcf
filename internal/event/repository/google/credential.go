package google

import (
	"context"
	"errors"

	"calendar-tool-service/internal/event/repository"
	"calendar-tool-service/pkg/googleauth"
	"calendar-tool-service/pkg/metrics"
)

// RefreshAccessToken exchanges the refresh token for a new access token.
func (r *implRepository) RefreshAccessToken(ctx context.Context) (string, error) {
	accessToken, err := r.tokens.AccessToken(ctx, r.refreshToken)
	if err != nil {
		metrics.ObserveUpstream(metrics.CallTokenRefresh, metrics.OutcomeFailure)
		r.l.Errorf(ctx, "google.RefreshAccessToken: %v", err)

		var pErr *googleauth.ProviderError
		if errors.As(err, &pErr) {
			return "", &repository.UpstreamError{Kind: repository.ErrTokenRefresh, Body: pErr.Body}
		}
		return "", &repository.UpstreamError{Kind: repository.ErrTokenRefresh, Body: err.Error()}
	}

	metrics.ObserveUpstream(metrics.CallTokenRefresh, metrics.OutcomeSuccess)
	return accessToken, nil
}
