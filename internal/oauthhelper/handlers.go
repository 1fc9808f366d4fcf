package oauthhelper

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-tool-service/pkg/googleauth"
)

// Index renders the consent link. It never redirects on its own.
func (h *handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, tmplIndex, gin.H{
		"AuthURL": h.exchanger.AuthCodeURL(h.session.State()),
	})
}

// Callback validates the state, trades the code for tokens and shows the
// refresh token. Only a callback that yields a refresh token completes the
// session; every other outcome can be retried from the consent link.
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.session.Matches(c.Query("state")) {
		h.l.Warnf(ctx, "oauthhelper.Callback: %v", ErrAuthorizationStateMismatch)
		h.failure(c, http.StatusBadRequest, msgStateMismatch, "")
		return
	}

	code := c.Query("code")
	if code == "" {
		h.l.Warnf(ctx, "oauthhelper.Callback: %v", ErrMissingAuthorizationCode)
		h.failure(c, http.StatusBadRequest, fmt.Sprintf(msgMissingCode, c.Request.URL.Query()), "")
		return
	}

	tok, err := h.exchanger.Exchange(ctx, code)
	if err != nil {
		h.l.Errorf(ctx, "oauthhelper.Callback: %v: %v", ErrTokenExchangeFailed, err)
		body := err.Error()
		var pErr *googleauth.ProviderError
		if errors.As(err, &pErr) {
			body = pErr.Body
		}
		h.failure(c, http.StatusInternalServerError, msgExchangeFailed, body)
		return
	}

	if tok.RefreshToken == "" {
		h.l.Warn(ctx, "oauthhelper.Callback: provider returned no refresh token")
		scope, _ := tok.Extra("scope").(string)
		c.HTML(http.StatusOK, tmplNoRefresh, gin.H{
			"RevokeURL": revokeURL,
			"TokenType": tok.TokenType,
			"Expiry":    tok.Expiry.Format(time.RFC3339),
			"Scope":     scope,
		})
		return
	}

	h.session.Complete()

	fmt.Fprintf(h.terminal, "\n=== SUCCESS ===\nREFRESH_TOKEN:\n%s\n\nACCESS_TOKEN (short-lived):\n%s\n",
		tok.RefreshToken, tok.AccessToken)

	c.HTML(http.StatusOK, tmplSuccess, gin.H{
		"RefreshToken": tok.RefreshToken,
	})
}

func (h *handler) failure(c *gin.Context, status int, message, body string) {
	c.HTML(status, tmplFailure, gin.H{
		"Message": message,
		"Body":    body,
	})
}
