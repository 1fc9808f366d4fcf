package oauthhelper

import "github.com/gin-gonic/gin"

// CallbackPath is where the provider redirects after consent.
const CallbackPath = "/oauth2callback"

// RegisterRoutes installs the helper's pages and templates on r.
func RegisterRoutes(r *gin.Engine, h *handler) {
	r.SetHTMLTemplate(templates)
	r.GET("/", h.Index)
	r.GET(CallbackPath, h.Callback)
}
