package http

import (
	"github.com/gin-gonic/gin"

	"calendar-tool-service/internal/middleware"
)

// RegisterRoutes maps the event endpoints. Creation is rate limited per
// client.
func RegisterRoutes(r gin.IRouter, h Handler, mw middleware.Middleware) {
	r.POST("/create-event", mw.RateLimit(), h.CreateEvent)
}
