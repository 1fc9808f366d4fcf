package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	eventHTTP "calendar-tool-service/internal/event/delivery/http"
	googleRepo "calendar-tool-service/internal/event/repository/google"
	eventUC "calendar-tool-service/internal/event/usecase"
)

// setupEventDomain wires repository, use case and handler for event creation
// and registers POST /create-event.
func (srv HTTPServer) setupEventDomain(ctx context.Context, r gin.IRouter) error {
	// 1. Repository
	repo := googleRepo.New(srv.l, srv.tokenClient, srv.calendarClient, srv.eventConfig.RefreshToken)

	// 2. UseCase
	uc := eventUC.New(srv.l, srv.eventConfig, repo)

	// 3. HTTP Handler
	h := eventHTTP.New(srv.l, uc)

	// 4. Routes
	eventHTTP.RegisterRoutes(r, h, srv.mw)

	if !srv.eventConfig.Complete() {
		srv.l.Warn(ctx, "Google credentials incomplete: /create-event will answer 500 until GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET and GOOGLE_REFRESH_TOKEN are set")
	}
	srv.l.Infof(ctx, "Event domain registered")
	return nil
}
