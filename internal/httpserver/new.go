package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"calendar-tool-service/internal/event"
	googleRepo "calendar-tool-service/internal/event/repository/google"
	"calendar-tool-service/internal/middleware"
	"calendar-tool-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Event domain
	eventConfig    event.Config
	tokenClient    googleRepo.TokenClient
	calendarClient googleRepo.CalendarClient
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.Config

	// Event domain
	EventConfig    event.Config
	TokenClient    googleRepo.TokenClient
	CalendarClient googleRepo.CalendarClient
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.RateLimit),
		eventConfig:    cfg.EventConfig,
		tokenClient:    cfg.TokenClient,
		calendarClient: cfg.CalendarClient,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.tokenClient == nil {
		return errors.New("token client is required")
	}
	if srv.calendarClient == nil {
		return errors.New("calendar client is required")
	}
	return nil
}
