package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata" // IANA zones without relying on the host

	"calendar-tool-service/config"
	_ "calendar-tool-service/docs" // Swagger docs
	"calendar-tool-service/internal/event"
	"calendar-tool-service/internal/httpserver"
	"calendar-tool-service/internal/middleware"
	"calendar-tool-service/pkg/gcalendar"
	"calendar-tool-service/pkg/googleauth"
	"calendar-tool-service/pkg/log"
)

// @title       Calendar Tool Service API
// @description Creates Google Calendar events for a voice assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Calendar Tool Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Calendar: %s, default timezone: %s", cfg.CalendarID, cfg.DefaultTimezone)

	// 3. Google clients
	tokenClient := googleauth.New(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		AuthURL:      cfg.Google.AuthURL,
		TokenURL:     cfg.Google.TokenURL,
		Timeout:      cfg.Upstream.Timeout,
	})
	calendarClient := gcalendar.New(gcalendar.Config{
		Endpoint: cfg.Google.CalendarEndpoint,
		Timeout:  cfg.Upstream.Timeout,
	})

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		RateLimit: middleware.Config{
			RateLimitEnabled: cfg.RateLimit.Enabled,
			RateLimitPerMin:  cfg.RateLimit.PerMin,
		},
		EventConfig: event.Config{
			ClientID:        cfg.Google.ClientID,
			ClientSecret:    cfg.Google.ClientSecret,
			RefreshToken:    cfg.Google.RefreshToken,
			CalendarID:      cfg.CalendarID,
			DefaultTimezone: cfg.DefaultTimezone,
		},
		TokenClient:    tokenClient,
		CalendarClient: calendarClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
