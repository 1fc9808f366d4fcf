// scripts/gcal-auth/main.go
//
// Run this ONCE locally to obtain a Google refresh token for the calendar
// service.
//
// Usage:
//   GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... go run ./scripts/gcal-auth
//
// Open the printed URL, approve access, and copy the refresh token shown in
// the browser (it is also printed here) into GOOGLE_REFRESH_TOKEN.

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"calendar-tool-service/config"
	"calendar-tool-service/internal/oauthhelper"
	"calendar-tool-service/pkg/googleauth"
	"calendar-tool-service/pkg/log"
)

func main() {
	cfg, err := config.LoadAuthHelper()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	port := cfg.Google.OAuthPort
	client := googleauth.New(googleauth.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  fmt.Sprintf("http://localhost:%d%s", port, oauthhelper.CallbackPath),
		Scopes:       []string{googleauth.CalendarEventsScope},
		AuthURL:      cfg.Google.AuthURL,
		TokenURL:     cfg.Google.TokenURL,
		Timeout:      cfg.Upstream.Timeout,
	})

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	oauthhelper.RegisterRoutes(r, oauthhelper.New(logger, oauthhelper.NewSession(), client, os.Stdout))

	server := &http.Server{
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		logger.Fatalf(ctx, "gcal-auth: %v", err)
	}

	fmt.Printf("Open http://localhost:%d in your browser\n", port)
	if err := serve(ctx, logger, server, ln, shutdownTimeout); err != nil {
		logger.Fatalf(ctx, "gcal-auth: %v", err)
	}
}

const shutdownTimeout = 5 * time.Second

// serve runs server on ln until ctx is done, then shuts it down. A failed
// shutdown is logged and returned.
func serve(ctx context.Context, l log.Logger, server *http.Server, ln net.Listener, timeout time.Duration) error {
	shutdownErr := make(chan error, 1)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			l.Errorf(ctx, "gcal-auth: shutdown: %v", err)
		}
		shutdownErr <- err
	}()

	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return <-shutdownErr
}
