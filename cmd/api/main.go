package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-scheduler/config"
	_ "meeting-scheduler/docs" // Swagger docs
	"meeting-scheduler/internal/httpserver"
	schedulingHTTP "meeting-scheduler/internal/scheduling/delivery/http"
	schedulingUC "meeting-scheduler/internal/scheduling/usecase"
	"meeting-scheduler/internal/session/repository/inmem"
	sessionUC "meeting-scheduler/internal/session/usecase"
	"meeting-scheduler/pkg/gcalendar"
	"meeting-scheduler/pkg/googleauth"
	"meeting-scheduler/pkg/log"
	"meeting-scheduler/pkg/slotfinder"
)

// @title       Meeting Scheduler API
// @description Calendar-backed appointment scheduling: OAuth-connected Google Calendar, conflict-free slot search, and meeting booking.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Meeting Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.GoogleOAuth.ClientID == "" || cfg.GoogleOAuth.ClientSecret == "" {
		logger.Warn(ctx, "GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET not set, calendar authorization will fail")
	}

	// 3. OAuth session domain
	redirectURI := cfg.GoogleOAuth.RedirectURI
	if cfg.Ngrok.Enabled {
		publicURL, err := detectPublicURL(ctx, cfg.Ngrok.APIBase)
		if err != nil {
			logger.Warnf(ctx, "ngrok tunnel detection failed, keeping configured redirect URI: %v", err)
		} else {
			redirectURI = publicURL + "/api/v1/scheduling/oauth/callback"
			logger.Infof(ctx, "OAuth redirect URI derived from tunnel: %s", redirectURI)
		}
	}

	provider := googleauth.New(googleauth.Config{
		ClientID:     cfg.GoogleOAuth.ClientID,
		ClientSecret: cfg.GoogleOAuth.ClientSecret,
		RedirectURL:  redirectURI,
		Scopes:       cfg.GoogleOAuth.Scopes,
		AuthURL:      cfg.GoogleOAuth.AuthURL,
		TokenURL:     cfg.GoogleOAuth.TokenURL,
		RevokeURL:    cfg.GoogleOAuth.RevokeURL,
	})

	tokenRepo := inmem.New()
	sessions := sessionUC.New(logger, provider, tokenRepo)

	// 4. Scheduling domain
	finder, err := slotfinder.New(cfg.Scheduler.Timezone, cfg.Scheduler.StepMinutes)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		finder, _ = slotfinder.New("UTC", cfg.Scheduler.StepMinutes)
	}

	calendarClient := gcalendar.NewClient(
		gcalendar.WithRateLimit(cfg.Calendar.RatePerSecond, cfg.Calendar.RateBurst),
	)

	scheduler := schedulingUC.New(logger, sessions, calendarClient, finder, schedulingUC.Config{
		SummaryTemplate:     cfg.Scheduler.SummaryTemplate,
		DescriptionTemplate: cfg.Scheduler.DescriptionTemplate,
		MaxSlotAttempts:     cfg.Scheduler.MaxSlotAttempts,
	})

	schedulingHandler := schedulingHTTP.New(logger, scheduler, sessions)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		SchedulingHandler: schedulingHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
