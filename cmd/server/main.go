package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/festivepros/inquiry/internal/config"
	"github.com/festivepros/inquiry/internal/handler"
	"github.com/festivepros/inquiry/internal/handoff"
	"github.com/festivepros/inquiry/internal/logger"
	"github.com/festivepros/inquiry/internal/mail"
	"github.com/festivepros/inquiry/internal/middleware"
	"github.com/festivepros/inquiry/internal/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Format)
	log.Info().Str("version", "0.1.0").Msg("starting inquiry server")

	// Connect to the hand-off store
	store, err := handoff.NewRedisStore(cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to hand-off store")
	}
	defer store.Close()
	log.Info().Str("addr", cfg.Redis.Addr()).Msg("connected to hand-off store")

	// Initialize the mail-sending capability
	sender, err := newSender(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize mail sender")
	}
	log.Info().Str("provider", cfg.Mail.Provider).Msg("mail sender initialized")

	// Initialize handlers and middleware
	h := handler.New(sender, store, log, cfg)
	mw := middleware.New(log)

	// Set up router
	r := router.New(h, mw)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", cfg.Server.Addr()).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// newSender builds the configured mail provider.
func newSender(cfg *config.Config, log *logger.Logger) (mail.Sender, error) {
	switch cfg.Mail.Provider {
	case "smtp", "":
		return mail.NewSMTPSender(cfg.Mail.SMTP), nil
	case "gmail":
		ctx := context.Background()
		if cfg.Mail.Gmail.CredentialsJSON != "" {
			return mail.NewGmailSender(ctx, cfg.Mail.Gmail, cfg.Inquiry.From)
		}
		return mail.NewGmailSenderWithToken(ctx, cfg.Mail.Gmail, cfg.Inquiry.From)
	case "log":
		return mail.NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Mail.Provider)
	}
}
