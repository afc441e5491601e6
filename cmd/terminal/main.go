package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"qr-register/config"
	httpHandler "qr-register/internal/adapter/http/handler"
	"qr-register/internal/adapter/scanner"
	"qr-register/internal/adapter/sched"
	"qr-register/internal/adapter/view"
	"qr-register/internal/core/ports"
	"qr-register/internal/service"
	"qr-register/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting QR Register")

	// Display layer: local hub, plus a remote customer display when configured
	hub := view.NewHub(log)
	var sink ports.ViewSink = hub
	if cfg.Display.URL != "" {
		remote := view.NewRemoteDisplay(cfg.Display.URL, cfg.Display.Timeout, log)
		sink = view.NewFanout(hub, remote)
		log.Info().Str("url", cfg.Display.URL).Msg("remote display attached")
	}

	clock := sched.New()

	// Transaction core
	registerSvc := service.NewRegisterService(sink, hub, clock, log)

	// Scanner device and session controller
	decoder := scanner.NewSerialDecoder(ports.DecoderConfig{
		Port: cfg.Scanner.Port,
		Baud: cfg.Scanner.Baud,
	}, log)
	sessionSvc := service.NewSessionService(decoder, registerSvc, hub, clock, log)

	if !decoder.Available() {
		log.Warn().Str("port", cfg.Scanner.Port).Msg("scanner device not present at startup")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		RegisterSvc:    registerSvc,
		Hub:            hub,
		HealthCheckers: []ports.HealthChecker{decoder},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down terminal...")

	sessionSvc.StopScan()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Terminal exited")
}
