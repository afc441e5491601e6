package handler

import (
	"qr-register/internal/adapter/http/middleware"
	"qr-register/internal/adapter/view"
	"qr-register/internal/core/ports"
	"qr-register/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	RegisterSvc    ports.RegisterService
	Hub            *view.Hub
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 16)) // 64 KB; operator requests are tiny
	r.Use(metrics.Middleware())

	// Health check (verifies the scanner device)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := r.Group("/api/v1")

	sessionHandler := NewSessionHandler(deps.SessionSvc)
	session := v1.Group("/session")
	{
		session.POST("/start", sessionHandler.StartScan)
		session.POST("/stop", sessionHandler.StopScan)
		session.PUT("/scanner", sessionHandler.Rebind)
	}

	registerHandler := NewRegisterHandler(deps.RegisterSvc)
	v1.GET("/state", registerHandler.GetState)
	v1.DELETE("/cart/lines/:id", registerHandler.RemoveLine)

	eventsHandler := NewEventsHandler(deps.Hub)
	v1.GET("/events", eventsHandler.Stream)

	return r
}
