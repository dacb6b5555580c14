package handler

import (
	"fare-terminal/internal/adapter/http/middleware"
	"fare-terminal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	StatusSvc      ports.StatusService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 10))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	statusHandler := NewStatusHandler(deps.StatusSvc)
	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", statusHandler.GetStatus)
		v1.GET("/counters", statusHandler.GetCounters)
		v1.GET("/counters/:issuer", statusHandler.GetIssuerCounters)
		v1.GET("/transactions", statusHandler.ListTransactions)
	}

	return r
}
