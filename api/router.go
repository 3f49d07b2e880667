package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/theOrangeShi/seo-analazing/analyzer"
	"github.com/theOrangeShi/seo-analazing/api/handler"
	"github.com/theOrangeShi/seo-analazing/api/middleware"
	"github.com/theOrangeShi/seo-analazing/cache"
	"github.com/theOrangeShi/seo-analazing/config"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health and the metric catalog sit outside auth so monitoring probes and
// UI bootstrapping always work.
func NewRouter(an *analyzer.Analyzer, cfg *config.Config, cc *cache.Cache, startTime time.Time, version string) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	v1.GET("/health", handler.Health(startTime, version))
	v1.GET("/metrics", handler.Metrics())

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	protected.POST("/analyze", handler.Analyze(an, cc))
	protected.POST("/analyze/stream", handler.AnalyzeStream(an))

	return r
}
