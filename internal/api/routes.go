package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/config"
	"github.com/JustJay7/court-record-ingest/internal/ingest"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

// SetupRoutes configures all application routes
func SetupRoutes(router *gin.Engine, store CaseStore, orchestrator *ingest.Orchestrator, cache cache.Cache, logger *logger.Logger, cfg *config.Config) {
	// Create handlers
	h := NewHandlers(store, orchestrator, cache, logger, cfg)

	// API routes
	api := router.Group("/api")
	{
		// Health check
		api.GET("/health", h.HealthCheck)

		// Ingestion endpoints
		write := api.Group("", limitBody(cfg.MaxPayloadBytes))
		write.POST("/ingest", h.IngestCase)
		write.POST("/ingest/bulk", h.BulkIngestAPI)
		write.POST("/preview", h.PreviewAPI)

		// Case endpoints
		api.GET("/cases", h.ListCasesAPI)
		api.GET("/cases/:cnr", h.GetCaseAPI)
		api.GET("/cases/:cnr/ingestions", h.ListIngestionsAPI)

		// Cache stats
		api.GET("/cache/stats", h.CacheStats)
	}
}

// limitBody caps request bodies at max bytes.
func limitBody(max int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if max > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, max)
		}
		c.Next()
	}
}
