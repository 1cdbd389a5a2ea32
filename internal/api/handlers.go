package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/config"
	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/ingest"
	"github.com/JustJay7/court-record-ingest/internal/mapper"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

// TenantHeader selects the tenant a request reads or writes.
const TenantHeader = "X-Tenant-ID"

// CaseStore is the read side of the case record store.
type CaseStore interface {
	FindCase(ctx context.Context, tenantID, cnr string) (*database.Case, error)
	ListCases(ctx context.Context, tenantID string, page, limit int) ([]database.Case, int64, error)
	ListIngestions(ctx context.Context, tenantID, cnr string, limit int) ([]database.IngestionLog, error)
	Ping(ctx context.Context) error
}

// Handlers holds all HTTP handlers
type Handlers struct {
	store  CaseStore
	ingest *ingest.Orchestrator
	cache  cache.Cache
	logger *logger.Logger
	cfg    *config.Config
}

// NewHandlers creates a new handlers instance
func NewHandlers(store CaseStore, orchestrator *ingest.Orchestrator, cache cache.Cache, logger *logger.Logger, cfg *config.Config) *Handlers {
	return &Handlers{
		store:  store,
		ingest: orchestrator,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
}

type ingestRequest struct {
	CNR     string          `json:"cnr"`
	Kind    string          `json:"kind" binding:"required"`
	Payload json.RawMessage `json:"payload" binding:"required"`
}

func (r ingestRequest) toRequest(tenant string) ingest.Request {
	return ingest.Request{Tenant: tenant, CNR: r.CNR, Kind: r.Kind, Payload: r.Payload}
}

// IngestCase maps and persists one provider payload
func (h *Handlers) IngestCase(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	report, err := h.ingest.Ingest(c.Request.Context(), req.toRequest(h.tenant(c)))
	if err != nil {
		c.JSON(statusFor(err), gin.H{
			"success": false,
			"status":  report.Outcome,
			"error":   err.Error(),
			"report":  report,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"status":  report.Outcome,
		"report":  report,
	})
}

// BulkIngestAPI ingests independent cases concurrently
func (h *Handlers) BulkIngestAPI(c *gin.Context) {
	var req struct {
		Requests []ingestRequest `json:"requests" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	if len(req.Requests) > h.cfg.BatchMaxSize {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "too many requests in batch, maximum is " + strconv.Itoa(h.cfg.BatchMaxSize),
		})
		return
	}

	tenant := h.tenant(c)
	reqs := make([]ingest.Request, len(req.Requests))
	for i, r := range req.Requests {
		reqs[i] = r.toRequest(tenant)
	}

	results := h.ingest.IngestBatch(c.Request.Context(), reqs)

	responseData := make([]gin.H, 0, len(results))
	for _, result := range results {
		data := gin.H{
			"index":  result.Index,
			"report": result.Report,
		}
		if result.Report != nil {
			data["status"] = result.Report.Outcome
		}

		if result.Err != nil {
			data["success"] = false
			data["error"] = result.Err.Error()
		} else {
			data["success"] = true
		}

		responseData = append(responseData, data)
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"results": responseData,
	})
}

// PreviewAPI maps a payload without persisting it
func (h *Handlers) PreviewAPI(c *gin.Context) {
	var req ingestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	result, err := h.ingest.Preview(req.toRequest(h.tenant(c)))
	if err != nil {
		body := gin.H{"success": false, "error": err.Error()}
		if errors.Is(err, mapper.ErrNoData) {
			body["status"] = database.OutcomeNoData
		}
		c.JSON(statusFor(err), body)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"counts":  result.Counts(),
	})
}

// GetCaseAPI returns one case with every collection, through the cache
func (h *Handlers) GetCaseAPI(c *gin.Context) {
	tenant := h.tenant(c)
	cnr := strings.TrimSpace(c.Param("cnr"))

	cacheKey := cache.CaseKey(tenant, cnr)
	if cachedCase, found := h.cache.Get(cacheKey); found {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"data":      cachedCase,
			"fromCache": true,
		})
		return
	}

	generation := h.cache.Generation()
	record, err := h.store.FindCase(c.Request.Context(), tenant, cnr)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Case not found",
		})
		return
	}
	if err != nil {
		h.logger.Error("Failed to load case", "cnr", cnr, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.cache.SetIfCurrent(cacheKey, record, generation)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"data":      record,
		"fromCache": false,
	})
}

// ListCasesAPI returns one page of the tenant's cases
func (h *Handlers) ListCasesAPI(c *gin.Context) {
	page := queryInt(c, "page", 1, 1, 0)
	limit := queryInt(c, "limit", 10, 1, 100)

	cases, total, err := h.store.ListCases(c.Request.Context(), h.tenant(c), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    cases,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// ListIngestionsAPI returns the ingestion history of one case
func (h *Handlers) ListIngestionsAPI(c *gin.Context) {
	limit := queryInt(c, "limit", 20, 1, 200)

	logs, err := h.store.ListIngestions(c.Request.Context(), h.tenant(c), c.Param("cnr"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    logs,
	})
}

// HealthCheck returns the health status
func (h *Handlers) HealthCheck(c *gin.Context) {
	dbHealthy := h.store.Ping(c.Request.Context()) == nil

	code, status := http.StatusOK, "healthy"
	if !dbHealthy {
		code, status = http.StatusServiceUnavailable, "degraded"
	}

	c.JSON(code, gin.H{
		"status":   status,
		"database": dbHealthy,
		"cache":    h.cache.Stats(),
		"time":     time.Now().Unix(),
	})
}

// CacheStats returns cache statistics
func (h *Handlers) CacheStats(c *gin.Context) {
	stats := h.cache.Stats()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

// Helper functions

func (h *Handlers) tenant(c *gin.Context) string {
	if t := strings.TrimSpace(c.GetHeader(TenantHeader)); t != "" {
		return t
	}
	return h.cfg.DefaultTenant
}

func (h *Handlers) bindError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		status = http.StatusRequestEntityTooLarge
	}
	c.JSON(status, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, mapper.ErrNoData):
		return http.StatusNotFound
	case errors.Is(err, mapper.ErrMalformedPayload),
		errors.Is(err, mapper.ErrUnknownKind),
		errors.Is(err, ingest.ErrMissingCNR):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// queryInt reads an integer query parameter clamped to [lo, hi]. A hi of 0
// means unbounded.
func queryInt(c *gin.Context, key string, def, lo, hi int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return def
	}
	if v < lo {
		v = lo
	}
	if hi > 0 && v > hi {
		v = hi
	}
	return v
}
