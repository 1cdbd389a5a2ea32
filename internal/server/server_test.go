package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/config"
	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/ingest"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()

	db, err := database.Initialize(":memory:")
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	log := logger.New(zap.New(core))

	cfg := &config.Config{LogLevel: "info", DefaultTenant: "default", BatchMaxSize: 5, WorkerPoolSize: 1}
	c := cache.NewCache(10, time.Minute)
	store := database.NewStore(db)
	orchestrator := ingest.New(store, nil, c, log, ingest.Config{DefaultTenant: cfg.DefaultTenant, Workers: 1})

	return New(cfg, store, orchestrator, c, log), logs
}

func TestRequestsAreLogged(t *testing.T) {
	srv, logs := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Tenant-ID", "acme")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/health", fields["path"])
	assert.Equal(t, "acme", fields["tenant_id"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/ingest", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-Tenant-ID")
}
