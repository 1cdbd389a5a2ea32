package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/JustJay7/court-record-ingest/internal/cache"
	"github.com/JustJay7/court-record-ingest/internal/config"
	"github.com/JustJay7/court-record-ingest/internal/database"
	"github.com/JustJay7/court-record-ingest/internal/ingest"
	"github.com/JustJay7/court-record-ingest/internal/mapper"
	"github.com/JustJay7/court-record-ingest/internal/server"
	"github.com/JustJay7/court-record-ingest/pkg/logger"
)

func main() {
	var migrate bool
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	if migrate {
		if err := database.Migrate(db); err != nil {
			log.Fatal("Failed to run migrations", "error", err)
		}
		log.Info("Database migrations completed successfully")
		return
	}

	cacheService := cache.NewCache(cfg.CacheSize, cfg.CacheTTL)
	store := database.NewStore(db)
	orchestrator := ingest.New(store, mapper.New(log), cacheService, log, ingest.Config{
		DefaultTenant: cfg.DefaultTenant,
		Timeout:       cfg.IngestTimeout,
		Workers:       cfg.WorkerPoolSize,
	})

	srv := server.New(cfg, store, orchestrator, cacheService, log)

	log.Info("Starting court record ingest",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.DatabasePath,
		"workers", cfg.WorkerPoolSize,
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed to start", "error", err)
	}
}
