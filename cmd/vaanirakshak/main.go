package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/subuhana2303/vaanirakshak/internal/alert"
	"github.com/subuhana2303/vaanirakshak/internal/api"
	"github.com/subuhana2303/vaanirakshak/internal/assistant"
	"github.com/subuhana2303/vaanirakshak/internal/catalog"
	"github.com/subuhana2303/vaanirakshak/internal/classify"
	"github.com/subuhana2303/vaanirakshak/internal/config"
	"github.com/subuhana2303/vaanirakshak/internal/location"
	"github.com/subuhana2303/vaanirakshak/internal/logging"
	"github.com/subuhana2303/vaanirakshak/internal/mic"
	"github.com/subuhana2303/vaanirakshak/internal/repository"
	"github.com/subuhana2303/vaanirakshak/internal/response"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatalf("Fatal while loading config: %v", err)
	}
	logging.Setup(cfg.Logging.Level)

	slog.Info("VaaniRakshak starting", "host", cfg.Server.Host, "port", cfg.Server.Port)

	// Catalog data; missing or corrupt files fall back to built-in defaults.
	data := catalog.Load(cfg.Data.PhrasesFile, cfg.Data.SheltersFile, cfg.Data.LocationsFile)
	slog.Info("emergency data loaded",
		"categories", len(data.Phrases),
		"shelters", len(data.Shelters),
		"base_city", data.Base.City,
	)

	if err := os.MkdirAll(filepath.Dir(cfg.DB.Path), 0o755); err != nil {
		logging.Fatalf("Failed to create data directory: %v", err)
	}
	db, err := repository.NewSQLiteDB(cfg.DB.Path)
	if err != nil {
		logging.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	locations := location.NewSimulated(data.Base)

	// Alert delivery drains independently of the main context so queued
	// alerts still go out during shutdown.
	sink := alert.NewLogSink(db, cfg.Alerts.Workers, cfg.Alerts.BufferSize)
	sink.Start(context.Background())

	classifier := classify.New(data.Phrases)
	generator := response.NewGenerator(data.Shelters, locations, sink, cfg.Assistant.ShelterLimit)
	broadcaster := assistant.NewBroadcaster()

	var (
		source   assistant.UtteranceSource
		injector api.Injector
	)
	if cfg.Mic.Enabled {
		vm := mic.NewVirtual(cfg.Mic.PhraseInterval)
		source = vm
		injector = vm
	}

	session := assistant.NewSession(
		classifier, generator, locations,
		source, assistant.LogSpeaker{}, broadcaster,
		cfg.Assistant.PollInterval,
	)

	if source != nil {
		if err := session.Start(ctx); err != nil {
			logging.Fatalf("Failed to start listening loop: %v", err)
		}
	} else {
		slog.Warn("no utterance source configured, manual input only")
	}

	// Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false, // Set to false when using wildcard origins
	}))
	router.Use(api.RateLimitMiddleware(5)) // 5 req/s global limit

	handler := api.NewHandler(ctx, session, data.Shelters, locations, db, broadcaster, injector, cfg.Assistant.MaxShelterResults)
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down...")

	cancel()
	session.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Drain queued alerts, then release event subscribers.
	sink.Stop()
	broadcaster.Close()

	slog.Info("shutdown complete")
}
