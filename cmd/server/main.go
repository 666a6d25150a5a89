package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"prepmate/internal/analytics"
	"prepmate/internal/audit"
	"prepmate/internal/config"
	"prepmate/internal/dashboard"
	"prepmate/internal/evaluator"
	_ "prepmate/internal/evaluator/gemini"
	_ "prepmate/internal/evaluator/mock"
	"prepmate/internal/handlers"
	"prepmate/internal/jobs"
	"prepmate/internal/metrics"
	"prepmate/internal/profile"
	"prepmate/internal/questions"
	"prepmate/internal/routers"
	"prepmate/internal/session"
	"prepmate/internal/store"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	logger.Info("Configuration loaded",
		zap.String("provider", cfg.Provider),
		zap.String("redis_addr", cfg.RedisAddr))

	catalog, err := questions.NewCatalog()
	if err != nil {
		logger.Fatal("Failed to load question catalog", zap.Error(err))
	}

	provider, err := evaluator.NewProvider(cfg.Provider)
	if err != nil {
		logger.Fatal("Failed to initialize evaluator provider", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})
	st := store.NewRedisStore(rdb)

	manager := session.NewManager(st, catalog, provider, logger)

	// evaluation audit trail, optional
	var exporterJob *jobs.AuditExporterJob
	if cfg.AuditEnabled {
		db, err := audit.Open(cfg.AuditDriver, cfg.AuditDSN)
		if err != nil {
			logger.Error("Failed to open audit database, audit trail disabled", zap.Error(err))
		} else {
			recorder := audit.NewRecorder(db, provider.GetProviderName(), logger)
			manager.SetAuditRecorder(recorder)

			exporterJob = jobs.NewAuditExporterJob(recorder, &jobs.ExporterConfig{
				Schedule:  cfg.ExportSchedule,
				ExportDir: cfg.ExportDir,
				Enabled:   cfg.ExportEnabled,
			}, logger)
			if err := exporterJob.Start(); err != nil {
				logger.Error("Failed to start audit exporter", zap.Error(err))
			}
		}
	}

	refresher := dashboard.NewRefresher(dashboard.NewService(), cfg.DashboardRefreshInterval, logger)
	refresher.Start(context.Background())

	router := chi.NewRouter()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(chimiddleware.RequestID, chimiddleware.RealIP, chimiddleware.Logger, chimiddleware.Recoverer, chimiddleware.Timeout(60*time.Second))
	router.Use(metrics.Middleware)

	routers.Routes(router, &routers.Handlers{
		Sessions:    handlers.NewSessionHandler(manager, st),
		Questions:   handlers.NewQuestionHandler(catalog),
		Transcripts: handlers.NewTranscriptHandler(st),
		Dashboard:   handlers.NewDashboardHandler(refresher),
		Profile:     handlers.NewProfileHandler(profile.NewService(st)),
		Analytics:   handlers.NewAnalyticsHandler(analytics.NewService(st)),
		Health:      handlers.NewHealthHandler(rdb),
	})
	router.Handle("/metrics", metrics.Handler())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	refresher.Stop()
	if exporterJob != nil {
		exporterJob.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := rdb.Close(); err != nil {
		logger.Error("Failed to close redis client", zap.Error(err))
	}

	logger.Info("Server stopped")
}
