package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"partflow/internal/adapters/eventbroker/nats"
	"partflow/internal/adapters/handlers/http/chi"
	uploadhandler "partflow/internal/adapters/handlers/http/chi/v1/upload"
	"partflow/internal/adapters/idgen"
	"partflow/internal/adapters/repository/postgres"
	"partflow/internal/adapters/storage/minio"
	"partflow/internal/config"
	"partflow/internal/core/port"
	"partflow/internal/core/service/reaper"
	"partflow/internal/core/service/upload"
	"sync"
	"syscall"
	"time"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//events
	publisher, err := nats.NewNATSPublisher(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats publisher", "error", err)
		os.Exit(1)
	}
	defer publisher.Close()

	unitOfWork := postgres.NewUnitOfWork(db)
	ids := idgen.NewAllocator()

	uploadService := upload.NewUploadService(unitOfWork, minioAdapter, ids, publisher, cfg.Upload, logger)
	reaperService := reaper.NewReaperService(unitOfWork, minioAdapter, publisher, logger)

	//http
	uploadHandler := uploadhandler.NewUploadHandlerV1(uploadService, logger)

	router := chi.NewRouter(logger, uploadHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init reaper task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initReaperTask(ctx, reaperService, cfg.Upload, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initReaperTask(ctx context.Context, service port.ReaperService, cfg config.UploadConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.ReapEvery)
	defer ticker.Stop()

	logger.Info("reaper task initialized", "interval", cfg.ReapEvery, "reap_after", cfg.ReapAfter)

	for {
		select {
		case <-ticker.C:
			logger.Info("reaper task starting")
			err := service.ReapStaleSessions(ctx, time.Now().Add(-cfg.ReapAfter))
			if err != nil {
				logger.Error("failed to reap stale sessions", "error", err)
			} else {
				logger.Info("reaper task completed successfully")
			}
		case <-ctx.Done():
			logger.Info("reaper task stopped")
			return
		}
	}

}
