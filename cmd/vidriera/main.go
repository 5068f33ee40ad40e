package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/vidriera/internal/config"
	dbRedis "github.com/kailas-cloud/vidriera/internal/db/redis"
	logpkg "github.com/kailas-cloud/vidriera/internal/logger"
	"github.com/kailas-cloud/vidriera/internal/metrics"
	catalogrepo "github.com/kailas-cloud/vidriera/internal/repository/catalog"
	chiTransport "github.com/kailas-cloud/vidriera/internal/transport/chi"
	cataloguc "github.com/kailas-cloud/vidriera/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/vidriera/internal/usecase/health"
	searchuc "github.com/kailas-cloud/vidriera/internal/usecase/search"
	"github.com/kailas-cloud/vidriera/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting vidriera API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("catalog_source", cfg.Catalog.Source),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewRecorder()

	// Catalog source
	var (
		src   catalogrepo.Source
		store *dbRedis.Store
	)
	switch cfg.Catalog.Source {
	case config.SourceRedis:
		store, err = dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Database.Addrs,
			Username: cfg.Database.Username,
			Password: cfg.Database.Password,
		})
		if err != nil {
			logger.Fatal("Failed to create database store", zap.Error(err))
		}
		defer store.Close()

		timeout := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
		if err := store.WaitForReady(ctx, timeout); err != nil {
			logger.Fatal("Database not ready", zap.Error(err))
		}
		logger.Info("Connected to database",
			zap.String("driver", cfg.Database.Driver),
			zap.Strings("addrs", cfg.Database.Addrs),
		)
		src = catalogrepo.NewRedisSource(store, cfg.Catalog.RedisKey)
	default:
		src = catalogrepo.NewFileSource(cfg.Catalog.Path, cfg.Catalog.DetailPath)
	}

	snap := catalogrepo.NewSnapshot(src, recorder)
	if err := snap.Reload(ctx); err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("Catalog loaded", zap.Int("products", snap.Len()))

	if cfg.Catalog.Watch {
		fileSrc, _ := src.(*catalogrepo.FileSource)
		debounce := time.Duration(cfg.Catalog.DebounceMs) * time.Millisecond
		watcher, err := catalogrepo.NewWatcher(snap, fileSrc.Paths(), debounce, logger.Named("catalog"))
		if err != nil {
			logger.Fatal("Failed to watch catalog", zap.Error(err))
		}
		defer func() { _ = watcher.Stop() }()
		go watcher.Run(ctx)
		logger.Info("Watching catalog for changes", zap.Strings("paths", fileSrc.Paths()))
	}

	// Use cases
	engine := searchuc.NewEngine(searchuc.NewDetector())
	searchSvc := searchuc.New(snap, engine, recorder, cfg.Search.MaxLimit)
	browser := cataloguc.NewBrowser(snap)

	// Pass nil interface (not typed nil pointer!) when there is no database.
	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(snap, pinger)

	server := chiTransport.NewServer(searchSvc, browser, healthSvc, cfg.Search.DefaultLimit, logger)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      chiTransport.NewRouter(server),
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}
