package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	httpadapter "github.com/couchcryptid/route-grade-etl/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/route-grade-etl/internal/adapter/kafka"
	"github.com/couchcryptid/route-grade-etl/internal/config"
	"github.com/couchcryptid/route-grade-etl/internal/domain"
	"github.com/couchcryptid/route-grade-etl/internal/grade"
	"github.com/couchcryptid/route-grade-etl/internal/observability"
	"github.com/couchcryptid/route-grade-etl/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	engine := grade.NewEngine(nil)

	// Grade cache is feature-flagged via GRADE_CACHE_ENABLED / GRADE_CACHE_SIZE.
	var classifier domain.GradeClassifier = engine
	if cfg.GradeCacheEnabled {
		classifier = pipeline.NewCachedClassifier(engine, cfg.GradeCacheSize, metrics)
		metrics.GradeCacheEnabled.Set(1)
		logger.Info("grade cache enabled", "cache_size", cfg.GradeCacheSize)
	} else {
		logger.Info("grade cache disabled")
	}

	reader := kafkaadapter.NewReader(cfg, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer(classifier, logger, metrics)

	p := pipeline.New(reader, transformer, writer, logger, metrics, cfg.BatchSize)

	srv := httpadapter.NewServer(cfg, p, engine, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		return p.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("http server shutdown error", "error", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("service error", "error", err)
	}

	if err := reader.Close(); err != nil {
		logger.Error("kafka reader close error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
