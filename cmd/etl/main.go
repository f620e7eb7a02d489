package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/argo-acoustics/argo"
	"github.com/couchcryptid/argo-acoustics/internal/adapter/erddap"
	httpadapter "github.com/couchcryptid/argo-acoustics/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/argo-acoustics/internal/adapter/kafka"
	"github.com/couchcryptid/argo-acoustics/internal/config"
	"github.com/couchcryptid/argo-acoustics/internal/observability"
	"github.com/couchcryptid/argo-acoustics/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := erddap.NewClient(cfg.ERDDAPBaseURL, cfg.ERDDAPDataset, cfg.ERDDAPTimeout, metrics, logger)
	writer := kafkaadapter.NewWriter(cfg, logger)
	transformer := pipeline.NewTransformer("erddap", logger)

	p := pipeline.New(client, transformer, writer, logger, metrics, pipeline.Options{
		Region: argo.BoundingBox{
			MinLon: cfg.RegionMinLon,
			MaxLon: cfg.RegionMaxLon,
			MinLat: cfg.RegionMinLat,
			MaxLat: cfg.RegionMaxLat,
		},
		MinPressure: cfg.MinPressure,
		MaxPressure: cfg.MaxPressure,
		Lookback:    cfg.Lookback,
		Interval:    cfg.FetchInterval,
	})

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting argo acoustics etl",
		"erddap", cfg.ERDDAPBaseURL,
		"dataset", cfg.ERDDAPDataset,
		"sink_topic", cfg.KafkaSinkTopic,
		"fetch_interval", cfg.FetchInterval,
	)

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start ETL pipeline.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := writer.Close(); err != nil {
		logger.Error("kafka writer close error", "error", err)
	}

	logger.Info("shutdown complete")
}
