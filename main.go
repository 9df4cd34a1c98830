package main

import (
	"context"
	"net/http"
	"os"
	"time"

	handler "github.com/felipemarinho97/nyaa-indexer/api"
	"github.com/felipemarinho97/nyaa-indexer/category"
	"github.com/felipemarinho97/nyaa-indexer/client"
	"github.com/felipemarinho97/nyaa-indexer/config"
	"github.com/felipemarinho97/nyaa-indexer/logging"
	"github.com/felipemarinho97/nyaa-indexer/monitoring"
	"github.com/felipemarinho97/nyaa-indexer/requester"
	"github.com/felipemarinho97/nyaa-indexer/store"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	logging.InitLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	seen := store.NewRedis(cfg.Redis.Addr(), cfg.Redis.SeenTTL.Duration)
	defer seen.Close()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := seen.Ping(ctx); err != nil {
		logging.Warn().Err(err).Str("addr", cfg.Redis.Addr()).Msg("Redis unavailable, new_only will not filter")
	}
	cancel()

	metrics := monitoring.NewMetrics()
	metrics.Register()

	req := requester.NewRequester(cfg.HTTP.Timeout.Duration)
	indexers := handler.NewIndexer(
		client.New[category.Nyaa](cfg.Sites.NyaaURL, req),
		client.New[category.Sukebei](cfg.Sites.SukebeiURL, req),
		seen,
		metrics,
	)

	indexerMux := http.NewServeMux()
	metricsMux := http.NewServeMux()

	indexerMux.HandleFunc("/", indexers.HandlerIndex)
	indexerMux.HandleFunc("/indexers/nyaa", indexers.HandlerNyaaIndexer)
	indexerMux.HandleFunc("/indexers/sukebei", indexers.HandlerSukebeiIndexer)

	metricsMux.Handle("/metrics", promhttp.Handler())

	go func() {
		logging.Info().Str("addr", cfg.Server.MetricsAddr).Msg("Metrics server listening")
		err := http.ListenAndServe(cfg.Server.MetricsAddr, metricsMux)
		if err != nil {
			logging.Fatal().Err(err).Msg("Metrics server failed")
		}
	}()

	logging.Info().
		Str("addr", cfg.Server.Addr).
		Str("nyaa", cfg.Sites.NyaaURL).
		Str("sukebei", cfg.Sites.SukebeiURL).
		Msg("Indexer server listening")
	err = http.ListenAndServe(cfg.Server.Addr, logging.HTTPLoggingMiddleware(indexerMux))
	if err != nil {
		logging.Fatal().Err(err).Msg("Indexer server failed")
	}
}
