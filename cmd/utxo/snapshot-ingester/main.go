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

	"github.com/goodnatureofminers/utxoset7000-backend/internal/clock"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/metrics"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/model"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/repository/clickhouse"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/service/ingester"
	"github.com/goodnatureofminers/utxoset7000-backend/internal/utxo/snapshot"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

type config struct {
	ClickhouseDSN  string        `long:"clickhouse-dsn" env:"UTXO_SNAPSHOT_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	Coin           model.Coin    `long:"coin" env:"UTXO_SNAPSHOT_COIN" description:"coin name" default:"btc"`
	Network        model.Network `long:"network" env:"UTXO_SNAPSHOT_NETWORK" description:"network for address encoding; empty auto-detects from the snapshot"`
	NoAddresses    bool          `long:"no-addresses" env:"UTXO_SNAPSHOT_NO_ADDRESSES" description:"skip address computation"`
	MetricsAddr    string        `long:"metrics-addr" env:"UTXO_SNAPSHOT_METRICS_ADDR" description:"address for metrics server" default:":2112"`
	ConnectRetries int           `long:"connect-retries" env:"UTXO_SNAPSHOT_CONNECT_RETRIES" default:"5" description:"ClickHouse ping attempts before giving up"`
	Args           struct {
		Files []string `positional-arg-name:"FILE" required:"1" description:"snapshot files to ingest"`
	} `positional-args:"true"`
}

const (
	pingTimeout    = 10 * time.Second
	pingRetryDelay = 3 * time.Second
)

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if cfg.ClickhouseDSN == "" {
		logger.Fatal("ClickHouse DSN is required")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("utxo snapshot ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if cerr := repo.Close(); cerr != nil {
			logger.Warn("close repository failed", zap.Error(cerr))
		}
	}()

	if err := waitForClickhouse(ctx, repo, cfg.ConnectRetries, logger); err != nil {
		return err
	}

	addrs := snapshot.AutoDetectAddresses()
	switch {
	case cfg.NoAddresses:
		addrs = snapshot.NoAddresses()
	case cfg.Network != "":
		addrs = snapshot.AddressesFor(cfg.Network)
	}

	svc, err := ingester.NewSnapshotIngesterService(
		repo,
		ingester.NewDumpOpener(addrs, logger.Named("snapshot")),
		metrics.NewSnapshotIngester(cfg.Coin, cfg.Network),
		cfg.Coin,
		logger,
	)
	if err != nil {
		return err
	}
	return svc.Run(ctx, cfg.Args.Files)
}

func waitForClickhouse(ctx context.Context, repo *clickhouse.Repository, retries int, logger *zap.Logger) error {
	var pingErr error
	for attempt := 1; attempt <= retries; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		pingErr = repo.Ping(pingCtx)
		cancel()
		if pingErr == nil {
			return nil
		}
		logger.Warn("clickhouse ping failed",
			zap.Int("attempt", attempt),
			zap.Int("retries", retries),
			zap.Error(pingErr))
		if err := clock.SleepWithContext(ctx, pingRetryDelay); err != nil {
			return err
		}
	}
	return fmt.Errorf("clickhouse unreachable: %w", pingErr)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
