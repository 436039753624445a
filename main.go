package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sljivkov/oraclefeeder/apis"
	"github.com/sljivkov/oraclefeeder/chains"
	"github.com/sljivkov/oraclefeeder/config"
	"github.com/sljivkov/oraclefeeder/handler"
	"github.com/sljivkov/oraclefeeder/updater"
)

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	cfg := zap.NewProductionConfig()
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}

	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	return cfg.Build()
}

func main() {
	cfg, err := config.NewConfig(config.WithEnvFile(".env"))
	if err != nil {
		// logger is not up yet
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	log, err := newLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		zap.NewExample().Fatal("failed to build logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("=== Oracle Price Feeder ===",
		zap.String("network", cfg.Network),
		zap.Duration("interval", cfg.UpdateInterval),
		zap.String("price_api", cfg.PriceAPIURL),
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	handler.Serve(ctx, cfg.MetricsAddr, reg, log)

	evm, client, err := newChain(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to set up chain client", zap.Error(err))
	}
	defer client.Close()

	chains.Preflight(ctx, evm, cfg.Tokens, log)

	gecko := apis.NewCoinGecko(cfg.PriceAPIURL,
		apis.WithAPIKey(cfg.PriceAPIKey, cfg.PriceAPIPro),
		apis.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		apis.WithLogger(log.Named("coingecko")),
	)

	u := updater.New(gecko, evm, cfg.Tokens,
		updater.WithInterval(cfg.UpdateInterval),
		updater.WithLogger(log.Named("updater")),
		updater.WithMetrics(updater.NewMetrics(reg)),
	)

	u.Run(ctx)

	log.Info("👋 oracle feeder stopped")
}
