// Package main is the entry point for the storefront console
// application.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yanexstore/storefront/internal/app"
	"github.com/yanexstore/storefront/internal/config"
	"github.com/yanexstore/storefront/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Use a basic logger for startup errors
		basicLogger, _ := zap.NewProduction()
		basicLogger.Fatal("failed to load configuration", zap.Error(err))
	}

	// The console owns stdout, so the structured log goes to a file.
	logger, err := initLogger(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		basicLogger, _ := zap.NewProduction()
		basicLogger.Fatal("failed to initialize logger", zap.Error(err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.String("catalog_path", cfg.CatalogPath),
		zap.String("receipt_path", cfg.ReceiptPath),
		zap.Int("history_limit", cfg.HistoryLimit),
		zap.Int("payment_attempts", cfg.PaymentAttempts),
		zap.Bool("random_suggestion", cfg.RandomSuggestion),
		zap.String("log_level", cfg.LogLevel),
	)

	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	catalog := store.NewFileStore(cfg.CatalogPath)
	storefront := app.New(cfg, logger, catalog, os.Stdin, os.Stdout)

	if err := storefront.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Info("session interrupted")
			return 0
		}
		logger.Error("session error", zap.Error(err))
		return 1
	}

	logger.Info("storefront stopped")
	return 0
}

// initLogger initializes a zap logger with the specified log level,
// writing to the given file path.
func initLogger(level, path string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	zapConfig := zap.Config{
		Level:       zap.NewAtomicLevelAt(zapLevel),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "timestamp",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{"stderr"},
	}

	return zapConfig.Build()
}
