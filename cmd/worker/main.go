package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/Librity/gympoint-back-end/config"
	"github.com/Librity/gympoint-back-end/internal/infra/mailer"
	"github.com/Librity/gympoint-back-end/internal/infra/queue"
	"github.com/Librity/gympoint-back-end/internal/worker"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	config.LoadEnv()

	logger := newLogger(config.APP_ENV)
	defer logger.Sync()

	q, err := queue.NewRedis(config.REDIS_URL)
	if err != nil {
		log.Fatal("❌ Failed to connect to Redis:", err)
	}
	defer q.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w := worker.New(q, mailer.Send, logger)
	if err := w.Run(ctx); err != nil {
		logger.Sugar().Fatalw("Worker stopped", "error", err)
	}
}

func newLogger(env string) *zap.Logger {
	var cfg zap.Config
	if env == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stdout"}

	logger, err := cfg.Build()
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	return logger
}
