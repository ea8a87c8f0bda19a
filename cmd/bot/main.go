package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/app"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/config"
	"github.com/XiangLun0713/weatherwhiz-telegram-bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("app init failed", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatal("app run failed", zap.Error(err))
	}
}
