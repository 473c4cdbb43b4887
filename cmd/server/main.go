package main

import (
	"os"
	_ "time/tzdata"

	"github.com/dawitk/portfolio-relay/internal/config"
	"github.com/dawitk/portfolio-relay/internal/logging"
	"github.com/dawitk/portfolio-relay/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logConfig := &logging.LogConfig{
		File:       cfg.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
	}

	if err := logging.InitLogger(logConfig); err != nil {
		panic(err)
	}
	logger := logging.GetGlobalLogger()
	defer logger.Close()

	logger.Info("Starting server in %s mode", cfg.Environment)

	if !cfg.RelayConfigured() {
		logger.Warn("Telegram relay credentials not configured; submissions will fail with a configuration error")
	}
	if cfg.CalcomWebhookSecret == "" {
		logger.Warn("No webhook secret configured; signature verification is disabled")
	}

	srv := server.NewServer(cfg)
	if err := srv.Start(); err != nil {
		logger.Error("Server error: %v", err)
		os.Exit(1)
	}
}
