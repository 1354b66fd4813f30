package main

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"spanischmitbelu.com/gamification/internal/config"
	"spanischmitbelu.com/gamification/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Failed to load config", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "gamification",
	})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}
	if cfg.IsProduction() {
		logger.SetFormatter(log.JSONFormatter)
	}
	log.SetDefault(logger)

	srv := server.NewServer(cfg, logger, time.Now())

	if err := server.Run(context.Background(), srv.HTTPServer(), logger); err != nil {
		logger.Fatal("❌ Server exited with error", "err", err)
	}
	logger.Info("👋 Server stopped")
}
