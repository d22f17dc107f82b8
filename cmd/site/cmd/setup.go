package cmd

import (
	"log/slog"

	"github.com/jakechampion/site/internal/app"
	"github.com/jakechampion/site/internal/config"
	"github.com/jakechampion/site/internal/logger"
)

// setup loads config, applies flag overrides and wires the app.
func setup(overrides ...func(cfg *config.Config)) *app.App {
	cfg := config.Load()
	for _, override := range overrides {
		override(cfg)
	}
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	return app.New(cfg)
}

// Fail logs a command error through the configured logger so it also reaches Sentry.
func Fail(err error) {
	slog.Error("command failed", "error", err)
}
