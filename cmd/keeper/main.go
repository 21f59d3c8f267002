package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/deriverse/drv-smart-contract-common/internal/config"
	"github.com/deriverse/drv-smart-contract-common/internal/keeper"
	"github.com/deriverse/drv-smart-contract-common/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	bootstrapLogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.LoadKeeperConfig()
	if err != nil {
		bootstrapLogger.Error("failed to load config", "err", err)
		return 1
	}

	logger, closeLogger, err := logging.New("keeper", cfg.Log)
	if err != nil {
		bootstrapLogger.Error("failed to initialize logger", "err", err)
		return 1
	}
	defer func() {
		if closeErr := closeLogger(); closeErr != nil {
			bootstrapLogger.Error("failed to close logger", "err", closeErr)
		}
	}()

	if source, sourceErr := config.CurrentConfigSource(); sourceErr == nil {
		logger.Info("configuration loaded", "phase", source.Phase, "path", source.Path, "loaded", source.Loaded)
	}

	for _, job := range cfg.Jobs {
		logger.Info("job configured", "job", job.Name, "instruction", job.Instruction, "interval", job.Interval)
	}

	svc, err := keeper.New(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize keeper service", "err", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := svc.Run(ctx); err != nil {
		logger.Error("keeper exited with error", "err", err)
		return 1
	}
	return 0
}
