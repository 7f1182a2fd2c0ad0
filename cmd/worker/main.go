package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"github.com/rsaisankalp/ashram-assert/internal/database"
	"github.com/rsaisankalp/ashram-assert/internal/repository/gormrepo"
	"github.com/rsaisankalp/ashram-assert/internal/tasks"
	"github.com/rsaisankalp/ashram-assert/pkg/config"
	"github.com/rsaisankalp/ashram-assert/pkg/queue"
	"github.com/rsaisankalp/ashram-assert/pkg/util"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := util.NewLogger(cfg.Server.Env, "worker")
	slog.SetDefault(logger)

	logger.Info("starting asset worker")

	for _, expr := range []string{cfg.Retention.SweepSchedule, cfg.Retention.ReminderSchedule} {
		if err := util.ValidateCronExpr(expr); err != nil {
			logger.Error("invalid cron schedule", "expr", expr, "error", err)
			os.Exit(1)
		}
	}

	db, err := database.Connect(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	srv := queue.NewServer(&cfg.Redis, 10)

	handler := tasks.NewHandler(gormrepo.NewAssetRepository(db), logger)
	mux := asynq.NewServeMux()
	handler.RegisterHandlers(mux)

	// Periodic entries. The scheduler enqueues, the server consumes.
	scheduler := queue.NewScheduler(&cfg.Redis)

	sweepTask, err := tasks.NewRetentionSweepTask(tasks.RetentionSweepPayload{
		RetentionDays: cfg.Retention.Days,
	})
	if err != nil {
		logger.Error("failed to build retention sweep task", "error", err)
		os.Exit(1)
	}
	if _, err := scheduler.Register(cfg.Retention.SweepSchedule, sweepTask); err != nil {
		logger.Error("failed to register retention sweep", "error", err)
		os.Exit(1)
	}

	scanTask, err := tasks.NewReminderScanTask(tasks.ReminderScanPayload{
		WindowDays: cfg.Retention.ReminderWindowDays,
	})
	if err != nil {
		logger.Error("failed to build reminder scan task", "error", err)
		os.Exit(1)
	}
	if _, err := scheduler.Register(cfg.Retention.ReminderSchedule, scanTask); err != nil {
		logger.Error("failed to register reminder scan", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info("shutting down worker...")
		scheduler.Shutdown()
		srv.Shutdown()
		cancel()
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			logger.Error("scheduler error", "error", err)
		}
	}()

	logger.Info("worker started, waiting for tasks...",
		"sweep_schedule", cfg.Retention.SweepSchedule,
		"reminder_schedule", cfg.Retention.ReminderSchedule,
	)

	if err := srv.Run(mux); err != nil {
		logger.Error("worker error", "error", err)
	}

	<-ctx.Done()

	sqlDB, _ := db.DB()
	sqlDB.Close()

	logger.Info("worker stopped")
}
