package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	alertUseCase "github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/alert"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/config"
)

func main() {
	once := flag.Bool("once", false, "run a single alert pass and exit")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := bootstrap.ValidateDatabaseConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger := logger.NewZapLogger(logger.Options{
		Production: cfg.Environment == config.Production,
		Level:      cfg.Logger.Level,
		Output:     cfg.Logger.Output,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager, err := bootstrap.OpenDatabase(ctx, cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to prepare database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	location, err := cfg.Alert.Location()
	if err != nil {
		appLogger.Error("Invalid alert timezone", map[string]any{
			"timezone": cfg.Alert.Timezone,
			"error":    err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	if !*once {
		scheduler, closeNotifier, err := bootstrap.NewAlertScheduler(cfg, uow, dbManager.DB(), location, appLogger, tp)
		if err != nil {
			appLogger.Error("Failed to prepare budget alerts", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		defer closeNotifier()

		scheduler.Run(ctx)
		appLogger.Info("Alert worker stopped", nil)
		return
	}

	evaluatorCfg, err := bootstrap.EvaluatorConfig(cfg.Alert, location)
	if err != nil {
		appLogger.Error("Invalid alert configuration", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	notifier, closeNotifier, err := bootstrap.NewNotifier(cfg.Notification, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect notifier", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeNotifier()

	locks := repository.NewBudgetLockRepository(dbManager.DB(), tp, appLogger)
	if _, err := locks.CleanupExpiredLocks(ctx); err != nil {
		appLogger.Warn("Failed to sweep expired budget locks", map[string]any{"error": err.Error()})
	}

	evaluator := alertUseCase.NewEvaluator(uow, locks, notifier, tp, appLogger, evaluatorCfg)
	summary, err := evaluator.EvaluateAlerts(ctx)
	if err != nil {
		appLogger.Error("Budget alert pass failed", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	appLogger.Info("Budget alert pass finished", map[string]any{
		"evaluated": summary.Evaluated,
		"alerted":   summary.Alerted,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
	})
}
