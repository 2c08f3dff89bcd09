// Package bootstrap assembles the infrastructure shared by the API server
// and the standalone alert worker.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/usecase/alert"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/notification"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/config"
)

const poolMonitorInterval = time.Minute

// ValidateDatabaseConfig checks the database section after env overrides
func ValidateDatabaseConfig(cfg *config.Config) error {
	if err := database.CreateConfigFromViperConfig(cfg).Validate(); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

// OpenDatabase connects, migrates and starts pool monitoring
func OpenDatabase(ctx context.Context, cfg *config.Config, logger coreport.Logger, tp coreport.TimeProvider) (*database.Manager, error) {
	manager := database.NewManager(database.CreateConfigFromViperConfig(cfg), logger, tp)

	if _, err := manager.Connect(); err != nil {
		return nil, err
	}

	if err := manager.Migrate(ctx); err != nil {
		manager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	manager.StartMonitoring(poolMonitorInterval)
	return manager, nil
}

// NewNotifier selects the broker notifier when a URL is configured and the
// log notifier otherwise. The returned func releases the broker connection.
func NewNotifier(cfg config.NotificationConfig, logger coreport.Logger) (coreport.Notifier, func(), error) {
	if cfg.AMQPURL == "" {
		logger.Warn("No notification broker configured, budget alerts will be logged only", nil)
		return notification.NewLogNotifier(logger), func() {}, nil
	}

	notifier, err := notification.NewAMQPNotifier(notification.Config{
		URL:        cfg.AMQPURL,
		Exchange:   cfg.Exchange,
		Queue:      cfg.Queue,
		RoutingKey: cfg.RoutingKey,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	return notifier, func() {
		if err := notifier.Close(); err != nil {
			logger.Warn("Failed to close notification broker", map[string]any{"error": err.Error()})
		}
	}, nil
}

// EvaluatorConfig converts the alert section to evaluator settings
func EvaluatorConfig(cfg config.AlertConfig, location *time.Location) (alert.Config, error) {
	threshold := entity.AlertThresholdPercent
	if cfg.ThresholdPercent != "" {
		parsed, err := decimal.NewFromString(cfg.ThresholdPercent)
		if err != nil || !parsed.IsPositive() {
			return alert.Config{}, fmt.Errorf("invalid alert threshold: %q", cfg.ThresholdPercent)
		}
		threshold = parsed
	}

	return alert.Config{
		Threshold:     threshold,
		Concurrency:   cfg.Concurrency,
		BudgetTimeout: cfg.BudgetTimeout,
		LockDuration:  cfg.LockDuration,
		Location:      location,
	}, nil
}

// NewAlertScheduler wires the evaluator, its lease store and its notifier
// into a scheduler that also sweeps expired leases
func NewAlertScheduler(
	cfg *config.Config,
	uow persistence.UnitOfWork,
	db *gorm.DB,
	location *time.Location,
	logger coreport.Logger,
	tp coreport.TimeProvider,
) (*alert.Scheduler, func(), error) {
	evaluatorCfg, err := EvaluatorConfig(cfg.Alert, location)
	if err != nil {
		return nil, nil, err
	}

	notifier, closeNotifier, err := NewNotifier(cfg.Notification, logger)
	if err != nil {
		return nil, nil, err
	}

	locks := repository.NewBudgetLockRepository(db, tp, logger)
	evaluator := alert.NewEvaluator(uow, locks, notifier, tp, logger, evaluatorCfg)

	return alert.NewScheduler(evaluator, cfg.Alert.Interval, logger).WithLockSweeper(locks), closeNotifier, nil
}
