package alert

import (
	"context"
	"errors"
	"time"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// DefaultInterval is the cadence of the alert pass
const DefaultInterval = 6 * time.Hour

// LockSweeper drops budget leases left behind by crashed evaluators
type LockSweeper interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// Scheduler triggers an alert pass at start-up and then on a fixed interval
type Scheduler struct {
	evaluator usecase.AlertUseCase
	sweeper   LockSweeper
	interval  time.Duration
	logger    coreport.Logger
}

// NewScheduler creates a new Scheduler
func NewScheduler(evaluator usecase.AlertUseCase, interval time.Duration, logger coreport.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		evaluator: evaluator,
		interval:  interval,
		logger:    logger,
	}
}

// WithLockSweeper makes every tick sweep expired leases before the pass
func (s *Scheduler) WithLockSweeper(sweeper LockSweeper) *Scheduler {
	s.sweeper = sweeper
	return s
}

// Run blocks until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("Budget alert scheduler started", map[string]any{
		"interval": s.interval.String(),
	})

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Budget alert scheduler stopped", nil)
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if s.sweeper != nil {
		if _, err := s.sweeper.CleanupExpiredLocks(ctx); err != nil {
			s.logger.Warn("Failed to sweep expired budget locks", map[string]any{"error": err.Error()})
		}
	}

	summary, err := s.evaluator.EvaluateAlerts(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrEvaluationInProgress) {
			s.logger.Warn("Previous alert pass still running, skipping tick", nil)
			return
		}
		s.logger.Error("Alert pass failed", map[string]any{"error": err.Error()})
		return
	}

	if summary.Failed > 0 {
		s.logger.Warn("Alert pass finished with failures", map[string]any{
			"failed": summary.Failed,
		})
	}
}
