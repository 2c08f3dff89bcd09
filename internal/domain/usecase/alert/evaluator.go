package alert

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// Default tuning for an alert pass
const (
	DefaultConcurrency   = 4
	DefaultBudgetTimeout = 30 * time.Second
	DefaultLockDuration  = 2 * time.Minute
)

// Config tunes the evaluator
type Config struct {
	Threshold     decimal.Decimal // Percentage at which an alert fires, inclusive
	Concurrency   int             // Budgets evaluated at once
	BudgetTimeout time.Duration   // Upper bound for one budget
	LockDuration  time.Duration   // Lease length; must exceed BudgetTimeout
	Location      *time.Location  // Calendar used for month boundaries
}

func (c Config) withDefaults() Config {
	if c.Threshold.IsZero() {
		c.Threshold = entity.AlertThresholdPercent
	}
	if c.Concurrency <= 0 {
		c.Concurrency = DefaultConcurrency
	}
	if c.BudgetTimeout <= 0 {
		c.BudgetTimeout = DefaultBudgetTimeout
	}
	if c.LockDuration <= c.BudgetTimeout {
		c.LockDuration = c.BudgetTimeout + DefaultLockDuration
	}
	if c.Location == nil {
		c.Location = time.UTC
	}
	return c
}

type outcome int

const (
	outcomeSkipped outcome = iota
	outcomeBelowThreshold
	outcomeAlerted
)

// Evaluator runs the periodic budget alert pass. Each budget is evaluated in
// isolation: its failure is logged and never stops the others.
type Evaluator struct {
	uow          persistence.UnitOfWork
	locks        persistence.BudgetLockRepository
	notifier     coreport.Notifier
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
	running      atomic.Bool
}

// NewEvaluator creates a new Evaluator
func NewEvaluator(
	uow persistence.UnitOfWork,
	locks persistence.BudgetLockRepository,
	notifier coreport.Notifier,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) *Evaluator {
	return &Evaluator{
		uow:          uow,
		locks:        locks,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg.withDefaults(),
	}
}

// EvaluateAlerts evaluates every budget once. Overlapping passes on the same
// evaluator are rejected with ErrEvaluationInProgress.
func (e *Evaluator) EvaluateAlerts(ctx context.Context) (*usecase.EvaluationSummary, error) {
	if !e.running.CompareAndSwap(false, true) {
		return nil, errs.ErrEvaluationInProgress
	}
	defer e.running.Store(false)

	budgets, err := e.uow.GetBudgetRepository(ctx).ListAll(ctx)
	if err != nil {
		e.logger.Error("Failed to list budgets for alert pass", map[string]any{
			"error": err.Error(),
		})
		return nil, err
	}

	// One evaluation instant for the whole pass
	now := e.timeProvider.Now()

	var alerted, skipped, belowThreshold, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(e.cfg.Concurrency)

	for _, budget := range budgets {
		budgetID, userID := budget.ID, budget.UserID
		g.Go(func() error {
			result, err := e.evaluateBudget(ctx, budgetID, now)
			if err != nil {
				failed.Add(1)
				fields := map[string]any{"budgetId": budgetID.String(), "userId": userID.String(), "error": err.Error()}
				var evalErr *errs.BudgetEvaluationError
				if errors.As(err, &evalErr) {
					fields = evalErr.LogFields()
				}
				e.logger.Error("Budget alert evaluation failed", fields)
				return nil
			}

			switch result {
			case outcomeAlerted:
				alerted.Add(1)
			case outcomeBelowThreshold:
				belowThreshold.Add(1)
			default:
				skipped.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := &usecase.EvaluationSummary{
		Evaluated: int(alerted.Load() + belowThreshold.Load()),
		Alerted:   int(alerted.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
	}

	e.logger.Info("Budget alert pass finished", map[string]any{
		"budgets":   len(budgets),
		"evaluated": summary.Evaluated,
		"alerted":   summary.Alerted,
		"skipped":   summary.Skipped,
		"failed":    summary.Failed,
		"duration":  e.timeProvider.Since(now).Std().String(),
	})

	return summary, nil
}

// evaluateBudget holds the budget lease while it decides, notifies and records
func (e *Evaluator) evaluateBudget(ctx context.Context, budgetID uuid.UUID, now time.Time) (outcome, error) {
	budgetCtx, cancel := e.timeProvider.WithTimeout(ctx, coreport.Duration(e.cfg.BudgetTimeout))
	defer cancel()

	log := e.logger.With(map[string]any{"budgetId": budgetID.String()})

	if err := e.locks.AcquireLock(budgetCtx, budgetID, e.cfg.LockDuration); err != nil {
		if errs.IsBudgetLockedError(err) {
			log.Debug("Budget is being evaluated elsewhere, skipping", nil)
			return outcomeSkipped, nil
		}
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), "", "acquire_lock", err)
	}
	defer func() {
		// Release even when the budget deadline already fired
		if err := e.locks.ReleaseLock(context.WithoutCancel(ctx), budgetID); err != nil {
			log.Warn("Failed to release budget lock", map[string]any{"error": err.Error()})
		}
	}()

	budgetRepo := e.uow.GetBudgetRepository(budgetCtx)
	budget, err := budgetRepo.GetByID(budgetCtx, budgetID)
	if err != nil {
		if errors.Is(err, errs.ErrBudgetNotFound) {
			return outcomeSkipped, nil
		}
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), "", "load_budget", err)
	}
	userID := budget.UserID.String()

	owner, err := e.uow.GetUserRepository(budgetCtx).GetByID(budgetCtx, budget.UserID)
	if err != nil {
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), userID, "load_owner", err)
	}

	account, err := e.targetAccount(budgetCtx, budget)
	if err != nil {
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), userID, "resolve_account", err)
	}
	if account == nil {
		log.Debug("No account to evaluate budget against, skipping", nil)
		return outcomeSkipped, nil
	}

	window := entity.PreviousMonthOf(now, e.cfg.Location)
	spent, err := e.uow.GetTransactionRepository(budgetCtx).SumExpenses(budgetCtx, account.ID, window.Start, window.End)
	if err != nil {
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), userID, "sum_expenses", err)
	}

	percentageUsed := budget.PercentageUsed(spent)
	if !budget.ShouldAlert(percentageUsed, e.cfg.Threshold, now, e.cfg.Location) {
		log.Debug("Budget does not need an alert", map[string]any{
			"percentageUsed": percentageUsed.StringFixed(2),
			"alreadySent":    budget.AlertedInMonthOf(now, e.cfg.Location),
		})
		return outcomeBelowThreshold, nil
	}

	notification := entity.BudgetAlert{
		BudgetID:       budget.ID,
		UserName:       owner.DisplayName(),
		RecipientEmail: owner.Email,
		AccountName:    account.Name,
		PercentageUsed: percentageUsed,
		BudgetAmount:   budget.Amount,
		TotalExpenses:  spent,
	}.Notification()

	// Delivery is fire-and-forget; the timestamp is written either way
	if err := e.notifier.Send(budgetCtx, notification); err != nil {
		log.Warn("Budget alert could not be handed to the notifier", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
	}

	if err := budgetRepo.UpdateLastAlertSent(budgetCtx, budget.ID, now); err != nil {
		return 0, errs.NewBudgetEvaluationError(budgetID.String(), userID, "record_alert", err)
	}
	budget.MarkAlerted(now)

	log.Info("Budget alert sent", map[string]any{
		"userId":         userID,
		"accountId":      account.ID.String(),
		"percentageUsed": percentageUsed.StringFixed(1),
	})

	return outcomeAlerted, nil
}

// targetAccount is the budget's bound account when it has one, otherwise the
// owner's default account. Nil means there is nothing to evaluate.
func (e *Evaluator) targetAccount(ctx context.Context, budget *entity.Budget) (*entity.Account, error) {
	accounts := e.uow.GetAccountRepository(ctx)

	if budget.AccountID != nil && *budget.AccountID != uuid.Nil {
		account, err := accounts.GetByIDForUser(ctx, budget.UserID, *budget.AccountID)
		if err == nil {
			return account, nil
		}
		if !errors.Is(err, errs.ErrAccountNotFound) {
			return nil, err
		}
	}

	return accounts.GetDefault(ctx, budget.UserID)
}
