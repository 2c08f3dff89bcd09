package usecase

import "context"

// EvaluationSummary counts the outcome of one alert pass
type EvaluationSummary struct {
	Evaluated int
	Alerted   int
	Skipped   int
	Failed    int
}

// AlertUseCase runs the periodic budget alert pass
type AlertUseCase interface {
	EvaluateAlerts(ctx context.Context) (*EvaluationSummary, error)
}
