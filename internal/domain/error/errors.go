package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount       = 4002
	CodeInvalidRequest      = 4003
	CodeInvalidState        = 4005
	CodeUnauthorized        = 4010
	CodeUserNotFound        = 4040
	CodeAccountNotFound     = 4041
	CodeTransactionNotFound = 4042
	CodeBudgetNotFound      = 4043
	CodeDuplicateUser       = 4090
	CodeBudgetLocked        = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5030
)

// Kind is the coarse failure category reported to callers
type Kind string

// Failure kinds
const (
	KindUnauthorized  Kind = "Unauthorized"
	KindNotFound      Kind = "NotFound"
	KindInvalidAmount Kind = "InvalidAmount"
	KindInvalidState  Kind = "InvalidState"
	KindInvalidInput  Kind = "InvalidInput"
	KindConflict      Kind = "Conflict"
	KindInternal      Kind = "Internal"
)

// Base error types
var (
	// ErrUnauthorized is returned when no caller identity is available
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUserNotFound is returned when the caller identity has no user record
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountNotFound is returned when an account is absent or owned by someone else
	ErrAccountNotFound = errors.New("account not found")

	// ErrTransactionNotFound is returned when a transaction is absent or owned by someone else
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when a budget is absent or owned by someone else
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrInvalidAmount is returned for non-numeric, non-positive or over-precise amounts
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidState is returned when an operation is structurally impossible
	ErrInvalidState = errors.New("invalid state")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrDuplicateUser is returned when an identity is registered twice concurrently
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrBudgetLocked is returned when another evaluator holds the budget lease
	ErrBudgetLocked = errors.New("budget is locked by another evaluation")

	// ErrEvaluationInProgress is returned when an alert pass is already running
	ErrEvaluationInProgress = errors.New("alert evaluation already in progress")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrAccountNotFound):
		return CodeAccountNotFound
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrBudgetNotFound):
		return CodeBudgetNotFound
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrBudgetLocked):
		return CodeBudgetLocked
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabaseConnection
	default:
		return CodeInternalServer
	}
}

// KindOf folds an error into its failure kind
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case IsNotFoundError(err):
		return KindNotFound
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidInput
	case errors.Is(err, ErrDuplicateUser), errors.Is(err, ErrBudgetLocked), errors.Is(err, ErrConstraintViolation):
		return KindConflict
	default:
		return KindInternal
	}
}

// Message returns the human-readable text shown to users for an error
func Message(err error) string {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "You must be signed in to do that"
	case errors.Is(err, ErrUserNotFound):
		return "User not found"
	case errors.Is(err, ErrAccountNotFound):
		return "Account not found"
	case errors.Is(err, ErrTransactionNotFound):
		return "Transaction not found"
	case errors.Is(err, ErrBudgetNotFound):
		return "Budget not found"
	case errors.Is(err, ErrInvalidAmount):
		return "Amount must be a positive number with at most two decimal places"
	case errors.Is(err, ErrInvalidState):
		var stateErr *StateError
		if errors.As(err, &stateErr) && stateErr.Reason != "" {
			return stateErr.Reason
		}
		return "The operation is not possible in the current state"
	case errors.Is(err, ErrInvalidRequest):
		return "Invalid request"
	case errors.Is(err, ErrDuplicateUser):
		return "User already exists"
	case errors.Is(err, ErrBudgetLocked):
		return "Budget is busy, try again later"
	default:
		return "Internal server error"
	}
}

// StateError describes why an operation is not possible right now
type StateError struct {
	UserID string
	Reason string
}

// Error implements the error interface for StateError
func (e *StateError) Error() string {
	return fmt.Sprintf("invalid state for user %s: %s", e.UserID, e.Reason)
}

// Is checks if the target error is an ErrInvalidState
func (e *StateError) Is(target error) bool {
	return target == ErrInvalidState
}

// LogFields returns a map of fields for structured logging
func (e *StateError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_state",
		"user_id":    e.UserID,
		"reason":     e.Reason,
		"error_code": CodeInvalidState,
	}
}

// NewStateError creates a detailed invalid state error
func NewStateError(userID, reason string) error {
	return &StateError{UserID: userID, Reason: reason}
}

// AmountError describes an amount that failed validation
type AmountError struct {
	Amount string
	Reason string
}

// Error implements the error interface for AmountError
func (e *AmountError) Error() string {
	return fmt.Sprintf("invalid amount %q: %s", e.Amount, e.Reason)
}

// Is checks if the target error is an ErrInvalidAmount
func (e *AmountError) Is(target error) bool {
	return target == ErrInvalidAmount
}

// LogFields returns a map of fields for structured logging
func (e *AmountError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "invalid_amount",
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error_code": CodeInvalidAmount,
	}
}

// NewAmountError creates a detailed invalid amount error
func NewAmountError(amount, reason string) error {
	return &AmountError{Amount: amount, Reason: reason}
}

// BudgetEvaluationError wraps a failure while evaluating one budget
type BudgetEvaluationError struct {
	BudgetID string
	UserID   string
	Stage    string
	Err      error
}

// Error implements the error interface for BudgetEvaluationError
func (e *BudgetEvaluationError) Error() string {
	return fmt.Sprintf("budget %s (user %s) failed at %s: %v", e.BudgetID, e.UserID, e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *BudgetEvaluationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BudgetEvaluationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "budget_evaluation",
		"budget_id":  e.BudgetID,
		"user_id":    e.UserID,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBudgetEvaluationError creates a per-budget evaluation failure
func NewBudgetEvaluationError(budgetID, userID, stage string, err error) error {
	return &BudgetEvaluationError{BudgetID: budgetID, UserID: userID, Stage: stage, Err: err}
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrAccountNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound)
}

// IsBudgetLockedError checks if the error is related to a held budget lease
func IsBudgetLockedError(err error) bool {
	return errors.Is(err, ErrBudgetLocked)
}
