package ledger

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	errs "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
)

// Field limits shared with the storage schema
const (
	MaxDescriptionLength = 255
	MaxCategoryLength    = 64
	MaxBulkDeleteSize    = 1000
)

// TransactionValidator provides validation for ledger requests
type TransactionValidator struct{}

// NewTransactionValidator creates a new TransactionValidator
func NewTransactionValidator() *TransactionValidator {
	return &TransactionValidator{}
}

// ValidateCreate checks the fields that the entity constructor does not
func (v *TransactionValidator) ValidateCreate(req usecase.CreateTransactionRequest) error {
	if req.AccountID == uuid.Nil {
		return fmt.Errorf("%w: account id is required", errs.ErrInvalidRequest)
	}
	if utf8.RuneCountInString(req.Description) > MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", errs.ErrInvalidRequest, MaxDescriptionLength)
	}
	if utf8.RuneCountInString(req.Category) > MaxCategoryLength {
		return fmt.Errorf("%w: category exceeds %d characters", errs.ErrInvalidRequest, MaxCategoryLength)
	}
	return nil
}

// NormalizeIDs turns the requested ids into a set: duplicates and nil ids are dropped,
// first-seen order is kept
func (v *TransactionValidator) NormalizeIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if len(out) > MaxBulkDeleteSize {
		return nil, fmt.Errorf("%w: at most %d transactions per bulk delete", errs.ErrInvalidRequest, MaxBulkDeleteSize)
	}
	return out, nil
}
