package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	ledgerUseCase usecase.LedgerUseCase
	logger        coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(ledgerUseCase usecase.LedgerUseCase, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		ledgerUseCase: ledgerUseCase,
		logger:        logger,
	}
}

// Create handles POST /v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		badRequest(c, "Field accountId must be a UUID")
		return
	}

	var date time.Time
	if req.Date != nil {
		date = *req.Date
	}

	txn, err := h.ledgerUseCase.CreateTransaction(c.Request.Context(), userID, usecase.CreateTransactionRequest{
		AccountID:         accountID,
		Type:              req.Type,
		Amount:            req.Amount,
		Description:       req.Description,
		Category:          req.Category,
		Date:              date,
		IsRecurring:       req.IsRecurring,
		RecurringInterval: req.RecurringInterval,
	})
	if err != nil {
		respondError(c, h.logger, "create_transaction", err)
		return
	}

	respond(c, http.StatusCreated, dto.NewTransactionResponse(txn))
}

// BulkDelete handles POST /v1/transactions/bulk-delete
func (h *TransactionHandler) BulkDelete(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	ids := make([]uuid.UUID, 0, len(req.TransactionIDs))
	for _, raw := range req.TransactionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, "Field transactionIds must contain UUIDs")
			return
		}
		ids = append(ids, id)
	}

	result, err := h.ledgerUseCase.BulkDelete(c.Request.Context(), userID, ids)
	if err != nil {
		respondError(c, h.logger, "bulk_delete", err)
		return
	}

	respond(c, http.StatusOK, dto.NewBulkDeleteResponse(result.DeletedCount, result.BalanceChanges))
}
