package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// List handles GET /v1/accounts
func (h *AccountHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	accounts, err := h.accountUseCase.ListAccounts(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, "list_accounts", err)
		return
	}

	respond(c, http.StatusOK, dto.NewAccountResponses(accounts))
}

// Create handles POST /v1/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}
	if req.Balance == "" {
		req.Balance = "0"
	}

	account, err := h.accountUseCase.CreateAccount(c.Request.Context(), userID, usecase.CreateAccountRequest{
		Name:      req.Name,
		Type:      req.Type,
		Balance:   req.Balance,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		respondError(c, h.logger, "create_account", err)
		return
	}

	respond(c, http.StatusCreated, dto.NewAccountResponse(account))
}

// Get handles GET /v1/accounts/:accountId
func (h *AccountHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}
	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}

	result, err := h.accountUseCase.GetAccountWithTransactions(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, "get_account", err)
		return
	}

	respond(c, http.StatusOK, dto.AccountDetailResponse{
		AccountResponse: dto.NewAccountResponse(result.Account),
		Transactions:    dto.NewTransactionResponses(result.Transactions),
	})
}

// SetDefault handles PUT /v1/accounts/:accountId/default
func (h *AccountHandler) SetDefault(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}
	accountID, ok := parseID(c, "accountId")
	if !ok {
		return
	}

	account, err := h.accountUseCase.SetDefaultAccount(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, "set_default_account", err)
		return
	}

	respond(c, http.StatusOK, dto.NewAccountResponse(account))
}
