package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	budgetUseCase usecase.BudgetUseCase
	logger        coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgetUseCase usecase.BudgetUseCase, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgetUseCase: budgetUseCase,
		logger:        logger,
	}
}

// Get handles GET /v1/budgets?accountId=
func (h *BudgetHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	accountID, err := uuid.Parse(c.Query("accountId"))
	if err != nil {
		badRequest(c, "Query parameter accountId must be a UUID")
		return
	}

	progress, err := h.budgetUseCase.GetBudgetProgress(c.Request.Context(), userID, accountID)
	if err != nil {
		respondError(c, h.logger, "get_budget", err)
		return
	}

	respond(c, http.StatusOK, dto.NewBudgetProgressResponse(progress))
}

// SetAmount handles PUT /v1/budgets
func (h *BudgetHandler) SetAmount(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}

	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		badRequest(c, "Field accountId must be a UUID")
		return
	}

	budget, err := h.budgetUseCase.SetBudgetAmount(c.Request.Context(), userID, accountID, req.Amount)
	if err != nil {
		respondError(c, h.logger, "set_budget_amount", err)
		return
	}

	respond(c, http.StatusOK, dto.NewBudgetResponse(budget))
}

// SetGlobal handles PUT /v1/budgets/:budgetId/global
func (h *BudgetHandler) SetGlobal(c *gin.Context) {
	userID, ok := currentUserID(c, h.logger)
	if !ok {
		return
	}
	budgetID, ok := parseID(c, "budgetId")
	if !ok {
		return
	}

	var req dto.SetGlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	budget, tag, err := h.budgetUseCase.SetGlobalFlag(c.Request.Context(), userID, budgetID, *req.IsGlobal)
	if err != nil {
		respondError(c, h.logger, "set_global_flag", err)
		return
	}

	respond(c, http.StatusOK, dto.GlobalToggleResponse{
		Budget: dto.NewBudgetResponse(budget),
		Tag:    string(tag),
	})
}
