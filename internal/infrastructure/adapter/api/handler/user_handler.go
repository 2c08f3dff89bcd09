package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /v1/users endpoint. Registering an identity
// again returns the existing user.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request format: "+err.Error())
		return
	}

	user, err := h.userUseCase.RegisterUser(c.Request.Context(), middleware.Subject(c), req.Email, req.Name)
	if err != nil {
		respondError(c, h.logger, "register_user", err)
		return
	}

	respond(c, http.StatusOK, dto.NewUserResponse(user))
}
