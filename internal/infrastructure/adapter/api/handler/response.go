package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerr "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/middleware"
)

// statusFor maps a failure kind to its HTTP status
func statusFor(kind domainerr.Kind) int {
	switch kind {
	case domainerr.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindInvalidAmount, domainerr.KindInvalidInput:
		return http.StatusBadRequest
	case domainerr.KindInvalidState, domainerr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respond writes a successful envelope
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, dto.OK(data))
}

// respondError converts err into a failed envelope and logs server-side failures
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	kind := domainerr.KindOf(err)
	status := statusFor(kind)

	fields := map[string]any{
		"operation":  operation,
		"error":      err.Error(),
		"request_id": requestid.Get(c),
	}
	var logged interface{ LogFields() map[string]any }
	if errors.As(err, &logged) {
		for k, v := range logged.LogFields() {
			fields[k] = v
		}
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.AbortWithStatusJSON(status, dto.Fail(domainerr.ErrorCode(err), string(kind), domainerr.Message(err)))
}

// badRequest rejects a malformed request body or parameter
func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(
		domainerr.CodeInvalidRequest,
		string(domainerr.KindInvalidInput),
		message,
	))
}

// parseID reads a UUID path parameter
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		badRequest(c, "Invalid "+param+" format")
		return uuid.Nil, false
	}
	return id, true
}

// currentUserID returns the authenticated caller or aborts with 401
func currentUserID(c *gin.Context, logger coreport.Logger) (uuid.UUID, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, logger, "authenticate", domainerr.ErrUnauthorized)
		return uuid.Nil, false
	}
	return user.ID, true
}
