package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/finance-ledger/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/finance-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-ledger/internal/infrastructure/adapter/api/dto"
)

// SubjectHeader carries the identity issued by the authentication proxy
const SubjectHeader = "X-Auth-Subject"

const (
	subjectKey = "auth.subject"
	userKey    = "auth.user"
)

// RequireSubject rejects requests without an authenticated subject
func RequireSubject() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := strings.TrimSpace(c.GetHeader(SubjectHeader))
		if subject == "" {
			abortUnauthorized(c, domainerr.ErrUnauthorized)
			return
		}
		c.Set(subjectKey, subject)
		c.Next()
	}
}

// Authenticate resolves the subject to a registered user. Unknown subjects
// are treated as unauthorized.
func Authenticate(users usecase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := strings.TrimSpace(c.GetHeader(SubjectHeader))
		if subject == "" {
			abortUnauthorized(c, domainerr.ErrUnauthorized)
			return
		}

		user, err := users.ResolveIdentity(c.Request.Context(), subject)
		if err != nil {
			if domainerr.IsUserNotFoundError(err) {
				abortUnauthorized(c, err)
				return
			}
			logger.Error("Failed to resolve caller identity", map[string]any{
				"error": err.Error(),
				"path":  c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(
				domainerr.ErrorCode(err),
				string(domainerr.KindInternal),
				domainerr.Message(err),
			))
			return
		}

		c.Set(subjectKey, subject)
		c.Set(userKey, user)
		c.Next()
	}
}

// Subject returns the authenticated subject of the request
func Subject(c *gin.Context) string {
	return c.GetString(subjectKey)
}

// CurrentUser returns the user resolved by Authenticate
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok && user != nil
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(
		domainerr.CodeUnauthorized,
		string(domainerr.KindUnauthorized),
		domainerr.Message(domainerr.ErrUnauthorized),
	))
	_ = c.Error(err)
}
