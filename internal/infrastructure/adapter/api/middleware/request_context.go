package middleware

import (
	"context"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/finance-ledger/internal/domain/port/core"
)

// RequestContext attaches the request id to the request context and bounds
// the request with timeout
func RequestContext(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := coreport.WithRequestID(c.Request.Context(), requestid.Get(c))

		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
