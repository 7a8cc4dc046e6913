package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad007-lin/PasswordChecker/pkg/errors"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/httputil"
)

type TimeoutConfig struct {
	Duration time.Duration
}

func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Duration: 10 * time.Second,
	}
}

// Timeout bounds each request with a context deadline. Every check and
// generate call is a bounded in-memory computation, so the deadline is
// a guard against stuck connections, not against slow work. A handler
// that hit the deadline without writing anything gets a 504 envelope.
func Timeout(config TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), config.Duration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, httputil.Response{
				Success: false,
				Error: &httputil.Error{
					Code:    int(errors.ErrTimeout),
					Message: "request timed out",
				},
			})
		}
	}
}
