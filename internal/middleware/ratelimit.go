package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"github.com/Ahmad007-lin/PasswordChecker/pkg/errors"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/httputil"
)

type RateLimitConfig struct {
	RPS   float64
	Burst int
	// ClientTTL bounds how long an idle client keeps its bucket.
	ClientTTL time.Duration
}

func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RPS:       20,
		Burst:     40,
		ClientTTL: 10 * time.Minute,
	}
}

// RateLimiter keeps one token bucket per client IP in a TTL store, so
// idle clients are evicted instead of accumulating forever.
type RateLimiter struct {
	clients *cache.Cache
	rps     rate.Limit
	burst   int
}

func NewRateLimiter(config RateLimitConfig) *RateLimiter {
	if config.ClientTTL <= 0 {
		config.ClientTTL = 10 * time.Minute
	}
	return &RateLimiter{
		clients: cache.New(config.ClientTTL, 2*config.ClientTTL),
		rps:     rate.Limit(config.RPS),
		burst:   config.Burst,
	}
}

func (rl *RateLimiter) limiterFor(ip string) *rate.Limiter {
	if v, ok := rl.clients.Get(ip); ok {
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.rps, rl.burst)
	if err := rl.clients.Add(ip, limiter, cache.DefaultExpiration); err != nil {
		// Another request for the same IP won the insert.
		if v, ok := rl.clients.Get(ip); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// RateLimit rejects requests that exceed the per-client budget with a
// 429 envelope.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Response{
				Success: false,
				Error: &httputil.Error{
					Code:    int(errors.ErrTooManyRequests),
					Message: "too many requests",
				},
			})
			return
		}
		c.Next()
	}
}
