// Package router assembles the gin engine: the middleware chain, the
// health and metrics endpoints, and the versioned API routes.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad007-lin/PasswordChecker/internal/handler/prometheus"
	"github.com/Ahmad007-lin/PasswordChecker/internal/middleware"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/errors"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/httputil"
)

const apiVersion = "1.0"

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Config struct {
	CORS             middleware.CORSConfig
	Security         middleware.SecurityConfig
	SizeLimit        middleware.SizeLimitConfig
	Timeout          middleware.TimeoutConfig
	RateLimit        middleware.RateLimitConfig
	RateLimitEnabled bool
	MetricsEnabled   bool
	MetricsPath      string
}

func DefaultConfig() Config {
	return Config{
		CORS:             middleware.DefaultCORSConfig(),
		Security:         middleware.DefaultSecurityConfig(),
		SizeLimit:        middleware.DefaultSizeLimitConfig(),
		Timeout:          middleware.DefaultTimeoutConfig(),
		RateLimit:        middleware.DefaultRateLimitConfig(),
		RateLimitEnabled: true,
		MetricsEnabled:   true,
		MetricsPath:      "/metrics",
	}
}

type Router struct {
	engine    *gin.Engine
	passwordH Handler
	healthH   Handler
	promH     *prometheus.Handler
	config    Config
}

func New(passwordH, healthH Handler, promH *prometheus.Handler, config Config) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:    gin.New(),
		passwordH: passwordH,
		healthH:   healthH,
		promH:     promH,
		config:    config,
	}
}

// Setup wires the middleware chain and registers all routes. Health
// and metrics live outside the rate-limited API group so probes and
// scrapes are never throttled.
func (r *Router) Setup() {
	httputil.RegisterTagNames()

	r.engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.ErrorHandler(),
	)
	if r.config.MetricsEnabled && r.promH != nil {
		r.engine.Use(r.promH.Middleware())
	}
	r.engine.Use(
		middleware.SecurityHeaders(r.config.Security),
		middleware.CORS(r.config.CORS),
		middleware.SizeLimit(r.config.SizeLimit),
		middleware.Timeout(r.config.Timeout),
	)

	r.engine.NoRoute(func(c *gin.Context) {
		httputil.RespondWithError(c, errors.NotFound("route", nil))
	})

	r.healthH.RegisterRoutes(r.engine.Group(""))

	if r.config.MetricsEnabled && r.promH != nil {
		r.engine.GET(r.config.MetricsPath, r.promH.Handler())
	}

	api := r.engine.Group("/api/v1")
	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", apiVersion)
		c.Next()
	})
	// Password reports and generated passwords must never be cached.
	api.Use(middleware.NoStore())
	if r.config.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(r.config.RateLimit)
		api.Use(limiter.RateLimit())
	}

	r.passwordH.RegisterRoutes(api)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

// Handler returns the engine as an http.Handler for the server.
func (r *Router) Handler() http.Handler {
	return r.engine
}
