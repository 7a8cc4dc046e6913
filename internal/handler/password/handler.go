// Package password exposes the strength checker and the generator over
// HTTP. Both endpoints are stateless: nothing about a request survives
// the response, and passwords never appear in logs or metrics labels.
package password

import (
	"github.com/gin-gonic/gin"

	"github.com/Ahmad007-lin/PasswordChecker/internal/model"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/generator"
	"github.com/Ahmad007-lin/PasswordChecker/internal/service/strength"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/errors"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/httputil"
	"github.com/Ahmad007-lin/PasswordChecker/pkg/metrics"
)

const minLength = 8

type Config struct {
	// DefaultLength is used when a generate request omits the length.
	DefaultLength int
	// MaxLength caps requested lengths; longer requests are clamped,
	// never rejected.
	MaxLength int
}

type Handler struct {
	strength  *strength.Service
	generator *generator.Service
	config    Config
	metrics   *metrics.Metrics
}

// NewHandler builds the password handler. metrics may be nil.
func NewHandler(strengthSvc *strength.Service, generatorSvc *generator.Service, config Config, m *metrics.Metrics) *Handler {
	if config.DefaultLength <= 0 {
		config.DefaultLength = 16
	}
	if config.MaxLength <= 0 {
		config.MaxLength = 50
	}
	return &Handler{
		strength:  strengthSvc,
		generator: generatorSvc,
		config:    config,
		metrics:   m,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	passwords := r.Group("/passwords")
	{
		passwords.POST("/check", h.Check)
		passwords.POST("/generate", h.Generate)
	}
}

// Check analyzes the submitted password and answers with the full
// strength report. An empty password is a valid input and yields a
// very-weak report, not an error.
func (h *Handler) Check(c *gin.Context) {
	var req model.CheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondWithBindError(c, err)
		return
	}

	report := h.strength.Evaluate(req.Password)
	h.recordCheck(req.Password, report)

	httputil.RespondWithSuccess(c, report)
}

// Generate creates a random password. All request fields are optional:
// a missing length falls back to the configured default, out-of-range
// lengths are clamped to [8, MaxLength], and similar-looking characters
// are excluded unless the request says otherwise.
func (h *Handler) Generate(c *gin.Context) {
	var req model.GenerateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httputil.RespondWithBindError(c, err)
			return
		}
	}

	length := req.Length
	if length <= 0 {
		length = h.config.DefaultLength
	}
	if length < minLength {
		length = minLength
	}
	if length > h.config.MaxLength {
		length = h.config.MaxLength
	}

	excludeSimilar := true
	if req.ExcludeSimilar != nil {
		excludeSimilar = *req.ExcludeSimilar
	}

	password, err := h.generator.Generate(length, excludeSimilar)
	if err != nil {
		httputil.RespondWithError(c, errors.Internal(err))
		return
	}

	resp := model.GenerateResponse{
		Password: password,
		Length:   len(password),
	}
	if req.IncludeReport {
		resp.Report = h.strength.Evaluate(password)
	}

	httputil.RespondWithSuccess(c, resp)
}

func (h *Handler) recordCheck(password string, report *model.StrengthReport) {
	if h.metrics == nil {
		return
	}
	h.metrics.ChecksTotal.WithLabelValues(report.Strength.String()).Inc()
	h.metrics.PasswordEntropy.Observe(report.Entropy)
	if password != "" && h.strength.IsCommon(password) {
		h.metrics.CommonPasswordHits.Inc()
	}
}
