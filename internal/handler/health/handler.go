package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmad007-lin/PasswordChecker/internal/corpus"
)

type Handler struct {
	corpus *corpus.Set
}

func NewHandler(corpus *corpus.Set) *Handler {
	return &Handler{
		corpus: corpus,
	}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	health := r.Group("/health")
	{
		health.GET("/live", h.LivenessCheck)
		health.GET("/ready", h.ReadinessCheck)
	}
}

func (h *Handler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "UP"})
}

// ReadinessCheck verifies the common-password corpus is loaded. The
// service has no other dependencies; an empty corpus means a broken
// corpus file and checks would silently pass common passwords.
func (h *Handler) ReadinessCheck(c *gin.Context) {
	if h.corpus == nil || h.corpus.Len() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "DOWN",
			"reason": "common-password corpus is empty",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":         "UP",
		"corpus_entries": h.corpus.Len(),
	})
}
