package health

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/Ahmad007-lin/PasswordChecker/internal/corpus"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestLivenessCheck(t *testing.T) {
	r := gin.New()
	NewHandler(corpus.Default()).RegisterRoutes(r.Group(""))

	rec := get(r, "/health/live")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"UP"`)
}

func TestReadinessCheck(t *testing.T) {
	r := gin.New()
	NewHandler(corpus.Default()).RegisterRoutes(r.Group(""))

	rec := get(r, "/health/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"corpus_entries"`)
}

func TestReadinessCheckEmptyCorpus(t *testing.T) {
	r := gin.New()
	NewHandler(&corpus.Set{}).RegisterRoutes(r.Group(""))

	rec := get(r, "/health/ready")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), `"DOWN"`)
}
