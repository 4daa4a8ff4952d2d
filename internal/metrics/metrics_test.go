package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/citizens/:nin", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, nin := range []string{"11111111111", "22222222222"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/citizens/"+nin, nil))
	}

	got := testutil.ToFloat64(m.HTTPRequests.WithLabelValues(http.MethodGet, "/api/citizens/:nin", "404"))
	assert.Equal(t, float64(2), got)
}

func TestNew_IndependentRegistries(t *testing.T) {
	a, b := New(), New()
	a.IncrementCitizensRegistered()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.CitizensRegistered))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.CitizensRegistered))
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncrementCitizensRegistered()
		m.IncrementLoginFailures()
	})
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.IncrementLoginFailures()

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "citizen_registry_login_failures_total 1")
}
