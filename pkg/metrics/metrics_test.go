package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	m := NewMetrics("middleware_test")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /booking/edit/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := Middleware(m)(mux)

	// Distinct path values share one label series.
	for _, id := range []string{"7f3a", "9c1b", "d402"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/booking/edit/"+id, nil))
	}

	got := testutil.ToFloat64(m.RequestCounter.WithLabelValues(http.MethodGet, "GET /booking/edit/{id}", "200"))
	assert.Equal(t, float64(3), got)
}
