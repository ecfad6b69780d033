package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRatingWritten(t *testing.T) {
	r := New()
	r.RatingWritten("upsert")
	r.RatingWritten("upsert")
	r.RatingWritten("update")

	require.Equal(t, 2.0, testutil.ToFloat64(r.RatingsWritten.WithLabelValues("upsert")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.RatingsWritten.WithLabelValues("update")))
}

func TestRatingWritten_NilRegistry(t *testing.T) {
	var r *Registry
	require.NotPanics(t, func() { r.RatingWritten("upsert") })
}

func TestHandler_Exposition(t *testing.T) {
	r := New()
	r.RequestsTotal.WithLabelValues("GET", "/health", "200").Inc()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "store_ratings_http_requests_total")
}
