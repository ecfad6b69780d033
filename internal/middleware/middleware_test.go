package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/store-ratings/internal/access"
	"github.com/BruksfildServices01/store-ratings/internal/httperr"
	"github.com/BruksfildServices01/store-ratings/internal/metrics"
	"github.com/BruksfildServices01/store-ratings/internal/models"
	"github.com/BruksfildServices01/store-ratings/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const secret = "0123456789abcdef0123456789abcdef"

func newEngine(tokens *token.Service, allowed access.RoleSet) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	g := r.Group("/", AuthMiddleware(tokens), RequireRoles(allowed))
	g.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, IdentityFrom(c))
	})
	return r
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Code
}

func TestAuthMiddleware(t *testing.T) {
	tokens := token.NewService([]byte(secret), 0)
	r := newEngine(tokens, access.AnyRole)

	userTok, err := tokens.Issue(7, models.RoleUser)
	require.NoError(t, err)

	t.Run("missing", func(t *testing.T) {
		w := do(r, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "auth_missing", errorCode(t, w))
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := do(r, "Basic "+userTok)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "auth_malformed", errorCode(t, w))
	})

	t.Run("bad signature", func(t *testing.T) {
		other := token.NewService([]byte("ffffffffffffffffffffffffffffffff"), 0)
		forged, err := other.Issue(7, models.RoleAdmin)
		require.NoError(t, err)

		w := do(r, "Bearer "+forged)
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Equal(t, "auth_malformed", errorCode(t, w))
	})

	t.Run("valid", func(t *testing.T) {
		w := do(r, "bearer "+userTok)
		require.Equal(t, http.StatusOK, w.Code)

		var id access.Identity
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &id))
		require.Equal(t, access.Identity{AccountID: 7, Role: models.RoleUser}, id)
	})
}

func TestRequireRoles(t *testing.T) {
	tokens := token.NewService([]byte(secret), 0)
	r := newEngine(tokens, access.AdminOnly)

	userTok, err := tokens.Issue(7, models.RoleUser)
	require.NoError(t, err)
	adminTok, err := tokens.Issue(1, models.RoleAdmin)
	require.NoError(t, err)

	w := do(r, "Bearer "+userTok)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "forbidden", errorCode(t, w))

	w = do(r, "Bearer "+adminTok)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextRequestID))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	minted := w.Header().Get(RequestIDHeader)
	require.Len(t, minted, 36)
	require.Equal(t, minted, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestID(), RequestLogger(logger))
	r.GET("/stores/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stores/42", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "WARN", line["level"])
	require.Equal(t, "/stores/:id", line["route"])
	require.EqualValues(t, 404, line["status"])
	require.NotEmpty(t, line["request_id"])
}

func TestMetrics(t *testing.T) {
	m := metrics.New()

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, 3.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/ping", "200")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID_ReachesErrorLog(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { httperr.FromError(c, errors.New("db down")) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "trace-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "trace-7", line["request_id"])
}
