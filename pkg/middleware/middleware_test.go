package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"tripplanner/pkg/metrics"
	"tripplanner/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	issuer := utils.NewTokenIssuer("test-secret", time.Hour, nil)
	userID := uuid.New()
	token, err := issuer.CreateToken(userID)
	require.NoError(t, err)

	other, err := utils.NewTokenIssuer("other-secret", time.Hour, nil).CreateToken(userID)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/private", JWTAuthMiddleware(issuer), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("user_id"))
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"no header", "", http.StatusUnauthorized, "Access denied. No token provided."},
		{"not bearer", "Basic abc", http.StatusUnauthorized, "Access denied. No token provided."},
		{"empty bearer", "Bearer ", http.StatusUnauthorized, "Access denied. No token provided."},
		{"garbage token", "Bearer not.a.jwt", http.StatusForbidden, "Invalid token"},
		{"wrong secret", "Bearer " + other, http.StatusForbidden, "Invalid token"},
		{"valid", "Bearer " + token, http.StatusOK, userID.String()},
		{"lowercase scheme", "bearer " + token, http.StatusOK, userID.String()},
		{"uppercase scheme", "BEARER " + token, http.StatusOK, userID.String()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.header != "" {
				h.Set("Authorization", tt.header)
			}

			w := serve(r, http.MethodGet, "/private", h)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("trace_id"))
	})

	w := serve(r, http.MethodGet, "/", nil)

	traceID := w.Header().Get("X-Trace-ID")
	_, err := uuid.Parse(traceID)
	assert.NoError(t, err)
	assert.Equal(t, traceID, w.Body.String())
}

func TestTraceIDMiddleware_KeepsIncomingID(t *testing.T) {
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {})

	w := serve(r, http.MethodGet, "/", http.Header{"X-Trace-Id": []string{"upstream-42"}})

	assert.Equal(t, "upstream-42", w.Header().Get("X-Trace-ID"))
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	r := gin.New()
	r.Use(TraceIDMiddleware(), RequestLogger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		_, ok := c.Get("logger")
		assert.True(t, ok)
		c.Status(http.StatusOK)
	})
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, http.MethodGet, "/ok", nil)
	serve(r, http.MethodGet, "/missing", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.NotEmpty(t, fields["trace_id"])
}

func TestMetricsMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(MetricsMiddleware())
	r.GET("/itinerary/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/itinerary/:id", "200")
	before := testutil.ToFloat64(counter)

	serve(r, http.MethodGet, "/itinerary/abc", nil)
	serve(r, http.MethodGet, "/itinerary/def", nil)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
}
