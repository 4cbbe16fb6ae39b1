package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/emilythestrangee/board-game-reviews/backend/internal/apperr"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(log *zap.Logger, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(log), Errors(log))
	r.GET("/test", handler)
	return r
}

func TestErrors_TypedError(t *testing.T) {
	r := newRouter(zap.NewNop(), func(c *gin.Context) {
		c.Error(fmt.Errorf("select review: %w", apperr.ErrIDNotFound))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"ID not Found!"}`, w.Body.String())
}

func TestErrors_PostgresError(t *testing.T) {
	r := newRouter(zap.NewNop(), func(c *gin.Context) {
		c.Error(&pgconn.PgError{Code: "23503"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"msg":"Resource not found!"}`, w.Body.String())
}

func TestErrors_UnknownErrorIsLoggedAndHidden(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core), func(c *gin.Context) {
		c.Error(errors.New("dial tcp 10.0.0.3:5432: connection refused"))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Internal Server Error"}`, w.Body.String())
	assert.NotContains(t, w.Body.String(), "5432")

	entries := logs.FilterMessage("unhandled error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
}

func TestErrors_NoErrorPassesThrough(t *testing.T) {
	r := newRouter(zap.NewNop(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}

func TestRequestID(t *testing.T) {
	r := newRouter(zap.NewNop(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})

	t.Run("forwarded", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestLogger_LogsRequest(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/test", fields["path"])
	assert.EqualValues(t, http.StatusNoContent, fields["status"])
}

func TestRecovery_PanicAnswersInternalError(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := gin.New()
	r.Use(RequestID(), Recovery(zap.New(core)))
	r.GET("/boom", func(c *gin.Context) {
		panic("nil map write")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"msg":"Internal Server Error"}`, w.Body.String())

	entries := logs.FilterMessage("panic recovered").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "nil map write", entries[0].ContextMap()["panic"])
	assert.Equal(t, "/boom", entries[0].ContextMap()["path"])
}
