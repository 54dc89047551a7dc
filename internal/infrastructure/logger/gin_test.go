package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("logs successful request at info", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		log := zap.New(core)

		router := gin.New()
		router.Use(GinMiddleware(log))
		router.GET("/ping", func(c *gin.Context) {
			c.String(http.StatusOK, "pong")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping?x=1", nil)
		router.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, "request", entries[0].Message)
	})

	t.Run("logs server errors at error level", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		log := zap.New(core)

		router := gin.New()
		router.Use(GinMiddleware(log))
		router.GET("/boom", func(c *gin.Context) {
			c.Status(http.StatusInternalServerError)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		router.ServeHTTP(w, req)

		entries := logs.All()
		assert.Len(t, entries, 1)
		assert.Equal(t, zap.ErrorLevel, entries[0].Level)
	})

	t.Run("stores request logger in context", func(t *testing.T) {
		log := zap.NewNop()

		router := gin.New()
		router.Use(GinMiddleware(log))
		router.GET("/ping", func(c *gin.Context) {
			assert.NotNil(t, FromGin(c))
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
	})
}

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("recovers from panic and responds 500", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		log := zap.New(core)

		router := gin.New()
		router.Use(Recovery(log))
		router.GET("/panic", func(c *gin.Context) {
			panic("boom")
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/panic", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Len(t, logs.All(), 1)
		assert.Equal(t, "panic recovered", logs.All()[0].Message)
	})
}

func TestFromGin_NoLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.NotNil(t, FromGin(c))
}
