// Package httpadapter exposes the use-case service as a JSON API.
package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"maninstone.dev/sudoku/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(uc *usecase.Service, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if logger != nil {
		r.Use(requestLogger(logger))
	}

	h := New(uc)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	{
		api.POST("/solve", h.handleSolve)
		api.POST("/validate", h.handleValidate)
		api.POST("/hint", h.handleHint)
		api.POST("/generate", h.handleGenerate)
		api.POST("/save", h.handleSave)
		api.GET("/load/:id", h.handleLoad)
		api.GET("/list", h.handleList)
	}
	return r
}

// requestLogger logs method, path, status, and duration per request.
func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"bytes", c.Writer.Size(),
			"dur", time.Since(start).Round(time.Millisecond),
		)
	}
}
