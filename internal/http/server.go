// Package http exposes the JSON API over gin.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"expensetracker/internal/report"
	"expensetracker/internal/store"
)

// Server wires the API routes around a transaction store.
type Server struct {
	store    store.TransactionStore
	renderer *report.Renderer
	engine   *gin.Engine
}

// NewServer configures middleware and routes, returning a ready-to-serve API.
func NewServer(st store.TransactionStore, allowedOrigins []string) *Server {
	s := &Server{
		store:    st,
		renderer: report.NewRenderer(),
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger())
	engine.Use(cors.New(corsConfig(allowedOrigins)))

	api := engine.Group("/api")
	{
		api.GET("/", s.handleRoot)
		api.POST("/transactions", s.handleCreateTransaction)
		api.GET("/transactions", s.handleListTransactions)
		api.DELETE("/transactions/:id", s.handleDeleteTransaction)
		api.GET("/summary", s.handleSummary)
		api.GET("/analytics", s.handleAnalytics)
		api.POST("/reports/pdf", s.handleReportPDF)
	}
	engine.GET("/health", handleHealth)

	s.engine = engine
	return s
}

// Handler returns the router for mounting on an http.Server.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func corsConfig(allowedOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		// gin-contrib/cors refuses credentials together with a wildcard.
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cfg
}

// requestLogger emits one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.InfoContext(c.Request.Context(), "Request completed",
			"method", c.Request.Method,
			"url", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP())
	}
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
