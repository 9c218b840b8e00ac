// Package api is the HTTP transport: it materializes request bodies,
// hands (method, path, payload) to the router and serializes the
// outcome. CORS, logging, recovery and request IDs live here; no domain
// rules do.
package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scoop-api/internal/board"
	"github.com/scoop-api/internal/models"
	"github.com/scoop-api/internal/router"
)

// NewEngine creates and configures the Gin engine.
func NewEngine(rt *router.Router, b *board.Board, log zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	// Middleware
	engine.Use(recoveryMiddleware(log))
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware(log))
	engine.Use(corsMiddleware())

	// Operational endpoints
	engine.GET("/health", healthCheck)
	engine.GET("/stats", statsHandler(b))

	// The whole board surface dispatches through the route table.
	engine.NoRoute(dispatchHandler(rt, log))

	return engine
}

// healthCheck returns the health status.
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "scoop-api",
	})
}

// statsHandler reports live entity counts.
func statsHandler(b *board.Board) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, articles, comments := b.Stats()
		c.JSON(http.StatusOK, gin.H{
			"users":     users,
			"articles":  articles,
			"comments":  comments,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// dispatchHandler feeds a request through the route table. Bodies are
// decoded only for methods that carry one; a body that fails to decode
// never reaches the board.
func dispatchHandler(rt *router.Router, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload *models.Payload
		method := c.Request.Method

		if method != http.MethodGet && method != http.MethodDelete {
			body, err := io.ReadAll(c.Request.Body)
			if err != nil {
				c.Status(http.StatusBadRequest)
				return
			}
			if len(body) > 0 {
				payload = &models.Payload{}
				if err := json.Unmarshal(body, payload); err != nil {
					log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Malformed request body")
					c.Status(http.StatusBadRequest)
					return
				}
			}
		}

		result := rt.Dispatch(method, c.Request.URL.Path, payload)
		if result.Body == nil {
			c.Status(result.Status)
			return
		}
		c.JSON(result.Status, result.Body)
	}
}

// recoveryMiddleware handles panics.
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// requestIDMiddleware stamps each request with an ID, minting one when
// the client did not send X-Request-ID.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// loggingMiddleware logs requests.
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString("request_id")).
			Msg("Request completed")
	}
}

// corsMiddleware emits the header set the thin client expects and
// answers preflights before they reach the dispatcher.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Writer.Header()
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "X-Requested-With, X-HTTP-Method-Override, Content-Type, Accept")

		if c.Request.Method == http.MethodOptions {
			header.Set("Access-Control-Max-Age", "86400")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
