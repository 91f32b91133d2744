package relay

import (
	"net/http"
	"time"

	"github.com/ashendes/order-sidebar/internal/metrics"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/ashendes/order-sidebar/internal/viewmodel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// CORSHeaders are sent on every response so the sidebar iframe can call the relay
var CORSHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type",
	"Access-Control-Allow-Methods": "GET, POST, DELETE, OPTIONS",
}

// NewRouter builds the relay HTTP service. circuits are reported on /circuit-status.
func NewRouter(r *Relay, serviceName string, circuits ...*patterns.CircuitBreakerWrapper) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(requestLogger())
	router.Use(cors())
	router.Use(metrics.PrometheusMiddleware(serviceName))

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	router.GET("/search", r.handleSearch)
	router.POST("/extract-pdf-pages", r.handleExtractPages)
	router.OPTIONS("/extract-pdf-pages", preflight)
	router.POST("/vendor-order/compose", r.handleCompose)
	router.POST("/view", handleView)
	router.GET("/history", r.handleHistory)
	router.DELETE("/history", r.handleClearHistory)

	router.GET("/circuit-status", func(c *gin.Context) {
		status := gin.H{}
		for _, cb := range circuits {
			status[cb.Name()] = gin.H{
				"state": cb.GetState(),
				"value": cb.GetStateValue(),
			}
		}
		c.JSON(http.StatusOK, status)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func (r *Relay) handleSearch(c *gin.Context) {
	body, err := r.Search(c.Request.Context(), c.Query("searchTerm"), c.Query("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

func (r *Relay) handleExtractPages(c *gin.Context) {
	var req models.ExtractPagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}

	resp, err := r.ExtractPages(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (r *Relay) handleCompose(c *gin.Context) {
	req := models.ComposeRequest{Annotations: models.DefaultAnnotations()}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, r.Compose(req))
}

func handleView(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewmodel.Build(order))
}

func (r *Relay) handleHistory(c *gin.Context) {
	terms, err := r.History(c.Request.Context(), c.Query("username"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": terms})
}

func (r *Relay) handleClearHistory(c *gin.Context) {
	if err := r.ClearHistory(c.Request.Context(), c.Query("username")); err != nil {
		abortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

func abortWithError(c *gin.Context, err error) {
	status := StatusFor(err)
	fields := log.Fields{
		"path":       c.FullPath(),
		"status":     status,
		"request_id": c.GetString(RequestIDHeader),
	}
	if status >= http.StatusInternalServerError {
		log.WithFields(fields).Error("Request failed: ", err)
	} else {
		log.WithFields(fields).Warn("Request rejected: ", err)
	}
	c.AbortWithStatusJSON(status, ErrorBody(err))
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetString(RequestIDHeader),
		}).Debug("Request handled")
	}
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		for k, v := range CORSHeaders {
			c.Header(k, v)
		}
		c.Next()
	}
}
