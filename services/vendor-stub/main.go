// Command vendor-stub serves canned orders on the vendor find endpoint so the
// relay can be run and chaos-tested without vendor credentials.
package main

import (
	_ "embed"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ashendes/order-sidebar/internal/metrics"
	"github.com/ashendes/order-sidebar/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

const serviceName = "vendor-stub"

// errSimulatedFailure is returned by find while chaos mode rolls a failure
var errSimulatedFailure = errors.New("simulated vendor failure")

//go:embed orders.json
var fixture []byte

// Stub holds the canned orders and the chaos switches
type Stub struct {
	orders        []json.RawMessage
	ids           []models.ID
	chaosEnabled  bool
	chaosSlowMode bool
	chaosMutex    sync.RWMutex
	failureRate   float32
}

// NewStub loads the canned orders
func NewStub(raw []byte) (*Stub, error) {
	var orders []json.RawMessage
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	s := &Stub{orders: orders, failureRate: 0.4}
	for _, o := range orders {
		var head struct {
			OrderID models.ID `json:"order_id"`
		}
		if err := json.Unmarshal(o, &head); err != nil {
			return nil, fmt.Errorf("failed to parse fixture order: %w", err)
		}
		s.ids = append(s.ids, head.OrderID)
	}
	return s, nil
}

func main() {
	port := flag.Int("port", 8090, "listen port")
	flag.Parse()

	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)

	stub, err := NewStub(fixture)
	if err != nil {
		log.Fatal("Failed to load fixture: ", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Infof("Vendor stub starting on %s", addr)
	if err := stub.Router().Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// Router builds the stub HTTP service
func (s *Stub) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metrics.PrometheusMiddleware(serviceName))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/stub/status", s.getStatus)
	router.GET("/api/json/manage_orders/find", s.find)

	router.POST("/chaos/vendor/enable", s.enableChaos)
	router.POST("/chaos/vendor/disable", s.disableChaos)
	router.POST("/chaos/vendor/slow", s.enableSlowMode)
	router.POST("/chaos/vendor/slow/disable", s.disableSlowMode)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	return router
}

func (s *Stub) getStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service":         serviceName,
		"status":          "healthy",
		"orders":          len(s.orders),
		"chaos_enabled":   s.getChaosEnabled(),
		"chaos_slow_mode": s.getSlowMode(),
		"timestamp":       time.Now().Format(time.RFC3339),
	})
}

// find matches "Order-<id>" terms against order ids
func (s *Stub) find(c *gin.Context) {
	term := c.Query("conditions[1][string]")

	if err := s.simulateChaos(c.Request.Context()); err != nil {
		log.WithField("term", term).Warn("Chaos: Simulated vendor failure")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
		return
	}

	id := models.ID(term)
	if i := strings.IndexByte(term, '-'); i >= 0 {
		id = models.ID(term[i+1:])
	}

	matched := []json.RawMessage{}
	for i, oid := range s.ids {
		if oid == id {
			matched = append(matched, s.orders[i])
		}
	}

	log.WithFields(log.Fields{
		"term":    term,
		"matched": len(matched),
	}).Info("Stub search served")
	c.JSON(http.StatusOK, gin.H{"orders": matched})
}

func (s *Stub) enableChaos(c *gin.Context) {
	s.setChaosEnabled(true)
	metrics.ChaosFailureRate.WithLabelValues(serviceName).Set(1)

	log.Info("Chaos mode ENABLED for vendor stub")
	c.JSON(http.StatusOK, gin.H{
		"message": "Chaos mode enabled",
		"info":    fmt.Sprintf("%.0f%% of requests will fail randomly", s.failureRate*100),
	})
}

func (s *Stub) disableChaos(c *gin.Context) {
	s.setChaosEnabled(false)
	s.setSlowMode(false)
	metrics.ChaosFailureRate.WithLabelValues(serviceName).Set(0)
	metrics.ChaosSlowMode.WithLabelValues(serviceName).Set(0)

	log.Info("Chaos mode DISABLED for vendor stub")
	c.JSON(http.StatusOK, gin.H{"message": "Chaos mode disabled"})
}

func (s *Stub) enableSlowMode(c *gin.Context) {
	s.setSlowMode(true)
	metrics.ChaosSlowMode.WithLabelValues(serviceName).Set(1)

	log.Info("Slow mode ENABLED for vendor stub")
	c.JSON(http.StatusOK, gin.H{
		"message": "Slow mode enabled",
		"info":    "Requests will have 5-10 second delays",
	})
}

func (s *Stub) disableSlowMode(c *gin.Context) {
	s.setSlowMode(false)
	metrics.ChaosSlowMode.WithLabelValues(serviceName).Set(0)

	log.Info("Slow mode DISABLED for vendor stub")
	c.JSON(http.StatusOK, gin.H{"message": "Slow mode disabled"})
}

func (s *Stub) setChaosEnabled(enabled bool) {
	s.chaosMutex.Lock()
	defer s.chaosMutex.Unlock()
	s.chaosEnabled = enabled
}

func (s *Stub) getChaosEnabled() bool {
	s.chaosMutex.RLock()
	defer s.chaosMutex.RUnlock()
	return s.chaosEnabled
}

func (s *Stub) setSlowMode(enabled bool) {
	s.chaosMutex.Lock()
	defer s.chaosMutex.Unlock()
	s.chaosSlowMode = enabled
}

func (s *Stub) getSlowMode() bool {
	s.chaosMutex.RLock()
	defer s.chaosMutex.RUnlock()
	return s.chaosSlowMode
}

func (s *Stub) simulateChaos(ctx context.Context) error {
	if s.getSlowMode() {
		delay := time.Duration(5000+rand.Intn(5000)) * time.Millisecond
		log.WithField("delay_ms", delay.Milliseconds()).Debug("Chaos: Simulating slow response")
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if s.getChaosEnabled() && rand.Float32() < s.failureRate {
		return errSimulatedFailure
	}
	return nil
}
