package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/ashendes/order-sidebar/internal/analytics"
	"github.com/ashendes/order-sidebar/internal/config"
	"github.com/ashendes/order-sidebar/internal/history"
	"github.com/ashendes/order-sidebar/internal/patterns"
	"github.com/ashendes/order-sidebar/internal/pdfx"
	"github.com/ashendes/order-sidebar/internal/relay"
	"github.com/ashendes/order-sidebar/internal/vendorapi"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(log.InfoLevel)
}

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	gin.SetMode(gin.ReleaseMode)

	service := cfg.Server.Name
	vendor := vendorapi.NewClient(cfg.Vendor, service)
	downloader := pdfx.NewDownloader(cfg.PDF.DownloadTimeout, cfg.PDF.MaxBytes, service)
	pdfService := pdfx.NewService(
		downloader,
		pdfx.NewExtractor(),
		patterns.NewBulkhead(cfg.PDF.MaxConcurrent, "pdf", service),
	)

	r := relay.New(
		vendor,
		analytics.NewClient(cfg.Analytics),
		history.NewRecorder(historyStore(cfg.Redis)),
		pdfService,
	)

	router := relay.NewRouter(r, service, vendor.Circuit(), downloader.Circuit())

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.WithFields(log.Fields{
		"vendor_url":        cfg.Vendor.BaseURL,
		"analytics_enabled": cfg.Analytics.Enabled(),
		"redis":             cfg.Redis.Addr != "",
	}).Info("Order relay starting on ", addr)

	if err := router.Run(addr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

// historyStore uses Redis when configured and reachable, else process memory
func historyStore(cfg config.RedisConfig) history.Store {
	if cfg.Addr == "" {
		return history.NewMemoryStore()
	}
	store := history.NewRedisStore(cfg.Addr, cfg.Password, cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.WithField("addr", cfg.Addr).Warn("Redis unavailable, keeping search history in memory: ", err)
		return history.NewMemoryStore()
	}
	return store
}
