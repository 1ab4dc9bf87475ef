// Package main runs the credit plan engine HTTP server: the preview and
// submission endpoints the admin front-end calls, plus health and metrics.
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"credit-plan-engine/internal/config"
	"credit-plan-engine/internal/handlers"
	"credit-plan-engine/internal/services/cache"
	"credit-plan-engine/internal/services/credits"
	"credit-plan-engine/internal/services/database"
	"credit-plan-engine/internal/utils"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer utils.Sync()
	logger := utils.Logger

	if err := utils.SetBusinessTimeZone(cfg.BusinessTimeZone); err != nil {
		logger.Fatal("invalid business timezone", zap.Error(err))
	}

	// Database is optional: without it the server computes previews and
	// returns submissions without persisting them.
	db, err := database.New(cfg)
	if err != nil {
		logger.Warn("could not connect to database, running without persistence", zap.Error(err))
		db = nil
	} else {
		defer db.Close()
	}

	var previewCache *cache.PreviewCache
	if cfg.RedisAddr != "" {
		previewCache = cache.NewPreviewCache(cfg.RedisAddr, time.Duration(cfg.PreviewCacheTTLSec)*time.Second)
		defer previewCache.Close()
	}

	var repo *database.CreditRepository
	if db != nil {
		repo = database.NewCreditRepository(db)
	}
	svc := credits.NewService(repo, previewCache)

	planHandler := handlers.NewPlanHandler(svc)
	healthHandler := handlers.NewHealthHandler(db, previewCache)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler.Handle)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/api/plans/preview", planHandler.Preview)
	mux.HandleFunc("/api/credits", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			planHandler.SubmitCredit(w, r)
		default:
			planHandler.ListCredits(w, r)
		}
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(mux)

	addr := fmt.Sprintf("0.0.0.0:%d", cfg.Port)
	logger.Info("credit plan engine listening",
		zap.String("addr", addr),
		zap.String("stage", cfg.Stage),
		zap.String("business_tz", cfg.BusinessTimeZone),
		zap.Bool("persistence", db != nil),
		zap.Bool("preview_cache", previewCache != nil),
	)

	if err := http.ListenAndServe(addr, handler); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
