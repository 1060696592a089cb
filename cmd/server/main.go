package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"mmgp/internal/cache"
	"mmgp/internal/config"
	"mmgp/internal/service"
	"mmgp/internal/transport/rest"
	"mmgp/internal/transport/ws"
)

// @title MMGP Maturity Assessment API
// @version 1.0
// @description Project management maturity self-assessment (MMGP levels 2 to 5)
// @host localhost:8080
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log.Println("started")
	ctx := context.Background()
	cfg := config.Load()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal("Failed to open record store:", err)
	}
	defer st.close()
	log.Printf("Record store: %s", cfg.StoreBackend)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize caches
	wizardCache := cache.NewWizardCache(rdb, cfg.WizardTTL)
	historyCache := cache.NewHistoryCache(rdb, cfg.HistoryCacheTTL)

	// Initialize services
	authSvc := service.NewAuthService(st.users, cfg.JWTSecret, cfg.TokenTTL)
	submissionSvc := service.NewSubmissionService(st.responses, historyCache)
	wizardSvc := service.NewWizardService(wizardCache, submissionSvc)
	historySvc := service.NewHistoryService(st.responses, historyCache)
	reportSvc := service.NewReportService(historySvc)
	diagSvc := service.NewDiagnosticsService(map[string]service.Pinger{
		"store": st.responses,
		"redis": service.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}),
	})

	// Inject notifier (wsHub implements service.Notifier)
	wizardSvc.SetNotifier(wsHub)

	container := &rest.Container{
		Config:             cfg,
		AuthService:        authSvc,
		WizardService:      wizardSvc,
		SubmissionService:  submissionSvc,
		HistoryService:     historySvc,
		ReportService:      reportSvc,
		DiagnosticsService: diagSvc,
		WSHub:              wsHub,
	}

	router := rest.NewRouter(container)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.Port)
		log.Println("Endpoints:")
		log.Println("  POST /v1/auth/signup, /v1/auth/login")
		log.Println("  GET  /v1/questionnaire")
		log.Println("  POST /v1/wizard/sessions")
		log.Println("  POST/GET /v1/responses")
		log.Println("  GET  /v1/responses/{id}/report")
		log.Println("  GET  /v1/diagnostics/connection")
		log.Println("  WS   /v1/ws/wizard/{sessionId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
