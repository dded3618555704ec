package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Prathamesh666/RAB-Matheran-Website/internal/config"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/handler"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/middleware"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/notification"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/repository"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/service"
	"github.com/Prathamesh666/RAB-Matheran-Website/internal/storage"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/logger"
	"github.com/Prathamesh666/RAB-Matheran-Website/pkg/metrics"
)

func main() {
	log := logger.NewLogger("guesthouse-web")
	cfg := config.Load()

	db, err := setupDatabase(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to prepare database connection: %v", err)
	}
	defer db.Close()

	if err := pingDatabase(db); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	m := metrics.NewMetrics("web")
	go reportDBPoolStats(db, m)

	bookingRepo := repository.NewBookingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	contactRepo := repository.NewContactRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient)

	var photos storage.PhotoStore
	if cfg.FTP.Host != "" {
		ftpStore := storage.NewFTPPhotoStore(cfg.FTP)
		defer ftpStore.Close()
		photos = ftpStore
	} else {
		log.Warn("FTP not configured, photos are kept in memory only")
		photos = storage.NewMemoryPhotoStore()
	}

	replyURL := func(replyType, guestEmail string) string {
		return fmt.Sprintf("%s/reply/%s/%s", cfg.ExternalURL, replyType, url.PathEscape(guestEmail))
	}
	dispatcher := notification.NewDispatcher(cfg.Mail, replyURL, log, m)
	smsChannel := notification.NewSMSChannel(cfg.SMS, log)

	bookingService := service.NewBookingService(bookingRepo, dispatcher, smsChannel, cfg.SMS.AdminPhone, log)
	feedbackService := service.NewFeedbackService(feedbackRepo, photos, dispatcher, log)
	contactService := service.NewContactService(contactRepo, dispatcher, log)
	galleryService := service.NewGalleryService(categoryRepo, photos, log)
	authService := service.NewAuthService(adminRepo, sessionRepo, cfg.Redis.SessionTTL, log)
	replyService := service.NewReplyService(dispatcher)

	h, err := handler.NewHandler(
		bookingService, feedbackService, contactService,
		galleryService, authService, replyService,
		sessionRepo, log,
	)
	if err != nil {
		log.Fatalf("Failed to build handler: %v", err)
	}

	site := middleware.Chain(h.Routes(),
		middleware.LoggingMiddleware(log),
		metrics.Middleware(m),
	)

	server := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      site,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:    ":" + cfg.MetricsPort,
		Handler: promhttp.Handler(),
	}

	go func() {
		log.Infof("Metrics listening on port %s", cfg.MetricsPort)
		if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Errorf("Metrics server stopped: %v", err)
		}
	}()

	go func() {
		log.Infof("Guest house web listening on port %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to serve HTTP: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Errorf("Shutdown error: %v", err)
	}
	metricsServer.Shutdown(ctx)
	log.Info("Server stopped")
}

func setupDatabase(cfg config.DB) (*sql.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4&collation=utf8mb4_unicode_ci",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database,
	)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func pingDatabase(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

func reportDBPoolStats(db *sql.DB, m *metrics.Metrics) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()
	for range ticker.C {
		stats := db.Stats()
		m.RecordDBPoolStats(stats.OpenConnections, stats.InUse, stats.Idle, stats.WaitCount, stats.WaitDuration)
	}
}
