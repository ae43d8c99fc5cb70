package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/tannu371/getting-to-know-kanji/config"
	"github.com/tannu371/getting-to-know-kanji/controllers"
	"github.com/tannu371/getting-to-know-kanji/database"
	"github.com/tannu371/getting-to-know-kanji/middleware"
	"github.com/tannu371/getting-to-know-kanji/repository"
	"github.com/tannu371/getting-to-know-kanji/routes"
	"github.com/tannu371/getting-to-know-kanji/sender"
	servicepkg "github.com/tannu371/getting-to-know-kanji/services"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	db, err := database.Connect(cfg.DataDir, logger)
	if err != nil {
		logger.Fatal("Failed to open order ledger", zap.Error(err))
	}
	defer database.Close(db) //nolint:errcheck

	// DI chain
	orderRepo := repository.NewGormOrderRepo(db)
	stripeSvc := servicepkg.NewStripeService(cfg.StripeSecretKey, cfg.StripeWebhookKey, cfg.SiteURL)
	recorder := servicepkg.NewOrderRecorder(orderRepo, logger)

	var emailSender sender.EmailSender
	smtpSender, err := sender.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPSecure, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	if err != nil {
		logger.Warn("SMTP not configured, contact form disabled", zap.Error(err))
	} else {
		emailSender = smtpSender
	}

	checkoutController := controllers.NewCheckoutController(stripeSvc, logger)
	webhookController := controllers.NewWebhookController(stripeSvc, recorder, logger)
	contactController := controllers.NewContactController(emailSender, cfg.ContactReceiver, logger)
	orderController := controllers.NewOrderController(orderRepo, logger)
	filesController := controllers.NewFilesController(cfg.PublicDir, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "storefront"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterStoreRoutes(r, checkoutController, webhookController, contactController, orderController, filesController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Storefront service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down storefront service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}
