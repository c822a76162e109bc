package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"secure_solicitudes/internal/client"
	"secure_solicitudes/internal/config"
	"secure_solicitudes/internal/handler"
	"secure_solicitudes/internal/middleware"
	"secure_solicitudes/internal/repository"
	"secure_solicitudes/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.LoadSolicitudesConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "solicitudes-service"))

	dbPool, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrateSolicitudes(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	// --- Outbound clients ---
	authClient := client.NewAuthClient(cfg.AuthServiceURL)
	certificates := client.NewSOAPCertificateClient(cfg.SOAPCalculatorURL, logger)

	solicitudRepo := repository.NewSolicitudRepository(dbPool)
	solicitudService := service.NewSolicitudService(solicitudRepo, certificates, logger)
	solicitudHandler := handler.NewSolicitudHandler(solicitudService, logger)

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())

	solicitudHandler.RegisterSolicitudRoutes(router.Group(""), middleware.RemoteAuthMiddleware(authClient, logger))
	router.GET("/health", handler.HealthCheck(dbPool))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			slog.String("port", cfg.ServerPort),
			slog.String("auth_service_url", cfg.AuthServiceURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exiting")
}
