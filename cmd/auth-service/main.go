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

	"secure_solicitudes/internal/config"
	"secure_solicitudes/internal/handler"
	"secure_solicitudes/internal/middleware"
	"secure_solicitudes/internal/repository"
	"secure_solicitudes/internal/service"
	"secure_solicitudes/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	cfg, err := config.LoadAuthConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String("service", "auth-service"))

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := config.AutoMigrateAuth(dbPool); err != nil {
		log.Fatalf("Failed to auto-migrate database: %v", err)
	}

	jwtUtil := utils.NewJWTUtil(cfg.SecretKey)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	roleRepo := repository.NewRoleRepository(dbPool)

	// --- Services ---
	authService := service.NewAuthService(userRepo, jwtUtil)
	userService := service.NewUserService(userRepo)
	roleService := service.NewRoleService(roleRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	roleHandler := handler.NewRoleHandler(roleService, logger)

	router := gin.Default()
	router.Use(middleware.RequestIDMiddleware())

	root := router.Group("")
	authHandler.RegisterAuthRoutes(root)
	userHandler.RegisterUserRoutes(root, middleware.JWTAuthMiddleware(jwtUtil))
	roleHandler.RegisterRoleRoutes(root)
	router.GET("/health", handler.HealthCheck(dbPool))

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// --- Graceful Shutdown ---
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
