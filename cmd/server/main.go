package main

import (
	"fmt"
	"os"
	"time"

	"github.com/avolkov/accountd/internal/api"
	"github.com/avolkov/accountd/internal/auth"
	"github.com/avolkov/accountd/internal/config"
	"github.com/avolkov/accountd/internal/database"
	"github.com/avolkov/accountd/internal/database/repository"
	"github.com/avolkov/accountd/internal/database/service"
	"github.com/avolkov/accountd/internal/handler"
	"github.com/avolkov/accountd/internal/logger"
	"github.com/avolkov/accountd/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [accountd] Starting user-account service...",
		"environment", cfg.AppEnv,
	)

	// 3. Connect to Database
	if err := database.ConnectDatabase(cfg, appLogger); err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	db := database.GetDatabase()

	// 4. Initialize Repositories
	userRepo := repository.NewUserRepository(db)

	// 5. Token service. An empty JWT_SECRET means a fresh random key, so a
	// restart invalidates every outstanding token.
	tokenService, err := auth.NewTokenService([]byte(cfg.JWTSecret))
	if err != nil {
		appLogger.Error("❌ Failed to initialize token service", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		appLogger.Info("🔑 [accountd] Using a random per-process signing key")
	}

	// 6. Initialize Services
	tokenTTL := time.Duration(cfg.AccessTokenExpiration) * time.Second
	authService := service.NewAuthService(userRepo, tokenService, tokenTTL, appLogger)
	userService := service.NewUserService(userRepo, appLogger)

	// 7. Initialize Handlers & Middleware
	authHandler := handler.NewAuthHandler(authService, appLogger)
	userHandler := handler.NewUserHandler(userService, appLogger)
	authMiddleware := middleware.NewAuthMiddleware(authService, appLogger)

	// 8. Setup Router & Start HTTP Server
	r := api.SetupRouter(cfg, authHandler, userHandler, authMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ApiServicePort)
	appLogger.Info("🌍 [accountd] HTTP Server running...", "port", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
