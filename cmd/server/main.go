package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lostlinked/internal/config"
	"lostlinked/internal/handler"
	"lostlinked/internal/middleware"
	"lostlinked/internal/model"
	"lostlinked/internal/repository"
	"lostlinked/internal/service"
	"lostlinked/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Default administrator account, created at startup only if absent.
// The password is an initial value; rotating it is an operational task.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, relying on environment variables")
	}

	ctx := context.Background()

	// --- Configuration ---
	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// --- Logging ---
	zerolog.TimeFieldFormat = time.RFC3339
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate database")
	}

	// --- Initialize Repositories ---
	userRepo := repository.NewUserRepository(dbPool)
	itemRepo := repository.NewItemRepository(dbPool)

	// --- Default Admin Bootstrap ---
	adminHash, err := utils.HashPassword(defaultAdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash default admin password")
	}
	err = userRepo.EnsureUser(ctx, &model.User{
		Username:     defaultAdminUsername,
		PasswordHash: adminHash,
		Role:         model.RoleAdmin,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to ensure default admin user")
	}

	// --- Initialize Utilities and Services ---
	jwtUtil := utils.NewJWTUtil(cfg.SecretKey, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, jwtUtil)
	itemService := service.NewItemService(itemRepo)

	// --- Initialize Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	itemHandler := handler.NewItemHandler(itemService)

	// --- Setup Gin Router ---
	router := gin.Default()

	// Simple CORS middleware (allow all, matching the deployed frontend setup)
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// --- Register Routes ---
	authMW := middleware.BearerAuth(authService)
	authHandler.RegisterRoutes(router)
	itemHandler.RegisterRoutes(router, authMW)

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.ServerPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exiting")
}
