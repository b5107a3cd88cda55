package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"waste_tracker/internal/api"
	"waste_tracker/internal/app/service"
	"waste_tracker/internal/common/security"
	"waste_tracker/internal/domain/repository"
	"waste_tracker/internal/platform/config"
	"waste_tracker/internal/platform/database"
	"waste_tracker/internal/platform/logging"

	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration (fails fast without JWT_SECRET)
	config.Load()

	// 2. Initialize Logger
	logger, err := logging.New()
	if err != nil {
		log.Fatalf("Could not initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize JWT
	security.InitJWT()

	// 4. Initialize Database
	database.Connect()
	defer database.Close()
	logger.Info("database connected")

	// 5. Initialize Repositories
	userRepo := repository.NewPgUserRepository(database.DB)
	fallbackUsers, err := repository.NewFallbackUserTable()
	if err != nil {
		logger.Fatal("could not build fallback credential table", zap.Error(err))
	}
	wasteRepo := repository.NewPgWasteRepository(database.DB)

	// 6. Initialize Services
	authService := service.NewAuthService(userRepo, fallbackUsers, logger)
	wasteService := service.NewWasteService(wasteRepo, database.DB, logger)

	// 7. Initialize Router & HTTP Server
	router := api.NewRouter(authService, wasteService, logger)

	server := &http.Server{
		Addr:         ":" + config.AppConfig.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 8. Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("port", config.AppConfig.APIPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("could not listen", zap.String("port", config.AppConfig.APIPort), zap.Error(err))
		}
	}()

	<-stop // Wait for interrupt signal

	logger.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("server shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
