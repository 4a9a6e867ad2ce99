package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/quiz-service/internal/config"
	"github.com/SAP-F-2025/quiz-service/internal/handlers"
	"github.com/SAP-F-2025/quiz-service/internal/services"
	"github.com/SAP-F-2025/quiz-service/internal/utils"
	"github.com/SAP-F-2025/quiz-service/internal/validator"
	"github.com/SAP-F-2025/quiz-service/pkg"
	"github.com/gin-gonic/gin"
	"github.com/go-chi/cors"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)

	repo, closeStorage, err := pkg.NewQuizRepository(cfg)
	if err != nil {
		logger.LogError(err, "Failed to open storage", "driver", cfg.StorageDriver)
		return 1
	}
	defer closeStorage.Close()

	quizCache, closeCache, err := pkg.NewCache(cfg, slogger)
	if err != nil {
		logger.LogError(err, "Failed to connect to redis")
		return 1
	}
	defer closeCache.Close()

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.LogError(err, "Failed to create event publisher")
		return 1
	}
	defer publisher.Close()

	authenticator, issuer, err := pkg.NewAuthenticator(cfg)
	if err != nil {
		logger.LogError(err, "Failed to configure authentication", "provider", cfg.AuthProvider)
		return 1
	}

	adminCredentials, err := pkg.AdminCredentials(cfg)
	if err != nil {
		logger.LogError(err, "Failed to configure admin account")
		return 1
	}

	v := validator.New()
	quizService := services.NewQuizService(repo, quizCache, publisher, v.Quiz(), slogger, services.QuizServiceConfig{
		CacheTTL: cfg.CacheTTL,
	})
	serviceManager := services.NewServiceManager(
		quizService,
		services.NewAuthService(issuer, adminCredentials, slogger),
		services.NewImportExportService(quizService, slogger),
	)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), utils.ContextLogger(logger), utils.LoggerMiddleware(logger))
	handlers.NewHandlerManager(serviceManager, authenticator, logger).SetupRoutes(engine)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", utils.RequestIDHeader},
			ExposedHeaders:   []string{utils.RequestIDHeader, "Content-Disposition"},
			AllowCredentials: false,
			MaxAge:           300,
		})(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Quiz service listening", "addr", server.Addr, "storage", cfg.StorageDriver, "auth", cfg.AuthProvider)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	exitCode := 0
	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
	case err := <-errCh:
		logger.LogError(err, "Server error")
		exitCode = 1
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.LogError(err, "Graceful shutdown failed")
	}
	return exitCode
}
