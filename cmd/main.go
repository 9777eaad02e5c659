package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/gns-club/quiz-battle-system/brackets"
	"github.com/gns-club/quiz-battle-system/config"
	"github.com/gns-club/quiz-battle-system/db"
	"github.com/gns-club/quiz-battle-system/handlers"
	api "github.com/gns-club/quiz-battle-system/routes"
	"github.com/gns-club/quiz-battle-system/services"
	"github.com/gns-club/quiz-battle-system/storage"
	"github.com/gns-club/quiz-battle-system/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Pick the snapshot backend: postgres when configured, the JSON flat
	// file otherwise.
	var persister storage.Persister
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				logger.Error("failed to close database connection", slog.Any("error", err))
			}
		}()

		persister, err = storage.NewPostgresPersister(context.Background(), dbConn)
		if err != nil {
			logger.Error("failed to initialize postgres persister", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("snapshot persistence: postgres")
	} else {
		persister = storage.NewFilePersister(cfg.DataFile, logger)
		logger.Info("snapshot persistence: file", slog.String("path", cfg.DataFile))
	}

	if cfg.BackupEnabled() {
		uploader, err := storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		persister = storage.NewBackupPersister(persister, uploader, "gns-quiz-data.json", logger)
		logger.Info("off-site snapshot backup enabled", slog.String("bucket", cfg.R2BucketName))
	}

	st, err := store.Open(context.Background(), persister)
	if err != nil {
		logger.Error("failed to open store", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("store opened")

	wsHub := brackets.NewHub()
	go wsHub.Run()
	logger.Info("WebSocket hub started")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	pairingGenerator := brackets.NewRandomPairingGenerator(rng)

	questionService := services.NewQuestionService(st)
	teamService := services.NewTeamService(st)
	bracketService := services.NewBracketService(st, pairingGenerator, wsHub, logger)
	battleService := services.NewBattleService(st, rng, wsHub, logger)
	leaderboardService := services.NewLeaderboardService(st)
	dashboardService := services.NewDashboardService(st)
	adminService := services.NewAdminService(st, logger)
	logger.Info("services initialized")

	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	teamHandler := handlers.NewTeamHandler(teamService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	matchHandler := handlers.NewMatchHandler(bracketService, leaderboardService)
	battleHandler := handlers.NewBattleHandler(battleService)
	leaderboardHandler := handlers.NewLeaderboardHandler(leaderboardService)
	adminHandler := handlers.NewAdminHandler(adminService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		logger,
		cfg.AllowedOrigins,
		dashboardHandler,
		teamHandler,
		questionHandler,
		matchHandler,
		battleHandler,
		leaderboardHandler,
		adminHandler,
		webSocketHandler,
	)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
