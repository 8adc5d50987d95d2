package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dosada05/family-games/brackets"
	"github.com/Dosada05/family-games/config"
	"github.com/Dosada05/family-games/db"
	"github.com/Dosada05/family-games/handlers"
	"github.com/Dosada05/family-games/repositories"
	api "github.com/Dosada05/family-games/routes"
	"github.com/Dosada05/family-games/services"
	"github.com/Dosada05/family-games/storage"
	"github.com/go-chi/chi/v5"
)

func main() {
	// Until the configured level is known.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage_driver", string(cfg.StorageDriver)))

	repo, closer, err := openSnapshotRepository(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize snapshot storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if closer == nil {
			return
		}
		if err := closer.Close(); err != nil {
			logger.Error("failed to close snapshot storage", slog.Any("error", err))
		} else {
			logger.Info("snapshot storage closed")
		}
	}()

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	wsHub := brackets.NewHub()
	go wsHub.Run(appCtx)
	logger.Info("WebSocket Hub started")

	competitionService := services.NewCompetitionService(
		repo,
		wsHub,
		brackets.NewSingleEliminationGenerator(nil),
		brackets.NewOverallScoreGenerator(),
		cfg.DefaultPoints,
		logger,
	)

	loadCtx, cancelLoad := context.WithTimeout(appCtx, 15*time.Second)
	err = competitionService.Load(loadCtx)
	cancelLoad()
	if err != nil {
		logger.Error("failed to load competition state", slog.Any("error", err))
		os.Exit(1)
	}

	teamHandler := handlers.NewTeamHandler(competitionService)
	gameHandler := handlers.NewGameHandler(competitionService)
	bracketHandler := handlers.NewBracketHandler(competitionService)
	leaderboardHandler := handlers.NewLeaderboardHandler(competitionService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, competitionService)
	logger.Info("HTTP handlers initialized")

	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		cfg.AllowedOrigins,
		teamHandler,
		gameHandler,
		bracketHandler,
		leaderboardHandler,
		webSocketHandler,
	)
	logger.Info("Routes configured")

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

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}

	// Hijacked websocket connections are not covered by Shutdown.
	stopApp()
	logger.Info("application exited")
}

// openSnapshotRepository builds the storage backend picked by STORAGE_DRIVER.
// The returned closer is nil when there is nothing to release.
func openSnapshotRepository(cfg *config.Config, logger *slog.Logger) (repositories.SnapshotRepository, io.Closer, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.EnsureSchema(ctx, dbConn); err != nil {
			_ = dbConn.Close()
			return nil, nil, err
		}
		logger.Info("database connection established")
		return repositories.NewPostgresSnapshotRepository(dbConn), dbConn, nil

	case config.StorageR2:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		store, err := storage.NewCloudflareR2Store(ctx, storage.CloudflareR2Config{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.BucketName,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
			Prefix:          cfg.R2.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Cloudflare R2 snapshot store initialized", slog.String("bucket", cfg.R2.BucketName))
		if publicURL := store.GetPublicURL(repositories.KeyTeams + ".json"); publicURL != "" {
			logger.Info("snapshots are publicly readable", slog.String("teams_url", publicURL))
		}
		return repositories.NewObjectSnapshotRepository(store), nil, nil

	default:
		logger.Warn("using in-memory snapshot storage; state is lost on restart")
		return repositories.NewMemorySnapshotRepository(), nil, nil
	}
}
