package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/JRossell27/Job-tracker/config"
	v1 "github.com/JRossell27/Job-tracker/internal/delivery/http/v1"
	"github.com/JRossell27/Job-tracker/internal/gitsync"
	"github.com/JRossell27/Job-tracker/internal/repository/csvfile"
	"github.com/JRossell27/Job-tracker/internal/usecase"
	"github.com/JRossell27/Job-tracker/pkg/logger"
	"github.com/JRossell27/Job-tracker/pkg/validation"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job tracker backend", "port", cfg.Port, "data_dir", cfg.DataDir)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Log.Error("Failed to create data directory", "error", err)
		os.Exit(1)
	}

	// 3. Setup Repositories
	applicationRepo := csvfile.NewApplicationRepository(cfg.DataDir)
	userRepo := csvfile.NewUserRepository(cfg.DataDir)

	// 4. Setup Sync Agent
	syncAgent := gitsync.New(gitsync.Config{
		RepoPath:  cfg.DataDir,
		Token:     cfg.GitToken,
		Identity:  cfg.GitIdentity,
		Repo:      cfg.GitRepo,
		RemoteURL: cfg.GitRemoteURL,
	})
	if !syncAgent.Enabled() {
		logger.Log.Warn("Remote sync disabled - changes stay local")
	}

	// 5. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	authUC := usecase.NewAuthUsecase(userRepo, applicationRepo, cfg.JWTSecret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, userRepo, syncAgent, validate)
	statsUC := usecase.NewStatsUsecase(applicationRepo)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		ApplicationUC: applicationUC,
		StatsUC:       statsUC,
		Config:        cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
