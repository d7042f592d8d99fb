package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/ai"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/api"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/config"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/db"
	"github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/game"
	mw "github.com/Abubakr-Alsheikh/promptcraft-dungeon/internal/middleware"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	store, err := db.NewStore(cfg.DBPath)
	if err != nil {
		logger.Error("failed to initialize database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	var local ai.Provider
	var health *ai.HealthTracker
	if cfg.OllamaURL != "" {
		ollama := ai.NewOllamaClient(cfg.OllamaURL, cfg.OllamaModel, cfg.AITimeout)
		local = ollama
		health = ai.NewHealthTracker(ollama, logger)
	}

	var cloud ai.Provider
	if cfg.GeminiAPIKey != "" {
		cloud = ai.NewCloudClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AITimeout)
	}

	pref := ai.PreferCloud
	if cfg.UseLocal {
		pref = ai.PreferLocal
	}

	orchestrator := ai.NewOrchestrator(local, cloud, health, logger)
	sessions := game.NewService(store, orchestrator, pref, logger)

	tokens := mw.NewTokenIssuer(cfg.SecretKey, 24*time.Hour)
	limiter := mw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	server := api.NewServer(sessions, tokens, limiter)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.Info("starting server", "addr", addr, "prefer_local", cfg.UseLocal)

	if err := http.ListenAndServe(addr, server); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
