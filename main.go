package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/danielhkuo/bio-mbti/classifier"
	"github.com/danielhkuo/bio-mbti/cliparse"
	"github.com/danielhkuo/bio-mbti/router"
	"github.com/danielhkuo/bio-mbti/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	// Open storage (optional)
	participations, closeStore, err := store.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("storage setup failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	if !cfg.StorageEnabled() {
		slog.Warn("storage disabled: submissions will be rejected and stats will be empty")
	} else {
		slog.Info("storage ready", "type", cfg.DatabaseType)
	}
	if cfg.FingerprintSalt == "" {
		slog.Warn("FINGERPRINT_SALT is empty; fingerprints use an unsalted key")
	}

	// Classifier backend
	gen := newGenerator(cfg)

	// Create router
	handler := router.NewRouter(participations, gen, cfg)

	// Create server
	server := http.Server{
		Handler:           handler,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port, "mock", cfg.UseMock, "env", cfg.Env)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// newGenerator picks the mock, Gemini, or no generator
func newGenerator(cfg cliparse.Config) classifier.Generator {
	if cfg.UseMock {
		slog.Info("classifier in mock mode", "delay", cfg.MockDelay)
		return classifier.MockGenerator{Delay: cfg.MockDelay}
	}

	if cfg.GeminiAPIKey == "" {
		slog.Warn("USE_MOCK is false but GEMINI_API_KEY is not set; classification requests will fail")
		return nil
	}

	gemini, err := classifier.NewGeminiGenerator(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		slog.Error("Gemini client setup failed; classification requests will fail", "error", err)
		return nil
	}
	slog.Info("classifier using Gemini", "model", gemini.Model())
	return gemini
}

// setupLogger installs the default slog logger
func setupLogger(cfg cliparse.Config) {
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		h = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}
