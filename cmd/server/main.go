package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/capyhoc/capyhoc/internal/api"
	"github.com/capyhoc/capyhoc/internal/assistant"
	"github.com/capyhoc/capyhoc/internal/library"
	"github.com/capyhoc/capyhoc/internal/platform/cache"
	"github.com/capyhoc/capyhoc/internal/platform/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	// The sheet cache is optional; a broken Redis must not keep content from
	// loading, the fetcher just goes straight to the network.
	var sheetCache *cache.Cache
	if cfg.Cache.URL != "" {
		sheetCache, err = cache.New(ctx, cfg.Cache.URL)
		if err != nil {
			slog.Warn("cache unavailable, continuing without it", "error", err)
		} else {
			defer sheetCache.Close()
		}
	}

	bundle, err := library.LoadBundle()
	if err != nil {
		slog.Error("failed to load fallback bundle", "error", err)
		os.Exit(1)
	}

	fetcher := library.NewFetcher(
		&http.Client{Timeout: cfg.Sheets.FetchTimeout},
		sheetCache,
		cfg.Cache.TTL,
	)
	lib := library.New(fetcher, library.Sources{
		Videos:     cfg.Sheets.Videos,
		Ebooks:     cfg.Sheets.Ebooks,
		Lectures:   cfg.Sheets.Lectures,
		Documents:  cfg.Sheets.Documents,
		Worksheets: cfg.Sheets.Worksheets,
	}, bundle)

	// Initial load settles before serving; failures inside fall back per
	// collection, so this can only delay startup, never abort it.
	lib.Load(ctx)

	provider := assistant.NewTextProvider(
		assistant.WithEndpoint(cfg.Assistant.Endpoint),
		assistant.WithHTTPClient(&http.Client{Timeout: cfg.Assistant.Timeout}),
	)
	chain := assistant.NewChain(provider, cfg.Assistant.Models...)

	handler := api.NewHandler(lib, chain, assistant.NewTranscriptStore())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}

func setupLogger(cfg config.LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
