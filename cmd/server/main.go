package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elevatescripts/backend/internal/config"
	"github.com/elevatescripts/backend/internal/handlers"
	"github.com/elevatescripts/backend/internal/store"
)

func main() {
	// Configure slog as early as possible in main.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Pick the store. No configured database means the in-memory fallback:
	// the shop still runs, nothing persists.
	var db store.Store
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, running on the in-memory store; orders will not be persisted")
		db = store.NewMemory()
	} else {
		sqlStore, err := store.OpenSQLite(cfg.DatabaseURL)
		if err != nil {
			slog.Warn("Failed to open database, falling back to the in-memory store", "error", err)
			db = store.NewMemory()
		} else {
			defer sqlStore.Close()
			db = sqlStore
		}
	}

	// 3. Seed defaults. Best-effort, never blocks startup.
	store.Seed(context.Background(), db)

	// 4. Router
	api := handlers.NewAPI(db, cfg)
	router := handlers.NewRouter(api)

	// 5. Start Server with Graceful Shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("Server starting", "port", cfg.Port, "store", db.Kind())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to listen and serve", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited gracefully.")
}
