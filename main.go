package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hotel-console/auth"
	"hotel-console/config"
	"hotel-console/models"
	"hotel-console/routes"
	"hotel-console/services"
	"hotel-console/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.Any("error", err))
		os.Exit(1)
	}
	log := config.NewLogger(cfg)
	slog.SetDefault(log)

	ctx := context.Background()

	backend, closeStorage, err := config.OpenStorage(ctx, cfg, log)
	if err != nil {
		log.Error("storage connect failed", slog.String("driver", cfg.StorageDriver), slog.Any("error", err))
		os.Exit(1)
	}
	defer closeStorage(context.Background())
	log.Info("storage ready", slog.String("driver", cfg.StorageDriver))

	sessions, closeSessions, err := config.OpenSessions(ctx, cfg)
	if err != nil {
		log.Error("session store connect failed", slog.String("driver", cfg.SessionDriver), slog.Any("error", err))
		os.Exit(1)
	}
	defer closeSessions(context.Background())

	store := storage.NewStore(backend, log)
	if cfg.Seed {
		seed, err := config.DefaultSeed(time.Now())
		if err != nil {
			log.Error("build seed data failed", slog.Any("error", err))
			os.Exit(1)
		}
		seeded, err := store.Initialize(ctx, seed)
		if err != nil {
			log.Error("seeding failed", slog.Any("error", err))
			os.Exit(1)
		}
		if seeded {
			log.Info("sample data written")
		}
	}

	users := storage.NewCollection[models.User](store, models.UsersKey)
	router := routes.SetupRouter(cfg, routes.Services{
		Auth:         auth.NewService(users, sessions, log),
		Clients:      services.NewClientService(store, log),
		Rooms:        services.NewRoomService(store, log),
		Reservations: services.NewReservationService(store, log),
		Catalog:      services.NewServiceCatalog(store, log),
		Staff:        services.NewStaffService(store, log),
		Dashboard:    services.NewDashboardService(store),
	}, log)

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server starting", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", slog.Any("error", err))
		return
	}
	log.Info("server stopped")
}
