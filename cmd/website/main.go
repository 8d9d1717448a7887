// Copyright (c) 2025-2026 AI Solutions
// SPDX-License-Identifier: GPL-3.0-or-later

// Command website runs the AI Solutions marketing site and admin panel.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/aisolutions/website/internal/auth"
	"github.com/aisolutions/website/internal/config"
	"github.com/aisolutions/website/internal/logging"
	"github.com/aisolutions/website/internal/render"
	"github.com/aisolutions/website/internal/session"
	"github.com/aisolutions/website/internal/store"
	"github.com/aisolutions/website/web"
)

// Default admin credentials for first startup. The password must be changed
// after the first login.
const (
	defaultAdminEmail    = "admin@aisolutions.com"
	defaultAdminPassword = "admin123"
	defaultAdminName     = "Administrator"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg, nil)

	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(db); err != nil {
		return err
	}

	// Warnings and errors are mirrored into the audit log table
	setupLogging(cfg, db)

	if err := seed(db, cfg); err != nil {
		return err
	}

	sessionManager := session.New(db, cfg.IsDevelopment())

	templatesFS, err := web.Templates()
	if err != nil {
		return err
	}
	renderer, err := render.New(render.Config{
		TemplatesFS:    templatesFS,
		SessionManager: sessionManager,
		IsDev:          cfg.IsDevelopment(),
	})
	if err != nil {
		return err
	}

	router, err := newRouter(cfg, db, renderer, sessionManager)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.ServerAddr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		slog.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}

// setupLogging installs the default slog logger. When a database handle is
// provided, warnings and errors are also persisted to the audit log.
func setupLogging(cfg *config.Config, db *sql.DB) {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}

	if db != nil {
		handler = logging.NewAuditHandler(handler, db)
	}

	slog.SetDefault(slog.New(handler))
}

// seed ensures the admin account and default settings exist, and optionally
// loads demo content.
func seed(db *sql.DB, cfg *config.Config) error {
	ctx := context.Background()
	queries := store.New(db)

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	created, err := queries.EnsureAdminUser(ctx, store.EnsureAdminUserParams{
		Email:        defaultAdminEmail,
		PasswordHash: hash,
		Name:         defaultAdminName,
	})
	if err != nil {
		return err
	}
	if created {
		slog.Warn("created default admin account, change the password after first login",
			"email", defaultAdminEmail)
	}

	if err := queries.EnsureDefaultSettings(ctx); err != nil {
		return err
	}

	if cfg.SeedDemo {
		admin, err := queries.GetUserByEmail(ctx, defaultAdminEmail)
		if err != nil {
			return err
		}
		if err := queries.SeedDemoContent(ctx, admin.ID); err != nil {
			return err
		}
	}

	return nil
}
