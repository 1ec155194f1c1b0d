package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/intake/internal/config"
	"github.com/MrJamesThe3rd/intake/internal/database"
	intakeHttp "github.com/MrJamesThe3rd/intake/internal/http"
	submissionHandler "github.com/MrJamesThe3rd/intake/internal/http/submission"
	uploadHandler "github.com/MrJamesThe3rd/intake/internal/http/upload"
	"github.com/MrJamesThe3rd/intake/internal/media"
	"github.com/MrJamesThe3rd/intake/internal/notify"
	"github.com/MrJamesThe3rd/intake/internal/submission"
	submissionStore "github.com/MrJamesThe3rd/intake/internal/submission/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		slog.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	defer closeRepo()

	var notifier submission.Notifier
	if cfg.MailEnabled() {
		notifier = notify.NewMailer(notify.SMTPOptions{
			Host:     cfg.Mail.Host,
			Port:     cfg.Mail.Port,
			Username: cfg.Mail.Username,
			Password: cfg.Mail.Password,
			From:     cfg.Mail.From,
			To:       cfg.Mail.To,
		})
	} else {
		slog.Warn("mail not configured, submissions will not be emailed")
	}

	var (
		submissionService = submission.NewService(repo, notifier)
		cloudinary        = media.NewCloudinary(media.Options{
			CloudName: cfg.Media.CloudName,
			APIKey:    cfg.Media.APIKey,
			APISecret: cfg.Media.APISecret,
			Folder:    cfg.Media.Folder,
			BaseURL:   cfg.Media.BaseURL,
		})
	)

	router := intakeHttp.New(
		cfg.CORS.AllowedOrigins,
		submissionHandler.NewHandler(submissionService),
		uploadHandler.NewHandler(cloudinary, cfg.Server.MaxUploadBytes),
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout * 2,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "name", cfg.App.Name, "port", srv.Addr, "store", cfg.Store.Driver)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func openRepository(ctx context.Context, cfg *config.Config) (submission.Repository, func(), error) {
	if cfg.Store.Driver == config.StoreMemory {
		return submissionStore.NewMemory(), func() {}, nil
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return nil, nil, err
	}

	if err := database.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return submissionStore.New(db), func() { closeDB(db) }, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("failed to close database", "error", err)
	}
}
