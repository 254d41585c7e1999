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

	authgoogle "budget/internal/auth/google"
	"budget/internal/config"
	apphttp "budget/internal/http"
	"budget/internal/session"
	sessmem "budget/internal/session/memory"
	sessredis "budget/internal/session/redis"
	ports "budget/internal/sheets"
	gsheet "budget/internal/sheets/google"
	sheetmem "budget/internal/sheets/memory"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	verifier, err := authgoogle.New(ctx, cfg.GoogleClientID)
	if err != nil {
		logger.Error("Failed to initialize Google token verifier", "error", err)
		os.Exit(1)
	}

	var (
		columns  ports.ColumnReader
		appender ports.EntryAppender
	)
	switch cfg.SheetsBackend {
	case "google":
		cli, err := gsheet.New(ctx, gsheet.Config{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			SheetName:       cfg.Sheets.SheetName,
			CredentialsJSON: cfg.Sheets.CredentialsJSON,
			CredentialsFile: cfg.Sheets.CredentialsFile,
		})
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err, "backend", cfg.SheetsBackend)
			os.Exit(1)
		}
		columns, appender = cli, cli
		logger.Info("Initialized Google Sheets backend", "spreadsheet_id", cfg.Sheets.SpreadsheetID, "sheet", cfg.Sheets.SheetName)
	default:
		store := sheetmem.NewSeeded()
		columns, appender = store, store
		logger.Info("Initialized memory sheets backend")
	}

	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("Failed to connect to Redis", "error", err, "addr", cfg.Redis.Addr)
			os.Exit(1)
		}
		sessions = sessredis.New(rdb)
		logger.Info("Initialized Redis session store", "addr", cfg.Redis.Addr)
	default:
		sessions = sessmem.New()
		logger.Info("Initialized memory session store")
	}

	srv := apphttp.NewServer(apphttp.Options{
		Addr:            ":" + cfg.Port,
		CookieSecret:    []byte(cfg.SessionSecret),
		SecureCookies:   !cfg.IsDev(),
		SessionTTL:      cfg.SessionTTL,
		CategoriesRange: cfg.Sheets.CategoriesRange,
		AuthUsersRange:  cfg.Sheets.AuthUsersRange,
		StaticDir:       cfg.StaticDir,
	}, verifier, columns, appender, sessions)

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting budget server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
