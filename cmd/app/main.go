package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shipdesk/cmd"
	httpin "shipdesk/internal/adapters/in/http"
	"shipdesk/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("Error loading .env file", "error", err)
		os.Exit(1)
	}

	configs, err := cmd.LoadConfig()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: configs.SlogLevel()}))
	slog.SetDefault(logger)

	if err = run(configs, logger); err != nil {
		logger.Error("Application stopped", "error", err)
		os.Exit(1)
	}
}

func run(configs cmd.Config, logger *slog.Logger) error {
	gormDB, err := openDatabase(configs)
	if err != nil {
		return err
	}
	if err = postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := httpin.NewRouter(app.CreateHTTPServer(), app.CreateRouterConfig())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "port", configs.HTTPPort)
		serverErr <- e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort))
	}()

	select {
	case err = <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("Shutting down")
	return e.Shutdown(shutdownCtx)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch configs.DBDriver {
	case cmd.DBDriverSQLite:
		dialector = sqlite.Open(configs.SQLitePath)
	default:
		dialector = gorm_postgres.Open(configs.PostgresDSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gorm_logger.Default.LogMode(gorm_logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", configs.DBDriver, err)
	}
	return db, nil
}
