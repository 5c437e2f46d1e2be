package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mytheresa/product-categories/app/catalog"
	"github.com/mytheresa/product-categories/app/categories"
	"github.com/mytheresa/product-categories/app/config"
	"github.com/mytheresa/product-categories/app/logging"
	"github.com/mytheresa/product-categories/app/users"
	"github.com/mytheresa/product-categories/models"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg config.Config, logger zerolog.Logger) error {
	data, err := loadReferenceData(ctx, cfg, logger)
	if err != nil {
		return err
	}
	logger.Info().
		Str("source", cfg.Source).
		Int("users", len(data.Users)).
		Int("categories", len(data.Categories)).
		Int("products", len(data.Products)).
		Msg("reference data loaded")

	view := catalog.NewController(data, logger)
	catalogHandler := catalog.NewCatalogHandler(view)
	categoryHandler := categories.NewCategoryHandler(view)
	userHandler := users.NewUserHandler(view)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /view", catalogHandler.HandleGetView)
	mux.HandleFunc("PUT /view/user/{id}", catalogHandler.HandleSelectUser)
	mux.HandleFunc("PUT /view/query", catalogHandler.HandleSetQuery)
	mux.HandleFunc("DELETE /view/query", catalogHandler.HandleClearQuery)
	mux.HandleFunc("POST /view/reset", catalogHandler.HandleReset)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)
	mux.HandleFunc("GET /users", userHandler.HandleGetAll)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           logging.Middleware(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type referenceLoader interface {
	Load(ctx context.Context) (*models.ReferenceData, error)
}

func loadReferenceData(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*models.ReferenceData, error) {
	var loader referenceLoader

	switch cfg.Source {
	case config.SourcePostgres:
		db, err := gorm.Open(postgres.Open(cfg.PostgresDSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("postgres handle: %w", err)
		}
		defer sqlDB.Close()

		repo := models.NewReferenceRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, err
		}
		if cfg.Seed {
			seeded, err := repo.Seed(ctx, models.SampleReferenceData())
			if err != nil {
				return nil, err
			}
			logger.Info().Bool("seeded", seeded).Msg("seed checked")
		}
		loader = repo
	default:
		loader = models.MemorySource{Data: models.SampleReferenceData()}
	}

	data, err := loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}
	return data, nil
}
