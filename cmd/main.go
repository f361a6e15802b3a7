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

	"mailflow/internal/adapter/dispatcher"
	httpadapter "mailflow/internal/adapter/http"
	"mailflow/internal/adapter/postgres"
	"mailflow/internal/adapter/smtp"
	"mailflow/internal/adapter/usecase"
	"mailflow/internal/config"
	"mailflow/internal/db"
)

// main loads configuration, prepares the database, starts the automation
// dispatcher and serves the HTTP API until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout))
	slog.SetDefault(logger)

	if err = run(cfg, logger); err != nil {
		logger.Error("fatal", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	if cfg.Psql.RunMigrations {
		if err := db.Migrate(cfg.Psql.Addr.String()); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied successfully")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer pool.Close()

	if cfg.Psql.Seed {
		if err = db.Seed(ctx, pool); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
		logger.Info("demo data seeded")
	}

	accounts := postgres.NewAccountRepository(pool)
	audiences := postgres.NewAudienceRepository(pool)
	campaigns := postgres.NewCampaignRepository(pool)
	automations := postgres.NewAutomationRepository(pool)

	handler := httpadapter.NewHandler(httpadapter.UseCases{
		Accounts:    usecase.NewAccountUseCase(accounts),
		Audiences:   usecase.NewAudienceUseCase(audiences),
		Campaigns:   usecase.NewCampaignUseCase(campaigns),
		Automations: usecase.NewAutomationUseCase(automations, campaigns, audiences, audiences),
	}, logger)

	var disp *dispatcher.Dispatcher
	if cfg.Dispatch.Enabled {
		loc, err := cfg.Dispatch.Location()
		if err != nil {
			return err
		}
		mailer, err := smtp.NewMailer(cfg.SMTP)
		if err != nil {
			return err
		}
		disp = dispatcher.New(dispatcher.Params{
			Automations: automations,
			Campaigns:   campaigns,
			Recipients:  audiences,
			Mailer:      mailer,
			From:        cfg.SMTP.From,
			Location:    loc,
			Logger:      logger.With(slog.String("component", "dispatcher")),
		})
		if err = disp.Start(ctx, cfg.Dispatch.Schedule); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		logger.Error("server error", slog.Any("error", err))
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
	if disp != nil {
		if err := disp.Stop(shutdownCtx); err != nil {
			logger.Error("dispatcher shutdown error", slog.Any("error", err))
		}
	}
	return err
}
