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

	"go.uber.org/zap"

	"github.com/realty-decks/deck-backend/config"
	"github.com/realty-decks/deck-backend/internal/bootstrap"
	cronjob "github.com/realty-decks/deck-backend/internal/generation/cron"
	"github.com/realty-decks/deck-backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.Init(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logging.Sync()
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	db, err := openOptionalDB(ctx, cfg)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	} else {
		logger.Warn("DB_DSN not set; feedback will not be persisted")
	}

	svcs, err := bootstrap.BuildServices(ctx, cfg, rdb, db)
	if err != nil {
		return err
	}

	scheduler := cronjob.NewScheduler(svcs.Generations, cfg.Jobs.SweepSpec, cfg.Jobs.StaleAfter)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("start job sweeper: %w", err)
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: cfg.App.ServiceName,
		Version:     cfg.App.Version,
		CORSOrigins: cfg.App.CORSOrigins,
		DB:          db,
		Redis:       rdb,
		Services:    svcs,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", cfg.App.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown", zap.Error(err))
	}
	<-scheduler.Stop().Done()
	// Async generations keep polling Gamma after their request returned.
	if err := svcs.Generations.Wait(shutdownCtx); err != nil {
		logger.Warn("abandoned running generations", zap.Error(err))
	}
	return nil
}
