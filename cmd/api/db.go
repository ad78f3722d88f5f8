package main

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/realty-decks/deck-backend/config"
	"github.com/realty-decks/deck-backend/internal/bootstrap"
)

// openOptionalDB returns a nil pool when no DSN is configured.
func openOptionalDB(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	if cfg.Database.DSN == "" {
		return nil, nil
	}
	return bootstrap.OpenDB(ctx, bootstrap.DBOptions{
		DSN:       cfg.Database.DSN,
		MaxConns:  int32(cfg.Database.MaxConns),
		ConnectTO: cfg.Database.ConnectTO,
		PingTO:    cfg.Database.PingTO,
	})
}
