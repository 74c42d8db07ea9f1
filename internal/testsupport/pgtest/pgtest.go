//go:build integration

// Package pgtest starts a disposable PostgreSQL container with the schema
// applied, for tests built with the integration tag.
package pgtest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ryalynne/hrms/internal/app/migrations"
	schema "github.com/ryalynne/hrms/migrations"
)

// Start runs postgres:16-alpine, migrates it and returns a pool plus a
// function that closes the pool and terminates the container.
func Start(ctx context.Context) (*pgxpool.Pool, func(), error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("hrms_test"),
		tcpostgres.WithUsername("hrms"),
		tcpostgres.WithPassword("hrms"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to start postgres container: %w", err)
	}
	terminate := func() { _ = container.Terminate(context.Background()) }

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to get connection string: %w", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("failed to connect: %w", err)
	}

	if _, err := migrations.NewMigrator(pool, zerolog.Nop()).Migrate(ctx, schema.FS); err != nil {
		pool.Close()
		terminate()
		return nil, nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return pool, func() {
		pool.Close()
		terminate()
	}, nil
}
