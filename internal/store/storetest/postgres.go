// Package storetest starts a throwaway Postgres for integration tests.
package storetest

import (
	"context"
	"database/sql"

	"taskbridge/internal/store"

	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// StartPostgres runs postgres:16-alpine, migrates the schema and returns a
// connected DB along with a func that tears everything down.
func StartPostgres(ctx context.Context) (*bun.DB, func(), error) {
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("taskbridge"),
		postgres.WithUsername("taskbridge"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
		testcontainers.WithEnv(map[string]string{"TZ": "UTC"}),
	)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to start container")
	}
	terminate := func() { _ = container.Terminate(context.Background()) }

	connStr, err := container.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		terminate()
		return nil, nil, errors.Wrap(err, "failed to get connection string")
	}

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(connStr)))
	db := bun.NewDB(sqlDB, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		terminate()
		return nil, nil, errors.Wrap(err, "failed to ping db")
	}

	if err := store.Migrate(ctx, db); err != nil {
		db.Close()
		terminate()
		return nil, nil, err
	}

	return db, func() {
		db.Close()
		terminate()
	}, nil
}
