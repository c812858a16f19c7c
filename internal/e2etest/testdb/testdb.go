// Package testdb points database tests at the postgres instance named by
// TEST_DATABASE_URI.
package testdb

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5"
)

const EnvDSN = "TEST_DATABASE_URI"

var ErrNotConfigured = errors.New(EnvDSN + " is not set")

type TestDBInstance struct {
	DSN string
}

func NewTestDBInstance() (*TestDBInstance, error) {
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		return nil, ErrNotConfigured
	}
	return &TestDBInstance{DSN: dsn}, nil
}

// Truncate empties the given tables so every test run starts clean.
func (t *TestDBInstance) Truncate(ctx context.Context, tables ...string) error {
	conn, err := pgx.Connect(ctx, t.DSN)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close(ctx) }()

	for _, table := range tables {
		if _, err := conn.Exec(ctx, "TRUNCATE TABLE "+pgx.Identifier{table}.Sanitize()); err != nil {
			return err
		}
	}
	return nil
}

func (t *TestDBInstance) Down() {}
