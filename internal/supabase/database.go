package supabase

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// DatabaseClient is the typed query facade over Supabase Postgres. Every
// read and write is scoped to the owning user; no query crosses user
// boundaries except the webhook subscription upsert and the reconciler scan.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
