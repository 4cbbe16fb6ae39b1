package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Database is a plain database/sql handle used by tooling that needs
// PostgreSQL features gorm does not expose, such as COPY.
type Database struct {
	DB  *sql.DB
	log *zap.Logger
}

func NewDatabase(ctx context.Context, dsn string, log *zap.Logger) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	log.Info("database connected")

	return &Database{DB: db, log: log}, nil
}

func (d *Database) Close() error {
	return d.DB.Close()
}

// Initialize creates the necessary tables
func (d *Database) Initialize(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("error creating tables: %w", err)
	}

	d.log.Info("database tables created/verified")
	return nil
}

// Reset drops every table and recreates the schema, restarting the id sequences.
func (d *Database) Reset(ctx context.Context) error {
	if _, err := d.DB.ExecContext(ctx, dropSchema); err != nil {
		return fmt.Errorf("error dropping tables: %w", err)
	}
	return d.Initialize(ctx)
}
