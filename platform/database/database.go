// Package database opens the sql pool and scopes connection usage.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open creates the pool for the given driver and checks it is reachable within pingTimeout.
func Open(driver, url string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}

// WithConn acquires a single connection from the pool, runs fn with it and
// gives it back to the pool on every return path.
func WithConn(ctx context.Context, db *sql.DB, fn func(conn *sql.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer func() {
		_ = conn.Close()
	}()

	return fn(conn)
}
