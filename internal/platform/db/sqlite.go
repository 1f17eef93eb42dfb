package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Open opens (creating if necessary) the local SQLite database file and
// verifies it is reachable. The returned handle is held for the process
// lifetime; SQLite serializes writers itself, so a small pool is enough.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	// A single interactive session is the design point; one writer at a
	// time keeps modernc/sqlite happy under database/sql.
	conn.SetMaxOpenConns(1)
	conn.SetConnMaxIdleTime(5 * time.Minute)

	if _, err := conn.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping sqlite %s: %w", path, err)
	}

	return conn, nil
}
