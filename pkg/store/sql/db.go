package sql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type Settings struct {
	DSN         string
	PingTimeout time.Duration
}

// NewDB opens a postgres connection through the pgx driver and checks it is reachable
func NewDB(ctx context.Context, settings Settings) (*sql.DB, error) {
	db, err := sql.Open("pgx", settings.DSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	timeout := settings.PingTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}
