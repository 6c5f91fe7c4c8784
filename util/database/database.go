package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// New opens the audit-trail pool. The console runs fine without one; callers
// pass DATABASE_URL only when auditing is wanted.
func New(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return p, nil
}
