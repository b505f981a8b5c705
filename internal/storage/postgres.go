package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"pharmacy-storefront/internal/domain"
)

// Connect opens a pgx connection pool and verifies connectivity with a ping.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}

	return pool, nil
}

// Postgres stores the payload as a single keyed row. The table is created by
// the embedded migrations (see internal/migrate).
type Postgres struct {
	pool *pgxpool.Pool
	key  string
}

func NewPostgres(pool *pgxpool.Pool, key string) *Postgres {
	return &Postgres{pool: pool, key: key}
}

func (p *Postgres) Load(ctx context.Context) ([]byte, error) {
	const q = `
SELECT data
FROM cart_storage
WHERE key = $1
`
	var data []byte
	if err := p.pool.QueryRow(ctx, q, p.key).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load %s: %w", p.key, err)
	}
	return data, nil
}

func (p *Postgres) Save(ctx context.Context, data []byte) error {
	const q = `
INSERT INTO cart_storage (key, data)
VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
`
	if _, err := p.pool.Exec(ctx, q, p.key, data); err != nil {
		return fmt.Errorf("save %s: %w", p.key, err)
	}
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}
