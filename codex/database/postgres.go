package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"log/slog"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/uptrace/bun"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

const (
	defaultConnTimeout = 5 * time.Second
	defaultMaxRetries  = 3
)

type PostgresConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Database string `toml:"database"`
	PoolSize int    `toml:"pool_size"`
}

// Postgres holds the relational side: usage statistics. The pgx pool serves
// health checks while bun handles queries over pgdriver.
type Postgres struct {
	pool  *pgxpool.Pool
	bunDB *bun.DB
}

func NewPostgres(ctx context.Context, cfg PostgresConfig) (*Postgres, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}
	if cfg.PoolSize > 0 {
		poolConfig.MaxConns = int32(cfg.PoolSize)
	}
	poolConfig.ConnConfig.ConnectTimeout = defaultConnTimeout

	var pool *pgxpool.Pool
	for i := 0; i < defaultMaxRetries; i++ {
		pool, err = pgxpool.NewWithConfig(ctx, poolConfig)
		if err == nil {
			if err = pool.Ping(ctx); err == nil {
				break
			}
			pool.Close()
		}
		time.Sleep(time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("stats database unreachable after %d attempts: %w", defaultMaxRetries, err)
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	bunDB := bun.NewDB(sqldb, pgdialect.New())

	slog.Info("Stats database connected",
		slog.String("type", "db"),
		slog.String("database", cfg.Database))

	return &Postgres{pool: pool, bunDB: bunDB}, nil
}

// InitializeSchema creates the stats tables when missing.
func (p *Postgres) InitializeSchema(ctx context.Context) error {
	_, err := p.bunDB.NewCreateTable().
		Model((*models.CommandStat)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize stats schema: %w", err)
	}
	return nil
}

func (p *Postgres) BunDB() *bun.DB {
	return p.bunDB
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return p.bunDB.Close()
}
