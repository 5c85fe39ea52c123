package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/uptrace/bun"
)

// CommandUsage is one row of the /metrics command summary.
type CommandUsage struct {
	Command string `bun:"command"`
	Uses    int64  `bun:"uses"`
}

// CardViews is one row of the /metrics most-viewed summary.
type CardViews struct {
	CardID string `bun:"card_id"`
	Views  int64  `bun:"views"`
}

type StatsRepository interface {
	Record(ctx context.Context, stat *models.CommandStat) error
	TopCommands(ctx context.Context, limit int) ([]CommandUsage, error)
	TopCards(ctx context.Context, limit int) ([]CardViews, error)
}

type statsRepository struct {
	db *bun.DB
}

func NewStatsRepository(db *bun.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Record(ctx context.Context, stat *models.CommandStat) error {
	if stat.CreatedAt.IsZero() {
		stat.CreatedAt = time.Now()
	}
	if _, err := r.db.NewInsert().Model(stat).Exec(ctx); err != nil {
		return fmt.Errorf("failed to record command stat: %w", err)
	}
	return nil
}

func (r *statsRepository) TopCommands(ctx context.Context, limit int) ([]CommandUsage, error) {
	var usage []CommandUsage
	err := r.db.NewSelect().
		Model((*models.CommandStat)(nil)).
		ColumnExpr("command").
		ColumnExpr("count(*) AS uses").
		Group("command").
		OrderExpr("uses DESC").
		Limit(limit).
		Scan(ctx, &usage)
	if err != nil {
		return nil, fmt.Errorf("failed to load command usage: %w", err)
	}
	return usage, nil
}

func (r *statsRepository) TopCards(ctx context.Context, limit int) ([]CardViews, error) {
	var views []CardViews
	err := r.db.NewSelect().
		Model((*models.CommandStat)(nil)).
		ColumnExpr("card_id").
		ColumnExpr("count(*) AS views").
		Where("card_id <> ''").
		Group("card_id").
		OrderExpr("views DESC").
		Limit(limit).
		Scan(ctx, &views)
	if err != nil {
		return nil, fmt.Errorf("failed to load card views: %w", err)
	}
	return views, nil
}
