package models

import (
	"time"

	"github.com/uptrace/bun"
)

// CommandStat records a single command invocation or card view for the
// /metrics summaries.
type CommandStat struct {
	bun.BaseModel `bun:"table:command_stats"`

	ID        int64     `bun:"id,pk,autoincrement"`
	Command   string    `bun:"command,notnull"`
	UserID    string    `bun:"user_id,notnull"`
	GuildID   string    `bun:"guild_id"`
	CardID    string    `bun:"card_id"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}
