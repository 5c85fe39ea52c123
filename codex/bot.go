package codex

import (
	"context"
	"log/slog"
	"time"

	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/catalog"
	"github.com/cardcodex/codex/codex/database"
	"github.com/cardcodex/codex/codex/database/repositories"
	"github.com/cardcodex/codex/codex/database/stores"
	"github.com/cardcodex/codex/codex/handlers"
	"github.com/cardcodex/codex/codex/services"
	"github.com/cardcodex/codex/codex/ui"
	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/cache"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/paginator"
	"github.com/disgoorg/snowflake/v2"
)

func New(cfg Config, version string, commit string) *Bot {
	return &Bot{
		Cfg:       cfg,
		Paginator: paginator.New(),
		Sessions:  ui.NewManager(),
		Version:   version,
		Commit:    commit,
	}
}

// Bot bundles every wired component. Fields are populated in main before the
// gateway opens.
type Bot struct {
	Cfg       Config
	Client    bot.Client
	Paginator *paginator.Manager
	Version   string
	Commit    string

	Mongo    *database.Mongo
	Postgres *database.Postgres
	Catalog  *catalog.Catalog

	CardStore   stores.CardStore
	Stats       repositories.StatsRepository
	Search      *services.SearchService
	Collections *services.CollectionService
	Spaces      *services.SpacesService
	Compositor  *services.Compositor
	Renderer    *cards.Renderer

	Sessions   *ui.Manager
	Navigator  *ui.Navigator
	Selector   *ui.Selector
	Middleware *handlers.Middleware
}

func (b *Bot) SetupBot(listeners ...bot.EventListener) error {
	client, err := disgo.New(b.Cfg.Bot.Token,
		bot.WithGatewayConfigOpts(gateway.WithIntents(gateway.IntentGuilds)),
		bot.WithCacheConfigOpts(cache.WithCaches(cache.FlagGuilds)),
		bot.WithEventListeners(b.Paginator),
		bot.WithEventListeners(listeners...),
	)
	if err != nil {
		return err
	}

	b.Client = client
	return nil
}

func (b *Bot) OnReady(_ *events.Ready) {
	slog.Info("Codex is now ready",
		slog.String("version", b.Version),
		slog.String("commit", b.Commit))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := b.Client.SetPresence(ctx,
		gateway.WithListeningActivity("/card"),
		gateway.WithOnlineStatus(discord.OnlineStatusOnline)); err != nil {
		slog.Error("Failed to set presence", slog.Any("error", err))
	}
}

// IsAdmin reports whether a user may run the operator commands.
func (b *Bot) IsAdmin(userID snowflake.ID) bool {
	for _, admin := range b.Cfg.Bot.Admins {
		if admin == userID {
			return true
		}
	}
	return false
}
