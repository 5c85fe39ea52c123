package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/catalog"
	"github.com/cardcodex/codex/codex/commands"
	"github.com/cardcodex/codex/codex/database"
	"github.com/cardcodex/codex/codex/database/repositories"
	"github.com/cardcodex/codex/codex/database/stores"
	"github.com/cardcodex/codex/codex/handlers"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/services"
	"github.com/cardcodex/codex/codex/ui"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/handler"
	"github.com/robfig/cron/v3"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	slog.Info("Starting Codex",
		slog.String("version", version),
		slog.String("commit", commit))

	shouldSyncCommands := flag.Bool("sync-commands", false, "Whether to sync commands to discord")
	path := flag.String("config", "config.toml", "path to config")
	flag.Parse()

	cfg, err := codex.LoadConfig(*path)
	if err != nil {
		slog.Error("Failed to load configuration", slog.Any("error", err))
		os.Exit(-1)
	}
	slog.SetDefault(slog.New(logger.NewHandler().WithLevel(cfg.Log.Level)))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongo, err := database.NewMongo(ctx, cfg.Mongo)
	if err != nil {
		slog.Error("Document store connection failed", slog.Any("error", err))
		os.Exit(-1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongo.Close(ctx); err != nil {
			slog.Error("Failed to close document store", slog.Any("error", err))
		}
	}()

	pg, err := database.NewPostgres(ctx, cfg.DB)
	if err != nil {
		slog.Error("Stats database connection failed", slog.Any("error", err))
		os.Exit(-1)
	}
	defer pg.Close()

	if err := pg.InitializeSchema(ctx); err != nil {
		slog.Error("Failed to initialize stats schema", slog.Any("error", err))
		os.Exit(-1)
	}

	cat, err := catalog.New(ctx, stores.NewReferenceStore(mongo))
	if err != nil {
		slog.Error("Failed to load catalog", slog.Any("error", err))
		os.Exit(-1)
	}

	spaces, err := services.NewSpacesService(
		cfg.Spaces.Key,
		cfg.Spaces.Secret,
		cfg.Spaces.Region,
		cfg.Spaces.Bucket,
		cfg.Spaces.CardRoot,
	)
	if err != nil {
		slog.Error("Failed to initialize art storage", slog.Any("error", err))
		os.Exit(-1)
	}

	b := codex.New(*cfg, version, commit)
	b.Mongo = mongo
	b.Postgres = pg
	b.Catalog = cat
	b.Spaces = spaces
	b.CardStore = stores.NewCardStore(mongo)
	b.Stats = repositories.NewStatsRepository(pg.BunDB())
	b.Search = services.NewSearchService(b.CardStore)
	b.Collections = services.NewCollectionService(b.CardStore)
	b.Compositor = services.NewCompositor(spaces)
	b.Renderer = cards.NewRenderer(cat, spaces)
	b.Navigator = ui.NewNavigator(b.Sessions, b.Renderer, spaces)
	b.Selector = ui.NewSelector(b.Sessions, b.Navigator, b.Collections, b.Compositor, cat)
	b.Middleware = handlers.NewMiddleware(b.Stats)

	h := handler.New()
	h.Command("/browse", b.Middleware.WrapCommand("browse", commands.BrowseHandler(b)))
	h.Command("/card", b.Middleware.WrapCommand("card", commands.CardHandler(b)))
	h.Command("/packs", b.Middleware.WrapCommand("packs", commands.PacksHandler(b)))
	h.Command("/sets", b.Middleware.WrapCommand("sets", commands.SetsHandler(b)))
	h.Command("/metrics", b.Middleware.WrapCommand("metrics", commands.MetricsHandler(b)))
	h.Command("/reload", b.Middleware.WrapCommand("reload", commands.ReloadHandler(b)))
	h.Command("/version", b.Middleware.WrapCommand("version", commands.VersionHandler(b)))
	h.Component(ui.ComponentPattern, b.Middleware.WrapComponent("session", b.Sessions.HandleComponent))

	if err = b.SetupBot(h, bot.NewListenerFunc(b.OnReady)); err != nil {
		slog.Error("Failed to setup bot",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b.Client.Close(ctx)
	}()

	if *shouldSyncCommands {
		logger.LogSystem("Syncing commands", slog.Any("guild_ids", cfg.Bot.DevGuilds))
		if err = handler.SyncCommands(b.Client, commands.Commands, cfg.Bot.DevGuilds); err != nil {
			slog.Error("Failed to sync commands",
				slog.String("type", "sys"),
				slog.Any("error", err),
				slog.String("error_details", fmt.Sprintf("%+v", err)))
		}
	}

	// Nightly catalog refresh picks up new card data dumps.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("0 5 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := cat.Reload(ctx); err != nil {
			slog.Error("Scheduled catalog reload failed", slog.Any("error", err))
		}
	}); err != nil {
		slog.Error("Failed to schedule catalog reload", slog.Any("error", err))
		os.Exit(-1)
	}
	scheduler.Start()
	defer scheduler.Stop()

	gatewayCtx, gatewayCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer gatewayCancel()
	if err = b.Client.OpenGateway(gatewayCtx); err != nil {
		slog.Error("Failed to open gateway",
			slog.String("type", "sys"),
			slog.Any("error", err))
		os.Exit(-1)
	}

	logger.LogSystem("Codex is running. Press CTRL-C to exit.")
	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM)
	<-s
	logger.LogSystem("Shutting down...")
}
