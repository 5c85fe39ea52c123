package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Reload = discord.SlashCommandCreate{
	Name:        "reload",
	Description: "Reload the reference catalog from the document store",
}

func ReloadHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if !b.IsAdmin(e.User().ID) {
			return utils.EH.CreatePermissionError(e, "Only bot operators can reload the catalog.")
		}

		if err := e.DeferCreateMessage(true); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		start := time.Now()
		if err := b.Catalog.Reload(ctx); err != nil {
			logger.LogError("Catalog reload failed", err)
			return updateContent(e, utils.ErrorApology)
		}

		return updateContent(e, fmt.Sprintf("Catalog reloaded in %s.", time.Since(start).Round(time.Millisecond)))
	}
}

var Version = discord.SlashCommandCreate{
	Name:        "version",
	Description: "Show the running bot version",
}

func VersionHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return e.CreateMessage(discord.MessageCreate{
			Embeds: []discord.Embed{
				discord.NewEmbedBuilder().
					SetTitle("Codex").
					SetColor(utils.DefaultColor).
					AddField("Version", b.Version, true).
					AddField("Commit", b.Commit, true).
					Build(),
			},
		})
	}
}
