package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

const metricsLimit = 10

var Metrics = discord.SlashCommandCreate{
	Name:        "metrics",
	Description: "Show bot usage statistics",
}

func MetricsHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		commands, err := b.Stats.TopCommands(ctx, metricsLimit)
		if err != nil {
			logger.LogError("Failed to load usage metrics", err)
			return updateContent(e, utils.ErrorApology)
		}
		views, err := b.Stats.TopCards(ctx, metricsLimit)
		if err != nil {
			logger.LogError("Failed to load card metrics", err)
			return updateContent(e, utils.ErrorApology)
		}

		var usage strings.Builder
		for i, row := range commands {
			usage.WriteString(fmt.Sprintf("%d. `/%s` — %d uses\n", i+1, row.Command, row.Uses))
		}
		if usage.Len() == 0 {
			usage.WriteString("No commands recorded yet.")
		}

		var viewed strings.Builder
		for i, row := range views {
			viewed.WriteString(fmt.Sprintf("%d. `%s` — %d views\n", i+1, row.CardID, row.Views))
		}
		if viewed.Len() == 0 {
			viewed.WriteString("No cards viewed yet.")
		}

		embed := discord.NewEmbedBuilder().
			SetTitle("Usage Metrics").
			SetColor(utils.DefaultColor).
			AddField("Top Commands", usage.String(), true).
			AddField("Most Viewed Cards", viewed.String(), true).
			Build()

		_, err = e.UpdateInteractionResponse(discord.MessageUpdate{
			Embeds: &[]discord.Embed{embed},
		})
		return err
	}
}
