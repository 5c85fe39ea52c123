package commands

import (
	"context"
	"strings"
	"time"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Browse = discord.SlashCommandCreate{
	Name:        "browse",
	Description: "Browse every card of a pack or set",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "origin",
			Description: "Official or unofficial content",
			Required:    true,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Official", Value: "official"},
				{Name: "Unofficial", Value: "unofficial"},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "kind",
			Description: "Whether to browse a pack or a set",
			Required:    true,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Pack", Value: "pack"},
				{Name: "Set", Value: "set"},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "The pack or set name",
			Required:    true,
		},
	},
}

func BrowseHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()
		official := data.String("origin") == "official"
		kind := data.String("kind")
		name := strings.TrimSpace(data.String("name"))

		if utils.Normalize(name).Stripped == "" {
			return utils.EH.CreateUserError(e, "The name must contain at least one letter or number.")
		}

		if !official {
			if ok, err := checkUnofficialAccess(b, e); !ok {
				return err
			}
		}

		snap := b.Catalog.Snapshot()
		candidates := snap.Sets
		if kind == "pack" {
			candidates = snap.Packs
		}

		matches := cards.ResolveCollections(candidates, name, official)
		if len(matches) == 0 {
			return utils.EH.CreateNotFoundError(e)
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		if len(matches) > 1 {
			return b.Selector.SelectCollection(e, matches)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		coll, err := b.Collections.FromCollection(ctx, matches[0])
		if err != nil {
			logger.LogError("Failed to load collection", err)
			return updateContent(e, utils.ErrorApology)
		}
		if coll == nil {
			return updateContent(e, utils.NoResultsMessage)
		}

		b.Middleware.RecordCardView(e.User().ID, e.GuildID(), coll.Cards[0].ID)
		return b.Navigator.PresentCommand(e, coll.Cards[0], coll)
	}
}
