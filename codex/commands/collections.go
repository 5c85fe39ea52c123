package commands

import (
	"fmt"
	"strings"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/paginator"
)

const collectionsPerPage = 15

var Packs = discord.SlashCommandCreate{
	Name:        "packs",
	Description: "List every pack in the catalog",
}

var Sets = discord.SlashCommandCreate{
	Name:        "sets",
	Description: "List every set in the catalog",
}

func PacksHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return listCollections(b, e, "Packs", b.Catalog.Snapshot().Packs)
	}
}

func SetsHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		return listCollections(b, e, "Sets", b.Catalog.Snapshot().Sets)
	}
}

func listCollections(b *codex.Bot, e *handler.CommandEvent, title string, metas []models.CollectionMeta) error {
	if len(metas) == 0 {
		return utils.EH.CreateNotFoundError(e)
	}

	totalPages := (len(metas) + collectionsPerPage - 1) / collectionsPerPage

	return b.Paginator.Create(e.Respond, paginator.Pages{
		ID:      e.ID().String(),
		Creator: e.User().ID,
		PageFunc: func(page int, embed *discord.EmbedBuilder) {
			start := page * collectionsPerPage
			end := min(start+collectionsPerPage, len(metas))

			var description strings.Builder
			for _, meta := range metas[start:end] {
				line := meta.Name
				if meta.Type != "" {
					line += " · " + meta.Type
				}
				if meta.Incomplete {
					line += " 🚧"
				}
				description.WriteString(line + "\n")
			}

			embed.
				SetTitle(title).
				SetDescription(description.String()).
				SetColor(utils.DefaultColor).
				SetFooter(fmt.Sprintf("Page %d/%d • Total: %d", page+1, totalPages, len(metas)), "")
		},
		Pages:      totalPages,
		ExpireMode: paginator.ExpireModeAfterLastUsage,
	}, false)
}
