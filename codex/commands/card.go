package commands

import (
	"context"
	"strings"
	"time"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/database/stores"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/services"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Card = discord.SlashCommandCreate{
	Name:        "card",
	Description: "Search the card database by name or filters",
	Options: []discord.ApplicationCommandOption{
		discord.ApplicationCommandOptionString{
			Name:        "origin",
			Description: "Which card pool to search",
			Required:    true,
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Official", Value: services.OriginOfficial},
				{Name: "Unofficial", Value: services.OriginUnofficial},
				{Name: "All", Value: services.OriginAll},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "name",
			Description: "Search by card name, subname or id",
		},
		discord.ApplicationCommandOptionString{
			Name:        "aspect",
			Description: "Filter by aspect",
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Aggression", Value: "Aggression"},
				{Name: "Basic", Value: "Basic"},
				{Name: "Determination", Value: "Determination"},
				{Name: "Encounter", Value: "Encounter"},
				{Name: "Hero", Value: "Hero"},
				{Name: "Justice", Value: "Justice"},
				{Name: "Leadership", Value: "Leadership"},
				{Name: "Protection", Value: "Protection"},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "author",
			Description: "Filter unofficial cards by author id",
		},
		discord.ApplicationCommandOptionString{
			Name:        "cost",
			Description: "Filter by printed cost",
		},
		discord.ApplicationCommandOptionString{
			Name:        "resource",
			Description: "Filter by printed resource",
			Choices: []discord.ApplicationCommandOptionChoiceString{
				{Name: "Energy", Value: "energy"},
				{Name: "Mental", Value: "mental"},
				{Name: "Physical", Value: "physical"},
				{Name: "Wild", Value: "wild"},
				{Name: "None", Value: "none"},
			},
		},
		discord.ApplicationCommandOptionString{
			Name:        "text",
			Description: "Filter by rules text",
		},
		discord.ApplicationCommandOptionString{
			Name:        "traits",
			Description: "Filter by traits, comma separated",
		},
		discord.ApplicationCommandOptionString{
			Name:        "type",
			Description: "Filter by card type",
		},
	},
}

func CardHandler(b *codex.Bot) handler.CommandHandler {
	return func(e *handler.CommandEvent) error {
		data := e.SlashCommandInteractionData()

		origin := data.String("origin")
		name := strings.TrimSpace(data.String("name"))
		filters := stores.CardFilters{
			Aspect:   data.String("aspect"),
			AuthorID: data.String("author"),
			Cost:     data.String("cost"),
			Resource: convertResource(data.String("resource")),
			Text:     data.String("text"),
			Traits:   splitTraits(data.String("traits")),
			Type:     data.String("type"),
		}

		if name == "" && filters.IsZero() {
			return utils.EH.CreateUserError(e, "You must specify at least one search criteria.")
		}
		if name != "" && utils.Normalize(name).Stripped == "" {
			return utils.EH.CreateUserError(e, "The name must contain at least one letter or number.")
		}

		if origin != services.OriginOfficial {
			if ok, err := checkUnofficialAccess(b, e); !ok {
				return err
			}
		}

		if err := e.DeferCreateMessage(false); err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		found, err := b.Search.ByFilters(ctx, origin, name, filters)
		if err != nil {
			logger.LogError("Card search failed", err)
			return updateContent(e, utils.ErrorApology)
		}

		switch len(found) {
		case 0:
			return updateContent(e, utils.NoResultsMessage)
		case 1:
			coll, err := b.Collections.FindFacesAndElements(ctx, found[0])
			if err != nil {
				logger.LogError("Failed to build card collection", err)
				return updateContent(e, utils.ErrorApology)
			}
			b.Middleware.RecordCardView(e.User().ID, e.GuildID(), found[0].ID)
			return b.Navigator.PresentCommand(e, found[0], coll)
		default:
			return b.Selector.SelectCard(e, found)
		}
	}
}

func convertResource(choice string) string {
	if choice == "" {
		return ""
	}
	if choice == stores.ResourceNone {
		return stores.ResourceNone
	}
	if token, ok := utils.ResourceConverter[choice]; ok {
		return token
	}
	return choice
}

func splitTraits(raw string) []string {
	if raw == "" {
		return nil
	}
	var traits []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			traits = append(traits, part)
		}
	}
	return traits
}
