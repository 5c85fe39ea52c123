package commands

import (
	"slices"

	"github.com/cardcodex/codex/codex"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
)

var Commands = []discord.ApplicationCommandCreate{
	Browse,
	Card,
	Packs,
	Sets,
	Metrics,
	Reload,
	Version,
}

// checkUnofficialAccess enforces the unofficial-content gates before any data
// access: the per-guild channel restriction list and the donor lock. A nil
// return means access is granted; otherwise the denial was already sent.
func checkUnofficialAccess(b *codex.Bot, e *handler.CommandEvent) (bool, error) {
	snap := b.Catalog.Snapshot()

	if b.Cfg.Bot.BetaLock && !snap.IsDonor(e.User().ID.String()) {
		return false, utils.EH.CreatePermissionError(e, "Unofficial content is currently limited to supporters.")
	}

	if guildID := e.GuildID(); guildID != nil {
		restricted := snap.RestrictedChannels(guildID.String())
		if len(restricted) > 0 && !slices.Contains(restricted, e.ChannelID().String()) {
			return false, utils.EH.CreatePermissionError(e, "Unofficial content can't be viewed in this channel.")
		}
	}

	return true, nil
}

// updateContent replaces a deferred response with plain embedded content.
func updateContent(e *handler.CommandEvent, content string) error {
	_, err := e.UpdateInteractionResponse(discord.MessageUpdate{
		Embeds: &[]discord.Embed{utils.ContentEmbed(content)},
	})
	return err
}
