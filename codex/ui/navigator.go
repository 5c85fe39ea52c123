package ui

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/services"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/handler"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
)

// Navigator drives the interactive card view: one message per session,
// edited in place as the owner flips faces, cycles art and stages, and
// toggles the rules and full-art modes.
type Navigator struct {
	manager  *Manager
	renderer *cards.Renderer
	fetcher  services.ArtFetcher
}

func NewNavigator(manager *Manager, renderer *cards.Renderer, fetcher services.ArtFetcher) *Navigator {
	return &Navigator{manager: manager, renderer: renderer, fetcher: fetcher}
}

type navSession struct {
	id    string
	state NavState
	coll  *models.CardCollection

	client    bot.Client
	channelID snowflake.ID
	messageID snowflake.ID
}

// PresentCommand renders the first view onto a deferred command response and
// opens the navigation session.
func (n *Navigator) PresentCommand(e *handler.CommandEvent, card *models.Card, coll *models.CardCollection) error {
	sess := n.open(e.User().ID, card, coll)

	update, err := n.buildUpdate(context.Background(), sess)
	if err != nil {
		n.manager.Close(sess.id)
		return err
	}

	msg, err := e.UpdateInteractionResponse(update)
	if err != nil {
		n.manager.Close(sess.id)
		return err
	}

	sess.client = e.Client()
	sess.channelID = msg.ChannelID
	sess.messageID = msg.ID
	n.manager.Activate(sess.id)
	return nil
}

// PresentComponent renders the first view in place of a selector message and
// opens the navigation session.
func (n *Navigator) PresentComponent(e *handler.ComponentEvent, card *models.Card, coll *models.CardCollection) error {
	sess := n.open(e.User().ID, card, coll)

	update, err := n.buildUpdate(context.Background(), sess)
	if err != nil {
		n.manager.Close(sess.id)
		return err
	}

	if err := e.UpdateMessage(update); err != nil {
		n.manager.Close(sess.id)
		return err
	}

	sess.client = e.Client()
	sess.channelID = e.Message.ChannelID
	sess.messageID = e.Message.ID
	n.manager.Activate(sess.id)
	return nil
}

func (n *Navigator) open(ownerID snowflake.ID, card *models.Card, coll *models.CardCollection) *navSession {
	sess := &navSession{
		state: NewNavState(card, coll),
		coll:  coll,
	}
	sess.id = n.manager.Open(ownerID, utils.NavigateTimeout,
		func(e *handler.ComponentEvent, action string, _ []string) (Disposition, error) {
			return n.handle(sess, e, action)
		},
		func() {
			n.expire(sess)
		},
	)
	return sess
}

func (n *Navigator) handle(sess *navSession, e *handler.ComponentEvent, action string) (Disposition, error) {
	if action == ActionClear {
		update := discord.NewMessageUpdateBuilder().ClearContainerComponents()
		if !sess.state.ArtToggle {
			update.RetainAttachments()
		}
		return CloseSession, e.UpdateMessage(update.Build())
	}

	prev := sess.state
	sess.state = Transition(sess.state, action, sess.coll)

	// Entering the full-art view pulls the scan from storage, which can
	// outlast the interaction ack window. Show the loading notice first and
	// finish the swap through a plain message edit.
	if sess.state.ArtToggle && !prev.ArtToggle {
		loading := discord.NewMessageUpdateBuilder().
			SetContent(utils.LoadApology).
			RetainAttachments().
			Build()
		if err := e.UpdateMessage(loading); err != nil {
			return CloseSession, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		update, err := n.buildUpdate(ctx, sess)
		if err != nil {
			logger.LogError("Navigation render failed", err)
			return CloseSession, n.editApology(sess, utils.ErrorApology)
		}
		_, err = sess.client.Rest().UpdateMessage(sess.channelID, sess.messageID, update, rest.WithCtx(ctx))
		return KeepOpen, err
	}

	update, err := n.buildUpdate(context.Background(), sess)
	if err != nil {
		logger.LogError("Navigation render failed", err)
		apology := discord.NewMessageUpdateBuilder().
			SetContent(utils.ErrorApology).
			ClearContainerComponents().
			Build()
		return CloseSession, e.UpdateMessage(apology)
	}
	return KeepOpen, e.UpdateMessage(update)
}

func (n *Navigator) editApology(sess *navSession, content string) error {
	update := discord.NewMessageUpdateBuilder().
		SetContent(content).
		ClearContainerComponents().
		Build()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := sess.client.Rest().UpdateMessage(sess.channelID, sess.messageID, update, rest.WithCtx(ctx))
	return err
}

func (n *Navigator) expire(sess *navSession) {
	if sess.client == nil {
		return
	}

	update := discord.NewMessageUpdateBuilder().
		SetContent(utils.TimeoutApology).
		ClearContainerComponents()
	if !sess.state.ArtToggle {
		update.RetainAttachments()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := sess.client.Rest().UpdateMessage(sess.channelID, sess.messageID, update.Build(), rest.WithCtx(ctx)); err != nil {
		logger.LogError("Failed to close timed-out navigation", err)
	}
}

// buildUpdate renders the current state into a full message edit. Exactly one
// of the three view modes is active: full art, rules reference, or the
// normal card embed.
func (n *Navigator) buildUpdate(ctx context.Context, sess *navSession) (discord.MessageUpdate, error) {
	card := sess.coll.CardByID(sess.state.CardID)
	if card == nil {
		return discord.MessageUpdate{}, fmt.Errorf("card %s missing from navigation collection", sess.state.CardID)
	}
	artID := activeArt(card, sess.state)

	builder := discord.NewMessageUpdateBuilder().
		SetContent("").
		SetContainerComponents(n.buildComponents(sess, card)...)

	switch {
	case sess.state.ArtToggle:
		data, err := n.fetcher.FetchCardImage(ctx, card.Official, artID)
		if err != nil {
			return discord.MessageUpdate{}, err
		}
		name := artID + ".jpg"
		if n.renderer.SpoilerArt(card, artID) {
			name = "SPOILER_" + name
		}
		builder.ClearEmbeds().
			SetFiles(discord.NewFile(name, "", bytes.NewReader(data)))

	case sess.state.RulesToggle:
		builder.SetEmbeds(n.renderer.BuildRulesEmbed(card, artID)).
			RetainAttachments()

	default:
		builder.SetEmbeds(n.renderer.BuildEmbed(card, artID)).
			RetainAttachments()
	}

	return builder.Build(), nil
}

func (n *Navigator) buildComponents(sess *navSession, card *models.Card) []discord.ContainerComponent {
	var nav []discord.InteractiveComponent

	if len(sess.coll.Elements) > 0 {
		tag := sess.coll.Tag
		if tag == "" {
			tag = "Card"
		}
		// Stage-style sequences get prominent arrows, plain batches stay muted.
		newButton := discord.NewPrimaryButton
		if tag == "Card" {
			newButton = discord.NewSecondaryButton
		}
		nav = append(nav,
			newButton("Previous "+tag, n.manager.CustomID(sess.id, ActionPrevElement)),
			newButton("Next "+tag, n.manager.CustomID(sess.id, ActionNextElement)),
		)
	}
	if len(activeFaces(sess.state, sess.coll)) > 0 {
		nav = append(nav, discord.NewSecondaryButton("Flip Card", n.manager.CustomID(sess.id, ActionCycleFace)))
	}
	if len(card.UniqueArts()) > 1 {
		nav = append(nav, discord.NewSecondaryButton("Change Art", n.manager.CustomID(sess.id, ActionCycleArt)))
	}
	if len(n.renderer.Rules(card)) > 0 {
		nav = append(nav, discord.NewSecondaryButton("Rules", n.manager.CustomID(sess.id, ActionToggleRules)))
	}

	controls := []discord.InteractiveComponent{
		discord.NewSecondaryButton("Full Art", n.manager.CustomID(sess.id, ActionToggleArt)),
		discord.NewDangerButton("Dismiss", n.manager.CustomID(sess.id, ActionClear)),
	}

	if len(nav) == 0 {
		return []discord.ContainerComponent{discord.NewActionRow(controls...)}
	}
	return []discord.ContainerComponent{
		discord.NewActionRow(nav...),
		discord.NewActionRow(controls...),
	}
}

// activeArt resolves the artificial id of the art currently shown.
func activeArt(card *models.Card, state NavState) string {
	arts := card.UniqueArts()
	if len(arts) == 0 {
		return card.ID
	}
	return arts[state.ArtStyle%len(arts)]
}
