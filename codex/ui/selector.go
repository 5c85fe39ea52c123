package ui

import (
	"bytes"
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/catalog"
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

// Selector disambiguates multi-result searches with a timed, single-use
// choice menu. Card selectors additionally offer batch browsing and the
// composited grid view.
type Selector struct {
	manager     *Manager
	navigator   *Navigator
	collections *services.CollectionService
	compositor  *services.Compositor
	catalog     *catalog.Catalog
}

func NewSelector(manager *Manager, navigator *Navigator, collections *services.CollectionService, compositor *services.Compositor, cat *catalog.Catalog) *Selector {
	return &Selector{
		manager:     manager,
		navigator:   navigator,
		collections: collections,
		compositor:  compositor,
		catalog:     cat,
	}
}

type selectSession struct {
	id        string
	client    bot.Client
	channelID snowflake.ID
	messageID snowflake.ID
}

// SelectCard renders a card choice menu onto a deferred command response.
// Resolving an option opens the navigator on the chosen card; the action
// buttons browse the whole batch, composite it into a grid, or cancel.
func (s *Selector) SelectCard(e *handler.CommandEvent, found []*models.Card) error {
	sess := &selectSession{}
	sess.id = s.manager.Open(e.User().ID, utils.SelectTimeout,
		func(ce *handler.ComponentEvent, action string, values []string) (Disposition, error) {
			return s.handleCard(ce, found, action, values)
		},
		func() {
			s.expire(sess)
		},
	)

	options := s.cardOptions(found)
	components := []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewStringSelectMenu(s.manager.CustomID(sess.id, ActionPick), "Select a card...", options...),
		),
		discord.NewActionRow(
			discord.NewPrimaryButton("Browse", s.manager.CustomID(sess.id, ActionBrowse)),
			discord.NewSecondaryButton("Show All", s.manager.CustomID(sess.id, ActionShowAll)),
			discord.NewDangerButton("Cancel", s.manager.CustomID(sess.id, ActionCancel)),
		),
	}

	msg, err := e.UpdateInteractionResponse(discord.NewMessageUpdateBuilder().
		SetContent(selectionPrompt(len(found), len(options))).
		SetContainerComponents(components...).
		Build())
	if err != nil {
		s.manager.Close(sess.id)
		return err
	}

	sess.client = e.Client()
	sess.channelID = msg.ChannelID
	sess.messageID = msg.ID
	s.manager.Activate(sess.id)
	return nil
}

// SelectCollection renders a pack/set choice menu onto a deferred command
// response. Resolving an option opens the navigator on the collection's first
// card.
func (s *Selector) SelectCollection(e *handler.CommandEvent, metas []models.CollectionMeta) error {
	sess := &selectSession{}
	sess.id = s.manager.Open(e.User().ID, utils.SelectTimeout,
		func(ce *handler.ComponentEvent, action string, values []string) (Disposition, error) {
			return s.handleCollection(ce, metas, action, values)
		},
		func() {
			s.expire(sess)
		},
	)

	options := s.collectionOptions(metas)
	components := []discord.ContainerComponent{
		discord.NewActionRow(
			discord.NewStringSelectMenu(s.manager.CustomID(sess.id, ActionPick), "Select one...", options...),
		),
		discord.NewActionRow(
			discord.NewDangerButton("Cancel", s.manager.CustomID(sess.id, ActionCancel)),
		),
	}

	msg, err := e.UpdateInteractionResponse(discord.NewMessageUpdateBuilder().
		SetContent(selectionPrompt(len(metas), len(options))).
		SetContainerComponents(components...).
		Build())
	if err != nil {
		s.manager.Close(sess.id)
		return err
	}

	sess.client = e.Client()
	sess.channelID = msg.ChannelID
	sess.messageID = msg.ID
	s.manager.Activate(sess.id)
	return nil
}

func (s *Selector) handleCard(e *handler.ComponentEvent, found []*models.Card, action string, values []string) (Disposition, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch action {
	case ActionPick:
		if len(values) == 0 {
			return CloseSession, s.fail(e, fmt.Errorf("selection carried no value"))
		}
		var card *models.Card
		for _, c := range found {
			if c.ID == values[0] {
				card = c
				break
			}
		}
		if card == nil {
			return CloseSession, s.fail(e, fmt.Errorf("selected card %s not in result set", values[0]))
		}
		coll, err := s.collections.FindFacesAndElements(ctx, card)
		if err != nil {
			return CloseSession, s.fail(e, err)
		}
		return CloseSession, s.navigator.PresentComponent(e, card, coll)

	case ActionBrowse:
		coll := s.collections.FromBatch(found)
		return CloseSession, s.navigator.PresentComponent(e, found[0], coll)

	case ActionShowAll:
		return CloseSession, s.showAll(ctx, e, found)

	case ActionCancel:
		return CloseSession, e.UpdateMessage(discord.NewMessageUpdateBuilder().
			SetContent(utils.CancelApology).
			ClearContainerComponents().
			Build())
	}

	return KeepOpen, nil
}

func (s *Selector) handleCollection(e *handler.ComponentEvent, metas []models.CollectionMeta, action string, values []string) (Disposition, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch action {
	case ActionPick:
		if len(values) == 0 {
			return CloseSession, s.fail(e, fmt.Errorf("selection carried no value"))
		}
		var meta *models.CollectionMeta
		for i := range metas {
			if metas[i].ID == values[0] {
				meta = &metas[i]
				break
			}
		}
		if meta == nil {
			return CloseSession, s.fail(e, fmt.Errorf("selected %s not in result set", values[0]))
		}
		coll, err := s.collections.FromCollection(ctx, *meta)
		if err != nil {
			return CloseSession, s.fail(e, err)
		}
		if coll == nil {
			return CloseSession, e.UpdateMessage(discord.NewMessageUpdateBuilder().
				SetContent(utils.NoResultsMessage).
				ClearContainerComponents().
				Build())
		}
		return CloseSession, s.navigator.PresentComponent(e, coll.Cards[0], coll)

	case ActionCancel:
		return CloseSession, e.UpdateMessage(discord.NewMessageUpdateBuilder().
			SetContent(utils.CancelApology).
			ClearContainerComponents().
			Build())
	}

	return KeepOpen, nil
}

// showAll replaces the menu with the composited grid of every result.
func (s *Selector) showAll(ctx context.Context, e *handler.ComponentEvent, found []*models.Card) error {
	if err := e.DeferUpdateMessage(); err != nil {
		return err
	}

	rows, truncated, err := s.compositor.Compose(ctx, found)
	if err != nil {
		logger.LogError("Grid composition failed", err)
		_, err = e.Client().Rest().UpdateMessage(e.Message.ChannelID, e.Message.ID,
			discord.NewMessageUpdateBuilder().
				SetContent(utils.ErrorApology).
				ClearContainerComponents().
				Build())
		return err
	}

	files := make([]*discord.File, 0, len(rows))
	for _, row := range rows {
		files = append(files, discord.NewFile(row.Name, "", bytes.NewReader(row.PNG)))
	}

	content := ""
	if truncated {
		content = utils.MaxImagesApology
	}

	_, err = e.Client().Rest().UpdateMessage(e.Message.ChannelID, e.Message.ID,
		discord.NewMessageUpdateBuilder().
			SetContent(content).
			ClearContainerComponents().
			SetFiles(files...).
			Build())
	return err
}

func (s *Selector) fail(e *handler.ComponentEvent, err error) error {
	logger.LogError("Selection failed", err)
	return e.UpdateMessage(discord.NewMessageUpdateBuilder().
		SetContent(utils.ErrorApology).
		ClearContainerComponents().
		Build())
}

func (s *Selector) expire(sess *selectSession) {
	if sess.client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := discord.NewMessageUpdateBuilder().
		SetContent(utils.TimeoutApology).
		ClearContainerComponents().
		RetainAttachments().
		Build()
	if _, err := sess.client.Rest().UpdateMessage(sess.channelID, sess.messageID, update, rest.WithCtx(ctx)); err != nil {
		logger.LogError("Failed to close timed-out selection", err)
	}
}

func (s *Selector) cardOptions(found []*models.Card) []discord.StringSelectMenuOption {
	snap := s.catalog.Snapshot()
	limit := min(len(found), utils.MaxSelectOptions)

	options := make([]discord.StringSelectMenuOption, 0, limit)
	for _, card := range found[:limit] {
		label := card.Name
		if card.Subname != "" {
			label += " — " + card.Subname
		}

		desc := card.Type
		if printing := card.PrintingByArtificialID(card.ID); printing != nil {
			if set := snap.SetByID(printing.SetID); set != nil {
				// Encounter cards name their set in parens, player cards
				// lead with it.
				if card.Classification == "Encounter" {
					desc += " (" + set.Name + ")"
				} else {
					desc = set.Name + " " + desc
				}
			}
		}
		if card.Resource != "" {
			desc += " · " + cards.FormatSymbols(card.Resource)
		}

		options = append(options, discord.NewStringSelectMenuOption(truncateLabel(label), card.ID).
			WithDescription(truncateLabel(desc)))
	}
	return options
}

func (s *Selector) collectionOptions(metas []models.CollectionMeta) []discord.StringSelectMenuOption {
	snap := s.catalog.Snapshot()
	limit := min(len(metas), utils.MaxSelectOptions)

	options := make([]discord.StringSelectMenuOption, 0, limit)
	for _, meta := range metas[:limit] {
		desc := meta.Type
		if !meta.Official && meta.AuthorID != "" {
			if author := snap.AuthorByID(meta.AuthorID); author != nil {
				desc += " · by " + author.Name
			}
		}
		options = append(options, discord.NewStringSelectMenuOption(truncateLabel(meta.Name), meta.ID).
			WithDescription(truncateLabel(desc)))
	}
	return options
}

func selectionPrompt(total, shown int) string {
	prompt := fmt.Sprintf("%d results found. Please select one below.", total)
	if shown < total {
		prompt += fmt.Sprintf(" Only the first %d can be listed.", shown)
	}
	return prompt
}

// Discord caps select labels and descriptions at 100 characters, counted in
// runes, so truncation must not split multi-byte names.
func truncateLabel(s string) string {
	if utf8.RuneCountInString(s) <= 100 {
		return s
	}
	return string([]rune(s)[:97]) + "..."
}
