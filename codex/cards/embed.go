package cards

import (
	"fmt"
	"strings"

	"github.com/cardcodex/codex/codex/catalog"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
	"github.com/disgoorg/disgo/discord"
)

// ArtResolver turns an art id into a public image URL.
type ArtResolver interface {
	CardImageURL(official bool, artificialID string) string
}

// Renderer builds card embeds from the reference-data snapshot and the art
// storage. It never mutates the cards it renders.
type Renderer struct {
	catalog *catalog.Catalog
	art     ArtResolver
}

func NewRenderer(cat *catalog.Catalog, art ArtResolver) *Renderer {
	return &Renderer{catalog: cat, art: art}
}

// ImageURL resolves the art shown for a card, defaulting to the card's own
// printing.
func (r *Renderer) ImageURL(card *models.Card, artificialID string) string {
	if artificialID == "" {
		artificialID = card.ID
	}
	return r.art.CardImageURL(card.Official, artificialID)
}

// Rules resolves the keyword dictionary entries matching a card.
func (r *Renderer) Rules(card *models.Card) []RuleEntry {
	return EvaluateRules(card, r.catalog.Snapshot().Rules)
}

// BuildEmbed renders the normal card view: header, stats, text body and
// thumbnail.
func (r *Renderer) BuildEmbed(card *models.Card, artificialID string) discord.Embed {
	snap := r.catalog.Snapshot()
	image := r.ImageURL(card, artificialID)

	subheader := []string{buildHeader(card)}
	if len(card.Traits) > 0 {
		subheader = append(subheader, ItalicizeText(BoldText(strings.Join(card.Traits, ", "))))
	}

	description := []string{SpoilerIfIncomplete(strings.Join(subheader, "\n"), card.Incomplete)}

	if stats := buildStats(card); stats != "" {
		description = append(description, SpoilerIfIncomplete(FormatSymbols(stats), card.Incomplete))
	}

	var body []string
	if card.Rules != "" {
		body = append(body, QuoteText(SpoilerIfIncomplete(FormatText(card.Rules, card.Name), card.Incomplete)))
	}
	if card.Special != "" {
		body = append(body, QuoteText(SpoilerIfIncomplete(FormatText(card.Special, card.Name), card.Incomplete)))
	}
	if card.Flavor != "" {
		body = append(body, SpoilerIfIncomplete(ItalicizeText(EscapeMarkdown(card.Flavor)), card.Incomplete))
	}
	if !card.Official {
		body = append(body, r.buildCredits(card, snap))
	}
	if len(body) > 0 {
		description = append(description, strings.Join(body, "\n\n"))
	}

	builder := discord.NewEmbedBuilder().
		SetColor(embedColor(card)).
		SetTitle(buildTitle(card)).
		SetURL(image).
		SetDescription(strings.Join(description, "\n\n")).
		SetFooterText(r.buildFooter(card, snap))

	if r.thumbnailAllowed(card, artificialID, snap) {
		builder.SetThumbnail(image)
	}

	return builder.Build()
}

// BuildRulesEmbed renders the keyword/icon reference view.
func (r *Renderer) BuildRulesEmbed(card *models.Card, artificialID string) discord.Embed {
	snap := r.catalog.Snapshot()
	image := r.ImageURL(card, artificialID)

	builder := discord.NewEmbedBuilder().
		SetColor(embedColor(card)).
		SetTitle(buildTitle(card)).
		SetURL(image).
		SetFooterText(r.buildFooter(card, snap))

	for _, entry := range EvaluateRules(card, snap.Rules) {
		builder.AddField(FormatSymbols(entry.Title), FormatSymbols(entry.Description), false)
	}

	if r.thumbnailAllowed(card, artificialID, snap) {
		builder.SetThumbnail(image)
	}

	return builder.Build()
}

// SpoilerArt reports whether the raw art attachment must be spoilered: the
// card or the set of the shown printing is not fully revealed yet.
func (r *Renderer) SpoilerArt(card *models.Card, artificialID string) bool {
	if card.Incomplete {
		return true
	}
	if artificialID == "" {
		artificialID = card.ID
	}
	if printing := card.PrintingByArtificialID(artificialID); printing != nil {
		if set := r.catalog.Snapshot().SetByID(printing.SetID); set != nil && set.Incomplete {
			return true
		}
	}
	return false
}

func (r *Renderer) thumbnailAllowed(card *models.Card, artificialID string, snap *catalog.Snapshot) bool {
	if card.Incomplete {
		return false
	}
	if artificialID == "" {
		artificialID = card.ID
	}
	printing := card.PrintingByArtificialID(artificialID)
	if printing == nil {
		return false
	}
	set := snap.SetByID(printing.SetID)
	return set == nil || !set.Incomplete
}

func buildTitle(card *models.Card) string {
	title := card.Name
	if card.Unique {
		title = utils.Symbols["{u}"] + title
	}
	if card.Subname != "" {
		title += " — " + card.Subname
	}
	return SpoilerIfIncomplete(title, card.Incomplete)
}

func buildHeader(card *models.Card) string {
	var header string

	if card.Classification != "Encounter" && card.Type != "Hero" && card.Type != "Alter-Ego" {
		header = BoldText(card.Classification) + " "
	}
	header += BoldText(card.Type)

	if card.Stage != "" {
		header += " — " + ItalicizeText("Stage "+card.Stage)
	}

	return header
}

func buildStats(card *models.Card) string {
	var blocks []string

	var economy []string
	if card.Cost != "" {
		economy = append(economy, "Cost: "+card.Cost)
	}
	if card.Resource != "" {
		economy = append(economy, "Resource: "+card.Resource)
	}
	if card.Boost != "" {
		economy = append(economy, "Boost: "+card.Boost)
	}
	if len(economy) > 0 {
		blocks = append(blocks, strings.Join(economy, "\n"))
	}

	var abilities []string
	if card.Recover != "" {
		abilities = append(abilities, "REC: "+card.Recover)
	}
	if card.Scheme != "" {
		label := "SCH"
		if card.Slash {
			label = "SCH/THW"
		}
		abilities = append(abilities, label+": "+card.Scheme)
	}
	if card.Thwart != "" {
		label := "THW"
		if card.Slash {
			label = "SCH/THW"
		}
		abilities = append(abilities, label+": "+card.Thwart)
	}
	if card.Attack != "" {
		abilities = append(abilities, "ATK: "+card.Attack)
	}
	if card.Defense != "" {
		abilities = append(abilities, "DEF: "+card.Defense)
	}
	if len(abilities) > 0 {
		blocks = append(blocks, strings.Join(abilities, "\n"))
	}

	var features []string
	if card.Hand != "" {
		features = append(features, "Hand Size: "+card.Hand)
	}
	if card.Health != "" {
		features = append(features, "Health: "+card.Health)
	}
	if card.StartingThreat != "" {
		features = append(features, "Starting Threat: "+card.StartingThreat)
	}
	if card.Acceleration != "" {
		features = append(features, "Acceleration: "+card.Acceleration)
	}
	if card.TargetThreat != "" {
		features = append(features, "Target Threat: "+card.TargetThreat)
	}
	if len(features) > 0 {
		blocks = append(blocks, strings.Join(features, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

func (r *Renderer) buildCredits(card *models.Card, snap *catalog.Snapshot) string {
	credits := []string{fmt.Sprintf("%s: <@%s>", BoldText("Author"), card.AuthorID)}

	var set *models.CollectionMeta
	if printing := card.PrintingByArtificialID(card.ID); printing != nil {
		set = snap.SetByID(printing.SetID)
	}

	if set != nil && set.CouncilNumber > 0 {
		credits = append(credits, fmt.Sprintf("✅ Released in Council Set #%d!", set.CouncilNumber))
	} else {
		credits = append(credits, "❌ Not yet released...")
	}

	return strings.Join(credits, "\n")
}

func (r *Renderer) buildFooter(card *models.Card, snap *catalog.Snapshot) string {
	var footer []string

	if own := card.PrintingByArtificialID(card.ID); own != nil {
		footer = append(footer, r.printingSummary(own, snap))
	}

	reprints := card.Reprints()
	switch {
	case len(reprints) > 3:
		for i := 0; i < 2; i++ {
			footer = append(footer, r.printingSummary(&reprints[i], snap))
		}
		footer = append(footer, fmt.Sprintf("...and %d more reprints.", len(reprints)-2))
	default:
		for i := range reprints {
			footer = append(footer, r.printingSummary(&reprints[i], snap))
		}
	}

	return strings.Join(footer, "\n")
}

func (r *Renderer) printingSummary(p *models.Printing, snap *catalog.Snapshot) string {
	setName := p.SetID
	if set := snap.SetByID(p.SetID); set != nil {
		setName = set.Name
	}
	packName := ""
	if p.PackID != "" {
		packName = p.PackID
		if pack := snap.PackByID(p.PackID); pack != nil {
			packName = pack.Name
		}
	}
	return PrintingSummary(p, setName, packName)
}

func embedColor(card *models.Card) int {
	key := card.Classification
	if card.Type == "Villain" || card.Type == "Main Scheme" {
		key = "Villain"
	}
	if color, ok := utils.Colors[key]; ok {
		return color
	}
	return utils.DefaultColor
}
