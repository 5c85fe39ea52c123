package cards

import (
	"fmt"
	"strings"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
)

// FormatSymbols replaces inline resource/icon tokens with their emoji.
func FormatSymbols(text string) string {
	for token, symbol := range utils.Symbols {
		text = strings.ReplaceAll(text, token, symbol)
	}
	return text
}

// SpoilerIfIncomplete hides text behind spoiler bars for unreleased content.
func SpoilerIfIncomplete(text string, incomplete bool) string {
	if incomplete && text != "" {
		return "||" + text + "||"
	}
	return text
}

// QuoteText renders text as a block quote, keeping multi-line bodies quoted.
func QuoteText(text string) string {
	return "> " + strings.ReplaceAll(text, "\n", "\n> ")
}

func ItalicizeText(text string) string {
	return "*" + text + "*"
}

func BoldText(text string) string {
	return "**" + text + "**"
}

var markdownEscaper = strings.NewReplacer(
	"*", "\\*",
	"_", "\\_",
	"~", "\\~",
	"`", "\\`",
	"|", "\\|",
)

// EscapeMarkdown neutralizes markdown control characters in card text.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// FormatText prepares rules/special text for an embed body: symbol tokens
// become emoji and the card's self-references are bolded.
func FormatText(text string, cardName string) string {
	formatted := FormatSymbols(text)
	if cardName != "" {
		formatted = strings.ReplaceAll(formatted, cardName, BoldText(cardName))
	}
	return formatted
}

// PrintingSummary renders one printing for an embed footer.
func PrintingSummary(p *models.Printing, setName, packName string) string {
	parts := []string{setName}
	if p.SetNumber != "" {
		parts[0] = fmt.Sprintf("%s #%s", setName, p.SetNumber)
	}
	if packName != "" {
		entry := packName
		if p.PackNumber != "" {
			entry = fmt.Sprintf("%s #%s", packName, p.PackNumber)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, ", ")
}
