package cards

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/cardcodex/codex/codex/database/models"
)

// RuleEntry is one keyword/icon reference resolved for a specific card.
type RuleEntry struct {
	Title       string
	Description string
}

// EvaluateRules matches the keyword dictionary against a card's rules and
// special text. Rule regexes may carry the named groups quantity, start and
// type, which are substituted into the entry description. Duplicate entries
// collapse.
func EvaluateRules(card *models.Card, rules []models.Rule) []RuleEntry {
	if card.Rules == "" && card.Special == "" {
		return nil
	}

	var entries []RuleEntry

	for _, rule := range rules {
		pattern, err := regexp.Compile("(?i)" + rule.Regex)
		if err != nil {
			slog.Warn("Skipping malformed keyword rule",
				slog.String("type", "sys"),
				slog.String("rule", rule.Title),
				slog.Any("error", err))
			continue
		}

		for _, text := range []string{card.Rules, card.Special} {
			if text == "" {
				continue
			}

			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}

			entry := RuleEntry{
				Title:       rule.Title,
				Description: rule.Description,
			}
			for _, group := range []string{"quantity", "start", "type"} {
				value := ""
				if i := pattern.SubexpIndex(group); i >= 0 && i < len(match) {
					value = match[i]
				}
				entry.Description = strings.ReplaceAll(entry.Description, "{"+group+"}", value)
			}

			if !containsEntry(entries, entry) {
				entries = append(entries, entry)
			}
		}
	}

	return entries
}

func containsEntry(entries []RuleEntry, entry RuleEntry) bool {
	for _, e := range entries {
		if e.Title == entry.Title && e.Description == entry.Description {
			return true
		}
	}
	return false
}
