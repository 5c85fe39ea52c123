package cards

import (
	"slices"
	"strings"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/utils"
)

// ResolveCollections finds the packs or sets matching a free-text name query.
// Per candidate the tiers apply in order, first match wins: exact normalized
// name, every query token among the name tokens, stripped-substring.
func ResolveCollections(candidates []models.CollectionMeta, query string, official bool) []models.CollectionMeta {
	q := utils.Normalize(query)

	var results []models.CollectionMeta
	for _, candidate := range candidates {
		if candidate.Official != official {
			continue
		}

		name := utils.Normalize(candidate.Name)

		switch {
		case name.Full == q.Full:
			results = append(results, candidate)
		case containsAllTokens(name.Tokens, q.Tokens):
			results = append(results, candidate)
		case q.Stripped != "" && strings.Contains(name.Stripped, q.Stripped):
			results = append(results, candidate)
		}
	}

	return results
}

func containsAllTokens(haystack, needles []string) bool {
	if len(needles) == 0 {
		return false
	}
	for _, needle := range needles {
		if !slices.Contains(haystack, needle) {
			return false
		}
	}
	return true
}
