package cards

import "github.com/cardcodex/codex/codex/database/models"

// TrimDuplicates collapses cards related by a face or stage-group relation
// into their first occurrence, preserving order. Pairwise comparison is fine
// at result sizes of at most a few hundred.
func TrimDuplicates(cards []*models.Card) []*models.Card {
	var results []*models.Card

	for _, card := range cards {
		duplicate := false
		for _, kept := range results {
			if card.SharesFaceWith(kept) || card.SharesGroupWith(kept) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			results = append(results, card)
		}
	}

	return results
}
