package cards

import (
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
)

func TestEvaluateRules(t *testing.T) {
	rules := []models.Rule{
		{
			Title:       "Quickstrike",
			Description: "Attacks immediately.",
			Regex:       `\bquickstrike\b`,
		},
		{
			Title:       "Stalwart",
			Description: "Cannot be stunned or confused.",
			Regex:       `\bstalwart\b`,
		},
		{
			Title:       "Surge",
			Description: "Reveal {quantity} additional card(s).",
			Regex:       `surge (?P<quantity>\d+)`,
		},
		{
			Title:       "Broken",
			Description: "never matches",
			Regex:       `(?P<bad`,
		},
	}

	tests := []struct {
		name string
		card *models.Card
		want []RuleEntry
	}{
		{
			name: "keyword in rules text",
			card: &models.Card{Rules: "Quickstrike. Attack 2."},
			want: []RuleEntry{{Title: "Quickstrike", Description: "Attacks immediately."}},
		},
		{
			name: "keyword in special text",
			card: &models.Card{Special: "This villain has Stalwart while enraged."},
			want: []RuleEntry{{Title: "Stalwart", Description: "Cannot be stunned or confused."}},
		},
		{
			name: "named group substitution",
			card: &models.Card{Rules: "Surge 2."},
			want: []RuleEntry{{Title: "Surge", Description: "Reveal 2 additional card(s)."}},
		},
		{
			name: "same keyword in both texts collapses",
			card: &models.Card{Rules: "Quickstrike.", Special: "Quickstrike."},
			want: []RuleEntry{{Title: "Quickstrike", Description: "Attacks immediately."}},
		},
		{
			name: "no text no entries",
			card: &models.Card{},
			want: nil,
		},
		{
			name: "no match",
			card: &models.Card{Rules: "Deal 3 damage."},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRules(tt.card, rules)
			if len(got) != len(tt.want) {
				t.Fatalf("EvaluateRules() = %d entries, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, entry := range got {
				if entry != tt.want[i] {
					t.Errorf("EvaluateRules()[%d] = %+v, want %+v", i, entry, tt.want[i])
				}
			}
		})
	}
}
