package cards

import (
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
)

func TestTrimDuplicates(t *testing.T) {
	tests := []struct {
		name  string
		cards []*models.Card
		want  []string
	}{
		{
			name: "faces collapse to first",
			cards: []*models.Card{
				{ID: "01001a", Official: true},
				{ID: "01001b", Official: true},
				{ID: "01002", Official: true},
			},
			want: []string{"01001a", "01002"},
		},
		{
			name: "group relatives collapse to first",
			cards: []*models.Card{
				{ID: "01055", Official: true, GroupID: "rhino"},
				{ID: "01056", Official: true, GroupID: "rhino"},
				{ID: "01057", Official: true, GroupID: "rhino"},
			},
			want: []string{"01055"},
		},
		{
			name: "different authors share a group id",
			cards: []*models.Card{
				{ID: "90001-alice", AuthorID: "alice", GroupID: "thanos"},
				{ID: "90001-bob", AuthorID: "bob", GroupID: "thanos"},
			},
			want: []string{"90001-alice"},
		},
		{
			name: "unrelated cards survive",
			cards: []*models.Card{
				{ID: "01001", Official: true},
				{ID: "02001", Official: true},
				{ID: "03001", Official: true, GroupID: "klaw"},
			},
			want: []string{"01001", "02001", "03001"},
		},
		{
			name:  "empty input",
			cards: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TrimDuplicates(tt.cards)
			if len(got) != len(tt.want) {
				t.Fatalf("TrimDuplicates() kept %d cards, want %d", len(got), len(tt.want))
			}
			for i, card := range got {
				if card.ID != tt.want[i] {
					t.Errorf("TrimDuplicates()[%d] = %s, want %s", i, card.ID, tt.want[i])
				}
			}
		})
	}
}
