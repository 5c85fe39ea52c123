package cards

import (
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
)

func TestResolveCollections(t *testing.T) {
	candidates := []models.CollectionMeta{
		{ID: "rors", Name: "The Rise of Red Skull", Kind: "pack", Official: true},
		{ID: "red", Name: "Red Skull Strikes", Kind: "pack", Official: true},
		{ID: "gmw", Name: "Galaxy's Most Wanted", Kind: "pack", Official: true},
		{ID: "fan", Name: "Red Skull Strikes", Kind: "pack", Official: false},
	}

	tests := []struct {
		name     string
		query    string
		official bool
		want     []string
	}{
		{
			name:     "exact name match",
			query:    "The Rise of Red Skull",
			official: true,
			want:     []string{"rors"},
		},
		{
			name:     "all tokens present",
			query:    "red skull",
			official: true,
			want:     []string{"rors", "red"},
		},
		{
			name:     "stripped substring",
			query:    "galaxys",
			official: true,
			want:     []string{"gmw"},
		},
		{
			name:     "official flag filters",
			query:    "red skull strikes",
			official: false,
			want:     []string{"fan"},
		},
		{
			name:     "no match",
			query:    "zzzz",
			official: true,
			want:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveCollections(candidates, tt.query, tt.official)
			if len(got) != len(tt.want) {
				t.Fatalf("ResolveCollections() = %d results, want %d", len(got), len(tt.want))
			}
			for i, meta := range got {
				if meta.ID != tt.want[i] {
					t.Errorf("ResolveCollections()[%d] = %s, want %s", i, meta.ID, tt.want[i])
				}
			}
		})
	}
}
