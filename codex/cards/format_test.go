package cards

import (
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
)

func TestFormatSymbols(t *testing.T) {
	got := FormatSymbols("Spend {e} or {w} to attack.")
	want := "Spend ⚡ or 🃏 to attack."
	if got != want {
		t.Errorf("FormatSymbols() = %q, want %q", got, want)
	}
}

func TestSpoilerIfIncomplete(t *testing.T) {
	if got := SpoilerIfIncomplete("secret", true); got != "||secret||" {
		t.Errorf("SpoilerIfIncomplete(incomplete) = %q", got)
	}
	if got := SpoilerIfIncomplete("public", false); got != "public" {
		t.Errorf("SpoilerIfIncomplete(complete) = %q", got)
	}
	if got := SpoilerIfIncomplete("", true); got != "" {
		t.Errorf("SpoilerIfIncomplete(empty) = %q", got)
	}
}

func TestQuoteText(t *testing.T) {
	got := QuoteText("first\nsecond")
	want := "> first\n> second"
	if got != want {
		t.Errorf("QuoteText() = %q, want %q", got, want)
	}
}

func TestEscapeMarkdown(t *testing.T) {
	got := EscapeMarkdown("a*b_c|d")
	want := `a\*b\_c\|d`
	if got != want {
		t.Errorf("EscapeMarkdown() = %q, want %q", got, want)
	}
}

func TestFormatText_BoldsSelfReference(t *testing.T) {
	got := FormatText("Exhaust Vision: deal {p} damage.", "Vision")
	want := "Exhaust **Vision**: deal 👊 damage."
	if got != want {
		t.Errorf("FormatText() = %q, want %q", got, want)
	}
}

func TestPrintingSummary(t *testing.T) {
	tests := []struct {
		name     string
		printing models.Printing
		setName  string
		packName string
		want     string
	}{
		{
			name:     "set only",
			printing: models.Printing{SetNumber: "12"},
			setName:  "Core Set",
			want:     "Core Set #12",
		},
		{
			name:     "set and pack",
			printing: models.Printing{SetNumber: "4", PackNumber: "18"},
			setName:  "Rhino",
			packName: "Core",
			want:     "Rhino #4, Core #18",
		},
		{
			name:     "no numbers",
			printing: models.Printing{},
			setName:  "Promo",
			packName: "Promo Pack",
			want:     "Promo, Promo Pack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrintingSummary(&tt.printing, tt.setName, tt.packName); got != tt.want {
				t.Errorf("PrintingSummary() = %q, want %q", got, tt.want)
			}
		})
	}
}
