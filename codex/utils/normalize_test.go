package utils

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Normalized
	}{
		{
			name: "plain lowercasing",
			raw:  "Spider-Man",
			want: Normalized{
				Full:     "spider-man",
				Tokens:   []string{"spider", "man"},
				Stripped: "spiderman",
			},
		},
		{
			name: "diacritics folded",
			raw:  "Géant Vert",
			want: Normalized{
				Full:     "geant vert",
				Tokens:   []string{"geant", "vert"},
				Stripped: "geantvert",
			},
		},
		{
			name: "punctuation dropped",
			raw:  `"Attack!" (Version 2)`,
			want: Normalized{
				Full:     "attack version 2",
				Tokens:   []string{"attack", "version", "2"},
				Stripped: "attackversion2",
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: Normalized{Full: "", Tokens: nil, Stripped: ""},
		},
		{
			name: "only punctuation",
			raw:  "?!.",
			want: Normalized{Full: "", Tokens: nil, Stripped: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.raw)
			if got.Full != tt.want.Full {
				t.Errorf("Normalize().Full = %q, want %q", got.Full, tt.want.Full)
			}
			if !reflect.DeepEqual(got.Tokens, tt.want.Tokens) && (len(got.Tokens) != 0 || len(tt.want.Tokens) != 0) {
				t.Errorf("Normalize().Tokens = %v, want %v", got.Tokens, tt.want.Tokens)
			}
			if got.Stripped != tt.want.Stripped {
				t.Errorf("Normalize().Stripped = %q, want %q", got.Stripped, tt.want.Stripped)
			}
		})
	}
}

func TestNormalize_IdempotentOnFull(t *testing.T) {
	inputs := []string{
		"Spider-Man",
		"Géant Vert",
		"Call of the Wild!",
		"M.O.D.O.K.",
		"  spaced   out  ",
	}

	for _, raw := range inputs {
		once := Normalize(raw)
		twice := Normalize(once.Full)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Normalize(%q) not idempotent on Full: %+v != %+v", raw, once, twice)
		}
	}
}
