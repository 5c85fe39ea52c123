package services

import (
	"context"
	"testing"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/database/stores"
	"github.com/cardcodex/codex/codex/database/stores/mock"
	"github.com/cardcodex/codex/codex/utils"
	"go.uber.org/mock/gomock"
)

func namedCard(id, name string) *models.Card {
	return &models.Card{
		ID:           id,
		Official:     true,
		Name:         name,
		StrippedName: utils.Normalize(name).Stripped,
	}
}

func TestSearchService_ExactTierShortCircuits(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{namedCard("01001", "Vision")}, nil)

	s := NewSearchService(store)

	found, err := s.ByName(context.Background(), OriginOfficial, "Vision")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != "01001" {
		t.Errorf("ByName() = %+v, want the exact hit", found)
	}
}

func TestSearchService_RegexFallback(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return(nil, nil)
	store.EXPECT().
		SearchRegex(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{namedCard("02001", "War Machine")}, nil)

	s := NewSearchService(store)

	found, err := s.ByName(context.Background(), OriginOfficial, "machine")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != "02001" {
		t.Errorf("ByName() = %+v, want the substring hit", found)
	}
}

func TestSearchService_FuzzyFloor(t *testing.T) {
	pool := []*models.Card{
		namedCard("03001", "Spiderman"),
		namedCard("03002", "Quasar"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "close misspelling passes the floor", query: "spiderma", want: []string{"03001"}},
		{name: "short fragment fails the floor", query: "spi", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mock.NewMockCardStore(gomock.NewController(t))
			store.EXPECT().SearchExact(gomock.Any(), true, gomock.Any()).Return(nil, nil)
			store.EXPECT().SearchRegex(gomock.Any(), true, gomock.Any()).Return(nil, nil)
			store.EXPECT().AllByOrigin(gomock.Any(), true).Return(pool, nil)

			s := NewSearchService(store)

			found, err := s.ByName(context.Background(), OriginOfficial, tt.query)
			if err != nil {
				t.Fatalf("ByName() error = %v", err)
			}
			if len(found) != len(tt.want) {
				t.Fatalf("ByName() = %+v, want ids %v", found, tt.want)
			}
			for i, card := range found {
				if card.ID != tt.want[i] {
					t.Errorf("ByName()[%d] = %s, want %s", i, card.ID, tt.want[i])
				}
			}
		})
	}
}

func TestSearchService_ExactTermPriority(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{
			namedCard("04002", "Visionary"),
			namedCard("04001", "Vision"),
		}, nil)

	s := NewSearchService(store)

	found, err := s.ByName(context.Background(), OriginOfficial, "Vision")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != "04001" {
		t.Errorf("ByName() = %+v, want only the verbatim match", found)
	}
}

func TestSearchService_AllOriginsMergeOfficialFirst(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{namedCard("05001", "Nova Blast")}, nil)

	unofficial := namedCard("90001-alice", "Nova Strike")
	unofficial.Official = false
	unofficial.AuthorID = "alice"
	store.EXPECT().
		SearchExact(gomock.Any(), false, gomock.Any()).
		Return([]*models.Card{unofficial}, nil)

	s := NewSearchService(store)

	found, err := s.ByName(context.Background(), OriginAll, "nova")
	if err != nil {
		t.Fatalf("ByName() error = %v", err)
	}
	if len(found) != 2 || found[0].ID != "05001" || found[1].ID != "90001-alice" {
		t.Errorf("ByName() = %+v, want official hit first", found)
	}
}

func TestSearchService_CachesResults(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{namedCard("06001", "Cyclone")}, nil).
		Times(1)

	s := NewSearchService(store)

	for i := 0; i < 3; i++ {
		found, err := s.ByName(context.Background(), OriginOfficial, "Cyclone")
		if err != nil {
			t.Fatalf("ByName() call %d error = %v", i, err)
		}
		if len(found) != 1 {
			t.Fatalf("ByName() call %d = %+v", i, found)
		}
	}
}

func TestSearchService_ByFiltersPostFiltersNameResults(t *testing.T) {
	hero := namedCard("07001", "Valkyrie")
	hero.Type = "Hero"
	ally := namedCard("07101", "Valkyrie")
	ally.Type = "Ally"

	store := mock.NewMockCardStore(gomock.NewController(t))
	store.EXPECT().
		SearchExact(gomock.Any(), true, gomock.Any()).
		Return([]*models.Card{hero, ally}, nil)

	s := NewSearchService(store)

	found, err := s.ByFilters(context.Background(), OriginOfficial, "Valkyrie", stores.CardFilters{Type: "ally"})
	if err != nil {
		t.Fatalf("ByFilters() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != "07101" {
		t.Errorf("ByFilters() = %+v, want only the ally", found)
	}
}

func TestSearchService_ByFiltersWithoutName(t *testing.T) {
	store := mock.NewMockCardStore(gomock.NewController(t))
	filters := stores.CardFilters{Aspect: "Justice"}
	store.EXPECT().
		SearchFiltered(gomock.Any(), true, filters).
		Return([]*models.Card{namedCard("08001", "Clear the Area")}, nil)

	s := NewSearchService(store)

	found, err := s.ByFilters(context.Background(), OriginOfficial, "", filters)
	if err != nil {
		t.Fatalf("ByFilters() error = %v", err)
	}
	if len(found) != 1 || found[0].ID != "08001" {
		t.Errorf("ByFilters() = %+v", found)
	}
}
