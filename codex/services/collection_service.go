package services

import (
	"context"
	"fmt"

	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/database/stores"
)

// Collection tags describe what the navigator's element arrows step through.
const (
	TagStage = "Stage"
	TagCard  = "Card"
)

// CollectionService assembles the navigable card collections behind a
// presented card: its flip faces, its stage group, or an arbitrary batch.
type CollectionService struct {
	store stores.CardStore
}

func NewCollectionService(store stores.CardStore) *CollectionService {
	return &CollectionService{store: store}
}

// FindFacesAndElements builds the collection reachable from a single card.
// Staged cards (villains, main schemes) pull in their whole stage group, with
// each stage's faces nested under its element. Multi-faced cards pull in
// their faces. Plain cards stand alone.
func (s *CollectionService) FindFacesAndElements(ctx context.Context, card *models.Card) (*models.CardCollection, error) {
	if card.GroupID != "" {
		stages, err := s.store.StagesOf(ctx, card)
		if err != nil {
			return nil, fmt.Errorf("failed to load stage group: %w", err)
		}
		if len(stages) > 0 {
			coll := &models.CardCollection{
				Cards:    stages,
				Elements: groupElements(stages),
				Tag:      TagStage,
			}
			activateFaces(coll, card.ID)
			return coll, nil
		}
	}

	faces, err := s.store.FacesOf(ctx, card)
	if err != nil {
		return nil, fmt.Errorf("failed to load faces: %w", err)
	}
	if len(faces) > 0 {
		coll := &models.CardCollection{Cards: faces}
		for _, face := range faces {
			coll.Faces = append(coll.Faces, face.ID)
		}
		return coll, nil
	}

	return &models.CardCollection{Cards: []*models.Card{card}}, nil
}

// FromBatch wraps an already-resolved batch of cards, one element per face
// group, for batch navigation.
func (s *CollectionService) FromBatch(batch []*models.Card) *models.CardCollection {
	coll := &models.CardCollection{
		Cards:    batch,
		Elements: groupElements(batch),
		Tag:      TagCard,
	}
	if len(batch) > 0 {
		activateFaces(coll, batch[0].ID)
	}
	return coll
}

// FromCollection loads every card printed in a pack or set and wraps it for
// batch navigation.
func (s *CollectionService) FromCollection(ctx context.Context, meta models.CollectionMeta) (*models.CardCollection, error) {
	printed, err := s.store.ByCollection(ctx, meta)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s %q: %w", meta.Kind, meta.Name, err)
	}
	if len(printed) == 0 {
		return nil, nil
	}
	return s.FromBatch(printed), nil
}

// groupElements folds a card list into elements, one per base identity, in
// input order. Faces are only recorded for multi-faced elements.
func groupElements(list []*models.Card) []models.Element {
	var elements []models.Element
	index := make(map[string]int)

	for _, card := range list {
		base := card.BaseID()
		if i, ok := index[base]; ok {
			if len(elements[i].Faces) == 0 {
				elements[i].Faces = []string{elements[i].CardID}
			}
			elements[i].Faces = append(elements[i].Faces, card.ID)
			continue
		}
		index[base] = len(elements)
		elements = append(elements, models.Element{CardID: card.ID})
	}
	return elements
}

// activateFaces points the collection's face list at the element holding the
// given card.
func activateFaces(coll *models.CardCollection, cardID string) {
	for _, el := range coll.Elements {
		if el.CardID == cardID {
			coll.Faces = el.Faces
			return
		}
		for _, face := range el.Faces {
			if face == cardID {
				coll.Faces = el.Faces
				return
			}
		}
	}
}
