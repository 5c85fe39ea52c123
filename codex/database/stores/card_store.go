package stores

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/cardcodex/codex/codex/database"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/logger"
	"github.com/cardcodex/codex/codex/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CardFilters is the structured /card filter conjunction. Empty fields do not
// constrain. Resource holds a printed resource token, or the "none" sentinel
// for cards without one.
type CardFilters struct {
	Aspect   string
	AuthorID string
	Cost     string
	Resource string
	Text     string
	Traits   []string
	Type     string
}

// ResourceNone is the sentinel for "no printed resource".
const ResourceNone = "none"

// IsZero reports whether no filter is set.
func (f CardFilters) IsZero() bool {
	return f.Aspect == "" && f.AuthorID == "" && f.Cost == "" && f.Resource == "" &&
		f.Text == "" && len(f.Traits) == 0 && f.Type == ""
}

//go:generate go run go.uber.org/mock/mockgen -source=card_store.go -destination=mock/card_store.go -package=mock

// CardStore is the card side of the document store. The name-search tiers are
// exposed separately so the search service can cascade exact → regex → fuzzy.
type CardStore interface {
	SearchExact(ctx context.Context, official bool, q utils.Normalized) ([]*models.Card, error)
	SearchRegex(ctx context.Context, official bool, q utils.Normalized) ([]*models.Card, error)
	SearchFiltered(ctx context.Context, official bool, filters CardFilters) ([]*models.Card, error)
	AllByOrigin(ctx context.Context, official bool) ([]*models.Card, error)
	FacesOf(ctx context.Context, card *models.Card) ([]*models.Card, error)
	StagesOf(ctx context.Context, card *models.Card) ([]*models.Card, error)
	ByCollection(ctx context.Context, meta models.CollectionMeta) ([]*models.Card, error)
}

type cardStore struct {
	db *database.Mongo
}

func NewCardStore(db *database.Mongo) CardStore {
	return &cardStore{db: db}
}

var idSort = options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

func (s *cardStore) find(ctx context.Context, official bool, filter bson.M, opts ...*options.FindOptions) ([]*models.Card, error) {
	start := time.Now()
	name := database.CardCollectionName(official)

	cursor, err := s.db.Collection(name).Find(ctx, filter, opts...)
	if err != nil {
		logger.LogQuery(name, time.Since(start), err)
		return nil, fmt.Errorf("card query against %s failed: %w", name, err)
	}

	var cards []*models.Card
	if err := cursor.All(ctx, &cards); err != nil {
		logger.LogQuery(name, time.Since(start), err)
		return nil, fmt.Errorf("failed to decode cards from %s: %w", name, err)
	}

	logger.LogQuery(name, time.Since(start), nil)
	return cards, nil
}

// SearchExact is the first name-search tier: normalized equality over id,
// name and subname, with the tokenized form requiring every query token.
func (s *cardStore) SearchExact(ctx context.Context, official bool, q utils.Normalized) ([]*models.Card, error) {
	or := []bson.M{
		{"_id": q.Full},
		{"name": caseInsensitiveEquals(q.Full)},
		{"subname": caseInsensitiveEquals(q.Full)},
		{"strippedName": q.Stripped},
		{"strippedSubname": q.Stripped},
	}
	if len(q.Tokens) > 0 {
		or = append(or,
			bson.M{"tokenizedName": bson.M{"$all": q.Tokens}},
			bson.M{"tokenizedSubname": bson.M{"$all": q.Tokens}},
		)
	}

	return s.find(ctx, official, bson.M{"$or": or}, idSort)
}

// SearchRegex is the second tier: substring containment of the stripped query
// over id and the stripped name fields.
func (s *cardStore) SearchRegex(ctx context.Context, official bool, q utils.Normalized) ([]*models.Card, error) {
	if q.Stripped == "" {
		return nil, nil
	}

	pattern := regexp.QuoteMeta(q.Stripped)
	contains := bson.M{"$regex": pattern, "$options": "i"}

	return s.find(ctx, official, bson.M{"$or": []bson.M{
		{"_id": contains},
		{"strippedName": contains},
		{"strippedSubname": contains},
	}}, idSort)
}

// SearchFiltered applies the structured filter conjunction.
func (s *cardStore) SearchFiltered(ctx context.Context, official bool, filters CardFilters) ([]*models.Card, error) {
	return s.find(ctx, official, filteredQuery(filters), idSort)
}

func filteredQuery(filters CardFilters) bson.M {
	filter := bson.M{}

	if filters.Aspect != "" {
		filter["classification"] = caseInsensitiveEquals(filters.Aspect)
	}
	if filters.AuthorID != "" {
		filter["authorId"] = filters.AuthorID
	}
	if filters.Cost != "" {
		filter["cost"] = caseInsensitiveEquals(filters.Cost)
	}
	if filters.Resource != "" {
		if filters.Resource == ResourceNone {
			filter["resource"] = bson.M{"$in": bson.A{nil, ""}}
		} else {
			filter["resource"] = bson.M{"$regex": regexp.QuoteMeta(filters.Resource)}
		}
	}
	if filters.Text != "" {
		contains := bson.M{"$regex": regexp.QuoteMeta(filters.Text), "$options": "i"}
		filter["$or"] = []bson.M{{"rules": contains}, {"special": contains}}
	}
	if len(filters.Traits) > 0 {
		// $all rejects operator documents, so each trait must be a native
		// regex value rather than a {"$regex": ...} document.
		traits := make(bson.A, 0, len(filters.Traits))
		for _, trait := range filters.Traits {
			traits = append(traits, primitive.Regex{
				Pattern: "^" + regexp.QuoteMeta(trait) + "$",
				Options: "i",
			})
		}
		filter["traits"] = bson.M{"$all": traits}
	}
	if filters.Type != "" {
		filter["type"] = caseInsensitiveEquals(filters.Type)
	}

	return filter
}

// AllByOrigin loads every card of one origin, feeding the in-process fuzzy
// tier. The card sets are small enough (a few thousand records) that this
// stays cheap, and results are cached above this layer.
func (s *cardStore) AllByOrigin(ctx context.Context, official bool) ([]*models.Card, error) {
	return s.find(ctx, official, bson.M{}, idSort)
}

// FacesOf returns all faces sharing the card's base identity, in id order,
// or nil when the card is single-faced.
func (s *cardStore) FacesOf(ctx context.Context, card *models.Card) ([]*models.Card, error) {
	baseID := card.BaseID()
	if len(card.ID) == len(baseID) {
		return nil, nil
	}

	faces, err := s.find(ctx, card.Official, bson.M{
		"_id": bson.M{"$regex": "^" + regexp.QuoteMeta(baseID)},
	}, idSort)
	if err != nil {
		return nil, err
	}
	if len(faces) <= 1 {
		return nil, nil
	}
	return faces, nil
}

// StagesOf returns every card of the card's stage group, in id order, or nil
// when the card is not part of a group.
func (s *cardStore) StagesOf(ctx context.Context, card *models.Card) ([]*models.Card, error) {
	if card.GroupID == "" {
		return nil, nil
	}

	stages, err := s.find(ctx, card.Official, bson.M{"groupId": card.GroupID}, idSort)
	if err != nil {
		return nil, err
	}
	if len(stages) <= 1 {
		return nil, nil
	}
	return stages, nil
}

// ByCollection returns every card printed in a pack or set, in id order.
func (s *cardStore) ByCollection(ctx context.Context, meta models.CollectionMeta) ([]*models.Card, error) {
	field := "printings.setId"
	if meta.Kind == "pack" {
		field = "printings.packId"
	}
	return s.find(ctx, meta.Official, bson.M{field: meta.ID}, idSort)
}

func caseInsensitiveEquals(value string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(value) + "$", "$options": "i"}
}
