package services

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/cardcodex/codex/codex/cards"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/database/stores"
	"github.com/cardcodex/codex/codex/utils"
	lru "github.com/hashicorp/golang-lru"
	"github.com/sahilm/fuzzy"
)

const (
	searchCacheSize = 2048

	// fuzzyFloor is the minimum share of a card name the query must cover
	// before a fuzzy hit counts as a match.
	fuzzyFloor = 0.70
)

// Origin selects which card pool a search runs against.
const (
	OriginAll        = "all"
	OriginOfficial   = "official"
	OriginUnofficial = "unofficial"
)

type cachedSearch struct {
	cards     []*models.Card
	timestamp time.Time
}

// SearchService resolves card queries through three tiers: exact match,
// substring match, then in-process fuzzy match. Results are deduplicated so
// each face group and stage group surfaces once.
type SearchService struct {
	store       stores.CardStore
	cache       *lru.Cache
	cacheExpiry time.Duration
}

func NewSearchService(store stores.CardStore) *SearchService {
	cache, _ := lru.New(searchCacheSize)
	return &SearchService{
		store:       store,
		cache:       cache,
		cacheExpiry: utils.CacheExpiration,
	}
}

// ByName runs the tiered name search over the requested origin. When both
// origins are searched, official cards come first. Within the winning tier an
// exact name, subname or id hit narrows the result to those cards.
func (s *SearchService) ByName(ctx context.Context, origin string, rawQuery string) ([]*models.Card, error) {
	q := utils.Normalize(rawQuery)
	if q.Stripped == "" {
		return nil, nil
	}

	cacheKey := origin + "|" + q.Stripped
	if cached, ok := s.cache.Get(cacheKey); ok {
		entry := cached.(cachedSearch)
		if time.Since(entry.timestamp) < s.cacheExpiry {
			return entry.cards, nil
		}
		s.cache.Remove(cacheKey)
	}

	var merged []*models.Card
	for _, official := range originPools(origin) {
		found, err := s.searchOrigin(ctx, official, q)
		if err != nil {
			return nil, err
		}
		merged = append(merged, found...)
	}

	merged = prioritizeExact(merged, q)
	merged = cards.TrimDuplicates(merged)

	s.cache.Add(cacheKey, cachedSearch{cards: merged, timestamp: time.Now()})
	return merged, nil
}

// ByFilters runs the structured filter search. When a name is given alongside
// other filters, the name tiers run first and the remaining filters are
// applied to the matches.
func (s *SearchService) ByFilters(ctx context.Context, origin string, name string, filters stores.CardFilters) ([]*models.Card, error) {
	if name != "" {
		found, err := s.ByName(ctx, origin, name)
		if err != nil {
			return nil, err
		}
		var filtered []*models.Card
		for _, card := range found {
			if matchesFilters(card, filters) {
				filtered = append(filtered, card)
			}
		}
		return filtered, nil
	}

	var merged []*models.Card
	for _, official := range originPools(origin) {
		found, err := s.store.SearchFiltered(ctx, official, filters)
		if err != nil {
			return nil, fmt.Errorf("filtered search failed: %w", err)
		}
		merged = append(merged, found...)
	}
	return cards.TrimDuplicates(merged), nil
}

func (s *SearchService) searchOrigin(ctx context.Context, official bool, q utils.Normalized) ([]*models.Card, error) {
	found, err := s.store.SearchExact(ctx, official, q)
	if err != nil {
		return nil, fmt.Errorf("exact search failed: %w", err)
	}
	if len(found) > 0 {
		return found, nil
	}

	found, err = s.store.SearchRegex(ctx, official, q)
	if err != nil {
		return nil, fmt.Errorf("substring search failed: %w", err)
	}
	if len(found) > 0 {
		return found, nil
	}

	pool, err := s.store.AllByOrigin(ctx, official)
	if err != nil {
		return nil, fmt.Errorf("fuzzy pool load failed: %w", err)
	}
	return fuzzySearch(pool, q), nil
}

func originPools(origin string) []bool {
	switch origin {
	case OriginOfficial:
		return []bool{true}
	case OriginUnofficial:
		return []bool{false}
	default:
		return []bool{true, false}
	}
}

type fuzzyCandidate struct {
	card *models.Card
	text string
}

type fuzzySource []fuzzyCandidate

func (s fuzzySource) String(i int) string { return s[i].text }
func (s fuzzySource) Len() int            { return len(s) }

// fuzzySearch is the last tier. A match must cover at least fuzzyFloor of the
// candidate name. Hits are ordered by match score, then id.
func fuzzySearch(pool []*models.Card, q utils.Normalized) []*models.Card {
	var source fuzzySource
	for _, card := range pool {
		if card.StrippedName != "" {
			source = append(source, fuzzyCandidate{card: card, text: card.StrippedName})
		}
		if card.StrippedSubname != "" {
			source = append(source, fuzzyCandidate{card: card, text: card.StrippedSubname})
		}
	}

	matches := fuzzy.FindFrom(q.Stripped, source)

	type scored struct {
		card  *models.Card
		score int
	}
	best := make(map[string]scored)
	for _, match := range matches {
		candidate := source[match.Index]
		if float64(len(q.Stripped))/float64(len(candidate.text)) < fuzzyFloor {
			continue
		}
		if prev, ok := best[candidate.card.ID]; !ok || match.Score > prev.score {
			best[candidate.card.ID] = scored{card: candidate.card, score: match.Score}
		}
	}

	hits := make([]scored, 0, len(best))
	for _, hit := range best {
		hits = append(hits, hit)
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].card.ID < hits[j].card.ID
	})

	found := make([]*models.Card, 0, len(hits))
	for _, hit := range hits {
		found = append(found, hit.card)
	}
	return found
}

// prioritizeExact narrows a result set to the cards whose id, name or subname
// equals the query outright, when any do.
func prioritizeExact(found []*models.Card, q utils.Normalized) []*models.Card {
	var exact []*models.Card
	for _, card := range found {
		if strings.EqualFold(card.ID, q.Full) ||
			strings.EqualFold(card.Name, q.Full) ||
			strings.EqualFold(card.Subname, q.Full) ||
			card.StrippedName == q.Stripped ||
			card.StrippedSubname == q.Stripped {
			exact = append(exact, card)
		}
	}
	if len(exact) > 0 {
		return exact
	}
	return found
}

// matchesFilters mirrors the store-side filter conjunction for post-filtering
// name-search results.
func matchesFilters(card *models.Card, filters stores.CardFilters) bool {
	if filters.Aspect != "" && !strings.EqualFold(card.Classification, filters.Aspect) {
		return false
	}
	if filters.AuthorID != "" && card.AuthorID != filters.AuthorID {
		return false
	}
	if filters.Cost != "" && !strings.EqualFold(card.Cost, filters.Cost) {
		return false
	}
	if filters.Resource != "" {
		if filters.Resource == stores.ResourceNone {
			if card.Resource != "" {
				return false
			}
		} else if !strings.Contains(card.Resource, filters.Resource) {
			return false
		}
	}
	if filters.Text != "" {
		text := strings.ToLower(filters.Text)
		if !strings.Contains(strings.ToLower(card.Rules), text) &&
			!strings.Contains(strings.ToLower(card.Special), text) {
			return false
		}
	}
	if len(filters.Traits) > 0 {
		for _, want := range filters.Traits {
			if !slices.ContainsFunc(card.Traits, func(trait string) bool {
				return strings.EqualFold(trait, want)
			}) {
				return false
			}
		}
	}
	if filters.Type != "" && !strings.EqualFold(card.Type, filters.Type) {
		return false
	}
	return true
}
