package stores

import (
	"context"
	"fmt"
	"time"

	"github.com/cardcodex/codex/codex/database"
	"github.com/cardcodex/codex/codex/database/models"
	"github.com/cardcodex/codex/codex/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReferenceStore loads the catalog reference data. It satisfies
// catalog.Store.
type ReferenceStore struct {
	db *database.Mongo
}

func NewReferenceStore(db *database.Mongo) *ReferenceStore {
	return &ReferenceStore{db: db}
}

func (s *ReferenceStore) Authors(ctx context.Context) ([]models.Author, error) {
	return loadAll[models.Author](ctx, s.db, "authors")
}

func (s *ReferenceStore) Packs(ctx context.Context) ([]models.CollectionMeta, error) {
	return loadAll[models.CollectionMeta](ctx, s.db, "packs")
}

func (s *ReferenceStore) Sets(ctx context.Context) ([]models.CollectionMeta, error) {
	return loadAll[models.CollectionMeta](ctx, s.db, "sets")
}

func (s *ReferenceStore) Rules(ctx context.Context) ([]models.Rule, error) {
	return loadAll[models.Rule](ctx, s.db, "rules")
}

// Configuration returns the operator configuration, or a zero value when none
// was ever stored.
func (s *ReferenceStore) Configuration(ctx context.Context) (models.BotConfiguration, error) {
	start := time.Now()

	var cfg models.BotConfiguration
	err := s.db.Collection("configurations").FindOne(ctx, bson.M{}).Decode(&cfg)
	logger.LogQuery("configurations", time.Since(start), err)

	if err == mongo.ErrNoDocuments {
		return models.BotConfiguration{}, nil
	}
	if err != nil {
		return models.BotConfiguration{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func loadAll[T any](ctx context.Context, db *database.Mongo, name string) ([]T, error) {
	start := time.Now()

	cursor, err := db.Collection(name).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		logger.LogQuery(name, time.Since(start), err)
		return nil, fmt.Errorf("failed to query %s: %w", name, err)
	}

	var records []T
	if err := cursor.All(ctx, &records); err != nil {
		logger.LogQuery(name, time.Since(start), err)
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}

	logger.LogQuery(name, time.Since(start), nil)
	return records, nil
}
