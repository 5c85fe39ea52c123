package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const defaultMongoTimeout = 10 * time.Second

type MongoConfig struct {
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// Mongo wraps the document store holding the card reference data. One named
// collection exists per origin and entity type, mirroring the index-per-origin
// layout of the upstream data dumps.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongo(ctx context.Context, cfg MongoConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultMongoTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to document store: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("document store unreachable: %w", err)
	}

	slog.Info("Document store connected",
		slog.String("type", "db"),
		slog.String("database", cfg.Database))

	return &Mongo{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// CardCollectionName returns the per-origin card collection name.
func CardCollectionName(official bool) string {
	if official {
		return "official_cards"
	}
	return "unofficial_cards"
}
