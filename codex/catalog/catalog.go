// Package catalog holds the process-wide reference data: authors, packs,
// sets, keyword rules and operator configuration. The data is loaded once at
// startup into an immutable snapshot and handed to components by injection;
// Reload swaps in a fresh snapshot atomically.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cardcodex/codex/codex/database/models"
	"golang.org/x/sync/errgroup"
)

// Store is the reference-data side of the document store.
type Store interface {
	Authors(ctx context.Context) ([]models.Author, error)
	Packs(ctx context.Context) ([]models.CollectionMeta, error)
	Sets(ctx context.Context) ([]models.CollectionMeta, error)
	Rules(ctx context.Context) ([]models.Rule, error)
	Configuration(ctx context.Context) (models.BotConfiguration, error)
}

// Snapshot is one immutable load of the reference data.
type Snapshot struct {
	Authors []models.Author
	Packs   []models.CollectionMeta
	Sets    []models.CollectionMeta
	Rules   []models.Rule
	Config  models.BotConfiguration

	LoadedAt time.Time
}

// Catalog owns the current snapshot.
type Catalog struct {
	store Store
	snap  atomic.Pointer[Snapshot]
}

// New loads the initial snapshot. The catalog is unusable until New succeeds.
func New(ctx context.Context, store Store) (*Catalog, error) {
	c := &Catalog{store: store}
	if err := c.Reload(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Reload fetches all reference data and swaps the snapshot in one step.
// Concurrent readers keep the old snapshot until their next Snapshot call.
func (c *Catalog) Reload(ctx context.Context) error {
	start := time.Now()
	snap := &Snapshot{LoadedAt: start}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		snap.Authors, err = c.store.Authors(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Packs, err = c.store.Packs(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Sets, err = c.store.Sets(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Rules, err = c.store.Rules(gctx)
		return err
	})
	g.Go(func() (err error) {
		snap.Config, err = c.store.Configuration(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	c.snap.Store(snap)

	slog.Info("Catalog loaded",
		slog.String("type", "sys"),
		slog.Int("authors", len(snap.Authors)),
		slog.Int("packs", len(snap.Packs)),
		slog.Int("sets", len(snap.Sets)),
		slog.Int("rules", len(snap.Rules)),
		slog.Duration("took", time.Since(start)))

	return nil
}

// Snapshot returns the current snapshot. Never nil after New.
func (c *Catalog) Snapshot() *Snapshot {
	return c.snap.Load()
}

func (s *Snapshot) AuthorByID(id string) *models.Author {
	for i := range s.Authors {
		if s.Authors[i].ID == id {
			return &s.Authors[i]
		}
	}
	return nil
}

func (s *Snapshot) SetByID(id string) *models.CollectionMeta {
	for i := range s.Sets {
		if s.Sets[i].ID == id {
			return &s.Sets[i]
		}
	}
	return nil
}

func (s *Snapshot) PackByID(id string) *models.CollectionMeta {
	for i := range s.Packs {
		if s.Packs[i].ID == id {
			return &s.Packs[i]
		}
	}
	return nil
}

// RestrictedChannels returns the channels unofficial-content queries are
// limited to in a guild, or nil when the guild is unrestricted.
func (s *Snapshot) RestrictedChannels(guildID string) []string {
	if s.Config.UnofficialRestrictions == nil {
		return nil
	}
	return s.Config.UnofficialRestrictions[guildID]
}

// IsDonor reports whether a user is on the beta allow-list.
func (s *Snapshot) IsDonor(userID string) bool {
	for _, donor := range s.Config.Donors {
		if donor == userID {
			return true
		}
	}
	return false
}
