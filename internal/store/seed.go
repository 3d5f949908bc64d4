package store

import (
	"context"
	"log/slog"

	"github.com/elevatescripts/backend/internal/catalog"
)

// Seed inserts the default catalog into an empty store and a default status
// entry for any game that lacks one. Existence checks make it idempotent, and
// every failure is logged and swallowed: seeding must never block startup.
func Seed(ctx context.Context, s Store) {
	count, err := s.CountProducts(ctx)
	if err != nil {
		slog.Warn("seed: could not count products, skipping catalog seed", "error", err)
	} else if count == 0 {
		for _, p := range catalog.DefaultProducts() {
			if err := s.InsertProduct(ctx, &p); err != nil {
				slog.Warn("seed: insert product failed", "slug", p.Slug, "error", err)
			}
		}
	}

	for _, entry := range catalog.DefaultStatusEntries() {
		if _, err := s.StatusByGame(ctx, entry.Game); err == nil {
			continue
		}
		if err := s.UpsertStatus(ctx, &entry); err != nil {
			slog.Warn("seed: insert status entry failed", "game", entry.Game, "error", err)
		}
	}
}
