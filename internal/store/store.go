// Package store persists the three shop collections: products, status
// entries and orders. Two implementations exist behind the same interface, a
// SQLite-backed one and an in-memory fallback for running without a database.
package store

import (
	"context"

	"github.com/elevatescripts/backend/internal/models"
)

type Store interface {
	// Kind names the backing implementation for diagnostics.
	Kind() string
	Ping(ctx context.Context) error
	Collections(ctx context.Context) ([]string, error)

	Products(ctx context.Context) ([]models.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
	CountProducts(ctx context.Context) (int, error)
	InsertProduct(ctx context.Context, p *models.Product) error

	StatusEntries(ctx context.Context) ([]models.StatusEntry, error)
	StatusByGame(ctx context.Context, game models.Game) (*models.StatusEntry, error)
	UpsertStatus(ctx context.Context, entry *models.StatusEntry) error

	InsertOrder(ctx context.Context, o *models.Order) error
}
