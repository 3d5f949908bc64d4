package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/elevatescripts/backend/internal/models"
)

// Memory is the fallback Store used when no database is configured. Nothing
// survives a restart; the seeder fills it with the default dataset at boot.
type Memory struct {
	mu       sync.RWMutex
	products []models.Product
	bySlug   map[string]int
	status   map[models.Game]models.StatusEntry
	orders   []models.Order
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		bySlug: make(map[string]int),
		status: make(map[models.Game]models.StatusEntry),
	}
}

func (m *Memory) Kind() string { return "memory" }

func (m *Memory) Ping(ctx context.Context) error { return nil }

func (m *Memory) Collections(ctx context.Context) ([]string, error) {
	return []string{"products", "status_entries", "orders"}, nil
}

func (m *Memory) Products(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Product, len(m.products))
	copy(out, m.products)
	return out, nil
}

func (m *Memory) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	idx, ok := m.bySlug[slug]
	if !ok {
		return nil, fmt.Errorf("%w: product %q", models.ErrNotFound, slug)
	}
	p := m.products[idx]
	return &p, nil
}

func (m *Memory) CountProducts(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.products), nil
}

func (m *Memory) InsertProduct(ctx context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.bySlug[p.Slug]; exists {
		return fmt.Errorf("%w: product %q already exists", models.ErrInvalidInput, p.Slug)
	}
	m.bySlug[p.Slug] = len(m.products)
	m.products = append(m.products, *p)
	return nil
}

func (m *Memory) StatusEntries(ctx context.Context) ([]models.StatusEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Seed order, not map order.
	entries := make([]models.StatusEntry, 0, len(m.status))
	for _, g := range models.Games {
		if e, ok := m.status[g]; ok {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *Memory) StatusByGame(ctx context.Context, game models.Game) (*models.StatusEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.status[game]
	if !ok {
		return nil, fmt.Errorf("%w: status for %q", models.ErrNotFound, game)
	}
	return &e, nil
}

func (m *Memory) UpsertStatus(ctx context.Context, entry *models.StatusEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.status[entry.Game] = *entry
	return nil
}

func (m *Memory) InsertOrder(ctx context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *o)
	return nil
}

// OrderCount reports how many orders have been recorded. Test helper.
func (m *Memory) OrderCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.orders)
}
