package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevatescripts/backend/internal/models"
)

func newTestSQLite(t *testing.T) *SQLite {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "shop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteProductRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	p, err := models.NewLicenseProduct("vmp-license", "لایسنس VMP", "VMP License", models.GameVMP, []models.Duration{
		{Label: "1m", Months: 1, Price: 3_000_000},
		{Label: "3m", Months: 3, Price: 8_000_000},
	})
	require.NoError(t, err)
	p.Images = []string{"/vmp.png"}
	p.Badge = "Best Value"

	require.NoError(t, s.InsertProduct(ctx, p))

	got, err := s.ProductBySlug(ctx, "vmp-license")
	require.NoError(t, err)
	assert.Equal(t, models.KindLicense, got.Kind)
	assert.Equal(t, models.GameVMP, got.Game)
	assert.True(t, got.RequiresHardware)
	assert.Equal(t, []string{"/vmp.png"}, got.Images)
	require.Len(t, got.Durations, 2)
	assert.Equal(t, int64(8_000_000), got.Durations[1].Price)

	_, err = s.ProductBySlug(ctx, "missing")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestSQLiteSeedIsIdempotent(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	Seed(ctx, s)
	Seed(ctx, s)

	count, err := s.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	entries, err := s.StatusEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestSQLiteStatusUpsert(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()
	Seed(ctx, s)

	entry := &models.StatusEntry{
		Game:      models.GameCS2,
		State:     models.StateDetected,
		UpdatedAt: time.Now().UTC(),
		NoteEN:    "wave ban",
	}
	require.NoError(t, s.UpsertStatus(ctx, entry))

	// Still exactly one row per game.
	entries, err := s.StatusEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	got, err := s.StatusByGame(ctx, models.GameCS2)
	require.NoError(t, err)
	assert.Equal(t, models.StateDetected, got.State)
	assert.Equal(t, "wave ban", got.NoteEN)
	assert.WithinDuration(t, entry.UpdatedAt, got.UpdatedAt, time.Second)
}

func TestSQLiteOrderRoundTrip(t *testing.T) {
	s := newTestSQLite(t)
	ctx := context.Background()

	order := &models.Order{
		ID:      "11111111-2222-3333-4444-555555555555",
		Email:   "buyer@example.com",
		Address: "Tehran",
		Items: []models.OrderItem{
			{Slug: "vmp-license", Title: "VMP License", Kind: models.KindLicense, DurationLabel: "1m", Qty: 1, UnitPrice: 3_000_000, TotalPrice: 3_000_000},
		},
		Subtotal:      3_000_000,
		Discount:      0,
		ShippingFee:   150_000,
		Total:         3_150_000,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}
	require.NoError(t, s.InsertOrder(ctx, order))

	orders, err := s.Orders(ctx, 10)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	got := orders[0]
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, models.PaymentPending, got.PaymentStatus)
	assert.Equal(t, int64(3_150_000), got.Total)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "vmp-license", got.Items[0].Slug)
}
