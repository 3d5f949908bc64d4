package pricing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elevatescripts/backend/internal/catalog"
	"github.com/elevatescripts/backend/internal/models"
)

// fixtureCatalog serves the default dataset without a store.
type fixtureCatalog struct {
	products map[string]models.Product
}

func newFixtureCatalog() fixtureCatalog {
	c := fixtureCatalog{products: make(map[string]models.Product)}
	for _, p := range catalog.DefaultProducts() {
		c.products[p.Slug] = p
	}
	return c
}

func (c fixtureCatalog) ProductBySlug(_ context.Context, slug string) (*models.Product, error) {
	p, ok := c.products[slug]
	if !ok {
		return nil, fmt.Errorf("%w: product %q", models.ErrNotFound, slug)
	}
	return &p, nil
}

func newTestEngine() *Engine {
	return NewEngine(newFixtureCatalog())
}

func TestHardwareLineTotal(t *testing.T) {
	engine := newTestEngine()

	quote, lines, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "elevate-v1", Qty: 3},
	}, "")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, int64(1_000_000), lines[0].UnitPrice)
	assert.Equal(t, int64(3_000_000), lines[0].TotalPrice)
	assert.Equal(t, int64(3_000_000), quote.Subtotal)
}

func TestLicenseLineTotal(t *testing.T) {
	engine := newTestEngine()

	quote, lines, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "cs2-license", Qty: 2, DurationLabel: "3m"},
	}, "")
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, "3m", lines[0].DurationLabel)
	assert.Equal(t, int64(8_000_000), lines[0].UnitPrice)
	assert.Equal(t, int64(16_000_000), quote.Subtotal)
}

func TestLicenseRequiresValidDuration(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		name  string
		label string
	}{
		{"missing label", ""},
		{"unknown label", "6m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := engine.Calculate(context.Background(), []models.CartItem{
				{Slug: "vmp-license", Qty: 1, DurationLabel: tc.label},
			}, "")
			require.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}
}

func TestUnknownSlug(t *testing.T) {
	engine := newTestEngine()

	_, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "no-such-product", Qty: 1},
	}, "")
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestQuantityBounds(t *testing.T) {
	engine := newTestEngine()

	cases := []struct {
		name string
		qty  int
	}{
		{"zero", 0},
		{"negative", -3},
		{"above cap", MaxQty + 1},
		{"absurd", 1 << 45},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := engine.Calculate(context.Background(), []models.CartItem{
				{Slug: "elevate-v1", Qty: tc.qty},
			}, "")
			require.ErrorIs(t, err, models.ErrInvalidInput)
		})
	}

	// The cap itself is still a valid purchase and never wraps around.
	quote, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "elevate-v1", Qty: MaxQty},
	}, "")
	require.NoError(t, err)
	assert.Equal(t, int64(MaxQty)*1_000_000, quote.Subtotal)
	assert.Greater(t, quote.Total, int64(0))
}

func TestSingleLicenseQuote(t *testing.T) {
	engine := newTestEngine()

	quote, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "vmp-license", Qty: 1, DurationLabel: "1m"},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, int64(3_000_000), quote.Subtotal)
	assert.Equal(t, int64(0), quote.Discount)
	assert.Equal(t, int64(150_000), quote.ShippingFee)
	assert.Equal(t, int64(3_150_000), quote.Total)
	assert.Equal(t, "IRT", quote.Currency)
	assert.Equal(t, int64(8_000_000), quote.FreeShippingThreshold)
}

func TestCouponUnlocksFreeShipping(t *testing.T) {
	engine := newTestEngine()

	quote, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "elevate-v1", Qty: 1},
		{Slug: "vmp-license", Qty: 1, DurationLabel: "3m"},
	}, "WELCOME10")
	require.NoError(t, err)

	assert.Equal(t, int64(9_000_000), quote.Subtotal)
	assert.Equal(t, int64(900_000), quote.Discount)
	assert.Equal(t, int64(0), quote.ShippingFee)
	assert.Equal(t, int64(8_100_000), quote.Total)
}

func TestFreeShippingThresholdIsStrict(t *testing.T) {
	engine := newTestEngine()

	// Exactly at the threshold still pays flat shipping.
	quote, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "vmp-license", Qty: 1, DurationLabel: "3m"},
	}, "")
	require.NoError(t, err)

	assert.Equal(t, int64(8_000_000), quote.Subtotal)
	assert.Equal(t, int64(150_000), quote.ShippingFee)
	assert.Equal(t, int64(8_150_000), quote.Total)
}

func TestDiscountPercent(t *testing.T) {
	assert.Equal(t, int64(10), DiscountPercent("WELCOME10"))
	assert.Equal(t, int64(10), DiscountPercent("welcome10"))
	assert.Equal(t, int64(0), DiscountPercent("NOPE"))
	assert.Equal(t, int64(0), DiscountPercent(""))
}

func TestDiscountFloorDivision(t *testing.T) {
	engine := newTestEngine()

	quote, _, err := engine.Calculate(context.Background(), []models.CartItem{
		{Slug: "elevate-v1", Qty: 1},
		{Slug: "r6-license", Qty: 1, DurationLabel: "1m"},
	}, "WELCOME10")
	require.NoError(t, err)

	assert.Equal(t, int64(4_000_000), quote.Subtotal)
	assert.Equal(t, quote.Subtotal*10/100, quote.Discount)
	assert.Equal(t, quote.Subtotal-quote.Discount+quote.ShippingFee, quote.Total)
}

func TestEmptyCart(t *testing.T) {
	engine := newTestEngine()

	quote, lines, err := engine.Calculate(context.Background(), nil, "")
	require.NoError(t, err)
	assert.Empty(t, lines)
	assert.Equal(t, int64(0), quote.Subtotal)
	// An empty cart is below the threshold, so flat shipping applies.
	assert.Equal(t, int64(150_000), quote.ShippingFee)
	assert.Equal(t, int64(150_000), quote.Total)
}
