// Package pricing computes cart totals. It has no state of its own: every
// call resolves prices against the catalog and applies the coupon and
// shipping rules, so identical inputs always produce identical quotes.
package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/elevatescripts/backend/internal/models"
)

const (
	Currency              = "IRT"
	FreeShippingThreshold = 8_000_000
	FlatShippingFee       = 150_000

	// MaxQty bounds a single cart line. Anything above this is not a real
	// purchase, and the cap keeps line totals far away from int64 overflow.
	MaxQty = 1_000_000
)

// coupons maps upper-cased codes to whole-percent discounts.
var coupons = map[string]int64{
	"WELCOME10": 10,
}

// Catalog is the product lookup the engine prices against.
type Catalog interface {
	ProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

// Quote is the price breakdown returned to clients.
type Quote struct {
	Subtotal              int64  `json:"subtotal"`
	Discount              int64  `json:"discount"`
	ShippingFee           int64  `json:"shipping_fee"`
	Total                 int64  `json:"total"`
	FreeShippingThreshold int64  `json:"free_shipping_threshold"`
	Currency              string `json:"currency"`
}

type Engine struct {
	catalog Catalog
}

func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Calculate resolves each cart line against the catalog and aggregates the
// quote. It also returns the resolved lines so checkout can persist them
// without trusting anything the client sent beyond slug/qty/duration.
func (e *Engine) Calculate(ctx context.Context, items []models.CartItem, couponCode string) (Quote, []models.OrderItem, error) {
	lines := make([]models.OrderItem, 0, len(items))
	var subtotal int64
	for _, item := range items {
		line, err := e.resolveLine(ctx, item)
		if err != nil {
			return Quote{}, nil, err
		}
		lines = append(lines, line)
		subtotal += line.TotalPrice
	}

	discount := subtotal * DiscountPercent(couponCode) / 100
	afterDiscount := subtotal - discount

	var shipping int64 = FlatShippingFee
	if afterDiscount > FreeShippingThreshold {
		shipping = 0
	}

	quote := Quote{
		Subtotal:              subtotal,
		Discount:              discount,
		ShippingFee:           shipping,
		Total:                 afterDiscount + shipping,
		FreeShippingThreshold: FreeShippingThreshold,
		Currency:              Currency,
	}
	return quote, lines, nil
}

// DiscountPercent looks up a coupon code case-insensitively. Unknown or empty
// codes simply carry no discount; they are not an error.
func DiscountPercent(code string) int64 {
	if code == "" {
		return 0
	}
	return coupons[strings.ToUpper(code)]
}

func (e *Engine) resolveLine(ctx context.Context, item models.CartItem) (models.OrderItem, error) {
	qty := item.Qty
	if qty < 1 || qty > MaxQty {
		return models.OrderItem{}, fmt.Errorf("%w: invalid quantity %d for %s", models.ErrInvalidInput, qty, item.Slug)
	}

	prod, err := e.catalog.ProductBySlug(ctx, item.Slug)
	if err != nil {
		return models.OrderItem{}, err
	}

	line := models.OrderItem{
		Slug:  prod.Slug,
		Title: prod.TitleEN,
		Kind:  prod.Kind,
		Qty:   qty,
	}

	switch prod.Kind {
	case models.KindHardware:
		line.UnitPrice = prod.Price
	case models.KindLicense:
		dur, ok := prod.DurationByLabel(item.DurationLabel)
		if !ok {
			return models.OrderItem{}, fmt.Errorf("%w: invalid duration %q for %s", models.ErrInvalidInput, item.DurationLabel, prod.Slug)
		}
		line.DurationLabel = dur.Label
		line.UnitPrice = dur.Price
	default:
		return models.OrderItem{}, fmt.Errorf("%w: product %s has unknown kind %q", models.ErrInvalidInput, prod.Slug, prod.Kind)
	}

	line.TotalPrice = line.UnitPrice * int64(qty)
	return line, nil
}
