package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for the domain. Callers wrap them with fmt.Errorf("%w: ...")
// and the HTTP boundary maps them to status codes with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

type ProductKind string

const (
	KindHardware ProductKind = "hardware"
	KindLicense  ProductKind = "license"
)

type Game string

const (
	GameVMP Game = "vmp"
	GameCS2 Game = "cs2"
	GameR6  Game = "r6"
)

// Games lists every tracked game, in seed order.
var Games = []Game{GameVMP, GameCS2, GameR6}

func ValidGame(g Game) bool {
	for _, known := range Games {
		if g == known {
			return true
		}
	}
	return false
}

type DetectionState string

const (
	StateDetected   DetectionState = "detected"
	StateUndetected DetectionState = "undetected"
)

func ValidDetectionState(s DetectionState) bool {
	return s == StateDetected || s == StateUndetected
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Duration is a purchasable license term tier. Prices are integer IRT.
type Duration struct {
	Label  string `json:"label"` // "1m" | "3m"
	Months int    `json:"months"`
	Price  int64  `json:"price"`
}

type Product struct {
	Kind             ProductKind `json:"type"`
	Slug             string      `json:"slug"`
	TitleFA          string      `json:"title_fa"`
	TitleEN          string      `json:"title_en"`
	DescriptionFA    string      `json:"description_fa,omitempty"`
	DescriptionEN    string      `json:"description_en,omitempty"`
	Game             Game        `json:"game,omitempty"`      // license only
	Durations        []Duration  `json:"durations,omitempty"` // license only
	RequiresHardware bool        `json:"requiresHardware"`
	Price            int64       `json:"price,omitempty"` // hardware only
	Images           []string    `json:"images"`
	InStock          bool        `json:"in_stock"`
	Badge            string      `json:"badge,omitempty"`
}

// NewHardwareProduct builds a hardware catalog entry. Hardware carries a flat
// price and never a duration list.
func NewHardwareProduct(slug, titleFA, titleEN string, price int64) (*Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: hardware product needs a slug", ErrInvalidInput)
	}
	if price < 0 {
		return nil, fmt.Errorf("%w: hardware price must be >= 0", ErrInvalidInput)
	}
	return &Product{
		Kind:    KindHardware,
		Slug:    slug,
		TitleFA: titleFA,
		TitleEN: titleEN,
		Price:   price,
		InStock: true,
	}, nil
}

// NewLicenseProduct builds a license catalog entry. Licenses carry a game tag
// and at least one duration tier instead of a flat price.
func NewLicenseProduct(slug, titleFA, titleEN string, game Game, durations []Duration) (*Product, error) {
	if slug == "" {
		return nil, fmt.Errorf("%w: license product needs a slug", ErrInvalidInput)
	}
	if !ValidGame(game) {
		return nil, fmt.Errorf("%w: unknown game %q", ErrInvalidInput, game)
	}
	if len(durations) == 0 {
		return nil, fmt.Errorf("%w: license product needs at least one duration", ErrInvalidInput)
	}
	for _, d := range durations {
		if d.Months < 1 || d.Price < 0 {
			return nil, fmt.Errorf("%w: bad duration tier %q", ErrInvalidInput, d.Label)
		}
	}
	return &Product{
		Kind:             KindLicense,
		Slug:             slug,
		TitleFA:          titleFA,
		TitleEN:          titleEN,
		Game:             game,
		Durations:        durations,
		RequiresHardware: true,
		InStock:          true,
	}, nil
}

// DurationByLabel returns the matching tier for a license product.
func (p *Product) DurationByLabel(label string) (Duration, bool) {
	for _, d := range p.Durations {
		if d.Label == label {
			return d, true
		}
	}
	return Duration{}, false
}

// StatusEntry is the single mutable detection record per game.
type StatusEntry struct {
	Game      Game           `json:"game"`
	State     DetectionState `json:"state"`
	UpdatedAt time.Time      `json:"updatedAt"`
	NoteFA    string         `json:"note_fa,omitempty"`
	NoteEN    string         `json:"note_en,omitempty"`
}

// CartItem is a client-submitted cart line. It is never persisted on its own.
type CartItem struct {
	Slug          string `json:"slug"`
	Qty           int    `json:"qty"`
	DurationLabel string `json:"duration_label,omitempty"`
}

// UnmarshalJSON defaults qty to 1 when the field is absent. An explicit zero
// or negative quantity is kept as sent and rejected during pricing.
func (c *CartItem) UnmarshalJSON(data []byte) error {
	type alias CartItem
	a := alias{Qty: 1}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = CartItem(a)
	return nil
}

// OrderItem is a cart line after price resolution against the catalog.
type OrderItem struct {
	Slug          string      `json:"slug"`
	Title         string      `json:"title"`
	Kind          ProductKind `json:"type"`
	DurationLabel string      `json:"duration_label,omitempty"`
	Qty           int         `json:"qty"`
	UnitPrice     int64       `json:"unit_price"`
	TotalPrice    int64       `json:"total_price"`
}

type Order struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	Address       string        `json:"address,omitempty"`
	Items         []OrderItem   `json:"items"`
	Subtotal      int64         `json:"subtotal"`
	Discount      int64         `json:"discount"`
	ShippingFee   int64         `json:"shipping_fee"`
	Total         int64         `json:"total"`
	Coupon        string        `json:"coupon,omitempty"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
}

// License, User and RebindRequest are declared for the upcoming license
// issuance and HWID rebind flows. No endpoint or store method touches them yet.

type License struct {
	Email         string    `json:"email"`
	Game          Game      `json:"game"`
	DurationLabel string    `json:"duration_label"`
	KeyMasked     string    `json:"key_masked"`
	Status        string    `json:"status"` // "active" | "expired"
	Expiry        time.Time `json:"expiry"`
	HWIDMasked    string    `json:"hwid_masked"`
}

type User struct {
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
}

type RebindRequest struct {
	Email            string    `json:"email"`
	LicenseKeyMasked string    `json:"license_key_masked"`
	Reason           string    `json:"reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}
