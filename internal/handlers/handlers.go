package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/elevatescripts/backend/internal/catalog"
	"github.com/elevatescripts/backend/internal/config"
	"github.com/elevatescripts/backend/internal/models"
	"github.com/elevatescripts/backend/internal/pricing"
	"github.com/elevatescripts/backend/internal/store"
)

// paymentGateway is the static placeholder returned by checkout until a real
// local gateway is integrated.
type paymentGateway struct {
	Provider    string `json:"provider"`
	RedirectURL string `json:"redirect_url"`
	Note        string `json:"note"`
}

var mockGateway = paymentGateway{
	Provider:    "LOCAL_IRT_PLACEHOLDER",
	RedirectURL: "https://example.com/pay/mock",
	Note:        "Integrate local Iranian gateway here.",
}

type API struct {
	Store   store.Store
	Pricing *pricing.Engine
	Config  *config.Config
}

func NewAPI(s store.Store, cfg *config.Config) *API {
	return &API{
		Store:   s,
		Pricing: pricing.NewEngine(s),
		Config:  cfg,
	}
}

func (a *API) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Elevate Scripts API is running"})
}

// ListProducts serves the catalog. A store failure degrades to the fixed
// default dataset instead of erroring; misconfiguration shows up in the logs,
// not in the shop front.
func (a *API) ListProducts(w http.ResponseWriter, r *http.Request) {
	items, err := a.Store.Products(r.Context())
	if err != nil {
		slog.Warn("catalog read failed, serving defaults", "error", err)
		items = catalog.DefaultProducts()
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (a *API) GetStatus(w http.ResponseWriter, r *http.Request) {
	entries, err := a.Store.StatusEntries(r.Context())
	if err != nil {
		slog.Warn("status read failed, serving defaults", "error", err)
		entries = catalog.DefaultStatusEntries()
	}
	writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

type statusToggleRequest struct {
	Game   models.Game           `json:"game"`
	State  models.DetectionState `json:"state"`
	NoteFA string                `json:"note_fa,omitempty"`
	NoteEN string                `json:"note_en,omitempty"`
}

func (a *API) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	var req statusToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !models.ValidGame(req.Game) {
		writeError(w, http.StatusBadRequest, "invalid game")
		return
	}
	if !models.ValidDetectionState(req.State) {
		writeError(w, http.StatusBadRequest, "invalid state")
		return
	}

	entry := &models.StatusEntry{
		Game:      req.Game,
		State:     req.State,
		UpdatedAt: time.Now().UTC(),
		NoteFA:    req.NoteFA,
		NoteEN:    req.NoteEN,
	}
	if err := a.Store.UpsertStatus(r.Context(), entry); err != nil {
		// Entry still goes back to the caller; only persistence was lost.
		slog.Warn("status upsert failed", "game", entry.Game, "error", err)
	}
	writeJSON(w, http.StatusOK, map[string]any{"updated": entry})
}

type cartCalcRequest struct {
	Code  string            `json:"code,omitempty"`
	Items []models.CartItem `json:"items"`
}

func (a *API) CalcCart(w http.ResponseWriter, r *http.Request) {
	var req cartCalcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	quote, _, err := a.Pricing.Calculate(r.Context(), req.Items, req.Code)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}

type checkoutRequest struct {
	Email   string            `json:"email"`
	Address string            `json:"address,omitempty"`
	Items   []models.CartItem `json:"items"`
	Coupon  string            `json:"coupon,omitempty"`
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Checkout recomputes the quote server-side and records the order as pending.
// Persistence is best-effort: a store failure is logged and the order is
// returned unrecorded, which is safe because no payment has happened yet.
func (a *API) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if !emailRegex.MatchString(req.Email) {
		writeError(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "cart is empty")
		return
	}

	quote, lines, err := a.Pricing.Calculate(r.Context(), req.Items, req.Coupon)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	order := &models.Order{
		ID:            uuid.NewString(),
		Email:         req.Email,
		Address:       req.Address,
		Items:         lines,
		Subtotal:      quote.Subtotal,
		Discount:      quote.Discount,
		ShippingFee:   quote.ShippingFee,
		Total:         quote.Total,
		Coupon:        req.Coupon,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := a.Store.InsertOrder(r.Context(), order); err != nil {
		slog.Warn("order not recorded", "order_id", order.ID, "email", order.Email, "error", err)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"order":           order,
		"payment_gateway": mockGateway,
	})
}

// Diagnostics reports store connectivity and which environment knobs are set.
// It intentionally never fails.
func (a *API) Diagnostics(w http.ResponseWriter, r *http.Request) {
	resp := map[string]any{
		"backend":           "running",
		"store":             a.Store.Kind(),
		"connection_status": "connected",
		"collections":       []string{},
		"database_url":      setOrNot(a.Config.DatabaseURL),
		"database_name":     setOrNot(a.Config.DatabaseName),
	}

	if err := a.Store.Ping(r.Context()); err != nil {
		resp["connection_status"] = "error: " + err.Error()
	} else if collections, err := a.Store.Collections(r.Context()); err == nil {
		if len(collections) > 10 {
			collections = collections[:10]
		}
		resp["collections"] = collections
	}

	writeJSON(w, http.StatusOK, resp)
}

func setOrNot(v string) string {
	if v == "" {
		return "not set"
	}
	return "set"
}
