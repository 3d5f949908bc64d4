package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elevatescripts/backend/internal/models"
)

func (s *SQLite) InsertOrder(ctx context.Context, o *models.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items for order %s: %w", o.ID, err)
	}

	query := `
		INSERT INTO orders (id, email, address, items, subtotal, discount, shipping_fee, total, coupon, payment_status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.DB.ExecContext(ctx, query,
		o.ID, o.Email, o.Address, string(items), o.Subtotal, o.Discount,
		o.ShippingFee, o.Total, o.Coupon, string(o.PaymentStatus), o.CreatedAt,
	)
	return err
}

// Orders returns recorded orders, newest first. Used by the operator CLI.
func (s *SQLite) Orders(ctx context.Context, limit int) ([]models.Order, error) {
	query := `
		SELECT id, email, COALESCE(address, ''), items, subtotal, discount, shipping_fee, total, COALESCE(coupon, ''), payment_status, created_at
		FROM orders
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var (
			o     models.Order
			items string
		)
		if err := rows.Scan(&o.ID, &o.Email, &o.Address, &items, &o.Subtotal, &o.Discount, &o.ShippingFee, &o.Total, &o.Coupon, &o.PaymentStatus, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(items), &o.Items); err != nil {
			return nil, fmt.Errorf("decode items for order %s: %w", o.ID, err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
