package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/elevatescripts/backend/internal/models"
)

const productColumns = `slug, kind, title_fa, title_en, COALESCE(description_fa, ''), COALESCE(description_en, ''),
	COALESCE(game, ''), COALESCE(durations, '[]'), requires_hardware, COALESCE(price, 0), COALESCE(images, '[]'),
	in_stock, COALESCE(badge, '')`

func (s *SQLite) InsertProduct(ctx context.Context, p *models.Product) error {
	durations, err := json.Marshal(p.Durations)
	if err != nil {
		return fmt.Errorf("encode durations for %s: %w", p.Slug, err)
	}
	images, err := json.Marshal(p.Images)
	if err != nil {
		return fmt.Errorf("encode images for %s: %w", p.Slug, err)
	}

	query := `
		INSERT INTO products (slug, kind, title_fa, title_en, description_fa, description_en, game, durations, requires_hardware, price, images, in_stock, badge)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.DB.ExecContext(ctx, query,
		p.Slug, string(p.Kind), p.TitleFA, p.TitleEN, p.DescriptionFA, p.DescriptionEN,
		string(p.Game), string(durations), p.RequiresHardware, p.Price, string(images),
		p.InStock, p.Badge,
	)
	return err
}

func (s *SQLite) Products(ctx context.Context) ([]models.Product, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *SQLite) ProductBySlug(ctx context.Context, slug string) (*models.Product, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE slug = ?`, slug)
	p, err := scanProduct(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: product %q", models.ErrNotFound, slug)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *SQLite) CountProducts(ctx context.Context) (int, error) {
	var count int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p         models.Product
		durations string
		images    string
	)
	if err := row.Scan(
		&p.Slug, &p.Kind, &p.TitleFA, &p.TitleEN, &p.DescriptionFA, &p.DescriptionEN,
		&p.Game, &durations, &p.RequiresHardware, &p.Price, &images, &p.InStock, &p.Badge,
	); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(durations), &p.Durations); err != nil {
		return nil, fmt.Errorf("decode durations for %s: %w", p.Slug, err)
	}
	if err := json.Unmarshal([]byte(images), &p.Images); err != nil {
		return nil, fmt.Errorf("decode images for %s: %w", p.Slug, err)
	}
	return &p, nil
}
