package store

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLite is the persistent Store backed by a local SQLite database.
type SQLite struct {
	DB *sql.DB
}

var _ Store = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at the given DSN and ensures the
// schema exists.
func OpenSQLite(dataSourceName string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	s := &SQLite{DB: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS products (
		slug TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		title_fa TEXT NOT NULL,
		title_en TEXT NOT NULL,
		description_fa TEXT,
		description_en TEXT,
		game TEXT,
		durations TEXT,
		requires_hardware INTEGER NOT NULL DEFAULT 0,
		price INTEGER,
		images TEXT,
		in_stock INTEGER NOT NULL DEFAULT 1,
		badge TEXT
	);

	CREATE TABLE IF NOT EXISTS status_entries (
		game TEXT PRIMARY KEY,
		state TEXT NOT NULL,
		updated_at DATETIME NOT NULL,
		note_fa TEXT,
		note_en TEXT
	);

	CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		address TEXT,
		items TEXT NOT NULL,
		subtotal INTEGER NOT NULL,
		discount INTEGER NOT NULL,
		shipping_fee INTEGER NOT NULL,
		total INTEGER NOT NULL,
		coupon TEXT,
		payment_status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL
	);
	`
	_, err := s.DB.Exec(query)
	return err
}

func (s *SQLite) Kind() string { return "sqlite" }

func (s *SQLite) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *SQLite) Collections(ctx context.Context) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func (s *SQLite) Close() error {
	return s.DB.Close()
}
