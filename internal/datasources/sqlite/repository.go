package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jbeshir/content-ratings/internal/datasources/sqlstore"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY,
	display_name TEXT NOT NULL DEFAULT '',
	email TEXT NOT NULL DEFAULT '',
	auth_subject TEXT UNIQUE,
	role TEXT NOT NULL DEFAULT 'subscriber'
);

CREATE TABLE IF NOT EXISTS content_items (
	id INTEGER PRIMARY KEY,
	type TEXT NOT NULL DEFAULT 'post',
	title TEXT NOT NULL DEFAULT '',
	body TEXT NOT NULL DEFAULT '',
	author_id INTEGER NOT NULL DEFAULT 0,
	published_at INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS categories (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS tags (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	slug TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS content_categories (
	content_id INTEGER NOT NULL,
	category_id INTEGER NOT NULL,
	PRIMARY KEY (content_id, category_id)
);

CREATE TABLE IF NOT EXISTS content_tags (
	content_id INTEGER NOT NULL,
	tag_id INTEGER NOT NULL,
	PRIMARY KEY (content_id, tag_id)
);

CREATE TABLE IF NOT EXISTS content_meta (
	content_id INTEGER NOT NULL,
	meta_key TEXT NOT NULL,
	meta_value TEXT NOT NULL,
	PRIMARY KEY (content_id, meta_key)
);

CREATE TABLE IF NOT EXISTS options (
	option_key TEXT PRIMARY KEY,
	option_value TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS api_tokens (
	id TEXT PRIMARY KEY,
	user_id INTEGER NOT NULL,
	token_hash TEXT NOT NULL UNIQUE,
	token_prefix TEXT NOT NULL,
	name TEXT,
	created_at INTEGER NOT NULL,
	last_used_at INTEGER,
	expires_at INTEGER,
	revoked_at INTEGER
);
`

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("applying SQLite schema: %w", err)
	}
	return nil
}

func New(db *sql.DB) *sqlstore.Repository {
	return sqlstore.New(db, sqlstore.SQLite)
}
